package impl

import (
	"context"
	"log/slog"

	"parceltrack/internal/domain/repository"
)

// relay forwards a live query, logging the terminal error if one arrives.
func relay[T any](ctx context.Context, logger *slog.Logger, query string, in <-chan repository.Snapshot[T]) <-chan repository.Snapshot[T] {
	out := make(chan repository.Snapshot[T])

	go func() {
		defer close(out)

		for snap := range in {
			if snap.Err != nil {
				logger.Warn("Live query failed", slog.String("query", query), slog.Any("error", snap.Err))
			}
			if !repository.SendSnapshot(ctx, out, snap) {
				return
			}
		}
	}()

	return out
}

// failedQuery is a live query that reports err once and ends.
func failedQuery[T any](err error) <-chan repository.Snapshot[T] {
	out := make(chan repository.Snapshot[T], 1)
	out <- repository.Snapshot[T]{Err: err}
	close(out)

	return out
}
