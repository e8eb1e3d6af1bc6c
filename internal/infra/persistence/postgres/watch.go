package postgres

import (
	"context"
	"reflect"
	"time"

	"parceltrack/internal/domain/repository"

	"github.com/pkg/errors"
)

// errNoSnapshot tells poll to skip an emission without ending the query.
var errNoSnapshot = errors.New("no snapshot")

// poll turns a query into a live query by re-running it every interval.
// A result equal to the previous emission is not re-emitted. Any error other than
// errNoSnapshot is sent once and ends the query.
func poll[T any](ctx context.Context, interval time.Duration, query func(ctx context.Context) (T, error)) <-chan repository.Snapshot[T] {
	out := make(chan repository.Snapshot[T])

	go func() {
		defer close(out)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		var (
			prev    T
			emitted bool
		)
		for {
			readTime := time.Now().UTC()
			data, err := query(ctx)
			switch {
			case ctx.Err() != nil:
				return
			case errors.Is(err, errNoSnapshot):
			case err != nil:
				repository.SendSnapshot(ctx, out, repository.Snapshot[T]{Err: err, ReadTime: readTime})

				return
			case !emitted || !reflect.DeepEqual(prev, data):
				if !repository.SendSnapshot(ctx, out, repository.Snapshot[T]{Data: data, ReadTime: readTime}) {
					return
				}
				prev, emitted = data, true
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	return out
}
