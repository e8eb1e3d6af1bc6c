package firestoredb

import (
	"context"

	"parceltrack/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// listenerStopped reports whether err only signals that the listener was shut down by ctx.
func listenerStopped(ctx context.Context, err error) bool {
	return ctx.Err() != nil || errors.Is(err, iterator.Done) || status.Code(err) == codes.Canceled
}

// watchDocument streams a document. Snapshots of a missing document are skipped.
func watchDocument[T any](
	ctx context.Context,
	ref *firestore.DocumentRef,
	convert func(*firestore.DocumentSnapshot) (T, error),
) <-chan repository.Snapshot[T] {
	out := make(chan repository.Snapshot[T])

	go func() {
		defer close(out)

		it := ref.Snapshots(ctx)
		defer it.Stop()

		for {
			snap, err := it.Next()
			if err != nil {
				if !listenerStopped(ctx, err) {
					repository.SendSnapshot(ctx, out, repository.Snapshot[T]{Err: errors.WithStack(err)})
				}

				return
			}
			if !snap.Exists() {
				continue
			}

			data, err := convert(snap)
			if err != nil {
				repository.SendSnapshot(ctx, out, repository.Snapshot[T]{Err: errors.WithStack(err)})

				return
			}
			if !repository.SendSnapshot(ctx, out, repository.Snapshot[T]{Data: data, ReadTime: snap.ReadTime}) {
				return
			}
		}
	}()

	return out
}

// watchQuery streams the full result set of q on every change.
func watchQuery[T any](
	ctx context.Context,
	q firestore.Query,
	convert func(*firestore.DocumentSnapshot) (T, error),
) <-chan repository.Snapshot[[]T] {
	out := make(chan repository.Snapshot[[]T])

	go func() {
		defer close(out)

		it := q.Snapshots(ctx)
		defer it.Stop()

		for {
			qs, err := it.Next()
			if err != nil {
				if !listenerStopped(ctx, err) {
					repository.SendSnapshot(ctx, out, repository.Snapshot[[]T]{Err: errors.WithStack(err)})
				}

				return
			}

			data, err := convertAll(qs.Documents, convert)
			if err != nil {
				repository.SendSnapshot(ctx, out, repository.Snapshot[[]T]{Err: err})

				return
			}
			if !repository.SendSnapshot(ctx, out, repository.Snapshot[[]T]{Data: data, ReadTime: qs.ReadTime}) {
				return
			}
		}
	}()

	return out
}

func convertAll[T any](docs *firestore.DocumentIterator, convert func(*firestore.DocumentSnapshot) (T, error)) ([]T, error) {
	snaps, err := docs.GetAll()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	result := make([]T, 0, len(snaps))
	for _, snap := range snaps {
		item, err := convert(snap)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode document %s", snap.Ref.ID)
		}
		result = append(result, item)
	}

	return result, nil
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func isAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}
