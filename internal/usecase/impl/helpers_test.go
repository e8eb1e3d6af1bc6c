package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	deliverycontext "parceltrack/internal/delivery/context"
	"parceltrack/internal/domain/entity"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock() time.Time {
	return testNow
}

func callerContext() context.Context {
	return deliverycontext.WithCaller(context.Background(), &entity.Caller{
		UID:         "u-alice",
		Email:       "alice@example.com",
		DisplayName: "Alice",
	})
}

func callerContextAs(uid string) context.Context {
	return deliverycontext.WithCaller(context.Background(), &entity.Caller{UID: uid, Email: uid + "@example.com"})
}
