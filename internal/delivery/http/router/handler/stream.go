package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	domainerrors "parceltrack/internal/domain/errors"
	"parceltrack/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	eventSnapshot = "snapshot"
	eventError    = "error"
)

// heartbeatInterval keeps idle streams open through proxies.
var heartbeatInterval = 25 * time.Second

type snapshotEvent[T any] struct {
	Data     T         `json:"data"`
	ReadTime time.Time `json:"read_time"`
}

type streamError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// streamSnapshots writes every snapshot of a live query as a server-sent event until the
// client disconnects or the query ends. A failed query is reported as a final error event.
func streamSnapshots[T any](c echo.Context, snapshots <-chan repository.Snapshot[T]) error {
	ctx := c.Request().Context()

	res := c.Response()
	// Streams outlive the server write timeout. Recorders in tests do not support deadlines.
	_ = http.NewResponseController(res).SetWriteDeadline(time.Time{})
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := fmt.Fprint(res, ": ping\n\n"); err != nil {
				return errors.WithStack(err)
			}
			res.Flush()
		case snap, ok := <-snapshots:
			if !ok {
				return nil
			}
			if snap.Err != nil {
				return writeEvent(res, eventError, toStreamError(snap.Err))
			}
			if err := writeEvent(res, eventSnapshot, snapshotEvent[T]{Data: snap.Data, ReadTime: snap.ReadTime}); err != nil {
				return err
			}
		}
	}
}

func writeEvent(res *echo.Response, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to encode event")
	}

	if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return errors.WithStack(err)
	}
	res.Flush()

	return nil
}

func toStreamError(err error) streamError {
	if appErr, ok := domainerrors.AsAppError(err); ok {
		return streamError{Code: appErr.ErrorCode(), Message: appErr.Message()}
	}

	return streamError{Code: domainerrors.ErrInternalError.ErrorCode(), Message: domainerrors.ErrInternalError.Message()}
}
