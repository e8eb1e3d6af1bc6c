package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"parceltrack/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestCallerRoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, GetCaller(ctx))

	ctx = WithCaller(ctx, &entity.Caller{UID: "u1", Email: "a@example.com"})
	caller := GetCaller(ctx)
	if assert.NotNil(t, caller) {
		assert.Equal(t, "u1", caller.UID)
	}

	assert.Nil(t, GetCaller(WithCaller(context.Background(), &entity.Caller{})))
}

func TestRequestIDAndLogger(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.NotEmpty(t, GetRequestID(c))
	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))

	fallback := slog.Default()
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))

	scoped := slog.New(slog.DiscardHandler)
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(ctx, scoped), fallback))
}
