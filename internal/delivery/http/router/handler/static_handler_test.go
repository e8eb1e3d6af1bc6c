package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"parceltrack/internal/domain/service"
	mockSvc "parceltrack/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newStaticEcho(t *testing.T) (*mockSvc.MockObjectStorage, func(target string) *httptest.ResponseRecorder) {
	storage := mockSvc.NewMockObjectStorage(t)
	h := NewStaticHandler(StaticHandlerParams{Storage: storage, Logger: slog.New(slog.DiscardHandler)})

	e := newTestEcho(nil)
	e.GET(StaticPrefix+"/*", h.ServeObject)

	return storage, func(target string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

		return rec
	}
}

func TestStaticHandler_ServesAvatar(t *testing.T) {
	storage, get := newStaticEcho(t)

	storage.EXPECT().Get(mock.Anything, "profile_pictures/u-alice.jpg").
		Return(&service.Object{Data: []byte("jpeg-bytes"), ContentType: "image/jpeg"}, nil)

	rec := get("/static/profile_pictures/u-alice.jpg")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))
	assert.Equal(t, "jpeg-bytes", rec.Body.String())
}

func TestStaticHandler_NotFound(t *testing.T) {
	storage, get := newStaticEcho(t)

	storage.EXPECT().Get(mock.Anything, "profile_pictures/u-ghost.jpg").Return(nil, service.ErrObjectNotFound)

	assert.Equal(t, http.StatusNotFound, get("/static/profile_pictures/u-ghost.jpg").Code)
	assert.Equal(t, http.StatusNotFound, get("/static/secrets/config.yaml").Code)
	storage.AssertNotCalled(t, "Get", mock.Anything, "secrets/config.yaml")
}

func TestStaticHandler_StorageFailure(t *testing.T) {
	storage, get := newStaticEcho(t)

	storage.EXPECT().Get(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, string) (*service.Object, error) {
			return nil, errors.New("bucket unavailable")
		})

	assert.Equal(t, http.StatusInternalServerError, get("/static/profile_pictures/u-alice.jpg").Code)
}
