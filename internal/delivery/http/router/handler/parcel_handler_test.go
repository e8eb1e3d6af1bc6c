package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	deliverycontext "parceltrack/internal/delivery/context"
	"parceltrack/internal/delivery/http/middleware"
	"parceltrack/internal/delivery/http/validator"
	"parceltrack/internal/domain/entity"
	domainerrors "parceltrack/internal/domain/errors"
	"parceltrack/internal/domain/repository"
	mockUsecase "parceltrack/internal/mocks/usecase"
	"parceltrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testCaller = &entity.Caller{UID: "u-alice", Email: "alice@example.com"}

// newTestEcho wires the validator and error handler the server uses.
// A non-nil caller is attached to every request as if the auth middleware had run.
func newTestEcho(caller *entity.Caller) *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if caller != nil {
				c.SetRequest(c.Request().WithContext(deliverycontext.WithCaller(c.Request().Context(), caller)))
			}

			return next(c)
		}
	})

	return e
}

func doJSON(e *echo.Echo, method, target string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func newParcelTestHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockParcelUsecase) {
	uc := mockUsecase.NewMockParcelUsecase(t)
	h := NewParcelHandler(ParcelHandlerParams{ParcelUC: uc, Logger: slog.New(slog.DiscardHandler)})

	e := newTestEcho(testCaller)
	e.POST("/parcels", h.CreateParcel)
	e.GET("/parcels/sent", h.StreamSentParcels)
	e.GET("/parcels/:id", h.GetParcel)
	e.GET("/parcels/:id/stream", h.StreamParcel)
	e.PATCH("/parcels/:id/status", h.UpdateParcelStatus)
	e.PUT("/parcels/:id/location", h.UpdateParcelLocation)
	e.POST("/parcels/:id/history", h.AddLocationHistory)
	e.GET("/parcels/:id/qrcode", h.GetParcelQRCode)

	return e, uc
}

func TestParcelHandler_CreateParcel(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		e, uc := newParcelTestHandler(t)
		uc.EXPECT().CreateParcel(mock.Anything, mock.MatchedBy(func(in *usecase.CreateParcelInput) bool {
			return in.ReceiverEmail == "bob@example.com" && in.SourceAddress == "Depot"
		})).Return("p-1", nil)

		rec := doJSON(e, http.MethodPost, "/parcels", map[string]string{
			"source_address":      "Depot",
			"destination_address": "Home",
			"receiver_email":      "bob@example.com",
		})

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"id":"p-1"}`, string(decodeEnvelope(t, rec).Data))
	})

	t.Run("invalid receiver email is rejected before the usecase", func(t *testing.T) {
		e, _ := newParcelTestHandler(t)

		rec := doJSON(e, http.MethodPost, "/parcels", map[string]string{
			"source_address":      "Depot",
			"destination_address": "Home",
			"receiver_email":      "not-an-email",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("unknown receiver", func(t *testing.T) {
		e, uc := newParcelTestHandler(t)
		uc.EXPECT().CreateParcel(mock.Anything, mock.Anything).Return("", domainerrors.ErrReceiverNotFound)

		rec := doJSON(e, http.MethodPost, "/parcels", map[string]string{
			"source_address":      "Depot",
			"destination_address": "Home",
			"receiver_email":      "ghost@example.com",
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "RECEIVER_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestParcelHandler_GetParcel(t *testing.T) {
	e, uc := newParcelTestHandler(t)
	uc.EXPECT().GetParcel(mock.Anything, "p-1").Return(&entity.Parcel{ID: "p-1", Status: entity.ParcelStatusInTransit}, nil)
	uc.EXPECT().GetParcel(mock.Anything, "missing").Return(nil, domainerrors.ErrParcelNotFound)

	rec := doJSON(e, http.MethodGet, "/parcels/p-1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"IN_TRANSIT"`)

	rec = doJSON(e, http.MethodGet, "/parcels/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestParcelHandler_UpdateParcelStatus(t *testing.T) {
	e, uc := newParcelTestHandler(t)
	uc.EXPECT().UpdateParcelStatus(mock.Anything, "p-1", entity.ParcelStatusDelivered).Return(nil)
	uc.EXPECT().UpdateParcelStatus(mock.Anything, "p-1", entity.ParcelStatus("LOST")).
		Return(domainerrors.ErrInvalidParcelStatus.WithDetails("LOST"))

	rec := doJSON(e, http.MethodPatch, "/parcels/p-1/status", map[string]string{"status": "DELIVERED"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPatch, "/parcels/p-1/status", map[string]string{"status": "LOST"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_PARCEL_STATUS", decodeEnvelope(t, rec).Error.Code)
}

func TestParcelHandler_UpdateParcelLocation(t *testing.T) {
	e, uc := newParcelTestHandler(t)
	uc.EXPECT().UpdateParcelLocation(mock.Anything, "p-1", entity.GeoPoint{Latitude: 25.03, Longitude: 121.56}).Return(nil)

	rec := doJSON(e, http.MethodPut, "/parcels/p-1/location", map[string]float64{"latitude": 25.03, "longitude": 121.56})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPut, "/parcels/p-1/location", map[string]float64{"latitude": 95, "longitude": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestParcelHandler_AddLocationHistory(t *testing.T) {
	e, uc := newParcelTestHandler(t)
	uc.EXPECT().AddLocationHistory(mock.Anything, "p-1", &usecase.AddLocationHistoryInput{
		Location:    entity.GeoPoint{Latitude: 1, Longitude: 2},
		Status:      entity.ParcelStatusInTransit,
		Description: "Left the hub",
	}).Return("h-1", nil)

	rec := doJSON(e, http.MethodPost, "/parcels/p-1/history", map[string]any{
		"location":    map[string]float64{"latitude": 1, "longitude": 2},
		"status":      "IN_TRANSIT",
		"description": "Left the hub",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":"h-1"}`, string(decodeEnvelope(t, rec).Data))
}

func TestParcelHandler_GetParcelQRCode(t *testing.T) {
	e, uc := newParcelTestHandler(t)
	png := []byte("\x89PNG\r\n\x1a\n")
	uc.EXPECT().GenerateParcelQRCode(mock.Anything, "p-1").Return(png, nil)

	rec := doJSON(e, http.MethodGet, "/parcels/p-1/qrcode", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestParcelHandler_StreamParcel(t *testing.T) {
	e, uc := newParcelTestHandler(t)
	readTime := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	ch := make(chan repository.Snapshot[*entity.Parcel], 2)
	ch <- repository.Snapshot[*entity.Parcel]{Data: &entity.Parcel{ID: "p-1"}, ReadTime: readTime}
	ch <- repository.Snapshot[*entity.Parcel]{Err: domainerrors.ErrParcelNotFound}
	close(ch)
	uc.EXPECT().GetParcelUpdates(mock.Anything, "p-1").Return((<-chan repository.Snapshot[*entity.Parcel])(ch))

	rec := doJSON(e, http.MethodGet, "/parcels/p-1/stream", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))

	events := strings.Split(strings.TrimSpace(rec.Body.String()), "\n\n")
	require.Len(t, events, 2)
	assert.True(t, strings.HasPrefix(events[0], "event: snapshot\ndata: "))
	assert.Contains(t, events[0], `"id":"p-1"`)
	assert.Contains(t, events[0], `"read_time":"2024-05-01T08:00:00Z"`)
	assert.Equal(t, "event: error\ndata: {\"code\":\"PARCEL_NOT_FOUND\",\"message\":\"Parcel not found\"}", events[1])
}

func TestParcelHandler_StreamSentParcelsUsesCaller(t *testing.T) {
	e, uc := newParcelTestHandler(t)

	ch := make(chan repository.Snapshot[[]*entity.Parcel], 1)
	ch <- repository.Snapshot[[]*entity.Parcel]{Data: []*entity.Parcel{}}
	close(ch)
	uc.EXPECT().GetSentParcels(mock.Anything, testCaller.UID).Return((<-chan repository.Snapshot[[]*entity.Parcel])(ch))

	rec := doJSON(e, http.MethodGet, "/parcels/sent", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestStreamSnapshots_StopsWhenClientLeaves(t *testing.T) {
	e := newTestEcho(nil)
	ch := make(chan repository.Snapshot[string])

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	done := make(chan error, 1)
	go func() { done <- streamSnapshots(c, ch) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("stream did not stop after the request context was cancelled")
	}
}

func TestToStreamError(t *testing.T) {
	assert.Equal(t, streamError{Code: "UNAUTHENTICATED", Message: "User must be authenticated"}, toStreamError(domainerrors.ErrUnauthenticated))
	assert.Equal(t, "INTERNAL", toStreamError(assert.AnError).Code)
}
