package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"parceltrack/config"
	"parceltrack/internal/domain/constants"
	"parceltrack/internal/domain/service"
	mockSvc "parceltrack/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.ParcelNotificationEvent {
	return &service.ParcelNotificationEvent{
		RequestID: "req-1",
		CallerID:  "u-alice",
		UserID:    "u-bob",
		Title:     "Parcel In Transit",
		Body:      "Your parcel is on its way",
		ParcelID:  "p-1",
	}
}

func TestLocalHTTPPublisher_PostsPushMessage(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, "", newDiscardLogger())
	require.NoError(t, publisher.PublishParcelNotification(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "p-1", received.Message.Attributes["parcel_id"])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var event service.ParcelNotificationEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, *testEvent(), event)
}

func TestLocalHTTPPublisher_SendsPushSecret(t *testing.T) {
	var secret string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		secret = r.Header.Get(constants.PushSecretHeader)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, "s3cret", newDiscardLogger())
	require.NoError(t, publisher.PublishParcelNotification(context.Background(), testEvent()))

	assert.Equal(t, "s3cret", secret)
}

func TestLocalHTTPPublisher_WorkerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, "", newDiscardLogger())
	assert.Error(t, publisher.PublishParcelNotification(context.Background(), testEvent()))
}

func TestNewEventPublisher_Selection(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	base := PublisherParams{Lc: lc, Ctx: context.Background(), Logger: newDiscardLogger()}

	base.Config = &config.Config{}
	publisher, err := NewEventPublisher(base)
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)

	base.Config = &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}}
	publisher, err = NewEventPublisher(base)
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)

	base.Config = &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}
	_, err = NewEventPublisher(base)
	assert.Error(t, err)

	base.Config = &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderDirect}}
	_, err = NewEventPublisher(base)
	assert.Error(t, err)

	direct := mockSvc.NewMockEventPublisher(t)
	base.Direct = direct
	publisher, err = NewEventPublisher(base)
	require.NoError(t, err)
	assert.Same(t, direct, publisher)

	base.Config = &config.Config{PubSub: &config.PubSubConfig{Provider: "kafka"}}
	_, err = NewEventPublisher(base)
	assert.Error(t, err)
}
