// Package handler holds the notifier worker's Pub/Sub push handler.
package handler

import (
	"context"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"parceltrack/config"
	deliverycontext "parceltrack/internal/delivery/context"
	"parceltrack/internal/domain/constants"
	"parceltrack/internal/domain/entity"
	domainerrors "parceltrack/internal/domain/errors"
	"parceltrack/internal/domain/service"
	"parceltrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler turns parcel notification events into push messages.
type PushHandler struct {
	verifyPushAuth bool
	pushAudience   string
	pushSecret     string
	validateToken  tokenValidator
	logger         *slog.Logger
	notifications  usecase.NotificationUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config        *config.Config
	Logger        *slog.Logger
	Notifications usecase.NotificationUsecase
}

// NewPushHandler creates a new Pub/Sub push handler.
// Outside develop every push must be authenticated: by an OIDC token for the google provider,
// by pubsub.pushSecret for the local one. Any other setup is refused.
func NewPushHandler(params PushHandlerParams) (*PushHandler, error) {
	h := &PushHandler{
		validateToken: idtoken.Validate,
		logger:        params.Logger,
		notifications: params.Notifications,
	}

	pubsubCfg := params.Config.PubSub
	if pubsubCfg == nil {
		pubsubCfg = &config.PubSubConfig{}
	}
	h.pushAudience = pubsubCfg.PushAudience
	h.pushSecret = pubsubCfg.PushSecret

	if params.Config.Env.Env == constants.EnvDevelop {
		return h, nil
	}

	switch {
	case pubsubCfg.Provider == constants.PubSubProviderGoogle:
		h.verifyPushAuth = true
	case pubsubCfg.Provider == constants.PubSubProviderLocal && pubsubCfg.PushSecret != "":
	default:
		return nil, errors.Errorf("pubsub provider %q cannot authenticate pushes in %q; use google or set pubsub.pushSecret",
			pubsubCfg.Provider, params.Config.Env.Env)
	}

	return h, nil
}

// HandlePush acknowledges with 200 unless the failure is worth a redelivery, which gets 503.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	if h.pushSecret != "" && !h.validSecret(c.Request()) {
		h.logger.Warn("[Worker] Push secret mismatch")

		return c.NoContent(http.StatusUnauthorized)
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.ParcelNotificationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse notification event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)
	if event.CallerID != "" {
		ctx = deliverycontext.WithCaller(ctx, &entity.Caller{UID: event.CallerID, Email: event.CallerEmail})
	}

	reqLogger.Info("[Worker] Processing parcel notification",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("parcel_id", event.ParcelID),
		slog.String("user_id", event.UserID),
	)

	result, err := h.notifications.SendParcelNotification(ctx, &entity.ParcelNotification{
		UserID:   event.UserID,
		Title:    event.Title,
		Body:     event.Body,
		ParcelID: event.ParcelID,
	})
	if err != nil {
		retryable := isRetryable(err)
		reqLogger.Error("[Worker] Failed to send parcel notification",
			slog.String("parcel_id", event.ParcelID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Parcel notification processed",
		slog.String("parcel_id", event.ParcelID),
		slog.Bool("skipped", result.Skipped),
	)

	return c.NoContent(http.StatusOK)
}

// isRetryable reports whether a redelivery could succeed. Rejections by business rules cannot.
func isRetryable(err error) bool {
	appErr, ok := domainerrors.AsAppError(err)
	if !ok {
		return true
	}

	return appErr.HTTPCode() >= http.StatusInternalServerError
}

// extractRequestID prefers message attributes, then the event, then the request context.
func extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.ParcelNotificationEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

func (h *PushHandler) validSecret(req *http.Request) bool {
	got := req.Header.Get(constants.PushSecretHeader)

	return subtle.ConstantTimeCompare([]byte(got), []byte(h.pushSecret)) == 1
}

// verifyPubSubToken verifies the OIDC token Pub/Sub attaches to authenticated push requests.
// Without a configured audience the endpoint URL is expected.
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return errors.New("invalid authorization header format")
	}

	audience := h.pushAudience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
