package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "parceltrack/internal/delivery/context"
	"parceltrack/internal/domain/entity"
	domainerrors "parceltrack/internal/domain/errors"
	"parceltrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Callable function status codes and the HTTP status each one is sent with.
const (
	statusUnauthenticated    = "UNAUTHENTICATED"
	statusFailedPrecondition = "FAILED_PRECONDITION"
	statusInvalidArgument    = "INVALID_ARGUMENT"
	statusInternal           = "INTERNAL"
)

var callableHTTPStatus = map[string]int{
	statusUnauthenticated:    http.StatusUnauthorized,
	statusFailedPrecondition: http.StatusBadRequest,
	statusInvalidArgument:    http.StatusBadRequest,
	statusInternal:           http.StatusInternalServerError,
}

// FunctionHandlerParams holds dependencies for FunctionHandler, injected by Fx.
type FunctionHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// FunctionHandler exposes server functions over the callable protocol:
// the request is {"data": ...}, the reply {"result": ...} or {"error": {"status", "message"}}.
type FunctionHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

func NewFunctionHandler(params FunctionHandlerParams) *FunctionHandler {
	return &FunctionHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

type callableRequest[T any] struct {
	Data T `json:"data"`
}

type callableError struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// SendParcelNotificationData is the payload mobile clients send. Keys are camelCase on the wire.
type SendParcelNotificationData struct {
	UserID   string `json:"userId"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	ParcelID string `json:"parcelId"`
}

// SendParcelNotification handles POST /functions/sendParcelNotification.
func (h *FunctionHandler) SendParcelNotification(c echo.Context) error {
	ctx := c.Request().Context()
	if deliverycontext.GetCaller(ctx) == nil {
		return h.fail(c, statusUnauthenticated, "User must be authenticated")
	}

	var req callableRequest[SendParcelNotificationData]
	if err := c.Bind(&req); err != nil {
		return h.fail(c, statusInvalidArgument, "Request body must be {\"data\": {...}}")
	}

	result, err := h.notificationUC.SendParcelNotification(ctx, &entity.ParcelNotification{
		UserID:   req.Data.UserID,
		Title:    req.Data.Title,
		Body:     req.Data.Body,
		ParcelID: req.Data.ParcelID,
	})
	if err != nil {
		return h.failWith(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{"result": result})
}

func (h *FunctionHandler) failWith(c echo.Context, err error) error {
	appErr, ok := domainerrors.AsAppError(err)
	if !ok {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Error("Callable function failed", slog.Any("error", err))

		return h.fail(c, statusInternal, domainerrors.ErrInternalError.Message())
	}

	switch appErr.ErrorCode() {
	case domainerrors.ErrUnauthenticated.ErrorCode():
		return h.fail(c, statusUnauthenticated, appErr.Message())
	case domainerrors.ErrFailedPrecondition.ErrorCode():
		return h.fail(c, statusFailedPrecondition, appErr.Message())
	case domainerrors.ErrValidationFailed.ErrorCode():
		return h.fail(c, statusInvalidArgument, appErr.Details())
	default:
		return h.fail(c, statusInternal, appErr.Message())
	}
}

func (h *FunctionHandler) fail(c echo.Context, status, message string) error {
	return c.JSON(callableHTTPStatus[status], map[string]callableError{
		"error": {Status: status, Message: message},
	})
}
