package handler

import (
	"log/slog"
	"net/http"

	"parceltrack/internal/delivery/http/response"
	"parceltrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for user lookup handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// PushTokenRequest carries the caller's FCM registration token.
type PushTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// LookupUser resolves an email to a user ID, provisioning the account if needed.
func (h *UserHandler) LookupUser(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return response.BadRequest(c, "INVALID_INPUT", "email is required")
	}

	id, err := h.userUC.FindUserByEmail(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"user_id": id}, "")
}

// SearchUsers matches users by email prefix.
func (h *UserHandler) SearchUsers(c echo.Context) error {
	results, err := h.userUC.SearchUsers(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, results, "")
}

// GetUserEmail returns a user's email.
func (h *UserHandler) GetUserEmail(c echo.Context) error {
	email, err := h.userUC.GetUserEmail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"email": email}, "")
}

// UpdatePushToken stores the caller's device token.
func (h *UserHandler) UpdatePushToken(c echo.Context) error {
	var req PushTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid push token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	if err := h.userUC.UpdatePushToken(c.Request().Context(), req.Token); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Push token updated")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
