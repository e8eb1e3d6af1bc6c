package handler

import (
	"log/slog"
	"net/http"

	"parceltrack/internal/delivery/http/response"
	"parceltrack/internal/domain/entity"
	"parceltrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ShareHandlerParams holds dependencies for ShareHandler, injected by Fx.
type ShareHandlerParams struct {
	fx.In

	SharingUC usecase.SharingUsecase
	Logger    *slog.Logger
}

// ShareHandler holds dependencies for location sharing handlers
type ShareHandler struct {
	sharingUC usecase.SharingUsecase
	logger    *slog.Logger
}

// NewShareHandler is the constructor for ShareHandler
func NewShareHandler(params ShareHandlerParams) *ShareHandler {
	return &ShareHandler{
		sharingUC: params.SharingUC,
		logger:    params.Logger,
	}
}

// ShareLocationRequest represents a single-recipient share
type ShareLocationRequest struct {
	RecipientEmail  string `json:"recipient_email" validate:"required,email"`
	ExpirationHours int    `json:"expiration_hours" validate:"min=0"` // 0 means one day
}

// ShareBatchRequest represents a share with several recipients
type ShareBatchRequest struct {
	Recipients []string             `json:"recipients" validate:"required,min=1,dive,required"`
	Options    *entity.ShareOptions `json:"options,omitempty"`
}

// ShareLocation handles granting one recipient the parcel's location
func (h *ShareHandler) ShareLocation(c echo.Context) error {
	var req ShareLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid share input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	id, err := h.sharingUC.ShareLocation(c.Request().Context(), c.Param("id"), req.RecipientEmail, req.ExpirationHours)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": id}, "Location shared successfully")
}

// ShareWithMultiple handles granting several recipients at once
func (h *ShareHandler) ShareWithMultiple(c echo.Context) error {
	var req ShareBatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid share input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	options := entity.DefaultShareOptions()
	if req.Options != nil {
		options = *req.Options
	}

	ids, err := h.sharingUC.ShareParcelWithMultiple(c.Request().Context(), c.Param("id"), req.Recipients, options)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string][]string{"share_ids": ids}, "Parcel shared successfully")
}

// StopSharing handles revoking a share
func (h *ShareHandler) StopSharing(c echo.Context) error {
	if err := h.sharingUC.StopSharing(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Sharing stopped")
}

// StreamSharedLocations streams the caller's active shares
func (h *ShareHandler) StreamSharedLocations(c echo.Context) error {
	uid, err := callerUID(c)
	if err != nil {
		return err
	}

	return streamSnapshots(c, h.sharingUC.GetSharedLocations(c.Request().Context(), uid))
}
