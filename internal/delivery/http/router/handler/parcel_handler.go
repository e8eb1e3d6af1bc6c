// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "parceltrack/internal/delivery/context"
	"parceltrack/internal/delivery/http/response"
	"parceltrack/internal/domain/entity"
	domainerrors "parceltrack/internal/domain/errors"
	"parceltrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ParcelHandlerParams holds dependencies for ParcelHandler, injected by Fx.
type ParcelHandlerParams struct {
	fx.In

	ParcelUC usecase.ParcelUsecase
	Logger   *slog.Logger
}

// ParcelHandler holds dependencies for parcel-related handlers
type ParcelHandler struct {
	parcelUC usecase.ParcelUsecase
	logger   *slog.Logger
}

// NewParcelHandler is the constructor for ParcelHandler
func NewParcelHandler(params ParcelHandlerParams) *ParcelHandler {
	return &ParcelHandler{
		parcelUC: params.ParcelUC,
		logger:   params.Logger,
	}
}

// UpdateStatusRequest represents the request body for a status change
type UpdateStatusRequest struct {
	Status entity.ParcelStatus `json:"status" validate:"required"`
}

// UpdateLocationRequest represents the request body for moving a parcel
type UpdateLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// CreateParcel handles creating a parcel sent by the caller
func (h *ParcelHandler) CreateParcel(c echo.Context) error {
	var input usecase.CreateParcelInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid parcel input")
	}

	if err := c.Validate(&input); err != nil {
		return response.ValidationError(c, err)
	}

	id, err := h.parcelUC.CreateParcel(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": id}, "Parcel created successfully")
}

// GetParcel handles reading a parcel once
func (h *ParcelHandler) GetParcel(c echo.Context) error {
	parcel, err := h.parcelUC.GetParcel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, parcel, "")
}

// UpdateParcelStatus handles a status change
func (h *ParcelHandler) UpdateParcelStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	if err := h.parcelUC.UpdateParcelStatus(c.Request().Context(), c.Param("id"), req.Status); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Parcel status updated successfully")
}

// UpdateParcelLocation handles moving a parcel without recording history
func (h *ParcelHandler) UpdateParcelLocation(c echo.Context) error {
	var req UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	location := entity.GeoPoint{Latitude: req.Latitude, Longitude: req.Longitude}
	if err := h.parcelUC.UpdateParcelLocation(c.Request().Context(), c.Param("id"), location); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Parcel location updated successfully")
}

// AddLocationHistory handles appending a waypoint
func (h *ParcelHandler) AddLocationHistory(c echo.Context) error {
	var input usecase.AddLocationHistoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid location history input")
	}

	if err := c.Validate(&input); err != nil {
		return response.ValidationError(c, err)
	}

	id, err := h.parcelUC.AddLocationHistory(c.Request().Context(), c.Param("id"), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": id}, "Location history added successfully")
}

// StreamParcel streams the parcel document as it changes
func (h *ParcelHandler) StreamParcel(c echo.Context) error {
	return streamSnapshots(c, h.parcelUC.GetParcelUpdates(c.Request().Context(), c.Param("id")))
}

// StreamLocationHistory streams the parcel's waypoints, newest first
func (h *ParcelHandler) StreamLocationHistory(c echo.Context) error {
	return streamSnapshots(c, h.parcelUC.GetLocationHistory(c.Request().Context(), c.Param("id")))
}

// StreamSentParcels streams the parcels the caller sent
func (h *ParcelHandler) StreamSentParcels(c echo.Context) error {
	uid, err := callerUID(c)
	if err != nil {
		return err
	}

	return streamSnapshots(c, h.parcelUC.GetSentParcels(c.Request().Context(), uid))
}

// StreamReceivedParcels streams the parcels addressed to the caller
func (h *ParcelHandler) StreamReceivedParcels(c echo.Context) error {
	uid, err := callerUID(c)
	if err != nil {
		return err
	}

	return streamSnapshots(c, h.parcelUC.GetReceivedParcels(c.Request().Context(), uid))
}

// GetParcelQRCode renders the parcel label as a PNG
func (h *ParcelHandler) GetParcelQRCode(c echo.Context) error {
	png, err := h.parcelUC.GenerateParcelQRCode(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func callerUID(c echo.Context) (string, error) {
	caller := deliverycontext.GetCaller(c.Request().Context())
	if caller == nil {
		return "", domainerrors.ErrUnauthenticated
	}

	return caller.UID, nil
}
