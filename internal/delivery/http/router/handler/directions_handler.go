package handler

import (
	"net/http"
	"strconv"
	"strings"

	"parceltrack/internal/delivery/http/response"
	"parceltrack/internal/domain/entity"
	domainerrors "parceltrack/internal/domain/errors"
	"parceltrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DirectionsHandler serves route and geocoding lookups.
type DirectionsHandler struct {
	directionsUC usecase.DirectionsUsecase
}

func NewDirectionsHandler(directionsUC usecase.DirectionsUsecase) *DirectionsHandler {
	return &DirectionsHandler{directionsUC: directionsUC}
}

// GetDirections handles GET /directions?origin=lat,lng&destination=lat,lng.
func (h *DirectionsHandler) GetDirections(c echo.Context) error {
	origin, err := parseLatLng(c.QueryParam("origin"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "origin must be lat,lng")
	}
	destination, err := parseLatLng(c.QueryParam("destination"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "destination must be lat,lng")
	}

	route, err := h.directionsUC.GetDirections(c.Request().Context(), origin, destination)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, route, "")
}

func (h *DirectionsHandler) Geocode(c echo.Context) error {
	address := strings.TrimSpace(c.QueryParam("address"))
	if address == "" {
		return response.BadRequest(c, "INVALID_INPUT", "address is required")
	}

	point, err := h.directionsUC.Geocode(c.Request().Context(), address)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, point, "")
}

func parseLatLng(raw string) (entity.GeoPoint, error) {
	latRaw, lngRaw, ok := strings.Cut(raw, ",")
	if !ok {
		return entity.GeoPoint{}, domainerrors.ErrValidationFailed
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(latRaw), 64)
	if err != nil {
		return entity.GeoPoint{}, errors.WithStack(err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngRaw), 64)
	if err != nil {
		return entity.GeoPoint{}, errors.WithStack(err)
	}

	point := entity.GeoPoint{Latitude: lat, Longitude: lng}
	if !point.Valid() {
		return entity.GeoPoint{}, domainerrors.ErrValidationFailed
	}

	return point, nil
}
