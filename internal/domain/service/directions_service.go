package service

import (
	"context"
	"errors"

	"parceltrack/internal/domain/entity"
)

// ErrNoGeocodeResult is returned when an address does not resolve to a coordinate.
var ErrNoGeocodeResult = errors.New("no geocode result")

// DirectionsService wraps the external maps provider.
type DirectionsService interface {
	// DrivingRoute returns the decoded overview polyline of the first driving route.
	// An empty slice means the provider found no route.
	DrivingRoute(ctx context.Context, origin, destination entity.GeoPoint) ([]entity.GeoPoint, error)

	// Geocode resolves a postal address to its first matching coordinate.
	Geocode(ctx context.Context, address string) (entity.GeoPoint, error)
}
