package usecase

import (
	"context"

	"parceltrack/internal/domain/entity"
)

// DirectionsUsecase defines map lookups
type DirectionsUsecase interface {
	// GetDirections returns the driving route; an empty route when none exists.
	GetDirections(ctx context.Context, origin, destination entity.GeoPoint) (*entity.Route, error)
	Geocode(ctx context.Context, address string) (entity.GeoPoint, error)
}
