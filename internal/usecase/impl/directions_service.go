package impl

import (
	"context"
	"strings"

	"parceltrack/internal/domain/entity"
	domainerrors "parceltrack/internal/domain/errors"
	"parceltrack/internal/domain/service"
	"parceltrack/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

type directionsService struct {
	maps service.DirectionsService
}

// NewDirectionsService creates a new directions service instance
func NewDirectionsService(maps service.DirectionsService) usecase.DirectionsUsecase {
	return &directionsService{maps: maps}
}

// GetDirections returns the driving route with its length and bounding box.
func (s *directionsService) GetDirections(ctx context.Context, origin, destination entity.GeoPoint) (*entity.Route, error) {
	if !origin.Valid() || !destination.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("origin and destination must be valid coordinates")
	}

	points, err := s.maps.DrivingRoute(ctx, origin, destination)
	if err != nil {
		return nil, domainerrors.ErrDirectionsUnavailable.WrapMessage(err.Error())
	}

	return buildRoute(points), nil
}

func buildRoute(points []entity.GeoPoint) *entity.Route {
	route := &entity.Route{Points: points}
	if len(points) == 0 {
		route.Points = []entity.GeoPoint{}

		return route
	}

	line := make(orb.LineString, 0, len(points))
	for _, p := range points {
		line = append(line, p.Point())
	}

	bound := line.Bound()
	route.DistanceMeters = geo.Length(line)
	route.Bounds = &entity.Bounds{
		Southwest: entity.GeoPointFromOrb(bound.Min),
		Northeast: entity.GeoPointFromOrb(bound.Max),
	}

	return route
}

// Geocode resolves an address to a coordinate.
func (s *directionsService) Geocode(ctx context.Context, address string) (entity.GeoPoint, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return entity.GeoPoint{}, domainerrors.ErrValidationFailed.WithDetails("address is required")
	}

	point, err := s.maps.Geocode(ctx, address)
	if errors.Is(err, service.ErrNoGeocodeResult) {
		return entity.GeoPoint{}, domainerrors.ErrAddressNotFound
	}
	if err != nil {
		return entity.GeoPoint{}, domainerrors.ErrDirectionsUnavailable.WrapMessage(err.Error())
	}

	return point, nil
}
