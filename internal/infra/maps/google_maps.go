// Package maps adapts the Google Maps Platform Directions and Geocoding APIs
// and an offline router over PMTiles road archives.
package maps

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"parceltrack/config"
	"parceltrack/internal/domain/entity"
	"parceltrack/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	gmaps "googlemaps.github.io/maps"
)

const (
	statusZeroResults     = "ZERO_RESULTS"
	defaultRequestTimeout = 10 * time.Second
)

var errNotConfigured = errors.New("maps.apiKey is not configured")

type googleMaps struct {
	client  *gmaps.Client
	timeout time.Duration
}

// Params defines the dependencies of the maps adapter.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewDirectionsService creates the configured maps adapter. The Google adapter without an API key fails every call.
func NewDirectionsService(params Params) (service.DirectionsService, error) {
	cfg := params.Config.Maps
	if cfg != nil && cfg.Provider == config.MapsProviderTiles {
		return newTileRouter(cfg.Tiles, params.Logger)
	}

	if cfg == nil || cfg.APIKey == "" {
		params.Logger.Warn("Google Maps API key not configured, directions are disabled")

		return unconfigured{}, nil
	}

	opts := []gmaps.ClientOption{gmaps.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, gmaps.WithBaseURL(cfg.BaseURL))
	}

	client, err := gmaps.NewClient(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Google Maps client")
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &googleMaps{client: client, timeout: timeout}, nil
}

// DrivingRoute decodes the overview polyline of the first driving route. No route yields an empty slice.
func (m *googleMaps) DrivingRoute(ctx context.Context, origin, destination entity.GeoPoint) ([]entity.GeoPoint, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	routes, _, err := m.client.Directions(ctx, &gmaps.DirectionsRequest{
		Origin:      toLatLng(origin).String(),
		Destination: toLatLng(destination).String(),
		Mode:        gmaps.TravelModeDriving,
	})
	if isZeroResults(err) {
		return []entity.GeoPoint{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "directions request failed")
	}
	if len(routes) == 0 {
		return []entity.GeoPoint{}, nil
	}

	decoded, err := routes[0].OverviewPolyline.Decode()
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode route polyline")
	}

	points := make([]entity.GeoPoint, 0, len(decoded))
	for _, ll := range decoded {
		points = append(points, entity.GeoPoint{Latitude: ll.Lat, Longitude: ll.Lng})
	}

	return points, nil
}

// Geocode returns the location of the first result.
func (m *googleMaps) Geocode(ctx context.Context, address string) (entity.GeoPoint, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	results, err := m.client.Geocode(ctx, &gmaps.GeocodingRequest{Address: address})
	if isZeroResults(err) {
		return entity.GeoPoint{}, service.ErrNoGeocodeResult
	}
	if err != nil {
		return entity.GeoPoint{}, errors.Wrap(err, "geocoding request failed")
	}
	if len(results) == 0 {
		return entity.GeoPoint{}, service.ErrNoGeocodeResult
	}

	loc := results[0].Geometry.Location

	return entity.GeoPoint{Latitude: loc.Lat, Longitude: loc.Lng}, nil
}

func toLatLng(p entity.GeoPoint) *gmaps.LatLng {
	return &gmaps.LatLng{Lat: p.Latitude, Lng: p.Longitude}
}

func isZeroResults(err error) bool {
	return err != nil && strings.Contains(err.Error(), statusZeroResults)
}

type unconfigured struct{}

func (unconfigured) DrivingRoute(context.Context, entity.GeoPoint, entity.GeoPoint) ([]entity.GeoPoint, error) {
	return nil, errNotConfigured
}

func (unconfigured) Geocode(context.Context, string) (entity.GeoPoint, error) {
	return entity.GeoPoint{}, errNotConfigured
}
