package maps

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"testing"

	"parceltrack/config"
	"parceltrack/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/mvt"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/maptile"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTile = maptile.At(orb.Point{121.5654, 25.0330}, 14)

// roadAcross returns points at the given fractions of the test tile, west to east on its middle row.
func roadAcross(fractions ...float64) orb.LineString {
	bound := testTile.Bound()
	lat := (bound.Min[1] + bound.Max[1]) / 2
	line := make(orb.LineString, 0, len(fractions))
	for _, f := range fractions {
		line = append(line, orb.Point{bound.Min[0] + (bound.Max[0]-bound.Min[0])*f, lat})
	}

	return line
}

func encodeRoadTile(t *testing.T, line orb.LineString, props geojson.Properties) []byte {
	t.Helper()

	feature := geojson.NewFeature(line.Clone())
	for k, v := range props {
		feature.Properties[k] = v
	}
	fc := geojson.NewFeatureCollection()
	fc.Append(feature)

	layers := mvt.Layers{mvt.NewLayer(defaultRoadLayer, fc)}
	layers.ProjectToTile(testTile)

	data, err := mvt.Marshal(layers)
	require.NoError(t, err)

	return data
}

func newTestRouter(data []byte, calls *atomic.Int32) *tileRouter {
	fetch := func(_ context.Context, path string) (int, []byte) {
		if path != "/roads/"+tileKey(testTile)+".mvt" {
			return http.StatusNotFound, nil
		}
		if calls != nil {
			calls.Add(1)
		}

		return http.StatusOK, data
	}

	return newTileRouterWithFetcher(fetch, "roads", &config.TilesConfig{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestTileRouter_DrivingRoute(t *testing.T) {
	line := roadAcross(0.3, 0.5, 0.7)
	router := newTestRouter(encodeRoadTile(t, line, geojson.Properties{"class": "primary"}), nil)

	origin := entity.GeoPointFromOrb(line[0])
	destination := entity.GeoPointFromOrb(line[2])

	points, err := router.DrivingRoute(context.Background(), origin, destination)

	require.NoError(t, err)
	require.Len(t, points, 5)
	assert.Equal(t, origin, points[0])
	assert.Equal(t, destination, points[4])
	assert.InDelta(t, line[1][0], points[2].Longitude, 1e-4)
	assert.InDelta(t, line[1][1], points[2].Latitude, 1e-4)
}

func TestTileRouter_DrivingRoute_OneWay(t *testing.T) {
	line := roadAcross(0.3, 0.7)
	router := newTestRouter(encodeRoadTile(t, line, geojson.Properties{"class": "secondary", "oneway": "yes"}), nil)

	forward, err := router.DrivingRoute(context.Background(), entity.GeoPointFromOrb(line[0]), entity.GeoPointFromOrb(line[1]))
	require.NoError(t, err)
	assert.NotEmpty(t, forward)

	backward, err := router.DrivingRoute(context.Background(), entity.GeoPointFromOrb(line[1]), entity.GeoPointFromOrb(line[0]))
	require.NoError(t, err)
	assert.NotNil(t, backward)
	assert.Empty(t, backward)
}

func TestTileRouter_DrivingRoute_SkipsFootways(t *testing.T) {
	line := roadAcross(0.3, 0.7)
	router := newTestRouter(encodeRoadTile(t, line, geojson.Properties{"class": "path"}), nil)

	points, err := router.DrivingRoute(context.Background(), entity.GeoPointFromOrb(line[0]), entity.GeoPointFromOrb(line[1]))

	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestTileRouter_DrivingRoute_EndpointOffNetwork(t *testing.T) {
	line := roadAcross(0.3, 0.7)
	router := newTestRouter(encodeRoadTile(t, line, geojson.Properties{"class": "primary"}), nil)

	corner := testTile.Bound().Max

	points, err := router.DrivingRoute(context.Background(), entity.GeoPointFromOrb(line[0]), entity.GeoPointFromOrb(corner))

	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestTileRouter_DrivingRoute_TooLong(t *testing.T) {
	router := newTestRouter(nil, nil)

	_, err := router.DrivingRoute(context.Background(),
		entity.GeoPoint{Latitude: 25.03, Longitude: 121.56},
		entity.GeoPoint{Latitude: 22.62, Longitude: 120.30},
	)

	assert.True(t, errors.Is(err, errRouteTooLong))
}

func TestTileRouter_CachesDecodedTiles(t *testing.T) {
	line := roadAcross(0.3, 0.7)
	var calls atomic.Int32
	router := newTestRouter(encodeRoadTile(t, line, geojson.Properties{"class": "primary"}), &calls)

	for range 3 {
		_, err := router.DrivingRoute(context.Background(), entity.GeoPointFromOrb(line[0]), entity.GeoPointFromOrb(line[1]))
		require.NoError(t, err)
	}

	assert.Equal(t, int32(1), calls.Load())
}

func TestTileRouter_Geocode(t *testing.T) {
	router := newTestRouter(nil, nil)

	_, err := router.Geocode(context.Background(), "1 Main St")

	assert.ErrorIs(t, err, errGeocodeUnsupported)
}

func TestNewDirectionsService_TilesRequireSource(t *testing.T) {
	_, err := NewDirectionsService(Params{
		Config: &config.Config{Maps: &config.MapsConfig{Provider: config.MapsProviderTiles}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	assert.Error(t, err)
}

func TestParseSourcePath(t *testing.T) {
	tests := []struct {
		source  string
		bucket  string
		tileset string
	}{
		{"/data/roads.pmtiles", "file:///data", "roads"},
		{"file:///srv/tiles/taiwan.pmtiles", "file:///srv/tiles", "taiwan"},
		{"https://cdn.example.com/tiles/roads.pmtiles", "https://cdn.example.com/tiles", "roads"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			bucket, tileset := parseSourcePath(tt.source)
			assert.Equal(t, tt.bucket, bucket)
			assert.Equal(t, tt.tileset, tileset)
		})
	}
}
