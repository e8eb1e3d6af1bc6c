package maps

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	"parceltrack/config"
	"parceltrack/internal/domain/entity"
	"parceltrack/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
	"github.com/pkg/errors"
	"github.com/protomaps/go-pmtiles/pmtiles"
)

const (
	defaultRoadLayer = "transportation"
	defaultZoomLevel = 14
	defaultCacheSize = 64

	// maxSnapMeters bounds how far an endpoint may be from the road network.
	maxSnapMeters = 500.0
	// maxRouteTiles caps the area loaded for one route.
	maxRouteTiles = 256
	tilePadding   = 0.005
)

var (
	errGeocodeUnsupported = errors.New("geocoding is not available with the tiles provider")
	errRouteTooLong       = errors.New("route area exceeds the offline routing limit")
)

// tileFetcher returns the HTTP-like status and the raw tile bytes for a /{tileset}/{z}/{x}/{y}.mvt path.
type tileFetcher func(ctx context.Context, path string) (int, []byte)

// tileRouter computes driving routes offline from a PMTiles road archive.
type tileRouter struct {
	fetch     tileFetcher
	tileset   string
	zoom      maptile.Zoom
	parser    *mvtParser
	cacheSize int
	logger    *slog.Logger

	mu    sync.RWMutex
	cache map[maptile.Tile]*roadGraph
}

func newTileRouter(cfg *config.TilesConfig, logger *slog.Logger) (service.DirectionsService, error) {
	if cfg == nil || cfg.Source == "" {
		return nil, errors.New("maps.tiles.source is required for the tiles provider")
	}

	cacheSize := cfg.CacheSize
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}

	bucket, tileset := parseSourcePath(cfg.Source)

	server, err := pmtiles.NewServer(bucket, "", log.New(io.Discard, "", 0), cacheSize, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open PMTiles archive")
	}
	server.Start()

	fetch := func(ctx context.Context, path string) (int, []byte) {
		status, _, data := server.Get(ctx, path)

		return status, data
	}

	logger.Info("Offline tile routing enabled",
		slog.String("source", cfg.Source),
		slog.String("tileset", tileset),
	)

	return newTileRouterWithFetcher(fetch, tileset, cfg, logger), nil
}

func newTileRouterWithFetcher(fetch tileFetcher, tileset string, cfg *config.TilesConfig, logger *slog.Logger) *tileRouter {
	roadLayer := cfg.RoadLayer
	if roadLayer == "" {
		roadLayer = defaultRoadLayer
	}
	zoom := cfg.ZoomLevel
	if zoom <= 0 {
		zoom = defaultZoomLevel
	}
	cacheSize := cfg.CacheSize
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}

	return &tileRouter{
		fetch:     fetch,
		tileset:   tileset,
		zoom:      maptile.Zoom(zoom),
		parser:    newMVTParser(roadLayer),
		cacheSize: cacheSize,
		logger:    logger,
		cache:     make(map[maptile.Tile]*roadGraph),
	}
}

// parseSourcePath splits a source into the bucket the PMTiles server opens and the tileset name.
//   - "/data/roads.pmtiles" -> ("file:///data", "roads")
//   - "https://cdn.example.com/tiles/roads.pmtiles" -> ("https://cdn.example.com/tiles", "roads")
func parseSourcePath(source string) (string, string) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		if idx := strings.LastIndex(source, "/"); idx > strings.Index(source, "://")+2 {
			return source[:idx], strings.TrimSuffix(source[idx+1:], ".pmtiles")
		}
	}

	path := strings.TrimPrefix(source, "file://")

	return "file://" + filepath.Dir(path), strings.TrimSuffix(filepath.Base(path), ".pmtiles")
}

// DrivingRoute snaps both endpoints onto the road graph and returns the fastest path.
// Endpoints off the network or disconnected yield an empty slice.
func (r *tileRouter) DrivingRoute(ctx context.Context, origin, destination entity.GeoPoint) ([]entity.GeoPoint, error) {
	graph, err := r.graphFor(ctx, origin.Point(), destination.Point())
	if err != nil {
		return nil, err
	}

	source, sourceDist, ok := graph.nearest(origin.Point())
	if !ok || sourceDist > maxSnapMeters {
		return []entity.GeoPoint{}, nil
	}
	target, targetDist, ok := graph.nearest(destination.Point())
	if !ok || targetDist > maxSnapMeters {
		return []entity.GeoPoint{}, nil
	}

	path, found := graph.shortestPath(source, target)
	if !found {
		return []entity.GeoPoint{}, nil
	}

	points := make([]entity.GeoPoint, 0, len(path)+2)
	points = append(points, origin)
	for _, p := range path {
		points = append(points, entity.GeoPointFromOrb(p))
	}
	points = append(points, destination)

	return points, nil
}

func (r *tileRouter) Geocode(context.Context, string) (entity.GeoPoint, error) {
	return entity.GeoPoint{}, errGeocodeUnsupported
}

func (r *tileRouter) graphFor(ctx context.Context, a, b orb.Point) (*roadGraph, error) {
	bound := orb.MultiPoint{a, b}.Bound().Pad(tilePadding)

	minTile := maptile.At(orb.Point{bound.Min[0], bound.Max[1]}, r.zoom)
	maxTile := maptile.At(orb.Point{bound.Max[0], bound.Min[1]}, r.zoom)

	count := (int(maxTile.X) - int(minTile.X) + 1) * (int(maxTile.Y) - int(minTile.Y) + 1)
	if count > maxRouteTiles {
		return nil, errors.WithStack(errRouteTooLong)
	}

	graph := newRoadGraph()
	for x := minTile.X; x <= maxTile.X; x++ {
		for y := minTile.Y; y <= maxTile.Y; y++ {
			if err := ctx.Err(); err != nil {
				return nil, errors.WithStack(err)
			}

			tile := maptile.Tile{X: x, Y: y, Z: r.zoom}
			tileGraph, err := r.loadTile(ctx, tile)
			if err != nil {
				r.logger.Debug("Skipping road tile",
					slog.String("tile", tileKey(tile)),
					slog.Any("error", err),
				)

				continue
			}
			graph.merge(tileGraph)
		}
	}

	return graph, nil
}

func (r *tileRouter) loadTile(ctx context.Context, tile maptile.Tile) (*roadGraph, error) {
	r.mu.RLock()
	cached, ok := r.cache[tile]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	status, data := r.fetch(ctx, "/"+r.tileset+"/"+tileKey(tile)+".mvt")
	if status != http.StatusOK {
		return nil, errors.Errorf("tile fetch returned status %d", status)
	}

	segments, err := r.parser.parseTile(data, tile)
	if err != nil {
		return nil, err
	}

	graph := newRoadGraph()
	for i := range segments {
		graph.addSegment(&segments[i])
	}

	r.mu.Lock()
	if len(r.cache) >= r.cacheSize {
		clear(r.cache)
	}
	r.cache[tile] = graph
	r.mu.Unlock()

	return graph, nil
}

func tileKey(tile maptile.Tile) string {
	return fmt.Sprintf("%d/%d/%d", tile.Z, tile.X, tile.Y)
}
