package maps

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/mvt"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/maptile"
	"github.com/pkg/errors"
)

const defaultSpeedKmh = 30.0

// roadSpeeds holds default speeds in km/h per OpenMapTiles road class.
var roadSpeeds = map[string]float64{
	"motorway":       110.0,
	"motorway_link":  80.0,
	"trunk":          80.0,
	"trunk_link":     60.0,
	"primary":        60.0,
	"primary_link":   50.0,
	"secondary":      50.0,
	"secondary_link": 40.0,
	"tertiary":       40.0,
	"tertiary_link":  30.0,
	"minor":          30.0,
	"residential":    30.0,
	"living_street":  20.0,
	"service":        20.0,
	"unclassified":   30.0,
	"road":           30.0,
}

// nonDrivableClasses lists road classes a car cannot use.
var nonDrivableClasses = map[string]bool{
	"path":       true,
	"footway":    true,
	"cycleway":   true,
	"pedestrian": true,
	"steps":      true,
	"track":      true,
	"rail":       true,
	"transit":    true,
	"ferry":      true,
}

type roadSegment struct {
	Points   []orb.Point
	Class    string
	SpeedKmh float64
	OneWay   bool
}

type mvtParser struct {
	roadLayer string
}

func newMVTParser(roadLayer string) *mvtParser {
	return &mvtParser{roadLayer: roadLayer}
}

// parseTile decodes a (possibly gzipped) vector tile and returns its drivable road segments in WGS84.
func (p *mvtParser) parseTile(data []byte, tile maptile.Tile) ([]roadSegment, error) {
	layers, err := mvt.UnmarshalGzipped(data)
	if err != nil {
		layers, err = mvt.Unmarshal(data)
		if err != nil {
			return nil, errors.WithStack(err)
		}
	}

	var roads *mvt.Layer
	for _, layer := range layers {
		if layer.Name == p.roadLayer {
			roads = layer

			break
		}
	}
	if roads == nil {
		return []roadSegment{}, nil
	}

	roads.ProjectToWGS84(tile)

	segments := make([]roadSegment, 0, len(roads.Features))
	for _, feature := range roads.Features {
		if segment, ok := toRoadSegment(feature); ok {
			segments = append(segments, segment)
		}
	}

	return segments, nil
}

func toRoadSegment(feature *geojson.Feature) (roadSegment, bool) {
	var points []orb.Point
	switch geom := feature.Geometry.(type) {
	case orb.LineString:
		points = append(points, geom...)
	case orb.MultiLineString:
		for _, ls := range geom {
			points = append(points, ls...)
		}
	default:
		return roadSegment{}, false
	}
	if len(points) < 2 {
		return roadSegment{}, false
	}

	class := stringProperty(feature, "class", "highway", "type")
	if nonDrivableClasses[class] {
		return roadSegment{}, false
	}

	speed, ok := roadSpeeds[class]
	if !ok {
		speed = defaultSpeedKmh
	}

	return roadSegment{
		Points:   points,
		Class:    class,
		SpeedKmh: speed,
		OneWay:   boolProperty(feature, "oneway"),
	}, true
}

func stringProperty(feature *geojson.Feature, keys ...string) string {
	for _, key := range keys {
		if str, ok := feature.Properties[key].(string); ok {
			return str
		}
	}

	return ""
}

func boolProperty(feature *geojson.Feature, key string) bool {
	switch value := feature.Properties[key].(type) {
	case bool:
		return value
	case int:
		return value != 0
	case int64:
		return value != 0
	case float64:
		return value != 0
	case string:
		return value == "yes" || value == "true" || value == "1"
	}

	return false
}
