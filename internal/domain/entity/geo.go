package entity

import (
	"github.com/paulmach/orb"
)

// GeoPoint is a WGS84 coordinate.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the point lies within coordinate bounds.
func (p GeoPoint) Valid() bool {
	return p.Latitude >= -90 && p.Latitude <= 90 && p.Longitude >= -180 && p.Longitude <= 180
}

// Point converts to an orb point (longitude first).
func (p GeoPoint) Point() orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}

// GeoPointFromOrb converts an orb point back to a GeoPoint.
func GeoPointFromOrb(pt orb.Point) GeoPoint {
	return GeoPoint{Latitude: pt.Lat(), Longitude: pt.Lon()}
}

// Bounds is the smallest box containing a set of points.
type Bounds struct {
	Southwest GeoPoint `json:"southwest"`
	Northeast GeoPoint `json:"northeast"`
}

// Route is a driving path between two points.
type Route struct {
	Points         []GeoPoint `json:"points"`
	DistanceMeters float64    `json:"distance_meters"`
	Bounds         *Bounds    `json:"bounds,omitempty"` // nil when Points is empty
}
