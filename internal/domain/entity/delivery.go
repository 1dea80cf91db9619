// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/paulmach/orb"
)

// worldBound covers every valid longitude/latitude pair.
var worldBound = orb.Bound{Min: orb.Point{-180, -90}, Max: orb.Point{180, 90}}

// LatLong is the delivery target of an order. It is a value object stored
// inline on the order row and has no identity of its own.
type LatLong struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewLatLong creates a LatLong value.
func NewLatLong(latitude, longitude float64) LatLong {
	return LatLong{Latitude: latitude, Longitude: longitude}
}

// LatLongFromPoint converts an orb point (lon, lat order) into a LatLong.
func LatLongFromPoint(p orb.Point) LatLong {
	return LatLong{Latitude: p.Lat(), Longitude: p.Lon()}
}

// Point returns the location as an orb point.
func (l LatLong) Point() orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}

// IsValid reports whether the coordinates are within the world bounds.
func (l LatLong) IsValid() bool {
	return worldBound.Contains(l.Point())
}

// Address is the human-readable delivery address captured with an order.
type Address struct {
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	Region     string `json:"region"`
	PostalCode string `json:"postal_code"`
}
