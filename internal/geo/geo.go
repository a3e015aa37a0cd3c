// Package geo implements great-circle distance and the bounding-box
// pre-filter used by proximity queries.
package geo

import "math"

// EarthRadiusKm is the mean Earth radius used by the Haversine formula.
const EarthRadiusKm = 6371.0

// BoxRangeDeg is the half-width of the rectangular pre-filter applied at the
// storage layer (±0.02° of latitude/longitude, roughly 2.2 km). It only
// shrinks the candidate set; the exact distance cutoff is authoritative.
const BoxRangeDeg = 0.02

// PostRadiusKm is the fixed discovery radius for the post feed and the
// notification poll, regardless of any caller-supplied radius.
const PostRadiusKm = 1.0

// Point is a WGS84 coordinate pair.
type Point struct {
	Lat float64
	Lng float64
}

// DistanceKm returns the Haversine great-circle distance between two points
// in kilometers.
func DistanceKm(a, b Point) float64 {
	dLat := toRad(b.Lat - a.Lat)
	dLng := toRad(b.Lng - a.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))*sinLng*sinLng
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// WithinKm reports whether b lies within radiusKm of a. The boundary is
// inclusive: a point at exactly radiusKm is within.
func WithinKm(a, b Point, radiusKm float64) bool {
	return DistanceKm(a, b) <= radiusKm
}

// Box is a rectangular latitude/longitude range.
type Box struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

// BoundingBox returns the fixed ±BoxRangeDeg rectangle around center. Any
// indexed range query over this box is a valid pre-filter as long as the
// exact distance post-filter runs afterwards.
func BoundingBox(center Point) Box {
	return Box{
		MinLat: center.Lat - BoxRangeDeg,
		MaxLat: center.Lat + BoxRangeDeg,
		MinLng: center.Lng - BoxRangeDeg,
		MaxLng: center.Lng + BoxRangeDeg,
	}
}

func toRad(deg float64) float64 {
	return deg * (math.Pi / 180)
}
