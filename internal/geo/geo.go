// Package geo provides the great-circle geodesy used by proximity queries.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// earthRadiusMeters is the mean earth radius of the spherical model.
const earthRadiusMeters = 6371000

// DistanceMeters computes the great-circle distance between two points using
// the haversine formula on a spherical earth. Points are orb points in
// (lon, lat) order with coordinates in decimal degrees.
//
// The function is pure and deterministic. Non-finite inputs propagate to the
// result; validating coordinates is the caller's responsibility.
func DistanceMeters(a, b orb.Point) float64 {
	lat1 := toRadians(a.Lat())
	lon1 := toRadians(a.Lon())
	lat2 := toRadians(b.Lat())
	lon2 := toRadians(b.Lon())

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Asin(math.Sqrt(h))

	return c * earthRadiusMeters
}

// IsWithin reports whether the two points lie within radiusMeters of each
// other. The boundary is inclusive.
func IsWithin(a, b orb.Point, radiusMeters float64) bool {
	return DistanceMeters(a, b) <= radiusMeters
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
