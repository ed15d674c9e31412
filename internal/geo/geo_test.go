package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters_SamePointIsZero(t *testing.T) {
	points := []orb.Point{
		{0, 0},
		{121.5654, 25.033},
		{-73.9857, 40.7484},
		{179.9, -89.9},
	}

	for _, p := range points {
		assert.Zero(t, DistanceMeters(p, p))
	}
}

func TestDistanceMeters_Symmetry(t *testing.T) {
	a := orb.Point{121.5654, 25.033}  // Taipei
	b := orb.Point{139.6917, 35.6895} // Tokyo

	assert.Equal(t, DistanceMeters(a, b), DistanceMeters(b, a))
}

func TestDistanceMeters_OneDegreeOfLongitudeAtEquator(t *testing.T) {
	a := orb.Point{0, 0}
	b := orb.Point{1, 0}

	// One degree of arc on a 6,371 km sphere is ~111,195 m.
	assert.InDelta(t, 111195, DistanceMeters(a, b), 50)
}

func TestDistanceMeters_KnownCityPair(t *testing.T) {
	taipei := orb.Point{121.5654, 25.033}
	tokyo := orb.Point{139.6917, 35.6895}

	// Roughly 2,100 km; generous tolerance for the spherical model.
	assert.InDelta(t, 2100000, DistanceMeters(taipei, tokyo), 20000)
}

func TestDistanceMeters_NonFiniteCoordinatesPropagate(t *testing.T) {
	p := orb.Point{121.5654, 25.033}

	assert.True(t, math.IsNaN(DistanceMeters(orb.Point{math.NaN(), 25.033}, p)))
	assert.True(t, math.IsNaN(DistanceMeters(p, orb.Point{121.5654, math.NaN()})))
	assert.True(t, math.IsNaN(DistanceMeters(orb.Point{math.Inf(1), 0}, p)))
}

func TestIsWithin(t *testing.T) {
	a := orb.Point{0, 0}
	b := orb.Point{1, 0}
	d := DistanceMeters(a, b)

	assert.True(t, IsWithin(a, b, d))      // boundary is inclusive
	assert.True(t, IsWithin(a, b, d+1))
	assert.False(t, IsWithin(a, b, d-1))
}

func TestIsWithin_ZeroRadius(t *testing.T) {
	p := orb.Point{121.5654, 25.033}

	assert.True(t, IsWithin(p, p, 0))
	assert.False(t, IsWithin(p, orb.Point{121.5655, 25.033}, 0))
}
