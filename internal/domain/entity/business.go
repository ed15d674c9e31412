// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// Business is the core merchant entity. It owns offers and carries the
// geographic position used by proximity queries.
type Business struct {
	ID           string    // Opaque unique identifier, assigned sequentially by the repository.
	Email        string    // Login identifier, unique across all businesses (case-sensitive).
	Name         string    // Display name shown to end users.
	PasswordHash string    // Salted bcrypt hash of the password. Plaintext is never stored.
	Phone        string    // Contact phone number.
	Address      string    // Human-readable postal address.
	Latitude     float64   // Geographic latitude in signed decimal degrees.
	Longitude    float64   // Geographic longitude in signed decimal degrees.
	CreatedAt    time.Time // Timestamp of when this business registered.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// HasLocation reports whether the business has set a real position.
// The (0,0) coordinate pair is reserved as the "no known location" sentinel
// and such businesses never participate in proximity matching.
func (b *Business) HasLocation() bool {
	return b.Latitude != 0 || b.Longitude != 0
}

// Position returns the business position as an orb point (lon, lat order).
func (b *Business) Position() orb.Point {
	return orb.Point{b.Longitude, b.Latitude}
}
