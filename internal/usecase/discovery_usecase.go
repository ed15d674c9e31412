package usecase

import (
	"context"

	"promofinder/internal/domain/entity"
)

// NearbyOffer is one proximity query match: an active offer, its owning
// business and the great-circle distance from the queried position.
type NearbyOffer struct {
	Offer          *entity.Offer
	Business       *entity.Business
	DistanceMeters float64
}

// BusinessListing is one entry of the public businesses listing.
type BusinessListing struct {
	Business         *entity.Business
	ActiveOfferCount int
}

// ProximityResult reports whether a position lies within the near-business
// radius of one business.
type ProximityResult struct {
	Business       *entity.Business
	DistanceMeters float64
	IsNearby       bool
}

// DiscoveryUsecase defines the read-only discovery queries available to end
// users without authentication.
type DiscoveryUsecase interface {
	// NearbyOffers returns every active offer whose owning business lies
	// within radiusMeters of the given position, sorted ascending by
	// distance. Businesses without a known location never match. An empty
	// result is not an error.
	NearbyOffers(ctx context.Context, lat, lng, radiusMeters float64) ([]*NearbyOffer, error)

	// ListBusinesses returns all businesses with a known location, each with
	// its count of currently active offers.
	ListBusinesses(ctx context.Context) ([]*BusinessListing, error)

	// IsUserNearBusiness checks one business against the configured
	// near-business radius.
	IsUserNearBusiness(ctx context.Context, lat, lng float64, businessID string) (*ProximityResult, error)
}
