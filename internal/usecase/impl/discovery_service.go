package impl

import (
	"context"
	"sort"

	"promofinder/config"
	"promofinder/internal/domain/entity"
	domainerrors "promofinder/internal/domain/errors"
	"promofinder/internal/domain/repository"
	"promofinder/internal/errors"
	"promofinder/internal/geo"
	"promofinder/internal/usecase"

	"github.com/paulmach/orb"
)

type discoveryService struct {
	offerRepo    repository.OfferRepository
	businessRepo repository.BusinessRepository
	config       *config.Config
}

// NewDiscoveryService creates a new discovery service instance.
func NewDiscoveryService(
	offerRepo repository.OfferRepository,
	businessRepo repository.BusinessRepository,
	cfg *config.Config,
) usecase.DiscoveryUsecase {
	if cfg.Discovery == nil {
		cfg.Discovery = &config.DiscoveryConfig{
			DefaultRadiusMeters: 1000,
			MaxRadiusMeters:     50000,
			NearRadiusMeters:    100,
		}
	}

	return &discoveryService{
		offerRepo:    offerRepo,
		businessRepo: businessRepo,
		config:       cfg,
	}
}

// NearbyOffers returns active offers within radiusMeters of the given
// position, sorted ascending by distance.
//
// This is a linear scan over all active offers with no spatial index, which
// is fine at the scale this service targets.
func (s *discoveryService) NearbyOffers(ctx context.Context, lat, lng, radiusMeters float64) ([]*usecase.NearbyOffer, error) {
	if lat == 0 || lng == 0 {
		return nil, domainerrors.ErrInvalidLocation
	}

	if radiusMeters <= 0 {
		radiusMeters = s.config.Discovery.DefaultRadiusMeters
	}
	if radiusMeters > s.config.Discovery.MaxRadiusMeters {
		radiusMeters = s.config.Discovery.MaxRadiusMeters
	}

	offers, err := s.offerRepo.FindAllActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active offers")
	}

	userPosition := orb.Point{lng, lat}
	businessCache := make(map[string]*businessCacheEntry)

	matches := make([]*usecase.NearbyOffer, 0, len(offers))
	for _, offer := range offers {
		business, err := s.resolveBusiness(ctx, businessCache, offer.BusinessID)
		if err != nil {
			return nil, err
		}
		// Skip offers of unknown businesses and of businesses without a
		// real position; (0,0) means "no known location".
		if business == nil || !business.HasLocation() {
			continue
		}

		distance := geo.DistanceMeters(userPosition, business.Position())
		if distance > radiusMeters {
			continue
		}

		matches = append(matches, &usecase.NearbyOffer{
			Offer:          offer,
			Business:       business,
			DistanceMeters: distance,
		})
	}

	// Stable: ties keep store iteration order, which makes results
	// deterministic for equal distances.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].DistanceMeters < matches[j].DistanceMeters
	})

	return matches, nil
}

// ListBusinesses returns all businesses with a known location, each with its
// count of currently active offers.
func (s *discoveryService) ListBusinesses(ctx context.Context) ([]*usecase.BusinessListing, error) {
	businesses, err := s.businessRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find businesses")
	}

	activeCounts := make(map[string]int)
	offers, err := s.offerRepo.FindAllActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active offers")
	}
	for _, offer := range offers {
		activeCounts[offer.BusinessID]++
	}

	listings := make([]*usecase.BusinessListing, 0, len(businesses))
	for _, business := range businesses {
		if !business.HasLocation() {
			continue
		}

		listings = append(listings, &usecase.BusinessListing{
			Business:         business,
			ActiveOfferCount: activeCounts[business.ID],
		})
	}

	return listings, nil
}

// IsUserNearBusiness checks one business against the configured
// near-business radius.
func (s *discoveryService) IsUserNearBusiness(ctx context.Context, lat, lng float64, businessID string) (*usecase.ProximityResult, error) {
	if lat == 0 || lng == 0 {
		return nil, domainerrors.ErrInvalidLocation
	}

	business, err := s.businessRepo.FindByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by ID")
	}
	if !business.HasLocation() {
		return nil, domainerrors.ErrBusinessNotFound
	}

	userPosition := orb.Point{lng, lat}
	distance := geo.DistanceMeters(userPosition, business.Position())

	return &usecase.ProximityResult{
		Business:       business,
		DistanceMeters: distance,
		IsNearby:       distance <= s.config.Discovery.NearRadiusMeters,
	}, nil
}

type businessCacheEntry struct {
	business *entity.Business
}

// resolveBusiness memoizes business lookups within one query so several
// offers of the same business cost a single store read.
func (s *discoveryService) resolveBusiness(ctx context.Context, cache map[string]*businessCacheEntry, businessID string) (*entity.Business, error) {
	if entry, ok := cache[businessID]; ok {
		return entry.business, nil
	}

	business, err := s.businessRepo.FindByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			cache[businessID] = &businessCacheEntry{}

			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find business by ID")
	}

	cache[businessID] = &businessCacheEntry{business: business}

	return business, nil
}
