package impl

import (
	"context"
	"testing"

	"promofinder/config"
	"promofinder/internal/domain/entity"
	domainerrors "promofinder/internal/domain/errors"
	"promofinder/internal/domain/repository"
	"promofinder/internal/infra/persistence/memory"
	"promofinder/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type discoveryFixture struct {
	svc          usecase.DiscoveryUsecase
	businessRepo repository.BusinessRepository
	offerRepo    repository.OfferRepository
}

func newDiscoveryFixture(t *testing.T) *discoveryFixture {
	t.Helper()

	businessRepo := memory.NewBusinessRepository()
	offerRepo := memory.NewOfferRepository()
	cfg := &config.Config{
		Discovery: &config.DiscoveryConfig{
			DefaultRadiusMeters: 1000,
			MaxRadiusMeters:     50000,
			NearRadiusMeters:    100,
		},
	}

	return &discoveryFixture{
		svc:          NewDiscoveryService(offerRepo, businessRepo, cfg),
		businessRepo: businessRepo,
		offerRepo:    offerRepo,
	}
}

func (f *discoveryFixture) addBusiness(t *testing.T, email string, lat, lng float64) *entity.Business {
	t.Helper()

	business := &entity.Business{Email: email, Name: email, Latitude: lat, Longitude: lng}
	require.NoError(t, f.businessRepo.Create(context.Background(), business))

	return business
}

func (f *discoveryFixture) addOffer(t *testing.T, businessID, title string, active bool) *entity.Offer {
	t.Helper()

	offer := &entity.Offer{
		BusinessID:         businessID,
		Title:              title,
		Description:        "desc",
		DiscountPercentage: 20,
		ValidUntil:         "2026-12-31",
		IsActive:           active,
	}
	require.NoError(t, f.offerRepo.Create(context.Background(), offer))

	return offer
}

func TestDiscoveryService_NearbyOffers_RadiusScenario(t *testing.T) {
	f := newDiscoveryFixture(t)
	ctx := context.Background()

	// 0.01 degrees of latitude is ~1,112 m.
	atUser := f.addBusiness(t, "close@example.com", 10.0, 10.0)
	farther := f.addBusiness(t, "far@example.com", 10.01, 10.0)
	f.addOffer(t, atUser.ID, "close-offer", true)
	f.addOffer(t, farther.ID, "far-offer", true)

	within1km, err := f.svc.NearbyOffers(ctx, 10.0, 10.0, 1000)
	require.NoError(t, err)
	require.Len(t, within1km, 1)
	assert.Equal(t, "close-offer", within1km[0].Offer.Title)
	assert.InDelta(t, 0, within1km[0].DistanceMeters, 0.01)

	within2km, err := f.svc.NearbyOffers(ctx, 10.0, 10.0, 2000)
	require.NoError(t, err)
	require.Len(t, within2km, 2)
	assert.Equal(t, "close-offer", within2km[0].Offer.Title)
	assert.Equal(t, "far-offer", within2km[1].Offer.Title)
	assert.InDelta(t, 1112, within2km[1].DistanceMeters, 10)
}

func TestDiscoveryService_NearbyOffers_SortedByDistance(t *testing.T) {
	f := newDiscoveryFixture(t)
	ctx := context.Background()

	// Insert out of distance order.
	far := f.addBusiness(t, "far@example.com", 10.02, 10.0)
	near := f.addBusiness(t, "near@example.com", 10.001, 10.0)
	mid := f.addBusiness(t, "mid@example.com", 10.01, 10.0)
	f.addOffer(t, far.ID, "far", true)
	f.addOffer(t, near.ID, "near", true)
	f.addOffer(t, mid.ID, "mid", true)

	matches, err := f.svc.NearbyOffers(ctx, 10.0, 10.0, 5000)
	require.NoError(t, err)
	require.Len(t, matches, 3)

	for i := 1; i < len(matches); i++ {
		assert.LessOrEqual(t, matches[i-1].DistanceMeters, matches[i].DistanceMeters)
	}
	assert.Equal(t, "near", matches[0].Offer.Title)
	assert.Equal(t, "mid", matches[1].Offer.Title)
	assert.Equal(t, "far", matches[2].Offer.Title)
}

func TestDiscoveryService_NearbyOffers_TiedDistancesKeepCreationOrder(t *testing.T) {
	f := newDiscoveryFixture(t)
	ctx := context.Background()

	// Two businesses at the same position, so their offers tie exactly.
	first := f.addBusiness(t, "first@example.com", 10.005, 10.0)
	second := f.addBusiness(t, "second@example.com", 10.005, 10.0)
	f.addOffer(t, first.ID, "first-offer", true)
	f.addOffer(t, second.ID, "second-offer", true)

	matches, err := f.svc.NearbyOffers(ctx, 10.0, 10.0, 5000)
	require.NoError(t, err)
	require.Len(t, matches, 2)

	// Ties keep the store's iteration order, which is creation order.
	assert.Equal(t, matches[0].DistanceMeters, matches[1].DistanceMeters)
	assert.Equal(t, "first-offer", matches[0].Offer.Title)
	assert.Equal(t, "second-offer", matches[1].Offer.Title)
}

func TestDiscoveryService_NearbyOffers_ExcludesInactive(t *testing.T) {
	f := newDiscoveryFixture(t)
	ctx := context.Background()

	business := f.addBusiness(t, "biz@example.com", 10.0, 10.0)
	f.addOffer(t, business.ID, "active", true)
	f.addOffer(t, business.ID, "inactive", false)

	matches, err := f.svc.NearbyOffers(ctx, 10.0, 10.0, 100000)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "active", matches[0].Offer.Title)
}

func TestDiscoveryService_NearbyOffers_ExcludesSentinelLocation(t *testing.T) {
	f := newDiscoveryFixture(t)
	ctx := context.Background()

	// (0,0) means "no known location"; its offers never match at any radius.
	unlocated := f.addBusiness(t, "nowhere@example.com", 0, 0)
	f.addOffer(t, unlocated.ID, "ghost", true)

	matches, err := f.svc.NearbyOffers(ctx, 0.001, 0.001, 50000)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestDiscoveryService_NearbyOffers_SkipsDanglingBusinessReference(t *testing.T) {
	f := newDiscoveryFixture(t)
	ctx := context.Background()

	// The store accepts offers whose business is gone; discovery skips them.
	f.addOffer(t, "999", "orphan", true)

	matches, err := f.svc.NearbyOffers(ctx, 10.0, 10.0, 50000)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestDiscoveryService_NearbyOffers_EmptyIsNotAnError(t *testing.T) {
	f := newDiscoveryFixture(t)

	matches, err := f.svc.NearbyOffers(context.Background(), 10.0, 10.0, 1000)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestDiscoveryService_NearbyOffers_RejectsSentinelQueryPosition(t *testing.T) {
	f := newDiscoveryFixture(t)
	ctx := context.Background()

	_, err := f.svc.NearbyOffers(ctx, 0, 10.0, 1000)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidLocation)

	_, err = f.svc.NearbyOffers(ctx, 10.0, 0, 1000)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidLocation)
}

func TestDiscoveryService_NearbyOffers_DefaultAndMaxRadius(t *testing.T) {
	f := newDiscoveryFixture(t)
	ctx := context.Background()

	near := f.addBusiness(t, "near@example.com", 10.001, 10.0) // ~111 m
	far := f.addBusiness(t, "far@example.com", 10.02, 10.0)    // ~2,224 m
	f.addOffer(t, near.ID, "near", true)
	f.addOffer(t, far.ID, "far", true)

	// radius <= 0 falls back to the configured 1000 m default.
	matches, err := f.svc.NearbyOffers(ctx, 10.0, 10.0, 0)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "near", matches[0].Offer.Title)

	// An absurd radius is clamped to the configured maximum.
	matches, err = f.svc.NearbyOffers(ctx, 10.0, 10.0, 1e12)
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestDiscoveryService_ListBusinesses(t *testing.T) {
	f := newDiscoveryFixture(t)
	ctx := context.Background()

	located := f.addBusiness(t, "located@example.com", 10.0, 10.0)
	unlocated := f.addBusiness(t, "nowhere@example.com", 0, 0)
	f.addOffer(t, located.ID, "one", true)
	f.addOffer(t, located.ID, "two", true)
	f.addOffer(t, located.ID, "paused", false)
	f.addOffer(t, unlocated.ID, "hidden", true)

	listings, err := f.svc.ListBusinesses(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, located.ID, listings[0].Business.ID)
	assert.Equal(t, 2, listings[0].ActiveOfferCount)
}

func TestDiscoveryService_IsUserNearBusiness(t *testing.T) {
	f := newDiscoveryFixture(t)
	ctx := context.Background()

	business := f.addBusiness(t, "biz@example.com", 10.0, 10.0)

	// ~55 m away, inside the 100 m near radius.
	result, err := f.svc.IsUserNearBusiness(ctx, 10.0005, 10.0, business.ID)
	require.NoError(t, err)
	assert.True(t, result.IsNearby)
	assert.InDelta(t, 55, result.DistanceMeters, 5)

	// ~1,112 m away, outside.
	result, err = f.svc.IsUserNearBusiness(ctx, 10.01, 10.0, business.ID)
	require.NoError(t, err)
	assert.False(t, result.IsNearby)
}

func TestDiscoveryService_IsUserNearBusiness_UnknownOrUnlocated(t *testing.T) {
	f := newDiscoveryFixture(t)
	ctx := context.Background()

	_, err := f.svc.IsUserNearBusiness(ctx, 10.0, 10.0, "999")
	assert.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)

	unlocated := f.addBusiness(t, "nowhere@example.com", 0, 0)
	_, err = f.svc.IsUserNearBusiness(ctx, 10.0, 10.0, unlocated.ID)
	assert.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
}
