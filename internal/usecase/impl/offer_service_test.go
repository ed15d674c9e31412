package impl

import (
	"context"
	"testing"

	"promofinder/internal/domain/entity"
	domainerrors "promofinder/internal/domain/errors"
	"promofinder/internal/domain/repository"
	"promofinder/internal/infra/persistence/memory"
	"promofinder/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type offerFixture struct {
	svc          usecase.OfferUsecase
	businessRepo repository.BusinessRepository
	offerRepo    repository.OfferRepository
	ownerID      string
	otherID      string
}

func newOfferFixture(t *testing.T) *offerFixture {
	t.Helper()
	ctx := context.Background()

	businessRepo := memory.NewBusinessRepository()
	offerRepo := memory.NewOfferRepository()

	owner := &entity.Business{Email: "owner@example.com", Name: "Owner"}
	require.NoError(t, businessRepo.Create(ctx, owner))
	other := &entity.Business{Email: "other@example.com", Name: "Other"}
	require.NoError(t, businessRepo.Create(ctx, other))

	return &offerFixture{
		svc:          NewOfferService(offerRepo, businessRepo),
		businessRepo: businessRepo,
		offerRepo:    offerRepo,
		ownerID:      owner.ID,
		otherID:      other.ID,
	}
}

func createInput() *usecase.CreateOfferInput {
	return &usecase.CreateOfferInput{
		Title:              "Taco Tuesday",
		Description:        "two for one",
		DiscountPercentage: 50,
		ValidUntil:         "2026-12-31",
	}
}

func TestOfferService_CreateAndGetRoundTrip(t *testing.T) {
	f := newOfferFixture(t)
	ctx := context.Background()

	offer, err := f.svc.Create(ctx, f.ownerID, createInput())
	require.NoError(t, err)
	assert.NotEmpty(t, offer.ID)
	assert.True(t, offer.IsActive, "new offers start active")

	found, err := f.svc.Get(ctx, f.ownerID, offer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Taco Tuesday", found.Title)
	assert.Equal(t, "two for one", found.Description)
	assert.Equal(t, 50, found.DiscountPercentage)
	assert.Equal(t, "2026-12-31", found.ValidUntil)
	assert.Equal(t, f.ownerID, found.BusinessID)
}

func TestOfferService_Create_DiscountOutOfRange(t *testing.T) {
	f := newOfferFixture(t)
	ctx := context.Background()

	for _, discount := range []int{0, -5, 91, 95} {
		input := createInput()
		input.DiscountPercentage = discount

		_, err := f.svc.Create(ctx, f.ownerID, input)
		require.Error(t, err, "discount %d must be rejected", discount)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
	}

	// Boundary values are accepted.
	for _, discount := range []int{1, 90} {
		input := createInput()
		input.DiscountPercentage = discount

		_, err := f.svc.Create(ctx, f.ownerID, input)
		assert.NoError(t, err)
	}
}

func TestOfferService_Create_MissingFields(t *testing.T) {
	f := newOfferFixture(t)

	input := createInput()
	input.Title = "  "
	input.ValidUntil = ""

	_, err := f.svc.Create(context.Background(), f.ownerID, input)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "title")
	assert.Contains(t, appErr.Details(), "valid_until")
}

func TestOfferService_Create_UnknownBusiness(t *testing.T) {
	f := newOfferFixture(t)

	_, err := f.svc.Create(context.Background(), "999", createInput())
	assert.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
}

func TestOfferService_StoreDoesNotRevalidateDiscount(t *testing.T) {
	// Documented responsibility split: the range check lives in the usecase
	// layer; a direct store write with an out-of-range discount is accepted.
	f := newOfferFixture(t)

	offer := &entity.Offer{
		BusinessID:         f.ownerID,
		Title:              "direct",
		Description:        "store-level write",
		DiscountPercentage: 95,
		ValidUntil:         "2026-12-31",
		IsActive:           true,
	}
	require.NoError(t, f.offerRepo.Create(context.Background(), offer))
}

func TestOfferService_Update_PartialLeavesOtherFieldsUntouched(t *testing.T) {
	f := newOfferFixture(t)
	ctx := context.Background()

	offer, err := f.svc.Create(ctx, f.ownerID, createInput())
	require.NoError(t, err)

	newTitle := "Taco Wednesday"
	updated, err := f.svc.Update(ctx, f.ownerID, offer.ID, &usecase.UpdateOfferInput{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "Taco Wednesday", updated.Title)
	assert.Equal(t, "two for one", updated.Description)
	assert.Equal(t, 50, updated.DiscountPercentage)
	assert.Equal(t, "2026-12-31", updated.ValidUntil)
	assert.True(t, updated.IsActive)
}

func TestOfferService_Update_Deactivate(t *testing.T) {
	f := newOfferFixture(t)
	ctx := context.Background()

	offer, err := f.svc.Create(ctx, f.ownerID, createInput())
	require.NoError(t, err)

	inactive := false
	updated, err := f.svc.Update(ctx, f.ownerID, offer.ID, &usecase.UpdateOfferInput{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	active, err := f.offerRepo.FindAllActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestOfferService_Update_DiscountOutOfRange(t *testing.T) {
	f := newOfferFixture(t)
	ctx := context.Background()

	offer, err := f.svc.Create(ctx, f.ownerID, createInput())
	require.NoError(t, err)

	bad := 95
	_, err = f.svc.Update(ctx, f.ownerID, offer.ID, &usecase.UpdateOfferInput{DiscountPercentage: &bad})
	require.Error(t, err)

	// The stored offer is untouched.
	found, err := f.svc.Get(ctx, f.ownerID, offer.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, found.DiscountPercentage)
}

func TestOfferService_Update_ForeignOfferLooksMissing(t *testing.T) {
	f := newOfferFixture(t)
	ctx := context.Background()

	offer, err := f.svc.Create(ctx, f.ownerID, createInput())
	require.NoError(t, err)

	newTitle := "hijacked"
	_, err = f.svc.Update(ctx, f.otherID, offer.ID, &usecase.UpdateOfferInput{Title: &newTitle})
	assert.ErrorIs(t, err, domainerrors.ErrOfferNotFound)

	// Unchanged for the real owner.
	found, err := f.svc.Get(ctx, f.ownerID, offer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Taco Tuesday", found.Title)
}

func TestOfferService_Delete(t *testing.T) {
	f := newOfferFixture(t)
	ctx := context.Background()

	offer, err := f.svc.Create(ctx, f.ownerID, createInput())
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, f.ownerID, offer.ID))

	_, err = f.svc.Get(ctx, f.ownerID, offer.ID)
	assert.ErrorIs(t, err, domainerrors.ErrOfferNotFound)

	active, err := f.offerRepo.FindAllActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestOfferService_Delete_ForeignOfferLooksMissing(t *testing.T) {
	f := newOfferFixture(t)
	ctx := context.Background()

	offer, err := f.svc.Create(ctx, f.ownerID, createInput())
	require.NoError(t, err)

	err = f.svc.Delete(ctx, f.otherID, offer.ID)
	assert.ErrorIs(t, err, domainerrors.ErrOfferNotFound)

	// Still there for the owner.
	_, err = f.svc.Get(ctx, f.ownerID, offer.ID)
	assert.NoError(t, err)
}

func TestOfferService_ListForBusiness_IncludesInactive(t *testing.T) {
	f := newOfferFixture(t)
	ctx := context.Background()

	first, err := f.svc.Create(ctx, f.ownerID, createInput())
	require.NoError(t, err)

	second := createInput()
	second.Title = "Paused"
	offer2, err := f.svc.Create(ctx, f.ownerID, second)
	require.NoError(t, err)

	inactive := false
	_, err = f.svc.Update(ctx, f.ownerID, offer2.ID, &usecase.UpdateOfferInput{IsActive: &inactive})
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, f.otherID, createInput())
	require.NoError(t, err)

	owned, err := f.svc.ListForBusiness(ctx, f.ownerID)
	require.NoError(t, err)
	require.Len(t, owned, 2)
	assert.Equal(t, first.ID, owned[0].ID)
	assert.Equal(t, offer2.ID, owned[1].ID)
}
