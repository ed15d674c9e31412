package usecase

import (
	"context"

	"promofinder/internal/domain/entity"
)

// CreateOfferInput carries the fields for offer creation.
// New offers always start active.
type CreateOfferInput struct {
	Title              string
	Description        string
	DiscountPercentage int
	ValidUntil         string
}

// UpdateOfferInput carries a partial update: each field changes only when
// explicitly supplied, omitted fields retain their prior value.
type UpdateOfferInput struct {
	Title              *string
	Description        *string
	DiscountPercentage *int
	ValidUntil         *string
	IsActive           *bool
}

// OfferUsecase defines offer management for an authenticated business.
// All mutating operations require the acting business to own the target
// offer; ownership failures surface as the same not-found error as a
// missing offer.
type OfferUsecase interface {
	// Create validates the input (required fields, discount in [1,90],
	// owning business exists) and persists a new active offer.
	Create(ctx context.Context, businessID string, input *CreateOfferInput) (*entity.Offer, error)

	// Get retrieves one offer owned by the acting business.
	Get(ctx context.Context, businessID, offerID string) (*entity.Offer, error)

	// ListForBusiness retrieves all offers of the acting business, active or not.
	ListForBusiness(ctx context.Context, businessID string) ([]*entity.Offer, error)

	// Update applies a partial update to an owned offer.
	Update(ctx context.Context, businessID, offerID string, input *UpdateOfferInput) (*entity.Offer, error)

	// Delete permanently removes an owned offer.
	Delete(ctx context.Context, businessID, offerID string) error
}
