package repository

import (
	"context"

	"promofinder/internal/domain/entity"
	"promofinder/internal/errors"
)

// ErrOfferNotFound is returned when an offer is not found.
var ErrOfferNotFound = errors.New("offer not found")

// OfferRepository defines the standard operations for offer persistence.
//
// The store does not re-validate the discount range and does not verify that
// BusinessID references an existing business; both are the responsibility of
// the usecase layer, which validates uniformly before calling in.
type OfferRepository interface {
	// Create persists a new offer and assigns its ID.
	Create(ctx context.Context, offer *entity.Offer) error

	// FindByID retrieves a single offer by its unique ID.
	// Returns ErrOfferNotFound when no such offer exists.
	FindByID(ctx context.Context, id string) (*entity.Offer, error)

	// FindAllActive retrieves every offer with IsActive set.
	// Iteration order is not guaranteed.
	FindAllActive(ctx context.Context) ([]*entity.Offer, error)

	// FindByBusiness retrieves all offers owned by a business, active or not.
	FindByBusiness(ctx context.Context, businessID string) ([]*entity.Offer, error)

	// Update replaces the stored record for the offer's ID.
	// Returns ErrOfferNotFound when no such offer exists.
	Update(ctx context.Context, offer *entity.Offer) error

	// Delete removes the offer permanently.
	// Returns ErrOfferNotFound when no such offer exists.
	Delete(ctx context.Context, id string) error
}
