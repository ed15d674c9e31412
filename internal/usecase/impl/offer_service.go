package impl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"promofinder/internal/domain/entity"
	domainerrors "promofinder/internal/domain/errors"
	"promofinder/internal/domain/repository"
	"promofinder/internal/errors"
	"promofinder/internal/usecase"
)

type offerService struct {
	offerRepo    repository.OfferRepository
	businessRepo repository.BusinessRepository
}

// NewOfferService creates a new offer service instance.
func NewOfferService(
	offerRepo repository.OfferRepository,
	businessRepo repository.BusinessRepository,
) usecase.OfferUsecase {
	return &offerService{
		offerRepo:    offerRepo,
		businessRepo: businessRepo,
	}
}

// Create validates the input and persists a new active offer.
// Validation happens here, uniformly, for both backing stores; the
// repositories themselves do not re-check the discount range or the
// business reference.
func (s *offerService) Create(ctx context.Context, businessID string, input *usecase.CreateOfferInput) (*entity.Offer, error) {
	if err := validateOfferInput(input); err != nil {
		return nil, err
	}

	if _, err := s.businessRepo.FindByID(ctx, businessID); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by ID")
	}

	now := time.Now()
	offer := &entity.Offer{
		BusinessID:         businessID,
		Title:              input.Title,
		Description:        input.Description,
		DiscountPercentage: input.DiscountPercentage,
		ValidUntil:         input.ValidUntil,
		IsActive:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.offerRepo.Create(ctx, offer); err != nil {
		return nil, errors.Wrap(err, "failed to create offer")
	}

	return offer, nil
}

// Get retrieves one offer owned by the acting business.
func (s *offerService) Get(ctx context.Context, businessID, offerID string) (*entity.Offer, error) {
	return s.findOwnedOffer(ctx, businessID, offerID)
}

// ListForBusiness retrieves all offers of the acting business, active or not.
func (s *offerService) ListForBusiness(ctx context.Context, businessID string) ([]*entity.Offer, error) {
	offers, err := s.offerRepo.FindByBusiness(ctx, businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find offers by business")
	}

	return offers, nil
}

// Update applies a partial update to an owned offer. Only supplied fields
// change; omitted fields retain their prior value.
func (s *offerService) Update(ctx context.Context, businessID, offerID string, input *usecase.UpdateOfferInput) (*entity.Offer, error) {
	offer, err := s.findOwnedOffer(ctx, businessID, offerID)
	if err != nil {
		return nil, err
	}

	if err := validateOfferUpdate(input); err != nil {
		return nil, err
	}

	applyOfferUpdates(offer, input)

	if err := s.offerRepo.Update(ctx, offer); err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, domainerrors.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to update offer")
	}

	return offer, nil
}

// Delete permanently removes an owned offer.
func (s *offerService) Delete(ctx context.Context, businessID, offerID string) error {
	if _, err := s.findOwnedOffer(ctx, businessID, offerID); err != nil {
		return err
	}

	if err := s.offerRepo.Delete(ctx, offerID); err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return domainerrors.ErrOfferNotFound
		}

		return errors.Wrap(err, "failed to delete offer")
	}

	return nil
}

// findOwnedOffer resolves an offer and verifies ownership. A foreign offer
// yields the same not-found error as a missing one, so callers cannot probe
// for other businesses' offers.
func (s *offerService) findOwnedOffer(ctx context.Context, businessID, offerID string) (*entity.Offer, error) {
	offer, err := s.offerRepo.FindByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, domainerrors.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer by ID")
	}

	if offer.BusinessID != businessID {
		return nil, domainerrors.ErrOfferNotFound
	}

	return offer, nil
}

func applyOfferUpdates(offer *entity.Offer, input *usecase.UpdateOfferInput) {
	if input.Title != nil {
		offer.Title = *input.Title
	}
	if input.Description != nil {
		offer.Description = *input.Description
	}
	if input.DiscountPercentage != nil {
		offer.DiscountPercentage = *input.DiscountPercentage
	}
	if input.ValidUntil != nil {
		offer.ValidUntil = *input.ValidUntil
	}
	if input.IsActive != nil {
		offer.IsActive = *input.IsActive
	}
	offer.UpdatedAt = time.Now()
}

func validateOfferInput(input *usecase.CreateOfferInput) error {
	var missing []string
	if strings.TrimSpace(input.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(input.Description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(input.ValidUntil) == "" {
		missing = append(missing, "valid_until")
	}
	if len(missing) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails("missing required fields: " + strings.Join(missing, ", "))
	}

	return validateDiscount(input.DiscountPercentage)
}

func validateOfferUpdate(input *usecase.UpdateOfferInput) error {
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("title must not be empty")
	}
	if input.Description != nil && strings.TrimSpace(*input.Description) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("description must not be empty")
	}
	if input.DiscountPercentage != nil {
		return validateDiscount(*input.DiscountPercentage)
	}

	return nil
}

func validateDiscount(percentage int) error {
	if percentage < entity.MinDiscountPercentage || percentage > entity.MaxDiscountPercentage {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf(
			"discount percentage must be between %d and %d",
			entity.MinDiscountPercentage, entity.MaxDiscountPercentage,
		))
	}

	return nil
}
