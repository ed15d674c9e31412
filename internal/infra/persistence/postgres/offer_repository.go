package postgres

import (
	"context"
	"strconv"

	"promofinder/internal/domain/entity"
	"promofinder/internal/domain/repository"
	"promofinder/internal/errors"
	"promofinder/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// offerRepository implements repository.OfferRepository on PostgreSQL.
type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(db *gorm.DB) repository.OfferRepository {
	return &offerRepository{db: db}
}

// Create persists a new offer. The database assigns the sequential ID.
// The FK constraint on business_id maps back to ErrBusinessNotFound as
// defense in depth behind the usecase-layer existence check.
func (repo *offerRepository) Create(ctx context.Context, offer *entity.Offer) error {
	offerM, err := fromOfferDomain(offer)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(offerM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBusinessNotFound
		}

		return errors.Wrap(err, "failed to create offer")
	}

	offer.ID = strconv.FormatUint(offerM.ID, 10)
	offer.CreatedAt = offerM.CreatedAt
	offer.UpdatedAt = offerM.UpdatedAt

	return nil
}

// FindByID retrieves a single offer by its unique ID.
func (repo *offerRepository) FindByID(ctx context.Context, id string) (*entity.Offer, error) {
	numericID, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return nil, repository.ErrOfferNotFound
	}

	var offerM model.OfferModel
	if err := repo.db.WithContext(ctx).First(&offerM, numericID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer by ID")
	}

	return toOfferDomain(&offerM), nil
}

// FindAllActive retrieves every active offer.
func (repo *offerRepository) FindAllActive(ctx context.Context) ([]*entity.Offer, error) {
	var offerModels []*model.OfferModel
	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id asc").
		Find(&offerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active offers")
	}

	return toOfferDomainSlice(offerModels), nil
}

// FindByBusiness retrieves all offers owned by a business, active or not.
func (repo *offerRepository) FindByBusiness(ctx context.Context, businessID string) ([]*entity.Offer, error) {
	numericID, err := strconv.ParseUint(businessID, 10, 64)
	if err != nil {
		return []*entity.Offer{}, nil
	}

	var offerModels []*model.OfferModel
	if err := repo.db.WithContext(ctx).
		Where("business_id = ?", numericID).
		Order("id asc").
		Find(&offerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find offers by business")
	}

	return toOfferDomainSlice(offerModels), nil
}

// Update replaces the stored record for the offer's ID.
func (repo *offerRepository) Update(ctx context.Context, offer *entity.Offer) error {
	offerM, err := fromOfferDomain(offer)
	if err != nil {
		return err
	}
	if offerM.ID == 0 {
		return repository.ErrOfferNotFound
	}

	// Save all mutable columns explicitly so false/zero values are written too.
	result := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Where("id = ?", offerM.ID).
		Select("title", "description", "discount_percentage", "valid_until", "is_active", "updated_at").
		Updates(offerM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update offer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}

// Delete removes the offer permanently.
func (repo *offerRepository) Delete(ctx context.Context, id string) error {
	numericID, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return repository.ErrOfferNotFound
	}

	result := repo.db.WithContext(ctx).Delete(&model.OfferModel{}, numericID)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete offer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}

func fromOfferDomain(offer *entity.Offer) (*model.OfferModel, error) {
	businessID, err := strconv.ParseUint(offer.BusinessID, 10, 64)
	if err != nil {
		return nil, repository.ErrBusinessNotFound
	}

	offerM := &model.OfferModel{
		BusinessID:         businessID,
		Title:              offer.Title,
		Description:        offer.Description,
		DiscountPercentage: offer.DiscountPercentage,
		ValidUntil:         offer.ValidUntil,
		IsActive:           offer.IsActive,
		UpdatedAt:          offer.UpdatedAt,
	}
	if offer.ID != "" {
		if numericID, err := strconv.ParseUint(offer.ID, 10, 64); err == nil {
			offerM.ID = numericID
		}
	}

	return offerM, nil
}

func toOfferDomain(offerM *model.OfferModel) *entity.Offer {
	return &entity.Offer{
		ID:                 strconv.FormatUint(offerM.ID, 10),
		BusinessID:         strconv.FormatUint(offerM.BusinessID, 10),
		Title:              offerM.Title,
		Description:        offerM.Description,
		DiscountPercentage: offerM.DiscountPercentage,
		ValidUntil:         offerM.ValidUntil,
		IsActive:           offerM.IsActive,
		CreatedAt:          offerM.CreatedAt,
		UpdatedAt:          offerM.UpdatedAt,
	}
}

func toOfferDomainSlice(offerModels []*model.OfferModel) []*entity.Offer {
	offers := make([]*entity.Offer, 0, len(offerModels))
	for _, offerM := range offerModels {
		offers = append(offers, toOfferDomain(offerM))
	}

	return offers
}
