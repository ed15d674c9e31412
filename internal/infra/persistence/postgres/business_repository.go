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

// businessRepository implements repository.BusinessRepository on PostgreSQL.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{db: db}
}

// Create persists a new business. The database assigns the sequential ID;
// the unique email index surfaces as ErrDuplicateEmail.
func (repo *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	businessM := fromBusinessDomain(business)

	if err := repo.db.WithContext(ctx).Create(businessM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}

		return errors.Wrap(err, "failed to create business")
	}

	business.ID = strconv.FormatUint(businessM.ID, 10)
	business.CreatedAt = businessM.CreatedAt
	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

// FindByID retrieves a single business by its unique ID.
func (repo *businessRepository) FindByID(ctx context.Context, id string) (*entity.Business, error) {
	numericID, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return nil, repository.ErrBusinessNotFound
	}

	var businessM model.BusinessModel
	if err := repo.db.WithContext(ctx).First(&businessM, numericID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by ID")
	}

	return toBusinessDomain(&businessM), nil
}

// FindByEmail retrieves a single business by its email address (exact match).
func (repo *businessRepository) FindByEmail(ctx context.Context, email string) (*entity.Business, error) {
	var businessM model.BusinessModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&businessM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by email")
	}

	return toBusinessDomain(&businessM), nil
}

// FindAll retrieves every registered business.
func (repo *businessRepository) FindAll(ctx context.Context) ([]*entity.Business, error) {
	var businessModels []*model.BusinessModel
	if err := repo.db.WithContext(ctx).Order("id asc").Find(&businessModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find businesses")
	}

	businesses := make([]*entity.Business, 0, len(businessModels))
	for _, businessM := range businessModels {
		businesses = append(businesses, toBusinessDomain(businessM))
	}

	return businesses, nil
}

func fromBusinessDomain(business *entity.Business) *model.BusinessModel {
	businessM := &model.BusinessModel{
		Email:        business.Email,
		Name:         business.Name,
		PasswordHash: business.PasswordHash,
		Phone:        business.Phone,
		Address:      business.Address,
		Latitude:     business.Latitude,
		Longitude:    business.Longitude,
	}
	if business.ID != "" {
		if numericID, err := strconv.ParseUint(business.ID, 10, 64); err == nil {
			businessM.ID = numericID
		}
	}

	return businessM
}

func toBusinessDomain(businessM *model.BusinessModel) *entity.Business {
	return &entity.Business{
		ID:           strconv.FormatUint(businessM.ID, 10),
		Email:        businessM.Email,
		Name:         businessM.Name,
		PasswordHash: businessM.PasswordHash,
		Phone:        businessM.Phone,
		Address:      businessM.Address,
		Latitude:     businessM.Latitude,
		Longitude:    businessM.Longitude,
		CreatedAt:    businessM.CreatedAt,
		UpdatedAt:    businessM.UpdatedAt,
	}
}
