// Package impl contains the concrete usecase implementations.
package impl

import (
	"context"
	"strings"
	"time"

	"promofinder/internal/domain/entity"
	domainerrors "promofinder/internal/domain/errors"
	"promofinder/internal/domain/repository"
	"promofinder/internal/domain/service"
	"promofinder/internal/errors"
	"promofinder/internal/usecase"
)

type businessService struct {
	businessRepo repository.BusinessRepository
	hasher       service.PasswordHasher
	tokenSvc     service.TokenService
}

// NewBusinessService creates a new business service instance.
func NewBusinessService(
	businessRepo repository.BusinessRepository,
	hasher service.PasswordHasher,
	tokenSvc service.TokenService,
) usecase.BusinessUsecase {
	return &businessService{
		businessRepo: businessRepo,
		hasher:       hasher,
		tokenSvc:     tokenSvc,
	}
}

// Register creates a new business account and logs it in.
func (s *businessService) Register(ctx context.Context, input *usecase.RegisterBusinessInput) (*usecase.AuthResult, error) {
	if err := validateRegistration(input); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	business := newBusiness(input, hash)
	if err := s.businessRepo.Create(ctx, business); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrEmailAlreadyRegistered
		}

		return nil, errors.Wrap(err, "failed to create business")
	}

	return s.issueTokens(business)
}

// Login authenticates a business by email and password.
func (s *businessService) Login(ctx context.Context, email, password string) (*usecase.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email and password are required")
	}

	business, err := s.businessRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			// Indistinguishable from a wrong password on purpose.
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find business by email")
	}

	if !s.hasher.Check(password, business.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return s.issueTokens(business)
}

// Profile returns the business identified by an authenticated caller.
func (s *businessService) Profile(ctx context.Context, businessID string) (*entity.Business, error) {
	business, err := s.businessRepo.FindByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by ID")
	}

	return business, nil
}

func (s *businessService) issueTokens(business *entity.Business) (*usecase.AuthResult, error) {
	accessToken, refreshToken, err := s.tokenSvc.GenerateTokens(business.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.AuthResult{
		Business:     business,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func validateRegistration(input *usecase.RegisterBusinessInput) error {
	var missing []string
	if strings.TrimSpace(input.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(input.Name) == "" {
		missing = append(missing, "name")
	}
	if input.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails("missing required fields: " + strings.Join(missing, ", "))
	}

	return nil
}

func newBusiness(input *usecase.RegisterBusinessInput, passwordHash string) *entity.Business {
	now := time.Now()

	return &entity.Business{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: passwordHash,
		Phone:        input.Phone,
		Address:      input.Address,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
