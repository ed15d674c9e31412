// Package usecase defines the application's public operation boundary.
// The delivery layer talks to these interfaces and nothing deeper.
package usecase

import (
	"context"

	"promofinder/internal/domain/entity"
)

// RegisterBusinessInput carries the fields for business registration.
// Latitude/Longitude of 0 mean "no known location" and exclude the business
// from proximity matching until a real position is set.
type RegisterBusinessInput struct {
	Email     string
	Name      string
	Password  string
	Phone     string
	Address   string
	Latitude  float64
	Longitude float64
}

// AuthResult is returned by registration and login.
type AuthResult struct {
	Business     *entity.Business
	AccessToken  string
	RefreshToken string
}

// BusinessUsecase defines registration, authentication and profile access.
type BusinessUsecase interface {
	// Register creates a new business account and logs it in.
	// Fails with domainerrors.ErrEmailAlreadyRegistered on an email conflict
	// and domainerrors.ErrValidationFailed on missing required fields.
	Register(ctx context.Context, input *RegisterBusinessInput) (*AuthResult, error)

	// Login authenticates by email and password. Unknown email and wrong
	// password are indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// Profile returns the business identified by an authenticated caller.
	Profile(ctx context.Context, businessID string) (*entity.Business, error)
}
