// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"promofinder/internal/domain/entity"
	"promofinder/internal/errors"
)

// Domain-specific errors for business persistence.
var (
	// ErrBusinessNotFound is returned when a business is not found.
	ErrBusinessNotFound = errors.New("business not found")
	// ErrDuplicateEmail is returned when a business with the same email already exists.
	ErrDuplicateEmail = errors.New("email already registered")
)

// BusinessRepository defines the standard operations for business persistence.
// The application layer depends on this interface, not the concrete implementation.
type BusinessRepository interface {
	// Create persists a new business and assigns its ID.
	// Returns ErrDuplicateEmail when the email is already taken (exact match).
	Create(ctx context.Context, business *entity.Business) error

	// FindByID retrieves a single business by its unique ID.
	// Returns ErrBusinessNotFound when no such business exists.
	FindByID(ctx context.Context, id string) (*entity.Business, error)

	// FindByEmail retrieves a single business by its email address.
	// Returns ErrBusinessNotFound when no such business exists.
	FindByEmail(ctx context.Context, email string) (*entity.Business, error)

	// FindAll retrieves every registered business.
	FindAll(ctx context.Context) ([]*entity.Business, error)
}
