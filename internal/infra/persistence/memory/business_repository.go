// Package memory contains the in-memory implementation of the persistence
// layer. It backs the service when no relational store is configured or the
// configured one is unreachable at startup.
//
// Each repository guards its collection with a single RWMutex held only for
// the duration of one operation, and assigns sequential ids from a counter
// owned by the repository. Entities are copied on the way in and out, so
// callers only ever hold read-only snapshots of the store's records.
package memory

import (
	"context"
	"strconv"
	"sync"

	"promofinder/internal/domain/entity"
	"promofinder/internal/domain/repository"
)

// businessRepository implements repository.BusinessRepository.
type businessRepository struct {
	mu         sync.RWMutex
	businesses map[string]*entity.Business
	nextID     int64
}

// NewBusinessRepository is the constructor for the in-memory business repository.
func NewBusinessRepository() repository.BusinessRepository {
	return &businessRepository{
		businesses: make(map[string]*entity.Business),
	}
}

// Create persists a new business and assigns the next sequential ID.
func (repo *businessRepository) Create(_ context.Context, business *entity.Business) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	// Exact, case-sensitive email match.
	for _, existing := range repo.businesses {
		if existing.Email == business.Email {
			return repository.ErrDuplicateEmail
		}
	}

	repo.nextID++
	business.ID = strconv.FormatInt(repo.nextID, 10)

	stored := *business
	repo.businesses[business.ID] = &stored

	return nil
}

// FindByID retrieves a single business by its unique ID.
func (repo *businessRepository) FindByID(_ context.Context, id string) (*entity.Business, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	business, ok := repo.businesses[id]
	if !ok {
		return nil, repository.ErrBusinessNotFound
	}

	found := *business

	return &found, nil
}

// FindByEmail retrieves a single business by its email address.
// Linear scan; first match wins. Email is expected-unique, so this is
// deterministic in practice.
func (repo *businessRepository) FindByEmail(_ context.Context, email string) (*entity.Business, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, business := range repo.businesses {
		if business.Email == email {
			found := *business

			return &found, nil
		}
	}

	return nil, repository.ErrBusinessNotFound
}

// FindAll retrieves every registered business.
func (repo *businessRepository) FindAll(_ context.Context) ([]*entity.Business, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	businesses := make([]*entity.Business, 0, len(repo.businesses))
	for _, business := range repo.businesses {
		found := *business
		businesses = append(businesses, &found)
	}

	return businesses, nil
}
