package memory

import (
	"context"
	"strconv"
	"sync"

	"promofinder/internal/domain/entity"
	"promofinder/internal/domain/repository"
)

// offerRepository implements repository.OfferRepository.
type offerRepository struct {
	mu     sync.RWMutex
	offers map[string]*entity.Offer
	order  []string // creation order, keeps listings deterministic
	nextID int64
}

// NewOfferRepository is the constructor for the in-memory offer repository.
func NewOfferRepository() repository.OfferRepository {
	return &offerRepository{
		offers: make(map[string]*entity.Offer),
	}
}

// Create persists a new offer and assigns the next sequential ID.
// The store does not verify that BusinessID references an existing business;
// the usecase layer validates before calling in.
func (repo *offerRepository) Create(_ context.Context, offer *entity.Offer) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.nextID++
	offer.ID = strconv.FormatInt(repo.nextID, 10)

	stored := *offer
	repo.offers[offer.ID] = &stored
	repo.order = append(repo.order, offer.ID)

	return nil
}

// FindByID retrieves a single offer by its unique ID.
func (repo *offerRepository) FindByID(_ context.Context, id string) (*entity.Offer, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	offer, ok := repo.offers[id]
	if !ok {
		return nil, repository.ErrOfferNotFound
	}

	found := *offer

	return &found, nil
}

// FindAllActive retrieves every offer with IsActive set, in creation order.
func (repo *offerRepository) FindAllActive(_ context.Context) ([]*entity.Offer, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var active []*entity.Offer
	for _, id := range repo.order {
		offer := repo.offers[id]
		if offer == nil || !offer.IsActive {
			continue
		}

		found := *offer
		active = append(active, &found)
	}

	return active, nil
}

// FindByBusiness retrieves all offers owned by a business, active or not.
func (repo *offerRepository) FindByBusiness(_ context.Context, businessID string) ([]*entity.Offer, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var owned []*entity.Offer
	for _, id := range repo.order {
		offer := repo.offers[id]
		if offer == nil || offer.BusinessID != businessID {
			continue
		}

		found := *offer
		owned = append(owned, &found)
	}

	return owned, nil
}

// Update replaces the stored record for the offer's ID.
func (repo *offerRepository) Update(_ context.Context, offer *entity.Offer) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.offers[offer.ID]; !ok {
		return repository.ErrOfferNotFound
	}

	stored := *offer
	repo.offers[offer.ID] = &stored

	return nil
}

// Delete removes the offer permanently.
func (repo *offerRepository) Delete(_ context.Context, id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.offers[id]; !ok {
		return repository.ErrOfferNotFound
	}

	delete(repo.offers, id)
	for i, existing := range repo.order {
		if existing == id {
			repo.order = append(repo.order[:i], repo.order[i+1:]...)

			break
		}
	}

	return nil
}
