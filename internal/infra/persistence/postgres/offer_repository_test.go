package postgres

import (
	"testing"
	"time"

	"promofinder/internal/domain/entity"
	"promofinder/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromOfferDomain_CarriesAllMutableColumns(t *testing.T) {
	touched := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	offer := &entity.Offer{
		ID:                 "7",
		BusinessID:         "3",
		Title:              "Lunch special",
		Description:        "Weekdays only",
		DiscountPercentage: 25,
		ValidUntil:         "2026-12-31",
		IsActive:           false,
		UpdatedAt:          touched,
	}

	offerM, err := fromOfferDomain(offer)
	require.NoError(t, err)

	assert.Equal(t, uint64(7), offerM.ID)
	assert.Equal(t, uint64(3), offerM.BusinessID)
	assert.Equal(t, "Lunch special", offerM.Title)
	assert.False(t, offerM.IsActive)
	// The update path writes updated_at from the entity, so the column must
	// come through the mapping, not from a gorm hook.
	assert.Equal(t, touched, offerM.UpdatedAt)
}

func TestFromOfferDomain_RejectsNonNumericBusinessID(t *testing.T) {
	_, err := fromOfferDomain(&entity.Offer{BusinessID: "not-a-number"})
	assert.ErrorIs(t, err, repository.ErrBusinessNotFound)
}
