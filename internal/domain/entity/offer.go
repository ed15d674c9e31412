package entity

import "time"

// Discount percentage bounds enforced at the usecase boundary.
// The store itself does not re-validate the range.
const (
	MinDiscountPercentage = 1
	MaxDiscountPercentage = 90
)

// Offer is a time-bounded discount published by a business.
// Inactive offers are retained but excluded from discovery.
type Offer struct {
	ID                 string    // Opaque unique identifier, assigned sequentially by the repository.
	BusinessID         string    // Owning business. Many offers reference one business.
	Title              string    // Short headline of the offer.
	Description        string    // Longer free-form description.
	DiscountPercentage int       // Integer percentage, domain-constrained to [1,90].
	ValidUntil         string    // Calendar date string, "valid until".
	IsActive           bool      // Whether the offer is currently discoverable.
	CreatedAt          time.Time // Timestamp of when this offer was created.
	UpdatedAt          time.Time // Timestamp of the last modification.
}
