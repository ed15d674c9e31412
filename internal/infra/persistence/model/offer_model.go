package model

import "time"

// OfferModel is the GORM-specific struct for the 'offers' table.
type OfferModel struct {
	ID                 uint64 `gorm:"primaryKey;autoIncrement"`
	BusinessID         uint64 `gorm:"not null;index:idx_offers_business_id"`
	Title              string `gorm:"type:varchar(255);not null"`
	Description        string `gorm:"type:text;not null"`
	DiscountPercentage int    `gorm:"not null"`
	ValidUntil         string `gorm:"type:varchar(32);not null"`
	IsActive           bool   `gorm:"not null;default:true;index:idx_offers_is_active"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Business *BusinessModel `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OfferModel) TableName() string {
	return "offers"
}
