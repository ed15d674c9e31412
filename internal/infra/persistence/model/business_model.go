// Package model contains the GORM-specific structs mapped to database tables.
package model

import "time"

// BusinessModel is the GORM-specific struct for the 'businesses' table.
type BusinessModel struct {
	ID           uint64  `gorm:"primaryKey;autoIncrement"`
	Email        string  `gorm:"type:varchar(255);not null;uniqueIndex:idx_businesses_email"`
	Name         string  `gorm:"type:varchar(255);not null"`
	PasswordHash string  `gorm:"type:varchar(255);not null"`
	Phone        string  `gorm:"type:varchar(50);not null;default:''"`
	Address      string  `gorm:"type:text;not null;default:''"`
	Latitude     float64 `gorm:"type:decimal(10,8);not null;default:0"`
	Longitude    float64 `gorm:"type:decimal(11,8);not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}
