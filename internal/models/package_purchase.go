package models

import "time"

// PackagePurchase tracks one user's purchase of a session package.
// SessionsUsed only ever moves up, one session per prepaid booking,
// and never past the package's SessionCount.
type PackagePurchase struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID    uint `gorm:"index:idx_purchase_user_package" json:"user_id"`
	PackageID uint `gorm:"index:idx_purchase_user_package" json:"package_id"`

	PurchaseDate time.Time `json:"purchase_date"`
	SessionsUsed int       `json:"sessions_used"`
	ExpiryDate   time.Time `json:"expiry_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
