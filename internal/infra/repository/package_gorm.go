package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/CoachLinkServices/coach-scheduler/internal/domain/booking"
	"github.com/CoachLinkServices/coach-scheduler/internal/models"
)

type PackageGormStore struct {
	db *gorm.DB
}

func NewPackageGormStore(db *gorm.DB) *PackageGormStore {
	return &PackageGormStore{db: db}
}

func (s *PackageGormStore) GetPackage(
	ctx context.Context,
	packageID uint,
) (*models.SessionPackage, error) {

	var pkg models.SessionPackage
	if err := s.db.WithContext(ctx).First(&pkg, packageID).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (s *PackageGormStore) ListActivePurchases(
	ctx context.Context,
	userID uint,
	packageID uint,
	now time.Time,
) ([]models.PackagePurchase, error) {

	var purchases []models.PackagePurchase
	if err := s.db.WithContext(ctx).
		Where(
			"user_id = ? AND package_id = ? AND expiry_date > ?",
			userID, packageID, now,
		).
		Order("purchase_date DESC").
		Find(&purchases).Error; err != nil {
		return nil, err
	}

	return purchases, nil
}

func (s *PackageGormStore) UpdatePurchase(
	ctx context.Context,
	p *models.PackagePurchase,
) error {
	return s.db.WithContext(ctx).Save(p).Error
}

// Compile-time check
var _ domain.PackageStore = (*PackageGormStore)(nil)
