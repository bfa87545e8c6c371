package repository

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/AgiAbhishek/Vendor-shop/internal/models"
)

// ShopRepository defines persistence operations for shop records.
type ShopRepository interface {
	Create(shop *models.Shop) error
	GetByID(id uuid.UUID) (*models.Shop, error)
	Update(shop *models.Shop) error
	Delete(id uuid.UUID) error
	ListByVendor(vendorID uuid.UUID, businessType string, page, pageSize int) ([]models.Shop, int64, error)
	RangeQuery(latMin, latMax, lngMin, lngMax float64) ([]models.Shop, error)
}

// ShopRepositoryImpl provides methods to interact with the Shop model in the database.
type ShopRepositoryImpl struct {
	db *gorm.DB
}

// NewShopRepository creates a new ShopRepositoryImpl instance with the provided GORM database connection.
func NewShopRepository(db *gorm.DB) *ShopRepositoryImpl {
	return &ShopRepositoryImpl{db: db}
}

// Create persists a new Shop in the database.
func (r *ShopRepositoryImpl) Create(shop *models.Shop) error {
	return errors.Wrap(r.db.Create(shop).Error, "failed to create shop")
}

// GetByID retrieves a Shop by its ID from the database.
func (r *ShopRepositoryImpl) GetByID(id uuid.UUID) (*models.Shop, error) {
	var shop models.Shop
	err := r.db.First(&shop, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

// Update saves an existing Shop in the database.
func (r *ShopRepositoryImpl) Update(shop *models.Shop) error {
	return errors.Wrap(r.db.Save(shop).Error, "failed to update shop")
}

// Delete removes a Shop by its ID from the database. Deletes are permanent.
func (r *ShopRepositoryImpl) Delete(id uuid.UUID) error {
	res := r.db.Delete(&models.Shop{}, "id = ?", id)
	if res.Error != nil {
		return errors.Wrap(res.Error, "failed to delete shop")
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListByVendor retrieves a vendor's shops ordered by creation time (newest
// first) with offset pagination, optionally restricted to an exact
// case-insensitive business type match. Returns the page and the total count.
func (r *ShopRepositoryImpl) ListByVendor(vendorID uuid.UUID, businessType string, page, pageSize int) ([]models.Shop, int64, error) {
	q := r.db.Model(&models.Shop{}).Where("vendor_id = ?", vendorID)
	if businessType != "" {
		// LOWER() comparison rather than ILIKE so % and _ in the filter are literal.
		q = q.Where("LOWER(business_type) = LOWER(?)", businessType)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count shops")
	}

	var shops []models.Shop
	err := q.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&shops).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list shops")
	}
	return shops, total, nil
}

// RangeQuery retrieves all shops whose coordinates fall inside the given
// rectangle. This is the cheap indexed prefilter for the nearby query; exact
// containment is decided by the caller with the haversine distance. The
// created_at ordering keeps equal-distance ties deterministic downstream.
func (r *ShopRepositoryImpl) RangeQuery(latMin, latMax, lngMin, lngMax float64) ([]models.Shop, error) {
	var shops []models.Shop
	err := r.db.
		Where("latitude BETWEEN ? AND ?", latMin, latMax).
		Where("longitude BETWEEN ? AND ?", lngMin, lngMax).
		Order("created_at DESC").
		Find(&shops).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to query shops by bounding box")
	}
	return shops, nil
}
