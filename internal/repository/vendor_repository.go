package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AgiAbhishek/Vendor-shop/internal/models"
)

// VendorRepository defines persistence operations for vendor accounts.
type VendorRepository interface {
	Create(vendor *models.Vendor) error
	GetByUsername(username string) (*models.Vendor, error)
	GetByID(id uuid.UUID) (*models.Vendor, error)
}

// VendorRepositoryImpl provides methods to interact with the Vendor model in the database.
type VendorRepositoryImpl struct {
	db *gorm.DB
}

// NewVendorRepository creates a new VendorRepositoryImpl instance with the provided GORM database connection.
func NewVendorRepository(db *gorm.DB) *VendorRepositoryImpl {
	return &VendorRepositoryImpl{db: db}
}

// Create persists a new Vendor. Unique-constraint violations surface as
// gorm.ErrDuplicatedKey (the connection is opened with TranslateError).
func (r *VendorRepositoryImpl) Create(vendor *models.Vendor) error {
	return r.db.Create(vendor).Error
}

// GetByUsername retrieves a Vendor by username.
func (r *VendorRepositoryImpl) GetByUsername(username string) (*models.Vendor, error) {
	var vendor models.Vendor
	err := r.db.First(&vendor, "username = ?", username).Error
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

// GetByID retrieves a Vendor by its ID.
func (r *VendorRepositoryImpl) GetByID(id uuid.UUID) (*models.Vendor, error) {
	var vendor models.Vendor
	err := r.db.First(&vendor, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}
