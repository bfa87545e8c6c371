package services

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/AgiAbhishek/Vendor-shop/internal/metrics"
	"github.com/AgiAbhishek/Vendor-shop/internal/models"
	"github.com/AgiAbhishek/Vendor-shop/internal/repository"
)

// ShopInput is the full shop payload used by create and PUT. Latitude and
// longitude are pointers so that required-field validation can tell a missing
// value from a legitimate zero coordinate.
type ShopInput struct {
	Name         string   `json:"name" validate:"required,max=255"`
	OwnerName    string   `json:"owner_name" validate:"required,max=255"`
	BusinessType *string  `json:"business_type" validate:"omitempty,max=100"`
	Latitude     *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude    *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

// ShopPatch is the partial payload for PATCH; only non-nil fields are applied.
type ShopPatch struct {
	Name         *string  `json:"name"`
	OwnerName    *string  `json:"owner_name"`
	BusinessType *string  `json:"business_type"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

// ShopService provides ownership-guarded CRUD over shop records.
type ShopService struct {
	repo     repository.ShopRepository
	validate *validator.Validate
	metrics  *metrics.Metrics
}

// NewShopService creates a new ShopService with the given repository.
// Metrics may be nil.
func NewShopService(repo repository.ShopRepository, m *metrics.Metrics) *ShopService {
	return &ShopService{
		repo:     repo,
		validate: newValidator(),
		metrics:  m,
	}
}

// Create validates the input and persists a new shop owned by vendorID. The
// owner is always the authenticated caller, never taken from the payload.
func (s *ShopService) Create(vendorID uuid.UUID, input *ShopInput) (*models.Shop, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, &ValidationError{Detail: validationDetail(err)}
	}

	now := time.Now().UTC()
	shop := &models.Shop{
		ID:        uuid.New(),
		VendorID:  vendorID,
		Name:      input.Name,
		OwnerName: input.OwnerName,
		Latitude:  *input.Latitude,
		Longitude: *input.Longitude,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.BusinessType != nil {
		shop.BusinessType = *input.BusinessType
	}

	if err := s.repo.Create(shop); err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.IncShopsCreated()
	}
	return shop, nil
}

// Retrieve returns a shop by id. Existence is checked before ownership, so a
// non-owner probing an existing id gets Forbidden rather than NotFound.
func (s *ShopService) Retrieve(vendorID, id uuid.UUID) (*models.Shop, error) {
	shop, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shop.VendorID != vendorID {
		return nil, ErrForbidden
	}
	return shop, nil
}

// Update replaces the full field set of an owned shop. BusinessType is the
// only field that falls back to the stored value when absent from the payload.
func (s *ShopService) Update(vendorID, id uuid.UUID, input *ShopInput) (*models.Shop, error) {
	shop, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shop.VendorID != vendorID {
		return nil, ErrForbidden
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, &ValidationError{Detail: validationDetail(err)}
	}

	shop.Name = input.Name
	shop.OwnerName = input.OwnerName
	if input.BusinessType != nil {
		shop.BusinessType = *input.BusinessType
	}
	shop.Latitude = *input.Latitude
	shop.Longitude = *input.Longitude
	shop.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(shop); err != nil {
		return nil, err
	}
	return shop, nil
}

// PartialUpdate applies only the fields present in the patch. The merged
// record is re-validated as a whole so a patch cannot break any constraint.
// UpdatedAt is refreshed regardless of which fields changed.
func (s *ShopService) PartialUpdate(vendorID, id uuid.UUID, patch *ShopPatch) (*models.Shop, error) {
	shop, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shop.VendorID != vendorID {
		return nil, ErrForbidden
	}

	name := shop.Name
	ownerName := shop.OwnerName
	businessType := shop.BusinessType
	lat := shop.Latitude
	lng := shop.Longitude

	if patch.Name != nil {
		name = *patch.Name
	}
	if patch.OwnerName != nil {
		ownerName = *patch.OwnerName
	}
	if patch.BusinessType != nil {
		businessType = *patch.BusinessType
	}
	if patch.Latitude != nil {
		lat = *patch.Latitude
	}
	if patch.Longitude != nil {
		lng = *patch.Longitude
	}

	merged := &ShopInput{
		Name:         name,
		OwnerName:    ownerName,
		BusinessType: &businessType,
		Latitude:     &lat,
		Longitude:    &lng,
	}
	if err := s.validate.Struct(merged); err != nil {
		return nil, &ValidationError{Detail: validationDetail(err)}
	}

	shop.Name = name
	shop.OwnerName = ownerName
	shop.BusinessType = businessType
	shop.Latitude = lat
	shop.Longitude = lng
	shop.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(shop); err != nil {
		return nil, err
	}
	return shop, nil
}

// Destroy permanently deletes an owned shop.
func (s *ShopService) Destroy(vendorID, id uuid.UUID) error {
	shop, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if shop.VendorID != vendorID {
		return ErrForbidden
	}
	return s.repo.Delete(id)
}

// List returns a page of the vendor's shops plus the total count, optionally
// filtered by exact case-insensitive business type.
func (s *ShopService) List(vendorID uuid.UUID, businessType string, page, pageSize int) ([]models.Shop, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	return s.repo.ListByVendor(vendorID, businessType, page, pageSize)
}
