package services

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AgiAbhishek/Vendor-shop/internal/models"
)

// fakeShopRepo is an in-memory ShopRepository. RangeQuery returns candidates
// in insertion order so tie-order tests are deterministic.
type fakeShopRepo struct {
	shops      []models.Shop
	rangeCalls [][4]float64
}

func (f *fakeShopRepo) Create(shop *models.Shop) error {
	f.shops = append(f.shops, *shop)
	return nil
}

func (f *fakeShopRepo) GetByID(id uuid.UUID) (*models.Shop, error) {
	for i := range f.shops {
		if f.shops[i].ID == id {
			shop := f.shops[i]
			return &shop, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeShopRepo) Update(shop *models.Shop) error {
	for i := range f.shops {
		if f.shops[i].ID == shop.ID {
			f.shops[i] = *shop
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeShopRepo) Delete(id uuid.UUID) error {
	for i := range f.shops {
		if f.shops[i].ID == id {
			f.shops = append(f.shops[:i], f.shops[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeShopRepo) ListByVendor(vendorID uuid.UUID, businessType string, page, pageSize int) ([]models.Shop, int64, error) {
	var matched []models.Shop
	for _, shop := range f.shops {
		if shop.VendorID != vendorID {
			continue
		}
		if businessType != "" && !strings.EqualFold(shop.BusinessType, businessType) {
			continue
		}
		matched = append(matched, shop)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := (page - 1) * pageSize
	if start > len(matched) {
		start = len(matched)
	}
	end := start + pageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (f *fakeShopRepo) RangeQuery(latMin, latMax, lngMin, lngMax float64) ([]models.Shop, error) {
	f.rangeCalls = append(f.rangeCalls, [4]float64{latMin, latMax, lngMin, lngMax})

	var matched []models.Shop
	for _, shop := range f.shops {
		if shop.Latitude >= latMin && shop.Latitude <= latMax &&
			shop.Longitude >= lngMin && shop.Longitude <= lngMax {
			matched = append(matched, shop)
		}
	}
	return matched, nil
}

// fakeVendorRepo is an in-memory VendorRepository enforcing unique usernames
// and emails the way the TranslateError gorm connection does.
type fakeVendorRepo struct {
	vendors []models.Vendor
}

func (f *fakeVendorRepo) Create(vendor *models.Vendor) error {
	for _, v := range f.vendors {
		if v.Username == vendor.Username || v.Email == vendor.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	f.vendors = append(f.vendors, *vendor)
	return nil
}

func (f *fakeVendorRepo) GetByUsername(username string) (*models.Vendor, error) {
	for i := range f.vendors {
		if f.vendors[i].Username == username {
			vendor := f.vendors[i]
			return &vendor, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeVendorRepo) GetByID(id uuid.UUID) (*models.Vendor, error) {
	for i := range f.vendors {
		if f.vendors[i].ID == id {
			vendor := f.vendors[i]
			return &vendor, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func f64(v float64) *float64 { return &v }

func strp(v string) *string { return &v }
