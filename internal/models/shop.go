package models

import (
	"time"

	"github.com/google/uuid"
)

// Shop represents a vendor-owned shop record stored in the database.
type Shop struct {
	ID           uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	VendorID     uuid.UUID `json:"vendor_id" gorm:"type:uuid;not null;index"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	OwnerName    string    `json:"owner_name" gorm:"size:255;not null"`
	BusinessType string    `json:"business_type" gorm:"size:100;index"`
	Latitude     float64   `json:"latitude" gorm:"not null;index:idx_shops_lat_lng,priority:1"`
	Longitude    float64   `json:"longitude" gorm:"not null;index:idx_shops_lat_lng,priority:2"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ShopWithDistance is the nearby-query response shape: a shop plus its
// great-circle distance from the query point. The distance is never persisted.
type ShopWithDistance struct {
	Shop
	DistanceKm float64 `json:"distance_km"`
}
