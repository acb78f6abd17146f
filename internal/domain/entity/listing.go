package entity

import (
	"time"
)

type ListingStatus string

const (
	ListingStatusDraft   ListingStatus = "draft"
	ListingStatusActive  ListingStatus = "active"
	ListingStatusPaused  ListingStatus = "paused"
	ListingStatusSoldOut ListingStatus = "sold_out"
	ListingStatusRemoved ListingStatus = "removed"
)

// Valid reports whether s is one of the five listing lifecycle states.
func (s ListingStatus) Valid() bool {
	switch s {
	case ListingStatusDraft, ListingStatusActive, ListingStatusPaused, ListingStatusSoldOut, ListingStatusRemoved:
		return true
	}
	return false
}

type LicenseType string

const (
	LicenseTypeMIT        LicenseType = "MIT"
	LicenseTypeCommercial LicenseType = "commercial"
	LicenseTypePersonal   LicenseType = "personal"
	LicenseTypeCustom     LicenseType = "custom"
)

type Listing struct {
	ID          string  `json:"id" gorm:"primaryKey"`
	ProjectID   string  `json:"project_id" gorm:"not null"`
	SellerID    string  `json:"seller_id" gorm:"not null;index"`
	Title       string  `json:"title" gorm:"not null"`
	Description string  `json:"description" gorm:"type:text"`
	Price       float64 `json:"price" gorm:"not null"`
	LicenseType string  `json:"license_type" gorm:"not null"`

	Tags     []string `json:"tags" gorm:"serializer:json"`
	Category string   `json:"category" gorm:"index"`

	CurrentSales int  `json:"current_sales" gorm:"default:0"`
	MaxSales     *int `json:"max_sales,omitempty"`

	Views       int     `json:"views" gorm:"default:0"`
	Rating      float64 `json:"rating" gorm:"default:5"`
	ReviewCount int     `json:"review_count" gorm:"default:0"`

	Status        ListingStatus `json:"status" gorm:"not null;default:draft;index"`
	PreviewImages []string      `json:"preview_images" gorm:"serializer:json"`

	CreatedAt   time.Time  `json:"created_at"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}
