package entity

import (
	"time"
)

// Review is a buyer's feedback tied to one completed transaction. The table
// is migrated alongside the others; no endpoint writes to it yet.
type Review struct {
	ID            string `json:"id" gorm:"primaryKey"`
	ListingID     string `json:"listing_id" gorm:"not null;index"`
	BuyerID       string `json:"buyer_id" gorm:"not null"`
	TransactionID string `json:"transaction_id" gorm:"not null"`

	Rating  int    `json:"rating" gorm:"not null"`
	Title   string `json:"title,omitempty"`
	Comment string `json:"comment,omitempty" gorm:"type:text"`

	VerifiedPurchase bool      `json:"verified_purchase" gorm:"default:true"`
	CreatedAt        time.Time `json:"created_at"`
}
