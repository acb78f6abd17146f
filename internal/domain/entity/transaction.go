package entity

import (
	"math"
	"time"

	"nebulamarket/pkg/errors"
)

// PlatformFeeRate is the share of every transaction retained by the platform.
const PlatformFeeRate = 0.20

type Transaction struct {
	ID        string `json:"id" gorm:"primaryKey"`
	BuyerID   string `json:"buyer_id" gorm:"not null;index"`
	SellerID  string `json:"seller_id" gorm:"not null;index"`
	ListingID string `json:"listing_id" gorm:"not null;index"`

	Amount       float64 `json:"amount" gorm:"not null"`
	PlatformFee  float64 `json:"platform_fee" gorm:"not null"`
	SellerPayout float64 `json:"seller_payout" gorm:"not null"`

	StripePaymentID string `json:"stripe_payment_id,omitempty"`
	LicenseKey      string `json:"license_key,omitempty"`

	Status    string    `json:"status" gorm:"default:completed"`
	CreatedAt time.Time `json:"created_at"`
}

// NewTransaction builds a purchase record, splitting the amount into platform
// fee and seller payout. Fee is rounded to cents and the payout takes the
// remainder, so payout + fee always equals the gross amount.
func NewTransaction(id, buyerID, sellerID, listingID string, amount float64) (*Transaction, error) {
	if amount <= 0 {
		return nil, errors.Validation("amount must be greater than zero", nil)
	}

	fee := math.Round(amount*PlatformFeeRate*100) / 100

	return &Transaction{
		ID:           id,
		BuyerID:      buyerID,
		SellerID:     sellerID,
		ListingID:    listingID,
		Amount:       amount,
		PlatformFee:  fee,
		SellerPayout: amount - fee,
		Status:       "completed",
		CreatedAt:    time.Now(),
	}, nil
}
