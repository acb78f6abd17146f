package entity

import (
	"time"
)

type User struct {
	ID       string `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`

	WalletBalance float64 `json:"wallet_balance" gorm:"default:0"`
	TotalEarnings float64 `json:"total_earnings" gorm:"default:0"`
	TotalSpent    float64 `json:"total_spent" gorm:"default:0"`

	SellerRating float64 `json:"seller_rating" gorm:"default:5"`
	TotalSales   int     `json:"total_sales" gorm:"default:0"`

	StripeCustomerID string `json:"stripe_customer_id,omitempty"`
	StripeAccountID  string `json:"stripe_account_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	Listings []Listing `json:"listings,omitempty" gorm:"foreignKey:SellerID"`
}
