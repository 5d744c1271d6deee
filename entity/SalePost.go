package entity

import (
	"time"

	"gorm.io/gorm"
)

type SalePost struct {
	gorm.Model
	Title         string    `gorm:"not null" json:"title"`
	Description   string    `json:"description"`
	Category      string    `gorm:"not null;index" json:"category"`
	PriceOriginal float64   `gorm:"not null" json:"priceOriginal"`
	PriceSale     float64   `gorm:"not null" json:"priceSale"`
	StartsAt      time.Time `gorm:"not null" json:"startsAt"`
	EndsAt        time.Time `gorm:"not null" json:"endsAt"`
	IsActive      bool      `gorm:"not null;default:true" json:"isActive"`

	StoreID uint  `gorm:"index;not null" json:"storeId"`
	Store   Store `json:"-"`

	Images     []Image     `json:"-"`
	ViewEvents []ViewEvent `json:"-"`
}
