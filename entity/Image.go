package entity

import (
	"gorm.io/gorm"
)

type Image struct {
	gorm.Model
	SalePostID uint   `gorm:"index;not null" json:"salePostId"`
	URL        string `gorm:"not null" json:"url"`
	Alt        string `json:"alt"`
}
