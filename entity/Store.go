package entity

import (
	"gorm.io/gorm"
)

type Store struct {
	gorm.Model
	Name        string   `gorm:"not null" json:"name"`
	Description string   `json:"description"`
	LogoURL     string   `json:"logoUrl"`
	Address     string   `json:"address"`
	GeoLat      *float64 `json:"geoLat,omitempty"`
	GeoLng      *float64 `json:"geoLng,omitempty"`
	Phone       string   `json:"phone"`
	Website     string   `json:"website"`

	OwnerUserID uint `gorm:"uniqueIndex;not null" json:"ownerUserId"` // users.id, one store per account
	Owner       User `gorm:"foreignKey:OwnerUserID" json:"-"`

	SalePosts []SalePost `json:"-"`
}
