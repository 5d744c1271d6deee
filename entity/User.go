package entity

import (
	"gorm.io/gorm"
)

const (
	RoleStore = "store"
	RoleAdmin = "admin"
)

type User struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `json:"-"`
	Role         string `gorm:"not null;default:store" json:"role"`

	// Relations — preload only when needed
	Store     *Store     `gorm:"foreignKey:OwnerUserID" json:"-"`
	Favorites []Favorite `json:"-"`
}
