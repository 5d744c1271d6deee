package entity

import (
	"gorm.io/gorm"
)

// Favorite is migrated but not served by any route yet: the client keeps its
// favorite set locally. The unique index keeps a future server-backed
// implementation duplicate-free.
type Favorite struct {
	gorm.Model
	UserID     uint `gorm:"uniqueIndex:idx_favorites_user_post;not null" json:"userId"`
	SalePostID uint `gorm:"uniqueIndex:idx_favorites_user_post;not null" json:"salePostId"`
}
