package entity

import (
	"time"

	"gorm.io/gorm"
)

// ViewEvent is append-only; rows survive deletion of their post so view
// history stays available for analytics.
type ViewEvent struct {
	gorm.Model
	SalePostID uint      `gorm:"index;not null" json:"salePostId"`
	ViewedAt   time.Time `gorm:"not null" json:"viewedAt"`
	IPHash     string    `gorm:"size:16" json:"-"` // truncated one-way hash, never reversible
}
