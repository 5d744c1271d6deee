package repository

import (
	"time"

	"github.com/gislivinna-utsalapp/utsalapp/entity"
	"gorm.io/gorm"
)

type ViewEventRepository struct {
	DB *gorm.DB
}

func NewViewEventRepository(db *gorm.DB) *ViewEventRepository {
	return &ViewEventRepository{DB: db}
}

func (r *ViewEventRepository) Create(salePostID uint, ipHash string) error {
	ev := entity.ViewEvent{
		SalePostID: salePostID,
		ViewedAt:   time.Now(),
		IPHash:     ipHash,
	}
	return r.DB.Create(&ev).Error
}

func (r *ViewEventRepository) CountBySalePost(salePostID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.ViewEvent{}).Where("sale_post_id = ?", salePostID).Count(&count).Error
	return count, err
}
