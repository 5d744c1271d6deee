package repository

import (
	"github.com/gislivinna-utsalapp/utsalapp/entity"
	"gorm.io/gorm"
)

type ImageRepository struct {
	DB *gorm.DB
}

func NewImageRepository(db *gorm.DB) *ImageRepository {
	return &ImageRepository{DB: db}
}

// FindBySalePost returns a post's images in insertion order.
func (r *ImageRepository) FindBySalePost(salePostID uint) ([]entity.Image, error) {
	var images []entity.Image
	err := r.DB.Where("sale_post_id = ?", salePostID).Order("id ASC").Find(&images).Error
	return images, err
}
