package repository

import (
	"strings"
	"time"

	"github.com/gislivinna-utsalapp/utsalapp/entity"
	"gorm.io/gorm"
)

type SalePostRepository struct {
	DB *gorm.DB
}

func NewSalePostRepository(db *gorm.DB) *SalePostRepository {
	return &SalePostRepository{DB: db}
}

// SalePostFilter narrows candidates on raw columns before any aggregation.
// Derived-value filters (price bounds, min discount) are applied later by the
// service, once details have been joined in.
type SalePostFilter struct {
	StoreID    uint
	Category   string
	Search     string
	ActiveOnly bool
	Now        time.Time
}

func (r *SalePostRepository) FindByID(id uint) (*entity.SalePost, error) {
	var post entity.SalePost
	if err := r.DB.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// FindFiltered returns matching posts newest-first. Ordering here doubles as
// the tie-break for discount sorting downstream.
//
// The text search runs in Go, not SQL: sqlite's LOWER folds ASCII only, and
// titles are Icelandic. strings.ToLower folds the full range, so "úlpur"
// finds "Úlpur".
func (r *SalePostRepository) FindFiltered(f SalePostFilter) ([]entity.SalePost, error) {
	q := r.DB

	if f.StoreID != 0 {
		q = q.Where("store_id = ?", f.StoreID)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.ActiveOnly {
		// both window boundaries count as on sale
		q = q.Where("is_active = ? AND starts_at <= ? AND ends_at >= ?", true, f.Now, f.Now)
	}

	var posts []entity.SalePost
	if err := q.Order("created_at DESC, id DESC").Find(&posts).Error; err != nil {
		return nil, err
	}

	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		matched := posts[:0]
		for _, p := range posts {
			if strings.Contains(strings.ToLower(p.Title), needle) ||
				strings.Contains(strings.ToLower(p.Description), needle) {
				matched = append(matched, p)
			}
		}
		posts = matched
	}

	return posts, nil
}
