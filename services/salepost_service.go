package services

import (
	"errors"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/gislivinna-utsalapp/utsalapp/entity"
	"github.com/gislivinna-utsalapp/utsalapp/repository"
	"gorm.io/gorm"
)

const (
	SortRecent   = "recent"
	SortDiscount = "discount"
)

// SalePostWithDetails is the read-facing aggregate: a post joined with its
// store, images and view count, plus the derived discount. It is recomputed
// on every read and never stored.
type SalePostWithDetails struct {
	entity.SalePost
	Store           entity.Store   `json:"store"`
	Images          []entity.Image `json:"images"`
	ViewCount       int64          `json:"viewCount"`
	DiscountPercent int            `json:"discountPercent"`
}

// FilterSpec drives one listing query. StoreID/Category/Search/ActiveOnly are
// pushed down to the repository; the rest needs aggregated values first.
type FilterSpec struct {
	StoreID     uint
	Category    string
	Search      string
	ActiveOnly  bool
	MinPrice    *float64
	MaxPrice    *float64
	MinDiscount *int
	SortBy      string
	Page        int // 1-based; 0 disables paging
	PageSize    int
}

type SalePostService struct {
	DB     *gorm.DB
	Posts  *repository.SalePostRepository
	Stores *repository.StoreRepository
	Images *repository.ImageRepository
	Views  *repository.ViewEventRepository
}

func NewSalePostService(db *gorm.DB) *SalePostService {
	return &SalePostService{
		DB:     db,
		Posts:  repository.NewSalePostRepository(db),
		Stores: repository.NewStoreRepository(db),
		Images: repository.NewImageRepository(db),
		Views:  repository.NewViewEventRepository(db),
	}
}

// DiscountPercent is the integer percentage saved. Callers guarantee
// priceOriginal > 0 (creation rejects anything else).
func DiscountPercent(priceOriginal, priceSale float64) int {
	return int(math.Round((1 - priceSale/priceOriginal) * 100))
}

// WithDetails expands one post. A post whose store is gone is orphaned and
// reported as ErrNotFound so it never surfaces to clients.
func (s *SalePostService) WithDetails(post *entity.SalePost) (*SalePostWithDetails, error) {
	store, err := s.Stores.FindByID(post.StoreID)
	if err != nil {
		return nil, notFoundOr(err)
	}

	images, err := s.Images.FindBySalePost(post.ID)
	if err != nil {
		return nil, err
	}

	viewCount, err := s.Views.CountBySalePost(post.ID)
	if err != nil {
		return nil, err
	}

	return &SalePostWithDetails{
		SalePost:        *post,
		Store:           *store,
		Images:          images,
		ViewCount:       viewCount,
		DiscountPercent: DiscountPercent(post.PriceOriginal, post.PriceSale),
	}, nil
}

// WithDetailsBatch expands many posts, silently dropping orphans: one bad
// record must not fail the whole listing.
func (s *SalePostService) WithDetailsBatch(posts []entity.SalePost) ([]SalePostWithDetails, error) {
	details := make([]SalePostWithDetails, 0, len(posts))
	for i := range posts {
		d, err := s.WithDetails(&posts[i])
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		details = append(details, *d)
	}
	return details, nil
}

// DetailByID is the single-item read path.
func (s *SalePostService) DetailByID(id uint) (*SalePostWithDetails, error) {
	post, err := s.Posts.FindByID(id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return s.WithDetails(post)
}

// Query runs the two-phase pipeline: structural filters in the repository,
// then aggregation, then derived-value filters, sorting and paging.
func (s *SalePostService) Query(spec FilterSpec) ([]SalePostWithDetails, error) {
	posts, err := s.Posts.FindFiltered(repository.SalePostFilter{
		StoreID:    spec.StoreID,
		Category:   spec.Category,
		Search:     spec.Search,
		ActiveOnly: spec.ActiveOnly,
		Now:        time.Now(),
	})
	if err != nil {
		return nil, err
	}

	details, err := s.WithDetailsBatch(posts)
	if err != nil {
		return nil, err
	}

	filtered := make([]SalePostWithDetails, 0, len(details))
	for _, d := range details {
		if spec.MinPrice != nil && d.PriceSale < *spec.MinPrice {
			continue
		}
		if spec.MaxPrice != nil && d.PriceSale > *spec.MaxPrice {
			continue
		}
		if spec.MinDiscount != nil && d.DiscountPercent < *spec.MinDiscount {
			continue
		}
		filtered = append(filtered, d)
	}

	if spec.SortBy == SortDiscount {
		// stable: equal discounts keep the newest-first repository order
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].DiscountPercent > filtered[j].DiscountPercent
		})
	}

	return paginate(filtered, spec.Page, spec.PageSize), nil
}

func paginate(items []SalePostWithDetails, page, size int) []SalePostWithDetails {
	if size <= 0 {
		return items
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []SalePostWithDetails{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

type ImageInput struct {
	URL string `json:"url" binding:"required"`
	Alt string `json:"alt"`
}

type CreateSalePostInput struct {
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Category      string       `json:"category"`
	PriceOriginal float64      `json:"priceOriginal"`
	PriceSale     float64      `json:"priceSale"`
	StartsAt      time.Time    `json:"startsAt"`
	EndsAt        time.Time    `json:"endsAt"`
	Images        []ImageInput `json:"images"`
}

func (in *CreateSalePostInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return invalid("title", "required")
	}
	if !entity.ValidCategory(in.Category) {
		return invalid("category", "unknown category")
	}
	if in.PriceOriginal <= 0 {
		return invalid("priceOriginal", "must be positive")
	}
	if in.PriceSale <= 0 {
		return invalid("priceSale", "must be positive")
	}
	if in.PriceSale >= in.PriceOriginal {
		return invalid("priceSale", "must be below priceOriginal")
	}
	if !in.StartsAt.Before(in.EndsAt) {
		return invalid("endsAt", "must be after startsAt")
	}
	if len(in.Images) == 0 {
		return invalid("images", "at least one image required")
	}
	return nil
}

// Create persists a post and its images as one unit. The transaction rolls
// the post back if any image write fails, so an image-less post can never
// become visible.
func (s *SalePostService) Create(storeID uint, in CreateSalePostInput) (*SalePostWithDetails, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	// the target store must exist, or the new post would be born orphaned
	if _, err := s.Stores.FindByID(storeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalid("storeId", "no such store")
		}
		return nil, err
	}

	post := entity.SalePost{
		Title:         strings.TrimSpace(in.Title),
		Description:   in.Description,
		Category:      in.Category,
		PriceOriginal: in.PriceOriginal,
		PriceSale:     in.PriceSale,
		StartsAt:      in.StartsAt,
		EndsAt:        in.EndsAt,
		IsActive:      true,
		StoreID:       storeID,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&post).Error; err != nil {
			return err
		}
		images := make([]entity.Image, 0, len(in.Images))
		for _, im := range in.Images {
			images = append(images, entity.Image{SalePostID: post.ID, URL: im.URL, Alt: im.Alt})
		}
		return tx.Create(&images).Error
	})
	if err != nil {
		return nil, err
	}

	return s.DetailByID(post.ID)
}

type UpdateSalePostInput struct {
	Title         *string      `json:"title"`
	Description   *string      `json:"description"`
	Category      *string      `json:"category"`
	PriceOriginal *float64     `json:"priceOriginal"`
	PriceSale     *float64     `json:"priceSale"`
	StartsAt      *time.Time   `json:"startsAt"`
	EndsAt        *time.Time   `json:"endsAt"`
	IsActive      *bool        `json:"isActive"`
	Images        []ImageInput `json:"images"` // nil keeps existing images
}

// Update applies a partial patch, re-validating the merged record so a patch
// can never break price ordering or the time window. Replacing images happens
// in the same transaction as the field update.
func (s *SalePostService) Update(id uint, in UpdateSalePostInput) (*SalePostWithDetails, error) {
	post, err := s.Posts.FindByID(id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	merged := *post
	if in.Title != nil {
		merged.Title = *in.Title
	}
	if in.Description != nil {
		merged.Description = *in.Description
	}
	if in.Category != nil {
		merged.Category = *in.Category
	}
	if in.PriceOriginal != nil {
		merged.PriceOriginal = *in.PriceOriginal
	}
	if in.PriceSale != nil {
		merged.PriceSale = *in.PriceSale
	}
	if in.StartsAt != nil {
		merged.StartsAt = *in.StartsAt
	}
	if in.EndsAt != nil {
		merged.EndsAt = *in.EndsAt
	}
	if in.IsActive != nil {
		merged.IsActive = *in.IsActive
	}

	check := CreateSalePostInput{
		Title:         merged.Title,
		Category:      merged.Category,
		PriceOriginal: merged.PriceOriginal,
		PriceSale:     merged.PriceSale,
		StartsAt:      merged.StartsAt,
		EndsAt:        merged.EndsAt,
		Images:        []ImageInput{{URL: "keep"}}, // image presence checked separately below
	}
	if err := check.validate(); err != nil {
		return nil, err
	}
	if in.Images != nil && len(in.Images) == 0 {
		return nil, invalid("images", "at least one image required")
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&merged).Error; err != nil {
			return err
		}
		if in.Images == nil {
			return nil
		}
		if err := tx.Unscoped().Where("sale_post_id = ?", id).Delete(&entity.Image{}).Error; err != nil {
			return err
		}
		images := make([]entity.Image, 0, len(in.Images))
		for _, im := range in.Images {
			images = append(images, entity.Image{SalePostID: id, URL: im.URL, Alt: im.Alt})
		}
		return tx.Create(&images).Error
	})
	if err != nil {
		return nil, err
	}

	return s.DetailByID(id)
}

// Delete removes a post and its images. Images go first so a concurrent read
// cannot see a post-less image set. View events are kept (see entity.ViewEvent).
func (s *SalePostService) Delete(id uint) error {
	if _, err := s.Posts.FindByID(id); err != nil {
		return notFoundOr(err)
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("sale_post_id = ?", id).Delete(&entity.Image{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&entity.SalePost{}, id).Error
	})
}

// RecordView appends one view event. No identity dedup: the upstream rate
// limiter bounds abuse, genuine repeat views all count.
func (s *SalePostService) RecordView(salePostID uint, ipHash string) error {
	return s.Views.Create(salePostID, ipHash)
}
