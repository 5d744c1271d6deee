package repository

import (
	"github.com/gislivinna-utsalapp/utsalapp/entity"
	"gorm.io/gorm"
)

type StoreRepository struct {
	DB *gorm.DB
}

func NewStoreRepository(db *gorm.DB) *StoreRepository {
	return &StoreRepository{DB: db}
}

func (r *StoreRepository) FindByID(id uint) (*entity.Store, error) {
	var store entity.Store
	if err := r.DB.First(&store, id).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

// FindByOwner resolves the single store owned by a user account.
func (r *StoreRepository) FindByOwner(userID uint) (*entity.Store, error) {
	var store entity.Store
	if err := r.DB.Where("owner_user_id = ?", userID).First(&store).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *StoreRepository) Create(store *entity.Store) error {
	return r.DB.Create(store).Error
}

// Update applies a partial patch; zero-valued fields in updates are skipped.
func (r *StoreRepository) Update(id uint, updates map[string]any) (*entity.Store, error) {
	var store entity.Store
	if err := r.DB.First(&store, id).Error; err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		return &store, nil
	}
	if err := r.DB.Model(&store).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &store, nil
}
