package movies

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, movie *Movie) error
	GetByID(ctx context.Context, id uuid.UUID) (*Movie, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Movie, error)
	GetAll(ctx context.Context) ([]Movie, error)
	GetActive(ctx context.Context) ([]Movie, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Movie, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, movie *Movie) error {
	return r.db.WithContext(ctx).Create(movie).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Movie, error) {
	var movie Movie
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&movie).Error
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *repository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Movie, error) {
	var result []Movie
	if len(ids) == 0 {
		return result, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("title ASC").Find(&result).Error
	return result, err
}

func (r *repository) GetAll(ctx context.Context) ([]Movie, error) {
	var result []Movie
	err := r.db.WithContext(ctx).Order("release_date DESC").Find(&result).Error
	return result, err
}

func (r *repository) GetActive(ctx context.Context) ([]Movie, error) {
	var result []Movie
	err := r.db.WithContext(ctx).Where("is_active = ?", true).
		Order("release_date DESC").Find(&result).Error
	return result, err
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Movie, error) {
	var movie Movie
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&movie).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&movie).Updates(updates).Error; err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Movie{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
