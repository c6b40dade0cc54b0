package showtimes

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, showtime *Showtime) error
	GetByID(ctx context.Context, id uuid.UUID) (*Showtime, error)
	GetAll(ctx context.Context) ([]Showtime, error)
	GetByDate(ctx context.Context, dayStart, dayEnd time.Time) ([]Showtime, error)
	GetByMovieID(ctx context.Context, movieID uuid.UUID) ([]Showtime, error)
	FindConflicting(ctx context.Context, theater int, start, end time.Time, excludeID *uuid.UUID) (*Showtime, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Showtime, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, showtime *Showtime) error {
	return r.db.WithContext(ctx).Create(showtime).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Showtime, error) {
	var showtime Showtime
	err := r.db.WithContext(ctx).Preload("Movie").Where("id = ?", id).First(&showtime).Error
	if err != nil {
		return nil, err
	}
	return &showtime, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Showtime, error) {
	var result []Showtime
	err := r.db.WithContext(ctx).Preload("Movie").
		Order("start_time ASC").Find(&result).Error
	return result, err
}

func (r *repository) GetByDate(ctx context.Context, dayStart, dayEnd time.Time) ([]Showtime, error) {
	var result []Showtime
	err := r.db.WithContext(ctx).Preload("Movie").
		Where("start_time >= ? AND start_time < ?", dayStart, dayEnd).
		Where("is_active = ?", true).
		Order("start_time ASC").
		Find(&result).Error
	return result, err
}

func (r *repository) GetByMovieID(ctx context.Context, movieID uuid.UUID) ([]Showtime, error) {
	var result []Showtime
	err := r.db.WithContext(ctx).Preload("Movie").
		Where("movie_id = ?", movieID).
		Where("start_time > ?", time.Now()).
		Where("is_active = ?", true).
		Order("start_time ASC").
		Find(&result).Error
	return result, err
}

// FindConflicting returns a showtime in the same theater whose interval
// overlaps [start, end]: its start falls inside the new window, its end
// falls inside the new window, or it encloses the new window entirely.
// Returns nil when the theater is free.
func (r *repository) FindConflicting(ctx context.Context, theater int, start, end time.Time, excludeID *uuid.UUID) (*Showtime, error) {
	query := r.db.WithContext(ctx).
		Where("theater = ?", theater).
		Where(
			"(start_time BETWEEN ? AND ?) OR (end_time BETWEEN ? AND ?) OR (start_time <= ? AND end_time >= ?)",
			start, end, start, end, start, end,
		)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var conflict Showtime
	err := query.First(&conflict).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conflict, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Showtime, error) {
	var showtime Showtime
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&showtime).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&showtime).Updates(updates).Error; err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Showtime{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
