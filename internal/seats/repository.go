package seats

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	BulkCreate(ctx context.Context, layout []Seat) error
	GetByShowtimeID(ctx context.Context, showtimeID uuid.UUID) ([]Seat, error)
	CountByShowtimeID(ctx context.Context, showtimeID uuid.UUID) (int64, error)
	DeleteByShowtimeID(ctx context.Context, showtimeID uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) BulkCreate(ctx context.Context, layout []Seat) error {
	if len(layout) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(layout, 100).Error
}

func (r *repository) GetByShowtimeID(ctx context.Context, showtimeID uuid.UUID) ([]Seat, error) {
	var result []Seat
	err := r.db.WithContext(ctx).
		Where("showtime_id = ?", showtimeID).
		Order(`"row" ASC, number ASC`).
		Find(&result).Error
	return result, err
}

func (r *repository) CountByShowtimeID(ctx context.Context, showtimeID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Seat{}).
		Where("showtime_id = ?", showtimeID).Count(&count).Error
	return count, err
}

func (r *repository) DeleteByShowtimeID(ctx context.Context, showtimeID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("showtime_id = ?", showtimeID).Delete(&Seat{}).Error
}
