package reports

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	RevenueByStatus(ctx context.Context, start, end time.Time) ([]RevenueByStatus, error)
	TopMovies(ctx context.Context, start, end time.Time, limit int) ([]TopMovie, error)
	TheaterOccupancy(ctx context.Context, start, end time.Time) ([]TheaterOccupancy, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) RevenueByStatus(ctx context.Context, start, end time.Time) ([]RevenueByStatus, error) {
	var rows []RevenueByStatus
	err := r.db.WithContext(ctx).
		Table("reservations").
		Select("status, COALESCE(SUM(total_amount), 0) AS total_revenue, COUNT(id) AS reservation_count").
		Where("reservation_date BETWEEN ? AND ?", start, end).
		Group("status").
		Order("status ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) TopMovies(ctx context.Context, start, end time.Time, limit int) ([]TopMovie, error) {
	var rows []TopMovie
	err := r.db.WithContext(ctx).
		Table("movies").
		Select("movies.id AS movie_id, movies.title, COUNT(reservations.id) AS reservation_count, COALESCE(SUM(reservations.total_amount), 0) AS total_revenue").
		Joins("JOIN showtimes ON showtimes.movie_id = movies.id").
		Joins("JOIN reservations ON reservations.showtime_id = showtimes.id").
		Where("reservations.reservation_date BETWEEN ? AND ?", start, end).
		Where("reservations.status = ?", "confirmed").
		Group("movies.id, movies.title").
		Order("reservation_count DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) TheaterOccupancy(ctx context.Context, start, end time.Time) ([]TheaterOccupancy, error) {
	var rows []TheaterOccupancy
	err := r.db.WithContext(ctx).
		Table("showtimes").
		Select(`theater, AVG(
			(SELECT COUNT(*) FROM seats WHERE seats.showtime_id = showtimes.id AND seats.is_reserved = true)
			/ CAST(showtimes.total_seats AS FLOAT) * 100
		) AS occupancy_rate`).
		Where("start_time BETWEEN ? AND ?", start, end).
		Group("theater").
		Order("theater ASC").
		Scan(&rows).Error
	return rows, err
}
