package reservations

import (
	"context"
	"time"

	"cinepass/internal/seats"
	"cinepass/internal/showtimes"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	// CreateReservation books the given seats atomically, holding row locks
	// on the seat set until commit
	CreateReservation(ctx context.Context, userID, showtimeID uuid.UUID, seatIDs []uuid.UUID) (*Reservation, error)

	// CancelReservation frees the seats and marks the reservation cancelled
	CancelReservation(ctx context.Context, userID, reservationID uuid.UUID) (*Reservation, error)

	GetByID(ctx context.Context, id uuid.UUID) (*Reservation, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]Reservation, error)
	GetUpcomingByUserID(ctx context.Context, userID uuid.UUID) ([]Reservation, error)
	GetAll(ctx context.Context) ([]Reservation, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateReservation(ctx context.Context, userID, showtimeID uuid.UUID, seatIDs []uuid.UUID) (*Reservation, error) {
	var created *Reservation

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var showtime showtimes.Showtime
		if err := tx.Where("id = ?", showtimeID).First(&showtime).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrShowtimeNotFound
			}
			return err
		}

		if err := ensureBookable(&showtime, time.Now()); err != nil {
			return err
		}

		// Lock the requested seat rows; racing bookings for the same seats
		// serialize here and the loser sees is_reserved = true
		var seatRows []seats.Seat
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id IN ? AND showtime_id = ?", seatIDs, showtimeID).
			Find(&seatRows).Error; err != nil {
			return err
		}

		if err := validateSeatSelection(seatRows, len(seatIDs)); err != nil {
			return err
		}

		reservation := &Reservation{
			UserID:          userID,
			ShowtimeID:      showtimeID,
			TotalAmount:     bookingTotal(seatRows, showtime.TicketPrice),
			Status:          StatusConfirmed,
			ReservationDate: time.Now(),
		}
		if err := tx.Create(reservation).Error; err != nil {
			return err
		}

		links := make([]ReservationSeat, 0, len(seatRows))
		for i := range seatRows {
			links = append(links, ReservationSeat{
				ReservationID: reservation.ID,
				SeatID:        seatRows[i].ID,
			})
		}
		if err := tx.Create(&links).Error; err != nil {
			return err
		}

		if err := tx.Model(&seats.Seat{}).
			Where("id IN ?", seatIDs).
			Update("is_reserved", true).Error; err != nil {
			return err
		}

		created = reservation
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, created.ID)
}

func (r *repository) CancelReservation(ctx context.Context, userID, reservationID uuid.UUID) (*Reservation, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reservation Reservation
		err := tx.Preload("Showtime").Preload("SeatLinks").
			Where("id = ?", reservationID).First(&reservation).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrReservationNotFound
			}
			return err
		}

		if reservation.UserID != userID {
			return ErrNotOwner
		}

		if reservation.Showtime != nil && reservation.Showtime.StartTime.Before(time.Now()) {
			return ErrShowtimeStarted
		}

		seatIDs := reservation.SeatIDs()
		if len(seatIDs) > 0 {
			if err := tx.Model(&seats.Seat{}).
				Where("id IN ?", seatIDs).
				Update("is_reserved", false).Error; err != nil {
				return err
			}
		}

		return tx.Model(&Reservation{}).
			Where("id = ?", reservationID).
			Update("status", StatusCancelled).Error
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, reservationID)
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	var reservation Reservation
	err := r.db.WithContext(ctx).
		Preload("Showtime").
		Preload("Showtime.Movie").
		Preload("SeatLinks").
		Preload("SeatLinks.Seat").
		Where("id = ?", id).
		First(&reservation).Error
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *repository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]Reservation, error) {
	var result []Reservation
	err := r.db.WithContext(ctx).
		Preload("Showtime").
		Preload("Showtime.Movie").
		Preload("SeatLinks").
		Preload("SeatLinks.Seat").
		Where("user_id = ?", userID).
		Order("reservation_date DESC").
		Find(&result).Error
	return result, err
}

func (r *repository) GetUpcomingByUserID(ctx context.Context, userID uuid.UUID) ([]Reservation, error) {
	var result []Reservation
	err := r.db.WithContext(ctx).
		Preload("Showtime").
		Preload("Showtime.Movie").
		Preload("SeatLinks").
		Preload("SeatLinks.Seat").
		Joins("JOIN showtimes ON showtimes.id = reservations.showtime_id").
		Where("reservations.user_id = ?", userID).
		Where("reservations.status = ?", StatusConfirmed).
		Where("showtimes.start_time > ?", time.Now()).
		Order("showtimes.start_time ASC").
		Find(&result).Error
	return result, err
}

func (r *repository) GetAll(ctx context.Context) ([]Reservation, error) {
	var result []Reservation
	err := r.db.WithContext(ctx).
		Preload("Showtime").
		Preload("Showtime.Movie").
		Preload("User").
		Preload("SeatLinks").
		Preload("SeatLinks.Seat").
		Order("reservation_date DESC").
		Find(&result).Error
	return result, err
}
