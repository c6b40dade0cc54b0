package reservations

import (
	"time"

	"cinepass/internal/seats"
	"cinepass/internal/showtimes"
	"cinepass/internal/users"

	"github.com/google/uuid"
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

type Reservation struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	ShowtimeID      uuid.UUID `gorm:"type:uuid;not null;index" json:"showtime_id"`
	TotalAmount     float64   `gorm:"not null" json:"total_amount"`
	Status          Status    `gorm:"type:varchar(20);not null;check:status IN ('confirmed', 'cancelled');default:'confirmed'" json:"status"`
	ReservationDate time.Time `gorm:"not null;index" json:"reservation_date"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Relationships
	Showtime  *showtimes.Showtime `gorm:"foreignKey:ShowtimeID" json:"showtime,omitempty"`
	User      *users.User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	SeatLinks []ReservationSeat   `gorm:"foreignKey:ReservationID;constraint:OnDelete:CASCADE;" json:"seat_links,omitempty"`
}

func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// SeatIDs collects the seat ids linked to this reservation
func (r *Reservation) SeatIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(r.SeatLinks))
	for _, link := range r.SeatLinks {
		ids = append(ids, link.SeatID)
	}
	return ids
}

// ReservationSeat is the join entity linking reservations to seats
type ReservationSeat struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ReservationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reservation_seat_unique" json:"reservation_id"`
	SeatID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reservation_seat_unique" json:"seat_id"`
	CreatedAt     time.Time `json:"created_at"`

	// Relationships
	Seat *seats.Seat `gorm:"foreignKey:SeatID" json:"seat,omitempty"`
}

func (ReservationSeat) TableName() string {
	return "reservation_seats"
}

type CreateReservationRequest struct {
	ShowtimeID uuid.UUID   `json:"showtime_id" binding:"required"`
	SeatIDs    []uuid.UUID `json:"seat_ids" binding:"required,min=1"`
}

// SeatSummary is the per-seat projection embedded in reservation responses
type SeatSummary struct {
	ID     uuid.UUID      `json:"id"`
	Row    string         `json:"row"`
	Number int            `json:"number"`
	Type   seats.SeatType `json:"type"`
}

type ReservationResponse struct {
	ID              uuid.UUID                   `json:"id"`
	UserID          uuid.UUID                   `json:"user_id"`
	Status          Status                      `json:"status"`
	TotalAmount     float64                     `json:"total_amount"`
	ReservationDate time.Time                   `json:"reservation_date"`
	Showtime        *showtimes.ShowtimeResponse `json:"showtime,omitempty"`
	Seats           []SeatSummary               `json:"seats"`
	CreatedAt       time.Time                   `json:"created_at"`
}
