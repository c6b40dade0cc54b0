package showtimes

import (
	"time"

	"cinepass/internal/movies"

	"github.com/google/uuid"
)

type Showtime struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	MovieID     uuid.UUID `gorm:"type:uuid;not null;index" json:"movie_id"`
	StartTime   time.Time `gorm:"not null;index" json:"start_time"`
	EndTime     time.Time `gorm:"not null" json:"end_time"`
	Theater     int       `gorm:"not null;index" json:"theater"`
	TicketPrice float64   `gorm:"not null" json:"ticket_price"`
	TotalSeats  int       `gorm:"not null" json:"total_seats"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	Movie *movies.Movie `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;" json:"movie,omitempty"`
}

type CreateShowtimeRequest struct {
	MovieID     uuid.UUID `json:"movie_id" binding:"required"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
	Theater     int       `json:"theater" binding:"required,min=1"`
	TicketPrice float64   `json:"ticket_price" binding:"required,gt=0"`
	TotalSeats  int       `json:"total_seats" binding:"required,min=1"`
}

type UpdateShowtimeRequest struct {
	MovieID     *uuid.UUID `json:"movie_id,omitempty"`
	StartTime   *time.Time `json:"start_time,omitempty"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	Theater     *int       `json:"theater,omitempty" binding:"omitempty,min=1"`
	TicketPrice *float64   `json:"ticket_price,omitempty" binding:"omitempty,gt=0"`
	IsActive    *bool      `json:"is_active,omitempty"`
}

// MovieSummary is the slim movie projection embedded in showtime responses
type MovieSummary struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	PosterImage string    `json:"poster_image,omitempty"`
	Duration    int       `json:"duration"`
}

type ShowtimeResponse struct {
	ID          uuid.UUID     `json:"id"`
	Movie       *MovieSummary `json:"movie,omitempty"`
	StartTime   time.Time     `json:"start_time"`
	EndTime     time.Time     `json:"end_time"`
	Theater     int           `json:"theater"`
	TicketPrice float64       `json:"ticket_price"`
	TotalSeats  int           `json:"total_seats"`
	IsActive    bool          `json:"is_active"`
	CreatedAt   time.Time     `json:"created_at"`
}

func toMovieSummary(m *movies.Movie) *MovieSummary {
	if m == nil {
		return nil
	}
	return &MovieSummary{
		ID:          m.ID,
		Title:       m.Title,
		PosterImage: m.PosterImage,
		Duration:    m.Duration,
	}
}

func ToResponse(st *Showtime) *ShowtimeResponse {
	return &ShowtimeResponse{
		ID:          st.ID,
		Movie:       toMovieSummary(st.Movie),
		StartTime:   st.StartTime,
		EndTime:     st.EndTime,
		Theater:     st.Theater,
		TicketPrice: st.TicketPrice,
		TotalSeats:  st.TotalSeats,
		IsActive:    st.IsActive,
		CreatedAt:   st.CreatedAt,
	}
}
