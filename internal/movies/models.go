package movies

import (
	"time"

	"cinepass/internal/genres"

	"github.com/google/uuid"
)

type Movie struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title       string    `gorm:"not null;index" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	PosterImage string    `json:"poster_image,omitempty"`
	Duration    int       `gorm:"not null" json:"duration"` // minutes
	ReleaseDate time.Time `json:"release_date"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateMovieRequest struct {
	Title       string    `json:"title" binding:"required,min=1,max=255"`
	Description string    `json:"description" binding:"required"`
	PosterImage string    `json:"poster_image,omitempty"`
	Duration    int       `json:"duration" binding:"required,min=1"`
	ReleaseDate time.Time `json:"release_date" binding:"required"`
	IsActive    *bool     `json:"is_active,omitempty"`
	Genres      []string  `json:"genres,omitempty"`
}

type UpdateMovieRequest struct {
	Title       *string    `json:"title,omitempty" binding:"omitempty,min=1,max=255"`
	Description *string    `json:"description,omitempty"`
	PosterImage *string    `json:"poster_image,omitempty"`
	Duration    *int       `json:"duration,omitempty" binding:"omitempty,min=1"`
	ReleaseDate *time.Time `json:"release_date,omitempty"`
	IsActive    *bool      `json:"is_active,omitempty"`
	Genres      []string   `json:"genres,omitempty"`
}

type MovieResponse struct {
	ID          uuid.UUID              `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	PosterImage string                 `json:"poster_image,omitempty"`
	Duration    int                    `json:"duration"`
	ReleaseDate time.Time              `json:"release_date"`
	IsActive    bool                   `json:"is_active"`
	Genres      []genres.GenreResponse `json:"genres"`
	CreatedAt   time.Time              `json:"created_at"`
}
