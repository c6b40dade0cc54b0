package genres

import (
	"time"

	"github.com/google/uuid"
)

type Genre struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MovieGenre is the join entity linking movies to genres
type MovieGenre struct {
	ID      uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	MovieID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_movie_genre_unique" json:"movie_id"`
	GenreID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_movie_genre_unique" json:"genre_id"`

	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Genre *Genre `gorm:"foreignKey:GenreID;constraint:OnDelete:CASCADE;" json:"genre,omitempty"`
}

func (MovieGenre) TableName() string {
	return "movie_genres"
}

type GenreResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
