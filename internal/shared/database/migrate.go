package database

import (
	"cinepass/internal/genres"
	"cinepass/internal/movies"
	"cinepass/internal/reservations"
	"cinepass/internal/seats"
	"cinepass/internal/showtimes"
	"cinepass/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&users.Role{},
		&genres.Genre{},
		&genres.MovieGenre{},
		&movies.Movie{},
		&showtimes.Showtime{},
		&seats.Seat{},
		&reservations.Reservation{},
		&reservations.ReservationSeat{},
	)
}

// SeedRoles inserts the fixed role set if missing. Role names are a closed
// enum; nothing outside this set is ever created.
func SeedRoles(db *gorm.DB) error {
	for _, name := range users.AllRoleNames() {
		role := users.Role{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&role).Error; err != nil {
			return err
		}
	}
	return nil
}
