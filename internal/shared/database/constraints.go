package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds critical database constraints for concurrency control
func MigrateConstraints(db *gorm.DB) error {
	// A seat position exists once per showtime
	err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS unique_seat_per_showtime
		ON seats (showtime_id, "row", number);
	`).Error
	if err != nil {
		return err
	}

	// A seat can be linked to a reservation at most once
	err = db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS unique_seat_per_reservation
		ON reservation_seats (reservation_id, seat_id);
	`).Error
	if err != nil {
		return err
	}

	// Deleting a movie removes its showtimes, and deleting a showtime its seats
	err = db.Exec(`
		ALTER TABLE showtimes
		DROP CONSTRAINT IF EXISTS fk_showtimes_movie,
		ADD CONSTRAINT fk_showtimes_movie
		FOREIGN KEY (movie_id) REFERENCES movies (id) ON DELETE CASCADE;
	`).Error
	if err != nil {
		return err
	}

	err = db.Exec(`
		ALTER TABLE seats
		DROP CONSTRAINT IF EXISTS fk_seats_showtime,
		ADD CONSTRAINT fk_seats_showtime
		FOREIGN KEY (showtime_id) REFERENCES showtimes (id) ON DELETE CASCADE;
	`).Error
	if err != nil {
		return err
	}

	// Index for seat availability scans per showtime
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_seats_showtime_reserved
		ON seats (showtime_id, is_reserved);
	`).Error
	if err != nil {
		return err
	}

	// Index for report queries over the reservation date range
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_reservations_date_status
		ON reservations (reservation_date, status);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
