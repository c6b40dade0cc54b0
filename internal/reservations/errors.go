package reservations

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrShowtimeNotFound    = errors.New("showtime not found")
	ErrPastShowtime        = errors.New("cannot reserve seats for a past showtime")
	ErrSeatsNotFound       = errors.New("one or more seats not found for this showtime")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrNotOwner            = errors.New("reservation belongs to another user")
	ErrShowtimeStarted     = errors.New("cannot cancel a reservation for a started showtime")
	ErrNoSeatsRequested    = errors.New("at least one seat must be requested")
)

// SeatConflictError carries the labels of seats that are already taken
type SeatConflictError struct {
	Labels []string
}

func (e *SeatConflictError) Error() string {
	return fmt.Sprintf("seats already reserved: %s", strings.Join(e.Labels, ", "))
}
