package reservations

import (
	"time"

	"cinepass/internal/seats"
	"cinepass/internal/showtimes"
)

// ensureBookable rejects bookings for showtimes that have already started
func ensureBookable(showtime *showtimes.Showtime, now time.Time) error {
	if showtime.StartTime.Before(now) {
		return ErrPastShowtime
	}
	return nil
}

// validateSeatSelection checks that every requested seat was found for the
// showtime and that none of them is already taken
func validateSeatSelection(seatRows []seats.Seat, requested int) error {
	if len(seatRows) != requested {
		return ErrSeatsNotFound
	}

	var taken []string
	for i := range seatRows {
		if seatRows[i].IsReserved {
			taken = append(taken, seatRows[i].Label())
		}
	}
	if len(taken) > 0 {
		return &SeatConflictError{Labels: taken}
	}
	return nil
}

// bookingTotal prices a seat set: every seat costs the ticket price, with
// premium and vip seats adding their surcharge on top
func bookingTotal(seatRows []seats.Seat, ticketPrice float64) float64 {
	total := float64(len(seatRows)) * ticketPrice
	for i := range seatRows {
		total += seatRows[i].Surcharge(ticketPrice)
	}
	return total
}
