package seats

import "github.com/google/uuid"

const (
	seatsPerRow = 10
	rowLetters  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// MaxRows is the hard capacity ceiling of a theater layout. Showtimes with
// more than MaxRows*seatsPerRow seats are truncated at row Z.
const MaxRows = len(rowLetters)

// GenerateLayout builds the deterministic seat grid for a showtime.
//
// Rows are lettered from A with seatsPerRow seats each; the last row holds
// the remainder. The first row is premium, and the middle row's seats 3-8
// are vip, with premium taking precedence when the two coincide.
func GenerateLayout(showtimeID uuid.UUID, totalSeats int) []Seat {
	if totalSeats <= 0 {
		return nil
	}

	rowsNeeded := (totalSeats + seatsPerRow - 1) / seatsPerRow
	truncated := rowsNeeded > MaxRows
	if truncated {
		rowsNeeded = MaxRows
	}
	vipRow := rowsNeeded / 2

	layout := make([]Seat, 0, rowsNeeded*seatsPerRow)
	for rowIndex := 0; rowIndex < rowsNeeded; rowIndex++ {
		seatsInRow := seatsPerRow
		if rowIndex == rowsNeeded-1 && !truncated {
			if rem := totalSeats % seatsPerRow; rem != 0 {
				seatsInRow = rem
			}
		}

		row := string(rowLetters[rowIndex])
		for number := 1; number <= seatsInRow; number++ {
			layout = append(layout, Seat{
				ShowtimeID: showtimeID,
				Row:        row,
				Number:     number,
				Type:       classifySeat(rowIndex, vipRow, number),
			})
		}
	}

	return layout
}

// classifySeat assigns the tier: front row premium, middle-row centre vip
func classifySeat(rowIndex, vipRow, number int) SeatType {
	if rowIndex == 0 {
		return TypePremium
	}
	if rowIndex == vipRow && number >= 3 && number <= 8 {
		return TypeVIP
	}
	return TypeStandard
}
