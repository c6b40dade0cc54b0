package seats

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type SeatType string

const (
	TypeStandard SeatType = "standard"
	TypePremium  SeatType = "premium"
	TypeVIP      SeatType = "vip"
)

// Surcharge multipliers applied on top of the showtime ticket price
const (
	PremiumSurcharge = 0.2
	VIPSurcharge     = 0.5
)

type Seat struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ShowtimeID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_showtime_row_number" json:"showtime_id"`
	Row        string    `gorm:"type:varchar(1);not null;uniqueIndex:idx_showtime_row_number" json:"row"`
	Number     int       `gorm:"not null;uniqueIndex:idx_showtime_row_number" json:"number"`
	Type       SeatType  `gorm:"type:varchar(10);not null;default:'standard'" json:"type"`
	IsReserved bool      `gorm:"not null;default:false" json:"is_reserved"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Label renders the human-readable seat name, e.g. "B7"
func (s *Seat) Label() string {
	return fmt.Sprintf("%s%d", s.Row, s.Number)
}

// Surcharge returns the per-seat price addition for the given base price
func (s *Seat) Surcharge(basePrice float64) float64 {
	switch s.Type {
	case TypePremium:
		return basePrice * PremiumSurcharge
	case TypeVIP:
		return basePrice * VIPSurcharge
	default:
		return 0
	}
}
