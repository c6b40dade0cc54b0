package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Type identifies the kind of reservation event being published
type Type string

const (
	TypeReservationConfirmed Type = "reservation.confirmed"
	TypeReservationCancelled Type = "reservation.cancelled"
)

// ReservationNotification is the payload published to the reservations topic
// whenever a booking is confirmed or cancelled
type ReservationNotification struct {
	ID            uuid.UUID `json:"id"`
	Type          Type      `json:"type"`
	UserID        string    `json:"user_id"`
	ReservationID string    `json:"reservation_id"`
	ShowtimeID    string    `json:"showtime_id"`
	MovieTitle    string    `json:"movie_title,omitempty"`
	SeatLabels    []string  `json:"seat_labels,omitempty"`
	TotalAmount   float64   `json:"total_amount"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToJSON serializes the notification for the wire
func (n *ReservationNotification) ToJSON() ([]byte, error) {
	return json.Marshal(n)
}

// PartitionKey routes all of one user's notifications to the same partition
// so delivery order is preserved per user
func (n *ReservationNotification) PartitionKey() string {
	if n.UserID != "" {
		return n.UserID
	}
	return n.ReservationID
}
