package reservations

import (
	"context"
	"errors"
	"sort"

	"cinepass/internal/notifications"
	"cinepass/internal/seats"
	"cinepass/internal/showtimes"
	"cinepass/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service interface {
	CreateReservation(ctx context.Context, userID uuid.UUID, req CreateReservationRequest) (*ReservationResponse, error)
	CancelReservation(ctx context.Context, userID, reservationID uuid.UUID) (*ReservationResponse, error)
	GetUserReservations(ctx context.Context, userID uuid.UUID) ([]ReservationResponse, error)
	GetUserUpcomingReservations(ctx context.Context, userID uuid.UUID) ([]ReservationResponse, error)
	GetAllReservations(ctx context.Context) ([]ReservationResponse, error)
	GetReservationByID(ctx context.Context, id uuid.UUID) (*ReservationResponse, error)
}

type service struct {
	repo        Repository
	seatService seats.Service
	producer    notifications.Producer
	log         *logger.Logger
}

// NewService wires the reservation engine. The producer may be nil when
// Kafka notifications are disabled.
func NewService(repo Repository, seatService seats.Service, producer notifications.Producer) Service {
	return &service{
		repo:        repo,
		seatService: seatService,
		producer:    producer,
		log:         logger.GetDefault(),
	}
}

func (s *service) CreateReservation(ctx context.Context, userID uuid.UUID, req CreateReservationRequest) (*ReservationResponse, error) {
	seatIDs := dedupeSeatIDs(req.SeatIDs)
	if len(seatIDs) == 0 {
		return nil, ErrNoSeatsRequested
	}

	reservation, err := s.repo.CreateReservation(ctx, userID, req.ShowtimeID, seatIDs)
	if err != nil {
		return nil, err
	}

	s.seatService.InvalidateSeatMap(ctx, reservation.ShowtimeID)
	s.log.LogReservationCreated(ctx, reservation.ID.String(), reservation.ShowtimeID.String(),
		userID.String(), len(seatIDs))
	s.publish(reservation, notifications.TypeReservationConfirmed)

	return toResponse(reservation), nil
}

func (s *service) CancelReservation(ctx context.Context, userID, reservationID uuid.UUID) (*ReservationResponse, error) {
	reservation, err := s.repo.CancelReservation(ctx, userID, reservationID)
	if err != nil {
		return nil, err
	}

	s.seatService.InvalidateSeatMap(ctx, reservation.ShowtimeID)
	s.log.LogReservationCancelled(ctx, reservation.ID.String(), reservation.ShowtimeID.String(), userID.String())
	s.publish(reservation, notifications.TypeReservationCancelled)

	return toResponse(reservation), nil
}

func (s *service) GetUserReservations(ctx context.Context, userID uuid.UUID) ([]ReservationResponse, error) {
	found, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toResponses(found), nil
}

func (s *service) GetUserUpcomingReservations(ctx context.Context, userID uuid.UUID) ([]ReservationResponse, error) {
	found, err := s.repo.GetUpcomingByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toResponses(found), nil
}

func (s *service) GetAllReservations(ctx context.Context) ([]ReservationResponse, error) {
	found, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(found), nil
}

func (s *service) GetReservationByID(ctx context.Context, id uuid.UUID) (*ReservationResponse, error) {
	reservation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return toResponse(reservation), nil
}

// publish sends a best-effort Kafka notification; failures never fail the
// booking path
func (s *service) publish(reservation *Reservation, notificationType notifications.Type) {
	if s.producer == nil {
		return
	}

	notification := buildNotification(reservation, notificationType)
	go func() {
		if err := s.producer.Publish(context.Background(), notification); err != nil {
			s.log.Warn("failed to publish reservation notification",
				"reservation_id", reservation.ID.String(),
				"type", string(notificationType),
				"error", err.Error())
		}
	}()
}

func buildNotification(reservation *Reservation, notificationType notifications.Type) *notifications.ReservationNotification {
	notification := &notifications.ReservationNotification{
		Type:          notificationType,
		UserID:        reservation.UserID.String(),
		ReservationID: reservation.ID.String(),
		ShowtimeID:    reservation.ShowtimeID.String(),
		TotalAmount:   reservation.TotalAmount,
	}

	if reservation.Showtime != nil && reservation.Showtime.Movie != nil {
		notification.MovieTitle = reservation.Showtime.Movie.Title
	}
	for _, link := range reservation.SeatLinks {
		if link.Seat != nil {
			notification.SeatLabels = append(notification.SeatLabels, link.Seat.Label())
		}
	}

	return notification
}

func dedupeSeatIDs(ids []uuid.UUID) []uuid.UUID {
	seen := map[uuid.UUID]bool{}
	result := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil || seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}
	return result
}

func toResponse(reservation *Reservation) *ReservationResponse {
	seatSummaries := make([]SeatSummary, 0, len(reservation.SeatLinks))
	for _, link := range reservation.SeatLinks {
		if link.Seat == nil {
			continue
		}
		seatSummaries = append(seatSummaries, SeatSummary{
			ID:     link.Seat.ID,
			Row:    link.Seat.Row,
			Number: link.Seat.Number,
			Type:   link.Seat.Type,
		})
	}
	sort.Slice(seatSummaries, func(i, j int) bool {
		if seatSummaries[i].Row != seatSummaries[j].Row {
			return seatSummaries[i].Row < seatSummaries[j].Row
		}
		return seatSummaries[i].Number < seatSummaries[j].Number
	})

	resp := &ReservationResponse{
		ID:              reservation.ID,
		UserID:          reservation.UserID,
		Status:          reservation.Status,
		TotalAmount:     reservation.TotalAmount,
		ReservationDate: reservation.ReservationDate,
		Seats:           seatSummaries,
		CreatedAt:       reservation.CreatedAt,
	}
	if reservation.Showtime != nil {
		resp.Showtime = showtimes.ToResponse(reservation.Showtime)
	}
	return resp
}

func toResponses(all []Reservation) []ReservationResponse {
	result := make([]ReservationResponse, 0, len(all))
	for i := range all {
		result = append(result, *toResponse(&all[i]))
	}
	return result
}
