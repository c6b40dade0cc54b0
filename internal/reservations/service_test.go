package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"cinepass/internal/movies"
	"cinepass/internal/notifications"
	"cinepass/internal/seats"
	"cinepass/internal/showtimes"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type mockReservationRepo struct {
	reservations map[uuid.UUID]*Reservation
	createErr    error
	cancelErr    error

	lastSeatIDs []uuid.UUID
}

func newMockReservationRepo() *mockReservationRepo {
	return &mockReservationRepo{reservations: make(map[uuid.UUID]*Reservation)}
}

func (m *mockReservationRepo) CreateReservation(ctx context.Context, userID, showtimeID uuid.UUID, seatIDs []uuid.UUID) (*Reservation, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.lastSeatIDs = seatIDs

	links := make([]ReservationSeat, 0, len(seatIDs))
	for _, seatID := range seatIDs {
		links = append(links, ReservationSeat{
			SeatID: seatID,
			Seat:   &seats.Seat{ID: seatID, Row: "A", Number: len(links) + 1, Type: seats.TypeStandard},
		})
	}

	reservation := &Reservation{
		ID:              uuid.New(),
		UserID:          userID,
		ShowtimeID:      showtimeID,
		TotalAmount:     float64(len(seatIDs)) * 10,
		Status:          StatusConfirmed,
		ReservationDate: time.Now(),
		SeatLinks:       links,
	}
	m.reservations[reservation.ID] = reservation
	return reservation, nil
}

func (m *mockReservationRepo) CancelReservation(ctx context.Context, userID, reservationID uuid.UUID) (*Reservation, error) {
	if m.cancelErr != nil {
		return nil, m.cancelErr
	}
	reservation, ok := m.reservations[reservationID]
	if !ok {
		return nil, ErrReservationNotFound
	}
	if reservation.UserID != userID {
		return nil, ErrNotOwner
	}
	reservation.Status = StatusCancelled
	return reservation, nil
}

func (m *mockReservationRepo) GetByID(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	reservation, ok := m.reservations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return reservation, nil
}

func (m *mockReservationRepo) GetByUserID(ctx context.Context, userID uuid.UUID) ([]Reservation, error) {
	var result []Reservation
	for _, reservation := range m.reservations {
		if reservation.UserID == userID {
			result = append(result, *reservation)
		}
	}
	return result, nil
}

func (m *mockReservationRepo) GetUpcomingByUserID(ctx context.Context, userID uuid.UUID) ([]Reservation, error) {
	return m.GetByUserID(ctx, userID)
}

func (m *mockReservationRepo) GetAll(ctx context.Context) ([]Reservation, error) {
	var result []Reservation
	for _, reservation := range m.reservations {
		result = append(result, *reservation)
	}
	return result, nil
}

type mockSeatService struct {
	invalidated []uuid.UUID
}

func (m *mockSeatService) GenerateForShowtime(ctx context.Context, showtimeID uuid.UUID, totalSeats int) ([]seats.Seat, error) {
	return nil, nil
}

func (m *mockSeatService) GetSeatsForShowtime(ctx context.Context, showtimeID uuid.UUID) ([]seats.Seat, error) {
	return nil, nil
}

func (m *mockSeatService) DeleteForShowtime(ctx context.Context, showtimeID uuid.UUID) error {
	return nil
}

func (m *mockSeatService) InvalidateSeatMap(ctx context.Context, showtimeID uuid.UUID) {
	m.invalidated = append(m.invalidated, showtimeID)
}

// mockProducer records published notifications on a channel so tests can
// wait for the async publish
type mockProducer struct {
	published chan *notifications.ReservationNotification
}

func newMockProducer() *mockProducer {
	return &mockProducer{published: make(chan *notifications.ReservationNotification, 4)}
}

func (m *mockProducer) Publish(ctx context.Context, n *notifications.ReservationNotification) error {
	m.published <- n
	return nil
}

func (m *mockProducer) Close() error { return nil }

func (m *mockProducer) wait(t *testing.T) *notifications.ReservationNotification {
	t.Helper()
	select {
	case n := <-m.published:
		return n
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notification")
		return nil
	}
}

func TestCreateReservationDedupesSeatIDs(t *testing.T) {
	repo := newMockReservationRepo()
	svc := NewService(repo, &mockSeatService{}, nil)

	seatA := uuid.New()
	seatB := uuid.New()
	req := CreateReservationRequest{
		ShowtimeID: uuid.New(),
		SeatIDs:    []uuid.UUID{seatA, seatB, seatA, uuid.Nil},
	}

	reservation, err := svc.CreateReservation(context.Background(), uuid.New(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.lastSeatIDs) != 2 {
		t.Fatalf("expected 2 deduped seat ids, got %d", len(repo.lastSeatIDs))
	}
	if len(reservation.Seats) != 2 {
		t.Fatalf("expected 2 seats in response, got %d", len(reservation.Seats))
	}
}

func TestCreateReservationRequiresSeats(t *testing.T) {
	repo := newMockReservationRepo()
	svc := NewService(repo, &mockSeatService{}, nil)

	req := CreateReservationRequest{
		ShowtimeID: uuid.New(),
		SeatIDs:    []uuid.UUID{uuid.Nil},
	}

	_, err := svc.CreateReservation(context.Background(), uuid.New(), req)
	if !errors.Is(err, ErrNoSeatsRequested) {
		t.Fatalf("expected ErrNoSeatsRequested, got %v", err)
	}
	if repo.lastSeatIDs != nil {
		t.Fatal("repository should not have been called")
	}
}

func TestCreateReservationInvalidatesSeatMap(t *testing.T) {
	repo := newMockReservationRepo()
	seatService := &mockSeatService{}
	svc := NewService(repo, seatService, nil)

	showtimeID := uuid.New()
	_, err := svc.CreateReservation(context.Background(), uuid.New(), CreateReservationRequest{
		ShowtimeID: showtimeID,
		SeatIDs:    []uuid.UUID{uuid.New()},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(seatService.invalidated) != 1 || seatService.invalidated[0] != showtimeID {
		t.Fatalf("expected seat map invalidation for %s, got %v", showtimeID, seatService.invalidated)
	}
}

func TestCreateReservationPublishesNotification(t *testing.T) {
	repo := newMockReservationRepo()
	producer := newMockProducer()
	svc := NewService(repo, &mockSeatService{}, producer)

	userID := uuid.New()
	reservation, err := svc.CreateReservation(context.Background(), userID, CreateReservationRequest{
		ShowtimeID: uuid.New(),
		SeatIDs:    []uuid.UUID{uuid.New(), uuid.New()},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	notification := producer.wait(t)
	if notification.Type != notifications.TypeReservationConfirmed {
		t.Errorf("expected confirmed notification, got %s", notification.Type)
	}
	if notification.ReservationID != reservation.ID.String() {
		t.Errorf("expected reservation id %s, got %s", reservation.ID, notification.ReservationID)
	}
	if notification.UserID != userID.String() {
		t.Errorf("expected user id %s, got %s", userID, notification.UserID)
	}
	if len(notification.SeatLabels) != 2 {
		t.Errorf("expected 2 seat labels, got %v", notification.SeatLabels)
	}
}

func TestCancelReservationPublishesNotification(t *testing.T) {
	repo := newMockReservationRepo()
	producer := newMockProducer()
	svc := NewService(repo, &mockSeatService{}, producer)

	userID := uuid.New()
	created, err := svc.CreateReservation(context.Background(), userID, CreateReservationRequest{
		ShowtimeID: uuid.New(),
		SeatIDs:    []uuid.UUID{uuid.New()},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	producer.wait(t)

	cancelled, err := svc.CancelReservation(context.Background(), userID, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cancelled.Status != StatusCancelled {
		t.Errorf("expected cancelled status, got %s", cancelled.Status)
	}

	notification := producer.wait(t)
	if notification.Type != notifications.TypeReservationCancelled {
		t.Errorf("expected cancelled notification, got %s", notification.Type)
	}
}

func TestCancelReservationErrorsPassThrough(t *testing.T) {
	repo := newMockReservationRepo()
	svc := NewService(repo, &mockSeatService{}, nil)

	if _, err := svc.CancelReservation(context.Background(), uuid.New(), uuid.New()); !errors.Is(err, ErrReservationNotFound) {
		t.Fatalf("expected ErrReservationNotFound, got %v", err)
	}

	owner := uuid.New()
	created, err := svc.CreateReservation(context.Background(), owner, CreateReservationRequest{
		ShowtimeID: uuid.New(),
		SeatIDs:    []uuid.UUID{uuid.New()},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.CancelReservation(context.Background(), uuid.New(), created.ID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}

func TestCreateReservationSeatConflictPassThrough(t *testing.T) {
	repo := newMockReservationRepo()
	repo.createErr = &SeatConflictError{Labels: []string{"A1", "A2"}}
	svc := NewService(repo, &mockSeatService{}, nil)

	_, err := svc.CreateReservation(context.Background(), uuid.New(), CreateReservationRequest{
		ShowtimeID: uuid.New(),
		SeatIDs:    []uuid.UUID{uuid.New()},
	})

	var conflict *SeatConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected SeatConflictError, got %v", err)
	}
	if len(conflict.Labels) != 2 {
		t.Errorf("expected 2 conflicting labels, got %v", conflict.Labels)
	}
}

func TestGetReservationByIDNotFound(t *testing.T) {
	repo := newMockReservationRepo()
	svc := NewService(repo, &mockSeatService{}, nil)

	if _, err := svc.GetReservationByID(context.Background(), uuid.New()); !errors.Is(err, ErrReservationNotFound) {
		t.Fatalf("expected ErrReservationNotFound, got %v", err)
	}
}

func TestReservationResponseSeatsSorted(t *testing.T) {
	showtime := &showtimes.Showtime{
		ID:    uuid.New(),
		Movie: &movies.Movie{ID: uuid.New(), Title: "Edge of the Void", Duration: 128},
	}
	reservation := &Reservation{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		ShowtimeID: showtime.ID,
		Status:     StatusConfirmed,
		Showtime:   showtime,
		SeatLinks: []ReservationSeat{
			{Seat: &seats.Seat{Row: "B", Number: 2}},
			{Seat: &seats.Seat{Row: "A", Number: 5}},
			{Seat: &seats.Seat{Row: "B", Number: 1}},
			{Seat: &seats.Seat{Row: "A", Number: 1}},
		},
	}

	resp := toResponse(reservation)

	want := []string{"A1", "A5", "B1", "B2"}
	if len(resp.Seats) != len(want) {
		t.Fatalf("expected %d seats, got %d", len(want), len(resp.Seats))
	}
	for i, seatSummary := range resp.Seats {
		label := seats.Seat{Row: seatSummary.Row, Number: seatSummary.Number}
		if got := label.Label(); got != want[i] {
			t.Errorf("seat %d: expected %s, got %s", i, want[i], got)
		}
	}

	if resp.Showtime == nil || resp.Showtime.Movie == nil {
		t.Fatal("expected embedded showtime with movie summary")
	}
	if resp.Showtime.Movie.Title != "Edge of the Void" {
		t.Errorf("unexpected movie title %q", resp.Showtime.Movie.Title)
	}
}
