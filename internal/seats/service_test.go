package seats

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockSeatRepo struct {
	byShowtime map[uuid.UUID][]Seat
}

func newMockSeatRepo() *mockSeatRepo {
	return &mockSeatRepo{byShowtime: make(map[uuid.UUID][]Seat)}
}

func (m *mockSeatRepo) BulkCreate(ctx context.Context, layout []Seat) error {
	for _, seat := range layout {
		m.byShowtime[seat.ShowtimeID] = append(m.byShowtime[seat.ShowtimeID], seat)
	}
	return nil
}

func (m *mockSeatRepo) GetByShowtimeID(ctx context.Context, showtimeID uuid.UUID) ([]Seat, error) {
	return m.byShowtime[showtimeID], nil
}

func (m *mockSeatRepo) CountByShowtimeID(ctx context.Context, showtimeID uuid.UUID) (int64, error) {
	return int64(len(m.byShowtime[showtimeID])), nil
}

func (m *mockSeatRepo) DeleteByShowtimeID(ctx context.Context, showtimeID uuid.UUID) error {
	delete(m.byShowtime, showtimeID)
	return nil
}

// mockCache never hits: GetOrSet always runs the fetcher and round-trips
// the value through JSON like the real implementation
type mockCache struct {
	deleted []string
}

func (m *mockCache) Get(ctx context.Context, key string, dest interface{}) error {
	return errors.New("cache miss")
}

func (m *mockCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.deleted = append(m.deleted, key)
	return nil
}

func (m *mockCache) DeletePattern(ctx context.Context, p string) error { return nil }
func (m *mockCache) Exists(ctx context.Context, key string) bool       { return false }
func (m *mockCache) Ping(ctx context.Context) error                    { return nil }

func (m *mockCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, fetcher func() (interface{}, error), dest interface{}) error {
	value, err := fetcher()
	if err != nil {
		return err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

func TestGenerateForShowtimeRejectsRegeneration(t *testing.T) {
	repo := newMockSeatRepo()
	svc := NewService(repo, &mockCache{})
	showtimeID := uuid.New()

	layout, err := svc.GenerateForShowtime(context.Background(), showtimeID, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(layout) != 30 {
		t.Fatalf("expected 30 seats, got %d", len(layout))
	}

	if _, err := svc.GenerateForShowtime(context.Background(), showtimeID, 30); !errors.Is(err, ErrSeatsAlreadyGenerated) {
		t.Fatalf("expected ErrSeatsAlreadyGenerated, got %v", err)
	}
}

func TestDeleteForShowtimeRemovesSeatsAndCache(t *testing.T) {
	repo := newMockSeatRepo()
	cacheService := &mockCache{}
	svc := NewService(repo, cacheService)
	showtimeID := uuid.New()

	if _, err := svc.GenerateForShowtime(context.Background(), showtimeID, 20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.DeleteForShowtime(context.Background(), showtimeID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	remaining, err := svc.GetSeatsForShowtime(context.Background(), showtimeID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("expected no seats after delete, got %d", len(remaining))
	}
	if len(cacheService.deleted) == 0 {
		t.Error("expected cached seat map to be dropped")
	}

	// A deleted grid may be generated again
	if _, err := svc.GenerateForShowtime(context.Background(), showtimeID, 20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
