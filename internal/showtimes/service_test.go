package showtimes

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"cinepass/internal/movies"
	"cinepass/internal/seats"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type mockShowtimeRepo struct {
	showtimes map[uuid.UUID]*Showtime
}

func newMockShowtimeRepo() *mockShowtimeRepo {
	return &mockShowtimeRepo{showtimes: make(map[uuid.UUID]*Showtime)}
}

func (m *mockShowtimeRepo) Create(ctx context.Context, showtime *Showtime) error {
	if showtime.ID == uuid.Nil {
		showtime.ID = uuid.New()
	}
	copied := *showtime
	m.showtimes[showtime.ID] = &copied
	return nil
}

func (m *mockShowtimeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Showtime, error) {
	showtime, ok := m.showtimes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *showtime
	return &copied, nil
}

func (m *mockShowtimeRepo) GetAll(ctx context.Context) ([]Showtime, error) {
	var result []Showtime
	for _, showtime := range m.showtimes {
		result = append(result, *showtime)
	}
	return result, nil
}

func (m *mockShowtimeRepo) GetByDate(ctx context.Context, dayStart, dayEnd time.Time) ([]Showtime, error) {
	var result []Showtime
	for _, showtime := range m.showtimes {
		if showtime.IsActive && !showtime.StartTime.Before(dayStart) && showtime.StartTime.Before(dayEnd) {
			result = append(result, *showtime)
		}
	}
	return result, nil
}

func (m *mockShowtimeRepo) GetByMovieID(ctx context.Context, movieID uuid.UUID) ([]Showtime, error) {
	var result []Showtime
	for _, showtime := range m.showtimes {
		if showtime.MovieID == movieID {
			result = append(result, *showtime)
		}
	}
	return result, nil
}

func (m *mockShowtimeRepo) FindConflicting(ctx context.Context, theater int, start, end time.Time, excludeID *uuid.UUID) (*Showtime, error) {
	for _, showtime := range m.showtimes {
		if showtime.Theater != theater {
			continue
		}
		if excludeID != nil && showtime.ID == *excludeID {
			continue
		}
		startsInside := !showtime.StartTime.Before(start) && !showtime.StartTime.After(end)
		endsInside := !showtime.EndTime.Before(start) && !showtime.EndTime.After(end)
		covers := !showtime.StartTime.After(start) && !showtime.EndTime.Before(end)
		if startsInside || endsInside || covers {
			copied := *showtime
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockShowtimeRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Showtime, error) {
	showtime, ok := m.showtimes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if v, ok := updates["start_time"]; ok {
		showtime.StartTime = v.(time.Time)
	}
	if v, ok := updates["end_time"]; ok {
		showtime.EndTime = v.(time.Time)
	}
	if v, ok := updates["theater"]; ok {
		showtime.Theater = v.(int)
	}
	if v, ok := updates["total_seats"]; ok {
		showtime.TotalSeats = v.(int)
	}
	if v, ok := updates["ticket_price"]; ok {
		showtime.TicketPrice = v.(float64)
	}
	if v, ok := updates["is_active"]; ok {
		showtime.IsActive = v.(bool)
	}
	if v, ok := updates["movie_id"]; ok {
		showtime.MovieID = v.(uuid.UUID)
	}
	copied := *showtime
	return &copied, nil
}

func (m *mockShowtimeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.showtimes[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.showtimes, id)
	return nil
}

type mockMovieRepo struct {
	movies map[uuid.UUID]*movies.Movie
}

func newMockMovieRepo() *mockMovieRepo {
	return &mockMovieRepo{movies: make(map[uuid.UUID]*movies.Movie)}
}

func (m *mockMovieRepo) Create(ctx context.Context, movie *movies.Movie) error {
	if movie.ID == uuid.Nil {
		movie.ID = uuid.New()
	}
	m.movies[movie.ID] = movie
	return nil
}

func (m *mockMovieRepo) GetByID(ctx context.Context, id uuid.UUID) (*movies.Movie, error) {
	movie, ok := m.movies[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return movie, nil
}

func (m *mockMovieRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]movies.Movie, error) {
	var result []movies.Movie
	for _, id := range ids {
		if movie, ok := m.movies[id]; ok {
			result = append(result, *movie)
		}
	}
	return result, nil
}

func (m *mockMovieRepo) GetAll(ctx context.Context) ([]movies.Movie, error) {
	var result []movies.Movie
	for _, movie := range m.movies {
		result = append(result, *movie)
	}
	return result, nil
}

func (m *mockMovieRepo) GetActive(ctx context.Context) ([]movies.Movie, error) {
	var result []movies.Movie
	for _, movie := range m.movies {
		if movie.IsActive {
			result = append(result, *movie)
		}
	}
	return result, nil
}

func (m *mockMovieRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*movies.Movie, error) {
	movie, ok := m.movies[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return movie, nil
}

func (m *mockMovieRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.movies, id)
	return nil
}

type mockSeatService struct {
	generated map[uuid.UUID]int
}

func newMockSeatService() *mockSeatService {
	return &mockSeatService{generated: make(map[uuid.UUID]int)}
}

func (m *mockSeatService) GenerateForShowtime(ctx context.Context, showtimeID uuid.UUID, totalSeats int) ([]seats.Seat, error) {
	m.generated[showtimeID] = totalSeats
	return seats.GenerateLayout(showtimeID, totalSeats), nil
}

func (m *mockSeatService) GetSeatsForShowtime(ctx context.Context, showtimeID uuid.UUID) ([]seats.Seat, error) {
	return seats.GenerateLayout(showtimeID, m.generated[showtimeID]), nil
}

func (m *mockSeatService) DeleteForShowtime(ctx context.Context, showtimeID uuid.UUID) error {
	delete(m.generated, showtimeID)
	return nil
}

func (m *mockSeatService) InvalidateSeatMap(ctx context.Context, showtimeID uuid.UUID) {}

// mockCache never hits: GetOrSet always runs the fetcher and round-trips
// the value through JSON like the real implementation
type mockCache struct{}

func (m *mockCache) Get(ctx context.Context, key string, dest interface{}) error {
	return errors.New("cache miss")
}

func (m *mockCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error      { return nil }
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

func newTestService(t *testing.T) (Service, *mockShowtimeRepo, *mockMovieRepo, *mockSeatService) {
	t.Helper()
	repo := newMockShowtimeRepo()
	movieRepo := newMockMovieRepo()
	seatService := newMockSeatService()
	svc := NewService(repo, movieRepo, seatService, &mockCache{})
	return svc, repo, movieRepo, seatService
}

func seedMovie(t *testing.T, movieRepo *mockMovieRepo) uuid.UUID {
	t.Helper()
	movie := &movies.Movie{Title: "Edge of the Void", Duration: 128, IsActive: true}
	if err := movieRepo.Create(context.Background(), movie); err != nil {
		t.Fatalf("failed to seed movie: %v", err)
	}
	return movie.ID
}

func TestCreateShowtimeGeneratesSeats(t *testing.T) {
	svc, _, movieRepo, seatService := newTestService(t)
	movieID := seedMovie(t, movieRepo)

	start := time.Now().Add(24 * time.Hour)
	created, err := svc.CreateShowtime(context.Background(), CreateShowtimeRequest{
		MovieID:     movieID,
		StartTime:   start,
		EndTime:     start.Add(2 * time.Hour),
		Theater:     1,
		TicketPrice: 12.5,
		TotalSeats:  50,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.TotalSeats != 50 {
		t.Errorf("expected 50 total seats, got %d", created.TotalSeats)
	}
	if seatService.generated[created.ID] != 50 {
		t.Errorf("expected seat map generated for showtime, got %v", seatService.generated)
	}
}

func TestCreateShowtimeReconcilesTruncatedLayout(t *testing.T) {
	svc, repo, movieRepo, _ := newTestService(t)
	movieID := seedMovie(t, movieRepo)

	// 265 requested seats exceed the 26-row grid, which tops out at 260
	start := time.Now().Add(24 * time.Hour)
	created, err := svc.CreateShowtime(context.Background(), CreateShowtimeRequest{
		MovieID:     movieID,
		StartTime:   start,
		EndTime:     start.Add(2 * time.Hour),
		Theater:     1,
		TicketPrice: 12.5,
		TotalSeats:  265,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.TotalSeats != 260 {
		t.Errorf("expected total_seats reconciled to 260, got %d", created.TotalSeats)
	}

	stored, err := repo.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.TotalSeats != 260 {
		t.Errorf("expected persisted total_seats 260, got %d", stored.TotalSeats)
	}

	seatMap, err := svc.GetSeatMap(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seatMap) != stored.TotalSeats {
		t.Errorf("total_seats %d does not match %d generated seats", stored.TotalSeats, len(seatMap))
	}
}

func TestCreateShowtimeRejectsInvalidRange(t *testing.T) {
	svc, _, movieRepo, _ := newTestService(t)
	movieID := seedMovie(t, movieRepo)

	start := time.Now().Add(24 * time.Hour)
	_, err := svc.CreateShowtime(context.Background(), CreateShowtimeRequest{
		MovieID:     movieID,
		StartTime:   start,
		EndTime:     start,
		Theater:     1,
		TicketPrice: 12.5,
		TotalSeats:  50,
	})
	if !errors.Is(err, ErrInvalidTimeRange) {
		t.Fatalf("expected ErrInvalidTimeRange, got %v", err)
	}
}

func TestCreateShowtimeUnknownMovie(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	start := time.Now().Add(24 * time.Hour)
	_, err := svc.CreateShowtime(context.Background(), CreateShowtimeRequest{
		MovieID:     uuid.New(),
		StartTime:   start,
		EndTime:     start.Add(2 * time.Hour),
		Theater:     1,
		TicketPrice: 12.5,
		TotalSeats:  50,
	})
	if !errors.Is(err, ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
}

func TestCreateShowtimeConflict(t *testing.T) {
	svc, _, movieRepo, _ := newTestService(t)
	movieID := seedMovie(t, movieRepo)

	base := time.Now().Add(24 * time.Hour)
	first := CreateShowtimeRequest{
		MovieID:     movieID,
		StartTime:   base,
		EndTime:     base.Add(2 * time.Hour),
		Theater:     1,
		TicketPrice: 12.5,
		TotalSeats:  20,
	}
	if _, err := svc.CreateShowtime(context.Background(), first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
	}{
		{"starts inside existing", base.Add(time.Hour), base.Add(3 * time.Hour)},
		{"ends inside existing", base.Add(-time.Hour), base.Add(time.Hour)},
		{"covers existing", base.Add(-time.Hour), base.Add(3 * time.Hour)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateShowtime(context.Background(), CreateShowtimeRequest{
				MovieID:     movieID,
				StartTime:   tc.start,
				EndTime:     tc.end,
				Theater:     1,
				TicketPrice: 12.5,
				TotalSeats:  20,
			})
			var conflict *ConflictError
			if !errors.As(err, &conflict) {
				t.Fatalf("expected ConflictError, got %v", err)
			}
			if conflict.Theater != 1 {
				t.Errorf("expected conflict in theater 1, got %d", conflict.Theater)
			}
		})
	}

	// Same slot in a different theater is fine
	_, err := svc.CreateShowtime(context.Background(), CreateShowtimeRequest{
		MovieID:     movieID,
		StartTime:   base,
		EndTime:     base.Add(2 * time.Hour),
		Theater:     2,
		TicketPrice: 12.5,
		TotalSeats:  20,
	})
	if err != nil {
		t.Fatalf("expected no conflict across theaters, got %v", err)
	}
}

func TestUpdateShowtimeExcludesSelfFromConflictCheck(t *testing.T) {
	svc, _, movieRepo, _ := newTestService(t)
	movieID := seedMovie(t, movieRepo)

	base := time.Now().Add(24 * time.Hour)
	created, err := svc.CreateShowtime(context.Background(), CreateShowtimeRequest{
		MovieID:     movieID,
		StartTime:   base,
		EndTime:     base.Add(2 * time.Hour),
		Theater:     1,
		TicketPrice: 12.5,
		TotalSeats:  20,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Shifting the same showtime by 30 minutes overlaps only itself
	newStart := base.Add(30 * time.Minute)
	updated, err := svc.UpdateShowtime(context.Background(), created.ID, UpdateShowtimeRequest{
		StartTime: &newStart,
	})
	if err != nil {
		t.Fatalf("expected self-overlap to be allowed, got %v", err)
	}
	if !updated.StartTime.Equal(newStart) {
		t.Errorf("expected start time %v, got %v", newStart, updated.StartTime)
	}
}

func TestUpdateShowtimeConflictsWithOther(t *testing.T) {
	svc, _, movieRepo, _ := newTestService(t)
	movieID := seedMovie(t, movieRepo)

	base := time.Now().Add(24 * time.Hour)
	if _, err := svc.CreateShowtime(context.Background(), CreateShowtimeRequest{
		MovieID:     movieID,
		StartTime:   base,
		EndTime:     base.Add(2 * time.Hour),
		Theater:     1,
		TicketPrice: 12.5,
		TotalSeats:  20,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := svc.CreateShowtime(context.Background(), CreateShowtimeRequest{
		MovieID:     movieID,
		StartTime:   base.Add(3 * time.Hour),
		EndTime:     base.Add(5 * time.Hour),
		Theater:     1,
		TicketPrice: 12.5,
		TotalSeats:  20,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Moving the second showtime onto the first must fail
	newStart := base.Add(time.Hour)
	newEnd := base.Add(90 * time.Minute)
	_, err = svc.UpdateShowtime(context.Background(), second.ID, UpdateShowtimeRequest{
		StartTime: &newStart,
		EndTime:   &newEnd,
	})
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}

func TestGetShowtimesByDate(t *testing.T) {
	svc, repo, movieRepo, _ := newTestService(t)
	movieID := seedMovie(t, movieRepo)

	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	inDay := &Showtime{
		MovieID:     movieID,
		StartTime:   day.Add(18 * time.Hour),
		EndTime:     day.Add(20 * time.Hour),
		Theater:     1,
		TicketPrice: 10,
		TotalSeats:  20,
		IsActive:    true,
	}
	nextDay := &Showtime{
		MovieID:     movieID,
		StartTime:   day.Add(25 * time.Hour),
		EndTime:     day.Add(27 * time.Hour),
		Theater:     2,
		TicketPrice: 10,
		TotalSeats:  20,
		IsActive:    true,
	}
	if err := repo.Create(context.Background(), inDay); err != nil {
		t.Fatal(err)
	}
	if err := repo.Create(context.Background(), nextDay); err != nil {
		t.Fatal(err)
	}

	found, err := svc.GetShowtimesByDate(context.Background(), "2026-09-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("expected 1 showtime on 2026-09-10, got %d", len(found))
	}
	if found[0].ID != inDay.ID {
		t.Errorf("expected showtime %s, got %s", inDay.ID, found[0].ID)
	}

	if _, err := svc.GetShowtimesByDate(context.Background(), "10-09-2026"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestGetShowtimeByIDNotFound(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	if _, err := svc.GetShowtimeByID(context.Background(), uuid.New()); !errors.Is(err, ErrShowtimeNotFound) {
		t.Fatalf("expected ErrShowtimeNotFound, got %v", err)
	}
}

func TestDeleteShowtime(t *testing.T) {
	svc, _, movieRepo, _ := newTestService(t)
	movieID := seedMovie(t, movieRepo)

	start := time.Now().Add(24 * time.Hour)
	created, err := svc.CreateShowtime(context.Background(), CreateShowtimeRequest{
		MovieID:     movieID,
		StartTime:   start,
		EndTime:     start.Add(2 * time.Hour),
		Theater:     1,
		TicketPrice: 12.5,
		TotalSeats:  20,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.DeleteShowtime(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.DeleteShowtime(context.Background(), created.ID); !errors.Is(err, ErrShowtimeNotFound) {
		t.Fatalf("expected ErrShowtimeNotFound, got %v", err)
	}
}
