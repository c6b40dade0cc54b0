package reports

import (
	"context"
	"errors"
	"testing"
	"time"
)

type mockReportRepo struct {
	lastStart time.Time
	lastEnd   time.Time
	lastLimit int

	revenue   []RevenueByStatus
	topMovies []TopMovie
	occupancy []TheaterOccupancy
}

func (m *mockReportRepo) RevenueByStatus(ctx context.Context, start, end time.Time) ([]RevenueByStatus, error) {
	m.lastStart, m.lastEnd = start, end
	return m.revenue, nil
}

func (m *mockReportRepo) TopMovies(ctx context.Context, start, end time.Time, limit int) ([]TopMovie, error) {
	m.lastStart, m.lastEnd = start, end
	m.lastLimit = limit
	return m.topMovies, nil
}

func (m *mockReportRepo) TheaterOccupancy(ctx context.Context, start, end time.Time) ([]TheaterOccupancy, error) {
	m.lastStart, m.lastEnd = start, end
	return m.occupancy, nil
}

func TestParseRangeDefaults(t *testing.T) {
	start, end, err := parseRange("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !start.Equal(time.Unix(0, 0)) {
		t.Errorf("expected epoch start, got %v", start)
	}
	if time.Since(end) > time.Minute {
		t.Errorf("expected end near now, got %v", end)
	}
}

func TestParseRangeEndOfDay(t *testing.T) {
	start, end, err := parseRange("2026-08-01", "2026-08-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if start.Hour() != 0 || start.Minute() != 0 {
		t.Errorf("expected start at midnight, got %v", start)
	}
	// Single-day range covers the whole day
	if end.Day() != 1 || end.Hour() != 23 || end.Minute() != 59 {
		t.Errorf("expected end at end of day, got %v", end)
	}
	if !end.After(start) {
		t.Error("expected end after start")
	}
}

func TestParseRangeRejectsBadInput(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
	}{
		{"bad start format", "01-08-2026", ""},
		{"bad end format", "", "August 1"},
		{"end before start", "2026-08-10", "2026-08-01"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := parseRange(tc.start, tc.end); !errors.Is(err, ErrInvalidDateRange) {
				t.Fatalf("expected ErrInvalidDateRange, got %v", err)
			}
		})
	}
}

func TestTopMoviesLimitIsFive(t *testing.T) {
	repo := &mockReportRepo{}
	svc := NewService(repo)

	if _, err := svc.GetTopMovies(context.Background(), "", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastLimit != 5 {
		t.Errorf("expected limit 5, got %d", repo.lastLimit)
	}
}

func TestSummaryReportBundlesSections(t *testing.T) {
	repo := &mockReportRepo{
		revenue:   []RevenueByStatus{{Status: "confirmed", TotalRevenue: 370, ReservationCount: 10}},
		topMovies: []TopMovie{{Title: "Edge of the Void", ReservationCount: 7}},
		occupancy: []TheaterOccupancy{{Theater: 1, OccupancyRate: 42.5}},
	}
	svc := NewService(repo)

	report, err := svc.GetSummaryReport(context.Background(), "2026-08-01", "2026-08-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.RevenueByStatus) != 1 || report.RevenueByStatus[0].TotalRevenue != 370 {
		t.Errorf("unexpected revenue section: %v", report.RevenueByStatus)
	}
	if len(report.TopMovies) != 1 || report.TopMovies[0].Title != "Edge of the Void" {
		t.Errorf("unexpected top movies section: %v", report.TopMovies)
	}
	if len(report.TheaterOccupancy) != 1 || report.TheaterOccupancy[0].Theater != 1 {
		t.Errorf("unexpected occupancy section: %v", report.TheaterOccupancy)
	}
	if !report.EndDate.After(report.StartDate) {
		t.Error("expected end date after start date")
	}
}

func TestSummaryReportInvalidRange(t *testing.T) {
	svc := NewService(&mockReportRepo{})

	if _, err := svc.GetSummaryReport(context.Background(), "not-a-date", ""); !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}
