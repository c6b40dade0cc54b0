package reports

import (
	"context"
	"errors"
	"time"
)

var ErrInvalidDateRange = errors.New("invalid date range, expected YYYY-MM-DD")

const topMoviesLimit = 5

type Service interface {
	GetRevenueByStatus(ctx context.Context, startDate, endDate string) ([]RevenueByStatus, error)
	GetTopMovies(ctx context.Context, startDate, endDate string) ([]TopMovie, error)
	GetTheaterOccupancy(ctx context.Context, startDate, endDate string) ([]TheaterOccupancy, error)
	GetSummaryReport(ctx context.Context, startDate, endDate string) (*SummaryReport, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetRevenueByStatus(ctx context.Context, startDate, endDate string) ([]RevenueByStatus, error) {
	start, end, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.repo.RevenueByStatus(ctx, start, end)
}

func (s *service) GetTopMovies(ctx context.Context, startDate, endDate string) ([]TopMovie, error) {
	start, end, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.repo.TopMovies(ctx, start, end, topMoviesLimit)
}

func (s *service) GetTheaterOccupancy(ctx context.Context, startDate, endDate string) ([]TheaterOccupancy, error) {
	start, end, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.repo.TheaterOccupancy(ctx, start, end)
}

func (s *service) GetSummaryReport(ctx context.Context, startDate, endDate string) (*SummaryReport, error) {
	start, end, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	revenue, err := s.repo.RevenueByStatus(ctx, start, end)
	if err != nil {
		return nil, err
	}
	topMovies, err := s.repo.TopMovies(ctx, start, end, topMoviesLimit)
	if err != nil {
		return nil, err
	}
	occupancy, err := s.repo.TheaterOccupancy(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return &SummaryReport{
		StartDate:        start,
		EndDate:          end,
		RevenueByStatus:  revenue,
		TopMovies:        topMovies,
		TheaterOccupancy: occupancy,
	}, nil
}

// parseRange resolves optional YYYY-MM-DD bounds. A missing start falls back
// to the epoch, a missing end to now. The end bound is extended to the end of
// its day so a single-day range covers the whole day.
func parseRange(startDate, endDate string) (time.Time, time.Time, error) {
	start := time.Unix(0, 0)
	end := time.Now()

	if startDate != "" {
		parsed, err := time.Parse("2006-01-02", startDate)
		if err != nil {
			return time.Time{}, time.Time{}, ErrInvalidDateRange
		}
		start = parsed
	}

	if endDate != "" {
		parsed, err := time.Parse("2006-01-02", endDate)
		if err != nil {
			return time.Time{}, time.Time{}, ErrInvalidDateRange
		}
		end = parsed.Add(24*time.Hour - time.Nanosecond)
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}

	return start, end, nil
}
