package seats

import (
	"context"
	"errors"

	"cinepass/internal/shared/constants"
	"cinepass/pkg/cache"

	"github.com/google/uuid"
)

var ErrSeatsAlreadyGenerated = errors.New("seat map already generated for this showtime")

type Service interface {
	// GenerateForShowtime builds and persists the seat grid for a showtime.
	// A showtime gets exactly one grid; regenerating is an error.
	GenerateForShowtime(ctx context.Context, showtimeID uuid.UUID, totalSeats int) ([]Seat, error)

	// GetSeatsForShowtime returns the seat map, row then number ascending
	GetSeatsForShowtime(ctx context.Context, showtimeID uuid.UUID) ([]Seat, error)

	// DeleteForShowtime removes the seat grid and its cached seat map
	DeleteForShowtime(ctx context.Context, showtimeID uuid.UUID) error

	// InvalidateSeatMap drops the cached seat map after a booking or cancel
	InvalidateSeatMap(ctx context.Context, showtimeID uuid.UUID)
}

type service struct {
	repo  Repository
	cache cache.Service
}

func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{
		repo:  repo,
		cache: cacheService,
	}
}

func (s *service) GenerateForShowtime(ctx context.Context, showtimeID uuid.UUID, totalSeats int) ([]Seat, error) {
	count, err := s.repo.CountByShowtimeID(ctx, showtimeID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSeatsAlreadyGenerated
	}

	layout := GenerateLayout(showtimeID, totalSeats)
	if err := s.repo.BulkCreate(ctx, layout); err != nil {
		return nil, err
	}
	return layout, nil
}

func (s *service) GetSeatsForShowtime(ctx context.Context, showtimeID uuid.UUID) ([]Seat, error) {
	var cached []Seat
	key := constants.BuildSeatMapKey(showtimeID.String())
	err := s.cache.GetOrSet(ctx, key, constants.TTLRealtime, func() (interface{}, error) {
		return s.repo.GetByShowtimeID(ctx, showtimeID)
	}, &cached)
	if err != nil {
		return nil, err
	}
	return cached, nil
}

func (s *service) DeleteForShowtime(ctx context.Context, showtimeID uuid.UUID) error {
	if err := s.repo.DeleteByShowtimeID(ctx, showtimeID); err != nil {
		return err
	}
	s.InvalidateSeatMap(ctx, showtimeID)
	return nil
}

func (s *service) InvalidateSeatMap(ctx context.Context, showtimeID uuid.UUID) {
	_ = s.cache.Delete(ctx, constants.BuildSeatMapKey(showtimeID.String()))
}
