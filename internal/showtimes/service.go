package showtimes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinepass/internal/movies"
	"cinepass/internal/seats"
	"cinepass/internal/shared/constants"
	"cinepass/pkg/cache"
	"cinepass/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrShowtimeNotFound = errors.New("showtime not found")
	ErrMovieNotFound    = errors.New("movie not found")
	ErrInvalidTimeRange = errors.New("start time must be before end time")
	ErrInvalidDate      = errors.New("invalid date format, expected YYYY-MM-DD")
)

// ConflictError reports an overlapping showtime in the same theater
type ConflictError struct {
	Theater    int
	ShowtimeID uuid.UUID
	StartTime  time.Time
	EndTime    time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("theater %d already has a showtime from %s to %s",
		e.Theater,
		e.StartTime.Format(time.RFC3339),
		e.EndTime.Format(time.RFC3339))
}

type Service interface {
	CreateShowtime(ctx context.Context, req CreateShowtimeRequest) (*ShowtimeResponse, error)
	GetShowtimeByID(ctx context.Context, id uuid.UUID) (*ShowtimeResponse, error)
	GetAllShowtimes(ctx context.Context) ([]ShowtimeResponse, error)
	GetShowtimesByDate(ctx context.Context, date string) ([]ShowtimeResponse, error)
	GetShowtimesByMovie(ctx context.Context, movieID uuid.UUID) ([]ShowtimeResponse, error)
	GetSeatMap(ctx context.Context, showtimeID uuid.UUID) ([]seats.Seat, error)
	UpdateShowtime(ctx context.Context, id uuid.UUID, req UpdateShowtimeRequest) (*ShowtimeResponse, error)
	DeleteShowtime(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo        Repository
	movieRepo   movies.Repository
	seatService seats.Service
	cache       cache.Service
	log         *logger.Logger
}

func NewService(repo Repository, movieRepo movies.Repository, seatService seats.Service, cacheService cache.Service) Service {
	return &service{
		repo:        repo,
		movieRepo:   movieRepo,
		seatService: seatService,
		cache:       cacheService,
		log:         logger.GetDefault(),
	}
}

func (s *service) CreateShowtime(ctx context.Context, req CreateShowtimeRequest) (*ShowtimeResponse, error) {
	if !req.StartTime.Before(req.EndTime) {
		return nil, ErrInvalidTimeRange
	}

	if _, err := s.movieRepo.GetByID(ctx, req.MovieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	conflict, err := s.repo.FindConflicting(ctx, req.Theater, req.StartTime, req.EndTime, nil)
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		return nil, &ConflictError{
			Theater:    conflict.Theater,
			ShowtimeID: conflict.ID,
			StartTime:  conflict.StartTime,
			EndTime:    conflict.EndTime,
		}
	}

	showtime := &Showtime{
		MovieID:     req.MovieID,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Theater:     req.Theater,
		TicketPrice: req.TicketPrice,
		TotalSeats:  req.TotalSeats,
		IsActive:    true,
	}
	if err := s.repo.Create(ctx, showtime); err != nil {
		return nil, err
	}

	layout, err := s.seatService.GenerateForShowtime(ctx, showtime.ID, showtime.TotalSeats)
	if err != nil {
		return nil, err
	}

	// Layout generation caps at 26 rows; total_seats must track the seats
	// that actually exist or occupancy rates never reach 100%
	if len(layout) != showtime.TotalSeats {
		updated, err := s.repo.Update(ctx, showtime.ID, map[string]interface{}{"total_seats": len(layout)})
		if err != nil {
			return nil, err
		}
		showtime.TotalSeats = updated.TotalSeats
	}

	s.invalidateListings(ctx)
	s.log.LogShowtimeCreated(ctx, showtime.ID.String(), showtime.MovieID.String(), showtime.Theater)

	created, err := s.repo.GetByID(ctx, showtime.ID)
	if err != nil {
		return nil, err
	}
	return ToResponse(created), nil
}

func (s *service) GetShowtimeByID(ctx context.Context, id uuid.UUID) (*ShowtimeResponse, error) {
	showtime, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShowtimeNotFound
		}
		return nil, err
	}
	return ToResponse(showtime), nil
}

func (s *service) GetAllShowtimes(ctx context.Context) ([]ShowtimeResponse, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(all), nil
}

func (s *service) GetShowtimesByDate(ctx context.Context, date string) ([]ShowtimeResponse, error) {
	dayStart, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	dayEnd := dayStart.Add(24 * time.Hour)

	var cached []ShowtimeResponse
	key := constants.BuildShowtimesByDateKey(date)
	err = s.cache.GetOrSet(ctx, key, constants.TTLDynamic, func() (interface{}, error) {
		found, err := s.repo.GetByDate(ctx, dayStart, dayEnd)
		if err != nil {
			return nil, err
		}
		return toResponses(found), nil
	}, &cached)
	if err != nil {
		return nil, err
	}
	return cached, nil
}

func (s *service) GetShowtimesByMovie(ctx context.Context, movieID uuid.UUID) ([]ShowtimeResponse, error) {
	found, err := s.repo.GetByMovieID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	return toResponses(found), nil
}

func (s *service) GetSeatMap(ctx context.Context, showtimeID uuid.UUID) ([]seats.Seat, error) {
	if _, err := s.repo.GetByID(ctx, showtimeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShowtimeNotFound
		}
		return nil, err
	}
	return s.seatService.GetSeatsForShowtime(ctx, showtimeID)
}

func (s *service) UpdateShowtime(ctx context.Context, id uuid.UUID, req UpdateShowtimeRequest) (*ShowtimeResponse, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShowtimeNotFound
		}
		return nil, err
	}

	// Unset fields keep their prior values
	start := existing.StartTime
	end := existing.EndTime
	theater := existing.Theater
	if req.StartTime != nil {
		start = *req.StartTime
	}
	if req.EndTime != nil {
		end = *req.EndTime
	}
	if req.Theater != nil {
		theater = *req.Theater
	}

	scheduleChanged := req.StartTime != nil || req.EndTime != nil || req.Theater != nil
	if scheduleChanged {
		if !start.Before(end) {
			return nil, ErrInvalidTimeRange
		}

		conflict, err := s.repo.FindConflicting(ctx, theater, start, end, &id)
		if err != nil {
			return nil, err
		}
		if conflict != nil {
			return nil, &ConflictError{
				Theater:    conflict.Theater,
				ShowtimeID: conflict.ID,
				StartTime:  conflict.StartTime,
				EndTime:    conflict.EndTime,
			}
		}
	}

	updates := map[string]interface{}{}
	if req.MovieID != nil {
		if _, err := s.movieRepo.GetByID(ctx, *req.MovieID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrMovieNotFound
			}
			return nil, err
		}
		updates["movie_id"] = *req.MovieID
	}
	if req.StartTime != nil {
		updates["start_time"] = *req.StartTime
	}
	if req.EndTime != nil {
		updates["end_time"] = *req.EndTime
	}
	if req.Theater != nil {
		updates["theater"] = *req.Theater
	}
	if req.TicketPrice != nil {
		updates["ticket_price"] = *req.TicketPrice
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	updated, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}

	s.invalidateListings(ctx)
	return ToResponse(updated), nil
}

func (s *service) DeleteShowtime(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrShowtimeNotFound
		}
		return err
	}

	s.invalidateListings(ctx)
	return s.seatService.DeleteForShowtime(ctx, id)
}

func (s *service) invalidateListings(ctx context.Context) {
	_ = s.cache.DeletePattern(ctx, constants.PatternInvalidateShowtimes)
}

func toResponses(all []Showtime) []ShowtimeResponse {
	result := make([]ShowtimeResponse, 0, len(all))
	for i := range all {
		result = append(result, *ToResponse(&all[i]))
	}
	return result
}
