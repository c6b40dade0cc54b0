package movies

import (
	"context"
	"errors"
	"strings"

	"cinepass/internal/genres"
	"cinepass/internal/shared/constants"
	"cinepass/pkg/cache"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrMovieNotFound = errors.New("movie not found")

type Service interface {
	CreateMovie(ctx context.Context, req CreateMovieRequest) (*MovieResponse, error)
	GetMovieByID(ctx context.Context, id uuid.UUID) (*MovieResponse, error)
	GetAllMovies(ctx context.Context) ([]MovieResponse, error)
	GetActiveMovies(ctx context.Context) ([]MovieResponse, error)
	GetMoviesByGenre(ctx context.Context, genre string) ([]MovieResponse, error)
	UpdateMovie(ctx context.Context, id uuid.UUID, req UpdateMovieRequest) (*MovieResponse, error)
	DeleteMovie(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo         Repository
	genreService genres.Service
	cache        cache.Service
}

// NewService wires the movie catalog. The genre service is injected so
// find-or-create of genres stays in one place.
func NewService(repo Repository, genreService genres.Service, cacheService cache.Service) Service {
	return &service{
		repo:         repo,
		genreService: genreService,
		cache:        cacheService,
	}
}

func (s *service) CreateMovie(ctx context.Context, req CreateMovieRequest) (*MovieResponse, error) {
	movie := &Movie{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		PosterImage: strings.TrimSpace(req.PosterImage),
		Duration:    req.Duration,
		ReleaseDate: req.ReleaseDate,
		IsActive:    true,
	}
	if req.IsActive != nil {
		movie.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, movie); err != nil {
		return nil, err
	}

	if len(req.Genres) > 0 {
		if err := s.genreService.AssignGenresToMovie(ctx, movie.ID, req.Genres); err != nil {
			return nil, err
		}
	}

	s.invalidateCaches(ctx)
	return s.buildResponse(ctx, movie)
}

func (s *service) GetMovieByID(ctx context.Context, id uuid.UUID) (*MovieResponse, error) {
	var cached MovieResponse
	key := constants.BuildMovieDetailKey(id.String())
	err := s.cache.GetOrSet(ctx, key, constants.TTLSemiStatic, func() (interface{}, error) {
		movie, err := s.repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrMovieNotFound
			}
			return nil, err
		}
		return s.buildResponse(ctx, movie)
	}, &cached)
	if err != nil {
		if errors.Is(err, ErrMovieNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return &cached, nil
}

func (s *service) GetAllMovies(ctx context.Context) ([]MovieResponse, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.buildResponses(ctx, all)
}

func (s *service) GetActiveMovies(ctx context.Context) ([]MovieResponse, error) {
	var cached []MovieResponse
	err := s.cache.GetOrSet(ctx, constants.CacheKeyMoviesActive, constants.TTLSemiStatic, func() (interface{}, error) {
		active, err := s.repo.GetActive(ctx)
		if err != nil {
			return nil, err
		}
		return s.buildResponses(ctx, active)
	}, &cached)
	if err != nil {
		return nil, err
	}
	return cached, nil
}

func (s *service) GetMoviesByGenre(ctx context.Context, genre string) ([]MovieResponse, error) {
	name := strings.TrimSpace(genre)

	var cached []MovieResponse
	key := constants.BuildMoviesByGenreKey(strings.ToLower(name))
	err := s.cache.GetOrSet(ctx, key, constants.TTLSemiStatic, func() (interface{}, error) {
		movieIDs, err := s.genreService.GetMovieIDsByGenreName(ctx, name)
		if err != nil {
			return nil, err
		}

		found, err := s.repo.GetByIDs(ctx, movieIDs)
		if err != nil {
			return nil, err
		}

		active := make([]Movie, 0, len(found))
		for _, m := range found {
			if m.IsActive {
				active = append(active, m)
			}
		}
		return s.buildResponses(ctx, active)
	}, &cached)
	if err != nil {
		return nil, err
	}
	return cached, nil
}

func (s *service) UpdateMovie(ctx context.Context, id uuid.UUID, req UpdateMovieRequest) (*MovieResponse, error) {
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		updates["description"] = strings.TrimSpace(*req.Description)
	}
	if req.PosterImage != nil {
		updates["poster_image"] = strings.TrimSpace(*req.PosterImage)
	}
	if req.Duration != nil {
		updates["duration"] = *req.Duration
	}
	if req.ReleaseDate != nil {
		updates["release_date"] = *req.ReleaseDate
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	movie, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	if req.Genres != nil {
		if err := s.genreService.AssignGenresToMovie(ctx, movie.ID, req.Genres); err != nil {
			return nil, err
		}
	}

	s.invalidateCaches(ctx)
	return s.buildResponse(ctx, movie)
}

func (s *service) DeleteMovie(ctx context.Context, id uuid.UUID) error {
	// Genre links go first; showtimes and their seats cascade via FK
	if err := s.genreService.RemoveGenresFromMovie(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMovieNotFound
		}
		return err
	}

	s.invalidateCaches(ctx)
	return nil
}

func (s *service) buildResponse(ctx context.Context, movie *Movie) (*MovieResponse, error) {
	movieGenres, err := s.genreService.GetGenresByMovieID(ctx, movie.ID)
	if err != nil {
		return nil, err
	}

	return &MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		PosterImage: movie.PosterImage,
		Duration:    movie.Duration,
		ReleaseDate: movie.ReleaseDate,
		IsActive:    movie.IsActive,
		Genres:      movieGenres,
		CreatedAt:   movie.CreatedAt,
	}, nil
}

func (s *service) buildResponses(ctx context.Context, all []Movie) ([]MovieResponse, error) {
	result := make([]MovieResponse, 0, len(all))
	for i := range all {
		resp, err := s.buildResponse(ctx, &all[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *resp)
	}
	return result, nil
}

func (s *service) invalidateCaches(ctx context.Context) {
	_ = s.cache.DeletePattern(ctx, constants.PatternInvalidateMovies)
	_ = s.cache.DeletePattern(ctx, constants.PatternInvalidateGenres)
}
