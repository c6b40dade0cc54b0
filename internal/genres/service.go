package genres

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrEmptyGenreName = errors.New("genre name cannot be empty")

type Service interface {
	GetAllGenres(ctx context.Context) ([]GenreResponse, error)
	GetGenresByMovieID(ctx context.Context, movieID uuid.UUID) ([]GenreResponse, error)
	GetMovieIDsByGenreName(ctx context.Context, name string) ([]uuid.UUID, error)

	// Called by the movie service on create/update
	AssignGenresToMovie(ctx context.Context, movieID uuid.UUID, names []string) error
	RemoveGenresFromMovie(ctx context.Context, movieID uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAllGenres(ctx context.Context) ([]GenreResponse, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(all), nil
}

func (s *service) GetGenresByMovieID(ctx context.Context, movieID uuid.UUID) ([]GenreResponse, error) {
	found, err := s.repo.GetByMovieID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	return toResponses(found), nil
}

func (s *service) GetMovieIDsByGenreName(ctx context.Context, name string) ([]uuid.UUID, error) {
	return s.repo.GetMovieIDsByGenreName(ctx, strings.TrimSpace(name))
}

// AssignGenresToMovie replaces the movie's genre set, creating genres that
// don't exist yet. Names are matched case-insensitively.
func (s *service) AssignGenresToMovie(ctx context.Context, movieID uuid.UUID, names []string) error {
	genreIDs := make([]uuid.UUID, 0, len(names))
	seen := map[string]bool{}

	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			return ErrEmptyGenreName
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true

		genre, err := s.findOrCreate(ctx, name)
		if err != nil {
			return err
		}
		genreIDs = append(genreIDs, genre.ID)
	}

	return s.repo.ReplaceMovieGenres(ctx, movieID, genreIDs)
}

func (s *service) RemoveGenresFromMovie(ctx context.Context, movieID uuid.UUID) error {
	return s.repo.RemoveMovieGenres(ctx, movieID)
}

func (s *service) findOrCreate(ctx context.Context, name string) (*Genre, error) {
	genre, err := s.repo.GetByName(ctx, name)
	if err == nil {
		return genre, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := &Genre{Name: name}
	if err := s.repo.Create(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

func toResponses(all []Genre) []GenreResponse {
	result := make([]GenreResponse, 0, len(all))
	for _, g := range all {
		result = append(result, GenreResponse{ID: g.ID, Name: g.Name})
	}
	return result
}
