package genres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Genre, error)
	GetByName(ctx context.Context, name string) (*Genre, error)
	Create(ctx context.Context, genre *Genre) error

	// Movie-genre relationship operations
	GetByMovieID(ctx context.Context, movieID uuid.UUID) ([]Genre, error)
	GetMovieIDsByGenreName(ctx context.Context, name string) ([]uuid.UUID, error)
	ReplaceMovieGenres(ctx context.Context, movieID uuid.UUID, genreIDs []uuid.UUID) error
	RemoveMovieGenres(ctx context.Context, movieID uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetAll(ctx context.Context) ([]Genre, error) {
	var result []Genre
	err := r.db.WithContext(ctx).Order("name ASC").Find(&result).Error
	return result, err
}

func (r *repository) GetByName(ctx context.Context, name string) (*Genre, error) {
	var genre Genre
	err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&genre).Error
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

func (r *repository) Create(ctx context.Context, genre *Genre) error {
	return r.db.WithContext(ctx).Create(genre).Error
}

func (r *repository) GetByMovieID(ctx context.Context, movieID uuid.UUID) ([]Genre, error) {
	var result []Genre
	err := r.db.WithContext(ctx).
		Joins("JOIN movie_genres ON movie_genres.genre_id = genres.id").
		Where("movie_genres.movie_id = ?", movieID).
		Order("genres.name ASC").
		Find(&result).Error
	return result, err
}

func (r *repository) GetMovieIDsByGenreName(ctx context.Context, name string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&MovieGenre{}).
		Joins("JOIN genres ON genres.id = movie_genres.genre_id").
		Where("LOWER(genres.name) = LOWER(?)", name).
		Pluck("movie_genres.movie_id", &ids).Error
	return ids, err
}

func (r *repository) ReplaceMovieGenres(ctx context.Context, movieID uuid.UUID, genreIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("movie_id = ?", movieID).Delete(&MovieGenre{}).Error; err != nil {
			return err
		}

		if len(genreIDs) == 0 {
			return nil
		}

		links := make([]MovieGenre, 0, len(genreIDs))
		for _, genreID := range genreIDs {
			links = append(links, MovieGenre{MovieID: movieID, GenreID: genreID})
		}
		return tx.Create(&links).Error
	})
}

func (r *repository) RemoveMovieGenres(ctx context.Context, movieID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("movie_id = ?", movieID).Delete(&MovieGenre{}).Error
}
