package postgres

import (
	"context"
	"errors"
	"time"

	"moviecatalog/movie"
	"moviecatalog/query"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MovieModel represents the database model for movies.
// Ids are UUIDv7 so that ordering by id follows creation order.
type MovieModel struct {
	ID          string         `gorm:"primaryKey;type:uuid"`
	Title       string         `gorm:"not null"`
	Description string         `gorm:"not null"`
	ReleaseDate time.Time      `gorm:"not null"`
	Genre       pq.StringArray `gorm:"type:text[];not null"`
}

// TableName specifies the table name for GORM
func (MovieModel) TableName() string {
	return "movies"
}

var movieColumns = map[string]string{
	movie.FieldTitle:       "title",
	movie.FieldDescription: "description",
	movie.FieldReleaseDate: "release_date",
	movie.FieldGenre:       "genre",
}

func newMovieModel(m movie.Movie) MovieModel {
	genres := m.Genre
	if genres == nil {
		genres = []string{}
	}
	return MovieModel{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		ReleaseDate: m.ReleaseDate.UTC(),
		Genre:       pq.StringArray(genres),
	}
}

func (model MovieModel) toMovie() movie.Movie {
	genres := []string(model.Genre)
	if genres == nil {
		genres = []string{}
	}
	return movie.Movie{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		ReleaseDate: model.ReleaseDate.UTC(),
		Genre:       genres,
	}
}

// MovieRepository implements movie.Repository interface
type MovieRepository struct {
	db *gorm.DB
}

// NewMovieRepository creates a new movie repository
func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

func (r *MovieRepository) CreateMovie(ctx context.Context, m movie.Movie) (movie.Movie, error) {
	model := newMovieModel(m)
	model.ID = newID()

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return movie.Movie{}, err
	}
	return model.toMovie(), nil
}

func (r *MovieRepository) FindMovieByID(ctx context.Context, id string) (movie.Movie, error) {
	if !validID(id) {
		return movie.Movie{}, movie.ErrInvalidID
	}

	var model MovieModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return movie.Movie{}, movie.ErrNotFound
	}
	if err != nil {
		return movie.Movie{}, err
	}
	return model.toMovie(), nil
}

func (r *MovieRepository) UpdateMovie(ctx context.Context, id string, p movie.Patch) (movie.Movie, error) {
	if !validID(id) {
		return movie.Movie{}, movie.ErrInvalidID
	}
	if p.IsEmpty() {
		return r.FindMovieByID(ctx, id)
	}

	return r.update(ctx, id, moviePatchValues(p))
}

// ReplaceMovie overwrites every column, so fields left empty in m are
// stored empty rather than kept.
func (r *MovieRepository) ReplaceMovie(ctx context.Context, id string, m movie.Movie) (movie.Movie, error) {
	if !validID(id) {
		return movie.Movie{}, movie.ErrInvalidID
	}

	model := newMovieModel(m)
	return r.update(ctx, id, map[string]interface{}{
		"title":        model.Title,
		"description":  model.Description,
		"release_date": model.ReleaseDate,
		"genre":        model.Genre,
	})
}

func (r *MovieRepository) DeleteMovie(ctx context.Context, id string) (movie.Movie, error) {
	if !validID(id) {
		return movie.Movie{}, movie.ErrInvalidID
	}

	var model MovieModel
	res := r.db.WithContext(ctx).Clauses(clause.Returning{}).Where("id = ?", id).Delete(&model)
	if res.Error != nil {
		return movie.Movie{}, res.Error
	}
	if res.RowsAffected == 0 {
		return movie.Movie{}, movie.ErrNotFound
	}
	return model.toMovie(), nil
}

func (r *MovieRepository) FindMovies(ctx context.Context, spec query.Spec) ([]movie.Movie, error) {
	var models []MovieModel
	if err := r.db.WithContext(ctx).Scopes(searchScope(spec, movieColumns)).Find(&models).Error; err != nil {
		return nil, err
	}

	movies := make([]movie.Movie, len(models))
	for i, model := range models {
		movies[i] = model.toMovie()
	}
	return movies, nil
}

func (r *MovieRepository) update(ctx context.Context, id string, values map[string]interface{}) (movie.Movie, error) {
	var model MovieModel
	res := r.db.WithContext(ctx).Model(&model).Clauses(clause.Returning{}).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return movie.Movie{}, res.Error
	}
	if res.RowsAffected == 0 {
		return movie.Movie{}, movie.ErrNotFound
	}
	return model.toMovie(), nil
}

func moviePatchValues(p movie.Patch) map[string]interface{} {
	values := make(map[string]interface{}, 4)
	if p.Title != nil {
		values["title"] = *p.Title
	}
	if p.Description != nil {
		values["description"] = *p.Description
	}
	if p.ReleaseDate != nil {
		values["release_date"] = p.ReleaseDate.UTC()
	}
	if p.Genre != nil {
		genres := *p.Genre
		if genres == nil {
			genres = []string{}
		}
		values["genre"] = pq.StringArray(genres)
	}
	return values
}

func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
