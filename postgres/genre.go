package postgres

import (
	"context"
	"errors"

	"moviecatalog/genre"
	"moviecatalog/query"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GenreModel represents the database model for genres
type GenreModel struct {
	ID   string `gorm:"primaryKey;type:uuid"`
	Name string `gorm:"not null;uniqueIndex"`
}

// TableName specifies the table name for GORM
func (GenreModel) TableName() string {
	return "genres"
}

var genreColumns = map[string]string{
	genre.FieldName: "name",
}

func (model GenreModel) toGenre() genre.Genre {
	return genre.Genre{ID: model.ID, Name: model.Name}
}

// GenreRepository implements genre.Repository interface
type GenreRepository struct {
	db *gorm.DB
}

// NewGenreRepository creates a new genre repository
func NewGenreRepository(db *gorm.DB) *GenreRepository {
	return &GenreRepository{db: db}
}

func (r *GenreRepository) CreateGenre(ctx context.Context, g genre.Genre) (genre.Genre, error) {
	model := GenreModel{ID: newID(), Name: g.Name}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return genre.Genre{}, translateGenreError(err)
	}
	return model.toGenre(), nil
}

func (r *GenreRepository) FindGenreByID(ctx context.Context, id string) (genre.Genre, error) {
	if !validID(id) {
		return genre.Genre{}, genre.ErrInvalidID
	}

	var model GenreModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return genre.Genre{}, translateGenreError(err)
	}
	return model.toGenre(), nil
}

func (r *GenreRepository) UpdateGenre(ctx context.Context, id string, p genre.Patch) (genre.Genre, error) {
	if !validID(id) {
		return genre.Genre{}, genre.ErrInvalidID
	}
	if p.IsEmpty() {
		return r.FindGenreByID(ctx, id)
	}

	var model GenreModel
	res := r.db.WithContext(ctx).Model(&model).Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"name": *p.Name})
	if res.Error != nil {
		return genre.Genre{}, translateGenreError(res.Error)
	}
	if res.RowsAffected == 0 {
		return genre.Genre{}, genre.ErrNotFound
	}
	return model.toGenre(), nil
}

func (r *GenreRepository) DeleteGenre(ctx context.Context, id string) (genre.Genre, error) {
	if !validID(id) {
		return genre.Genre{}, genre.ErrInvalidID
	}

	var model GenreModel
	res := r.db.WithContext(ctx).Clauses(clause.Returning{}).Where("id = ?", id).Delete(&model)
	if res.Error != nil {
		return genre.Genre{}, res.Error
	}
	if res.RowsAffected == 0 {
		return genre.Genre{}, genre.ErrNotFound
	}
	return model.toGenre(), nil
}

func (r *GenreRepository) FindGenres(ctx context.Context, spec query.Spec) ([]genre.Genre, error) {
	var models []GenreModel
	if err := r.db.WithContext(ctx).Scopes(searchScope(spec, genreColumns)).Find(&models).Error; err != nil {
		return nil, err
	}

	genres := make([]genre.Genre, len(models))
	for i, model := range models {
		genres[i] = model.toGenre()
	}
	return genres, nil
}

func translateGenreError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return genre.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return genre.ErrDuplicateName
	}
	return err
}
