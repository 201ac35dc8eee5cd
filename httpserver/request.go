package httpserver

import (
	"encoding/json"
	"errors"
	"time"

	"moviecatalog/genre"
	"moviecatalog/movie"
)

var errInvalidDate = errors.New("releaseDate must be a date (YYYY-MM-DD) or an ISO-8601 timestamp")

// Date decodes the calendar dates and timestamps accepted for releaseDate.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errInvalidDate
	}
	t, err := movie.ParseDate(s)
	if err != nil {
		return errInvalidDate
	}
	d.Time = t
	return nil
}

type MovieRequest struct {
	Title       string   `json:"title" validate:"required,notblank"`
	Description string   `json:"description"`
	ReleaseDate *Date    `json:"releaseDate" validate:"required" swaggertype:"string" example:"2024-07-20"`
	Genre       []string `json:"genre" validate:"omitempty,dive,notblank"`
}

func (r MovieRequest) ToMovie() movie.Movie {
	m := movie.Movie{
		Title:       r.Title,
		Description: r.Description,
		Genre:       r.Genre,
	}
	if r.ReleaseDate != nil {
		m.ReleaseDate = r.ReleaseDate.Time
	}
	return m
}

type UpdateMovieRequest struct {
	Title       *string   `json:"title" validate:"omitempty,notblank"`
	Description *string   `json:"description"`
	ReleaseDate *Date     `json:"releaseDate" swaggertype:"string" example:"2024-07-20"`
	Genre       *[]string `json:"genre" validate:"omitempty,dive,notblank"`
}

func (r UpdateMovieRequest) ToPatch() movie.Patch {
	p := movie.Patch{
		Title:       r.Title,
		Description: r.Description,
		Genre:       r.Genre,
	}
	if r.ReleaseDate != nil {
		released := r.ReleaseDate.Time
		p.ReleaseDate = &released
	}
	return p
}

type GenreRequest struct {
	Name string `json:"name" validate:"required,notblank"`
}

func (r GenreRequest) ToGenre() genre.Genre {
	return genre.Genre{Name: r.Name}
}

type UpdateGenreRequest struct {
	Name *string `json:"name" validate:"omitempty,notblank"`
}

func (r UpdateGenreRequest) ToPatch() genre.Patch {
	return genre.Patch{Name: r.Name}
}
