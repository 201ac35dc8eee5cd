package movie

import (
	"strings"
	"time"

	"moviecatalog/errs"
	"moviecatalog/query"
)

var (
	ErrNotFound           = errs.Errorf(errs.ENOTFOUND, "movie not found")
	ErrInvalidID          = errs.Errorf(errs.EINVALID, "invalid movie id")
	ErrInvalidTitle       = errs.Errorf(errs.EINVALID, "title is required")
	ErrInvalidReleaseDate = errs.Errorf(errs.EINVALID, "releaseDate is required")
)

// Searchable fields, named as they appear in the API.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldReleaseDate = "releaseDate"
	FieldGenre       = "genre"
)

type Movie struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ReleaseDate time.Time `json:"releaseDate"`
	Genre       []string  `json:"genre"`
}

// WithDefaults fills the optional fields a stored movie always carries.
func (m Movie) WithDefaults() Movie {
	if m.Genre == nil {
		m.Genre = []string{}
	}
	m.ReleaseDate = m.ReleaseDate.UTC()
	return m
}

func (m Movie) Validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return ErrInvalidTitle
	}
	if m.ReleaseDate.IsZero() {
		return ErrInvalidReleaseDate
	}
	return nil
}

// Patch holds the fields of a merge update. Nil fields are left untouched.
type Patch struct {
	Title       *string
	Description *string
	ReleaseDate *time.Time
	Genre       *[]string
}

func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.ReleaseDate == nil && p.Genre == nil
}

func (p Patch) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return ErrInvalidTitle
	}
	if p.ReleaseDate != nil && p.ReleaseDate.IsZero() {
		return ErrInvalidReleaseDate
	}
	return nil
}

// SearchParams are the optional filters of a movie search.
type SearchParams struct {
	query.Pagination
	Search          *string
	ReleaseDateFrom *time.Time
	ReleaseDateTo   *time.Time
	GenreName       *string
}

// GenreParams select the movies tagged with a genre label.
type GenreParams struct {
	query.Pagination
	GenreName *string
}

type SearchResult struct {
	Data []Movie `json:"data"`
}

var dateLayouts = []string{time.DateOnly, time.RFC3339Nano}

// ParseDate accepts a calendar date (2006-01-02) or an RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var err error
	for _, layout := range dateLayouts {
		t, perr := time.Parse(layout, s)
		if perr == nil {
			return t.UTC(), nil
		}
		err = perr
	}
	return time.Time{}, err
}
