package movie

import (
	"context"

	"moviecatalog/query"
)

type Service interface {
	CreateMovie(ctx context.Context, m Movie) (Movie, error)
	FindByID(ctx context.Context, id string) (Movie, error)
	FindByIDAndUpdate(ctx context.Context, id string, p Patch) (Movie, error)
	FindByIDAndUpdateFull(ctx context.Context, id string, m Movie) (Movie, error)
	DeleteMovie(ctx context.Context, id string) (Movie, error)
	FindBySearch(ctx context.Context, p SearchParams) (SearchResult, error)
	GetMoviesByGenre(ctx context.Context, p GenreParams) (SearchResult, error)
}

// Repository persists movies. Lookups by id return ErrNotFound when no
// record exists and ErrInvalidID when the id cannot name a record.
type Repository interface {
	CreateMovie(ctx context.Context, m Movie) (Movie, error)
	FindMovieByID(ctx context.Context, id string) (Movie, error)
	UpdateMovie(ctx context.Context, id string, p Patch) (Movie, error)
	ReplaceMovie(ctx context.Context, id string, m Movie) (Movie, error)
	DeleteMovie(ctx context.Context, id string) (Movie, error)
	FindMovies(ctx context.Context, spec query.Spec) ([]Movie, error)
}

type Option func(uc *Usecase)

// WithMaxPageSize caps the page size of every search. Zero means no cap.
func WithMaxPageSize(n int) Option {
	return func(uc *Usecase) {
		uc.maxPageSize = n
	}
}

type Usecase struct {
	r           Repository
	maxPageSize int
}

func NewUsecase(r Repository, opts ...Option) *Usecase {
	uc := &Usecase{r: r}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *Usecase) CreateMovie(ctx context.Context, m Movie) (Movie, error) {
	m = m.WithDefaults()
	if err := m.Validate(); err != nil {
		return Movie{}, err
	}
	return uc.r.CreateMovie(ctx, m)
}

func (uc *Usecase) FindByID(ctx context.Context, id string) (Movie, error) {
	return uc.r.FindMovieByID(ctx, id)
}

func (uc *Usecase) FindByIDAndUpdate(ctx context.Context, id string, p Patch) (Movie, error) {
	if err := p.Validate(); err != nil {
		return Movie{}, err
	}
	return uc.r.UpdateMovie(ctx, id, p)
}

// FindByIDAndUpdateFull replaces the whole record. Fields missing from m
// fall back to their defaults instead of keeping the stored values.
func (uc *Usecase) FindByIDAndUpdateFull(ctx context.Context, id string, m Movie) (Movie, error) {
	m = m.WithDefaults()
	if err := m.Validate(); err != nil {
		return Movie{}, err
	}
	return uc.r.ReplaceMovie(ctx, id, m)
}

func (uc *Usecase) DeleteMovie(ctx context.Context, id string) (Movie, error) {
	return uc.r.DeleteMovie(ctx, id)
}

func (uc *Usecase) FindBySearch(ctx context.Context, p SearchParams) (SearchResult, error) {
	return uc.find(ctx, SearchSpec(p, uc.maxPageSize))
}

func (uc *Usecase) GetMoviesByGenre(ctx context.Context, p GenreParams) (SearchResult, error) {
	return uc.find(ctx, GenreSpec(p, uc.maxPageSize))
}

func (uc *Usecase) find(ctx context.Context, spec query.Spec) (SearchResult, error) {
	movies, err := uc.r.FindMovies(ctx, spec)
	if err != nil {
		return SearchResult{}, err
	}
	if movies == nil {
		movies = []Movie{}
	}
	return SearchResult{Data: movies}, nil
}
