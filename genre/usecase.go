package genre

import (
	"context"

	"moviecatalog/query"
)

type Service interface {
	CreateGenre(ctx context.Context, g Genre) (Genre, error)
	FindByID(ctx context.Context, id string) (Genre, error)
	FindByIDAndUpdate(ctx context.Context, id string, p Patch) (Genre, error)
	DeleteGenre(ctx context.Context, id string) (Genre, error)
	FindGenreBySearch(ctx context.Context, p SearchParams) (SearchResult, error)
}

// Repository persists genres. CreateGenre and UpdateGenre return
// ErrDuplicateName when the name is already taken.
type Repository interface {
	CreateGenre(ctx context.Context, g Genre) (Genre, error)
	FindGenreByID(ctx context.Context, id string) (Genre, error)
	UpdateGenre(ctx context.Context, id string, p Patch) (Genre, error)
	DeleteGenre(ctx context.Context, id string) (Genre, error)
	FindGenres(ctx context.Context, spec query.Spec) ([]Genre, error)
}

type Option func(uc *Usecase)

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

func (uc *Usecase) CreateGenre(ctx context.Context, g Genre) (Genre, error) {
	if err := g.Validate(); err != nil {
		return Genre{}, err
	}
	return uc.r.CreateGenre(ctx, g)
}

func (uc *Usecase) FindByID(ctx context.Context, id string) (Genre, error) {
	return uc.r.FindGenreByID(ctx, id)
}

func (uc *Usecase) FindByIDAndUpdate(ctx context.Context, id string, p Patch) (Genre, error) {
	if err := p.Validate(); err != nil {
		return Genre{}, err
	}
	return uc.r.UpdateGenre(ctx, id, p)
}

func (uc *Usecase) DeleteGenre(ctx context.Context, id string) (Genre, error) {
	return uc.r.DeleteGenre(ctx, id)
}

func (uc *Usecase) FindGenreBySearch(ctx context.Context, p SearchParams) (SearchResult, error) {
	genres, err := uc.r.FindGenres(ctx, SearchSpec(p, uc.maxPageSize))
	if err != nil {
		return SearchResult{}, err
	}
	if genres == nil {
		genres = []Genre{}
	}
	return SearchResult{Data: genres}, nil
}
