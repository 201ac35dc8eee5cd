package httpserver_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"moviecatalog/genre"
	"moviecatalog/movie"
)

type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) CreateMovie(ctx context.Context, mv movie.Movie) (movie.Movie, error) {
	args := m.Called(ctx, mv)
	return args.Get(0).(movie.Movie), args.Error(1)
}

func (m *MockMovieService) FindByID(ctx context.Context, id string) (movie.Movie, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(movie.Movie), args.Error(1)
}

func (m *MockMovieService) FindByIDAndUpdate(ctx context.Context, id string, p movie.Patch) (movie.Movie, error) {
	args := m.Called(ctx, id, p)
	return args.Get(0).(movie.Movie), args.Error(1)
}

func (m *MockMovieService) FindByIDAndUpdateFull(ctx context.Context, id string, mv movie.Movie) (movie.Movie, error) {
	args := m.Called(ctx, id, mv)
	return args.Get(0).(movie.Movie), args.Error(1)
}

func (m *MockMovieService) DeleteMovie(ctx context.Context, id string) (movie.Movie, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(movie.Movie), args.Error(1)
}

func (m *MockMovieService) FindBySearch(ctx context.Context, p movie.SearchParams) (movie.SearchResult, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(movie.SearchResult), args.Error(1)
}

func (m *MockMovieService) GetMoviesByGenre(ctx context.Context, p movie.GenreParams) (movie.SearchResult, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(movie.SearchResult), args.Error(1)
}

type MockGenreService struct {
	mock.Mock
}

func (m *MockGenreService) CreateGenre(ctx context.Context, g genre.Genre) (genre.Genre, error) {
	args := m.Called(ctx, g)
	return args.Get(0).(genre.Genre), args.Error(1)
}

func (m *MockGenreService) FindByID(ctx context.Context, id string) (genre.Genre, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(genre.Genre), args.Error(1)
}

func (m *MockGenreService) FindByIDAndUpdate(ctx context.Context, id string, p genre.Patch) (genre.Genre, error) {
	args := m.Called(ctx, id, p)
	return args.Get(0).(genre.Genre), args.Error(1)
}

func (m *MockGenreService) DeleteGenre(ctx context.Context, id string) (genre.Genre, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(genre.Genre), args.Error(1)
}

func (m *MockGenreService) FindGenreBySearch(ctx context.Context, p genre.SearchParams) (genre.SearchResult, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(genre.SearchResult), args.Error(1)
}
