package genre_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"moviecatalog/genre"
	"moviecatalog/query"
)

type MockGenreRepository struct {
	mock.Mock
}

func (m *MockGenreRepository) CreateGenre(ctx context.Context, g genre.Genre) (genre.Genre, error) {
	args := m.Called(ctx, g)
	return args.Get(0).(genre.Genre), args.Error(1)
}

func (m *MockGenreRepository) FindGenreByID(ctx context.Context, id string) (genre.Genre, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(genre.Genre), args.Error(1)
}

func (m *MockGenreRepository) UpdateGenre(ctx context.Context, id string, p genre.Patch) (genre.Genre, error) {
	args := m.Called(ctx, id, p)
	return args.Get(0).(genre.Genre), args.Error(1)
}

func (m *MockGenreRepository) DeleteGenre(ctx context.Context, id string) (genre.Genre, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(genre.Genre), args.Error(1)
}

func (m *MockGenreRepository) FindGenres(ctx context.Context, spec query.Spec) ([]genre.Genre, error) {
	args := m.Called(ctx, spec)
	genres, _ := args.Get(0).([]genre.Genre)
	return genres, args.Error(1)
}

func TestCreateGenre(t *testing.T) {
	t.Run("should create a genre", func(t *testing.T) {
		r := new(MockGenreRepository)
		uc := genre.NewUsecase(r)
		g := genre.Genre{Name: "Mock Genre"}
		r.On("CreateGenre", mock.Anything, g).Return(genre.Genre{ID: "test_id", Name: "Mock Genre"}, nil).Once()

		created, err := uc.CreateGenre(context.Background(), g)

		require.NoError(t, err)
		assert.Equal(t, "test_id", created.ID)
		r.AssertExpectations(t)
	})

	t.Run("should fail on empty name", func(t *testing.T) {
		r := new(MockGenreRepository)
		uc := genre.NewUsecase(r)

		_, err := uc.CreateGenre(context.Background(), genre.Genre{Name: " "})

		assert.Equal(t, genre.ErrInvalidName, err)
		r.AssertNotCalled(t, "CreateGenre")
	})

	t.Run("should surface duplicate names", func(t *testing.T) {
		r := new(MockGenreRepository)
		uc := genre.NewUsecase(r)
		g := genre.Genre{Name: "comedy"}
		r.On("CreateGenre", mock.Anything, g).Return(genre.Genre{}, genre.ErrDuplicateName).Once()

		_, err := uc.CreateGenre(context.Background(), g)

		assert.ErrorIs(t, err, genre.ErrDuplicateName)
	})
}

func TestFindByIDAndUpdate(t *testing.T) {
	t.Run("should rename", func(t *testing.T) {
		r := new(MockGenreRepository)
		uc := genre.NewUsecase(r)
		name := "fantasy"
		r.On("UpdateGenre", mock.Anything, "mockId", genre.Patch{Name: &name}).
			Return(genre.Genre{ID: "mockId", Name: name}, nil).Once()

		updated, err := uc.FindByIDAndUpdate(context.Background(), "mockId", genre.Patch{Name: &name})

		require.NoError(t, err)
		assert.Equal(t, "fantasy", updated.Name)
		r.AssertExpectations(t)
	})

	t.Run("should reject a blank name", func(t *testing.T) {
		r := new(MockGenreRepository)
		uc := genre.NewUsecase(r)
		blank := ""

		_, err := uc.FindByIDAndUpdate(context.Background(), "mockId", genre.Patch{Name: &blank})

		assert.Equal(t, genre.ErrInvalidName, err)
		r.AssertNotCalled(t, "UpdateGenre")
	})
}

func TestFindByIDAndDelete(t *testing.T) {
	r := new(MockGenreRepository)
	uc := genre.NewUsecase(r)
	r.On("FindGenreByID", mock.Anything, "missing").Return(genre.Genre{}, genre.ErrNotFound).Once()
	r.On("DeleteGenre", mock.Anything, "mockId").Return(genre.Genre{ID: "mockId", Name: "comedy"}, nil).Once()

	_, err := uc.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, genre.ErrNotFound)

	deleted, err := uc.DeleteGenre(context.Background(), "mockId")
	require.NoError(t, err)
	assert.Equal(t, "comedy", deleted.Name)

	r.AssertExpectations(t)
}

func TestFindGenreBySearch(t *testing.T) {
	r := new(MockGenreRepository)
	uc := genre.NewUsecase(r)
	search := "com"
	params := genre.SearchParams{Pagination: query.Pagination{Page: 1, PageSize: 2}, Search: &search}
	genres := []genre.Genre{{ID: "2", Name: "Comedy"}, {ID: "1", Name: "Romcom"}}
	r.On("FindGenres", mock.Anything, genre.SearchSpec(params, 0)).Return(genres, nil).Once()

	result, err := uc.FindGenreBySearch(context.Background(), params)

	require.NoError(t, err)
	assert.Equal(t, genre.SearchResult{Data: genres}, result)
	r.AssertExpectations(t)
}

func TestSearchSpec(t *testing.T) {
	search := "comedy"

	spec := genre.SearchSpec(genre.SearchParams{Pagination: query.Pagination{Page: 2, PageSize: 10}, Search: &search}, 0)

	assert.Equal(t, []query.Condition{{Field: "name", Op: query.Match, Value: "comedy"}}, spec.Conditions)
	assert.Equal(t, query.Sort{Field: query.Identity, Direction: query.Desc}, spec.Sort)
	assert.Equal(t, int64(10), spec.Skip)
	assert.Equal(t, int64(10), spec.Limit)
}
