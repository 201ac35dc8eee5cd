package mongodb_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviecatalog/mongodb"
	"moviecatalog/movie"
	"moviecatalog/query"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestMovieRepository(t *testing.T) {
	// Arrange - one server for every subtest
	db := CreateDatabase(t, "movie_test")
	repo := mongodb.NewMovieRepository(db)
	ctx := context.Background()

	t.Run("round-trips a created movie", func(t *testing.T) {
		cleanupCollections(t, db)
		input := movie.Movie{
			Title:       "Mock Movie",
			Description: "description",
			ReleaseDate: date(2024, 7, 20),
			Genre:       []string{"comedy", "fantasy"},
		}

		created, err := repo.CreateMovie(ctx, input)
		require.NoError(t, err)
		fetched, err := repo.FindMovieByID(ctx, created.ID)

		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, created, fetched)
		assert.Equal(t, input.Title, fetched.Title)
		assert.Equal(t, input.Genre, fetched.Genre)
		assert.True(t, input.ReleaseDate.Equal(fetched.ReleaseDate))
	})

	t.Run("reports missing and malformed ids", func(t *testing.T) {
		cleanupCollections(t, db)

		_, err := repo.FindMovieByID(ctx, "66a0c1f2e4b0a1b2c3d4e5f6")
		assert.ErrorIs(t, err, movie.ErrNotFound)

		_, err = repo.FindMovieByID(ctx, "not-an-object-id")
		assert.ErrorIs(t, err, movie.ErrInvalidID)
	})

	t.Run("partial update keeps unsupplied fields", func(t *testing.T) {
		cleanupCollections(t, db)
		created := mustCreateMovie(t, repo, "Mock Movie", date(2024, 7, 20), "comedy")
		title := "Renamed"

		updated, err := repo.UpdateMovie(ctx, created.ID, movie.Patch{Title: &title})

		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Title)
		assert.Equal(t, created.Description, updated.Description)
		assert.Equal(t, created.Genre, updated.Genre)
	})

	t.Run("full replace drops unsupplied fields", func(t *testing.T) {
		cleanupCollections(t, db)
		created := mustCreateMovie(t, repo, "Mock Movie", date(2024, 7, 20), "comedy")
		replacement := movie.Movie{Title: "Title example 3", ReleaseDate: date(2024, 7, 20)}.WithDefaults()

		replaced, err := repo.ReplaceMovie(ctx, created.ID, replacement)

		require.NoError(t, err)
		assert.Equal(t, created.ID, replaced.ID)
		assert.Equal(t, "Title example 3", replaced.Title)
		assert.Empty(t, replaced.Description)
		assert.Equal(t, []string{}, replaced.Genre)
	})

	t.Run("update and replace of a missing id", func(t *testing.T) {
		cleanupCollections(t, db)
		title := "x"

		_, err := repo.UpdateMovie(ctx, "66a0c1f2e4b0a1b2c3d4e5f6", movie.Patch{Title: &title})
		assert.ErrorIs(t, err, movie.ErrNotFound)

		_, err = repo.ReplaceMovie(ctx, "66a0c1f2e4b0a1b2c3d4e5f6", movie.Movie{Title: "x", ReleaseDate: date(2020, 1, 1)})
		assert.ErrorIs(t, err, movie.ErrNotFound)
	})

	t.Run("delete returns the removed movie", func(t *testing.T) {
		cleanupCollections(t, db)
		created := mustCreateMovie(t, repo, "Mock Movie", date(2024, 7, 20), "comedy")

		deleted, err := repo.DeleteMovie(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, deleted.ID)

		_, err = repo.DeleteMovie(ctx, created.ID)
		assert.ErrorIs(t, err, movie.ErrNotFound)
	})

	t.Run("search by title, date range and page", func(t *testing.T) {
		cleanupCollections(t, db)
		mustCreateMovie(t, repo, "Mock Movie 1", date(2021, 5, 1), "drama")
		mustCreateMovie(t, repo, "Mock Movie 2", date(2022, 1, 1), "comedy")
		mustCreateMovie(t, repo, "MOCK Movie 3", date(2023, 6, 1), "comedy")
		mustCreateMovie(t, repo, "other", date(2024, 8, 1), "comedy")
		mustCreateMovie(t, repo, "Mock Movie 4", date(2024, 9, 1), "comedy")

		search := "mock"
		from, to := date(2022, 1, 1), date(2024, 8, 1)
		spec := movie.SearchSpec(movie.SearchParams{
			Pagination:      query.DefaultPagination(),
			Search:          &search,
			ReleaseDateFrom: &from,
			ReleaseDateTo:   &to,
		}, 0)

		movies, err := repo.FindMovies(ctx, spec)

		require.NoError(t, err)
		assert.Equal(t, []string{"MOCK Movie 3", "Mock Movie 2"}, titles(movies))

		page2 := movie.SearchSpec(movie.SearchParams{Pagination: query.Pagination{Page: 2, PageSize: 2}}, 0)
		movies, err = repo.FindMovies(ctx, page2)

		require.NoError(t, err)
		assert.Equal(t, []string{"MOCK Movie 3", "Mock Movie 2"}, titles(movies))
	})

	t.Run("genre browse returns newest first", func(t *testing.T) {
		cleanupCollections(t, db)
		mustCreateMovie(t, repo, "first", date(2020, 1, 1), "comedy")
		mustCreateMovie(t, repo, "second", date(2021, 1, 1), "drama", "comedy")
		mustCreateMovie(t, repo, "third", date(2022, 1, 1), "Comedy")

		genreName := "comedy"
		movies, err := repo.FindMovies(ctx, movie.GenreSpec(movie.GenreParams{
			Pagination: query.DefaultPagination(),
			GenreName:  &genreName,
		}, 0))

		require.NoError(t, err)
		assert.Equal(t, []string{"second", "first"}, titles(movies))
	})
}

func mustCreateMovie(t *testing.T, repo *mongodb.MovieRepository, title string, released time.Time, genres ...string) movie.Movie {
	t.Helper()
	created, err := repo.CreateMovie(context.Background(), movie.Movie{
		Title:       title,
		Description: "description",
		ReleaseDate: released,
		Genre:       genres,
	})
	require.NoError(t, err)
	return created
}

func titles(movies []movie.Movie) []string {
	out := make([]string, len(movies))
	for i, m := range movies {
		out[i] = m.Title
	}
	return out
}
