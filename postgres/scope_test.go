package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"moviecatalog/genre"
	"moviecatalog/movie"
	"moviecatalog/query"
)

func dryRun(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost port=5432 user=dry dbname=dry sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

func TestSearchScope(t *testing.T) {
	db := dryRun(t)
	from := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	search, genreName := "50%_off", "comedy"

	t.Run("movie search renders every condition", func(t *testing.T) {
		spec := movie.SearchSpec(movie.SearchParams{
			Pagination:      query.Pagination{Page: 3, PageSize: 5},
			Search:          &search,
			ReleaseDateFrom: &from,
			GenreName:       &genreName,
		}, 0)

		var models []MovieModel
		stmt := db.Scopes(searchScope(spec, movieColumns)).Find(&models).Statement
		sql := stmt.SQL.String()

		assert.Contains(t, sql, `title ILIKE $1`)
		assert.Contains(t, sql, `release_date >= $2`)
		assert.Contains(t, sql, `$3 = ANY(genre)`)
		assert.Contains(t, sql, `ORDER BY "release_date" DESC,"id" DESC`)
		assert.Contains(t, stmt.Vars, `%50\%\_off%`)
		assert.Contains(t, stmt.Vars, from)
		assert.Contains(t, stmt.Vars, "comedy")
	})

	t.Run("genre search sorts by id only", func(t *testing.T) {
		spec := genre.SearchSpec(genre.SearchParams{Pagination: query.DefaultPagination()}, 0)

		var models []GenreModel
		stmt := db.Scopes(searchScope(spec, genreColumns)).Find(&models).Statement
		sql := stmt.SQL.String()

		assert.NotContains(t, sql, "WHERE")
		assert.Contains(t, sql, `ORDER BY "id" DESC`)
		assert.NotContains(t, sql, "OFFSET")
	})
}

func TestCondition_UnknownOp(t *testing.T) {
	sql, args := condition("title", query.Condition{Field: "title", Op: query.Op(99)})

	assert.Equal(t, "FALSE", sql)
	assert.Nil(t, args)
}
