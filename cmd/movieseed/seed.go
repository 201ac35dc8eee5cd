package main

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"moviecatalog/genre"
	"moviecatalog/movie"

	"go.uber.org/zap"
)

const noGenres = "(no genres listed)"

// MovieLens titles end with the release year, e.g. "Toy Story (1995)".
var titleYear = regexp.MustCompile(`^(.*?)\s*\((\d{4})\)\s*$`)

type seeder struct {
	movies movie.Service
	genres genre.Service
	log    *zap.SugaredLogger

	known map[string]bool
}

func newSeeder(movies movie.Service, genres genre.Service, log *zap.SugaredLogger) *seeder {
	return &seeder{
		movies: movies,
		genres: genres,
		log:    log,
		known:  make(map[string]bool),
	}
}

// importMovies reads a MovieLens movies.csv and creates every movie with a
// release year, plus the genres it references. limit <= 0 imports all rows.
func (s *seeder) importMovies(ctx context.Context, r io.Reader, limit int) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	idxTitle, idxGenres, err := parseMovieCSVHeader(reader)
	if err != nil {
		return 0, err
	}

	count := 0
	for limit <= 0 || count < limit {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return count, err
		}

		m, ok := parseMovieRecord(record, idxTitle, idxGenres)
		if !ok {
			s.log.Debugw("skipping row", "record", record)
			continue
		}
		if err := s.ensureGenres(ctx, m.Genre); err != nil {
			return count, err
		}
		if _, err := s.movies.CreateMovie(ctx, m); err != nil {
			return count, err
		}

		count++
	}

	return count, nil
}

func (s *seeder) ensureGenres(ctx context.Context, names []string) error {
	for _, name := range names {
		if s.known[name] {
			continue
		}
		_, err := s.genres.CreateGenre(ctx, genre.Genre{Name: name})
		if err != nil && !errors.Is(err, genre.ErrDuplicateName) {
			return err
		}
		s.known[name] = true
	}
	return nil
}

func parseMovieCSVHeader(reader *csv.Reader) (int, int, error) {
	header, err := reader.Read()
	if err != nil {
		return 0, 0, err
	}

	idxTitle, idxGenres := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "title":
			idxTitle = i
		case "genres":
			idxGenres = i
		}
	}
	if idxTitle == -1 || idxGenres == -1 {
		return 0, 0, errors.New("missing required columns in csv header")
	}

	return idxTitle, idxGenres, nil
}

func parseMovieRecord(record []string, idxTitle, idxGenres int) (movie.Movie, bool) {
	if idxTitle >= len(record) || idxGenres >= len(record) {
		return movie.Movie{}, false
	}

	match := titleYear.FindStringSubmatch(strings.TrimSpace(record[idxTitle]))
	if match == nil || match[1] == "" {
		return movie.Movie{}, false
	}
	year, err := strconv.Atoi(match[2])
	if err != nil {
		return movie.Movie{}, false
	}

	return movie.Movie{
		Title:       match[1],
		ReleaseDate: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		Genre:       parseGenres(record[idxGenres]),
	}, true
}

func parseGenres(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == noGenres {
		return []string{}
	}

	parts := strings.Split(raw, "|")
	genres := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			genres = append(genres, p)
		}
	}
	return genres
}
