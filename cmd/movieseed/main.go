// Command movieseed loads the MovieLens catalog into the configured store.
package main

import (
	"context"
	"flag"
	"os"

	"moviecatalog/genre"
	"moviecatalog/movie"
	"moviecatalog/pkg/config"
	"moviecatalog/pkg/logger"
	"moviecatalog/storage"
)

func main() {
	var (
		csvPath string
		zipURL  string
		limit   int
	)

	flag.StringVar(&csvPath, "csv", "", "Path to movies.csv (skip download)")
	flag.StringVar(&zipURL, "url", defaultMovieLensURL, "MovieLens zip URL")
	flag.IntVar(&limit, "limit", 0, "Limit number of rows to import (0 = all)")
	flag.Parse()

	boot := logger.NewBootstrap(os.Stderr)

	cfg, err := config.LoadConfig()
	if err != nil {
		boot.Fatalw("load config failed", "error", err)
	}

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		boot.Fatalw("cannot build logger", "error", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	stores, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatalw("cannot open store", "driver", cfg.DB.Driver, "error", err)
	}
	defer func() { _ = stores.Close(ctx) }()

	if csvPath == "" {
		path, cleanup, err := downloadAndExtract(zipURL)
		if err != nil {
			log.Errorw("failed to download dataset", "url", zipURL, "error", err)
			os.Exit(1)
		}
		defer cleanup()
		csvPath = path
	}

	file, err := os.Open(csvPath)
	if err != nil {
		log.Errorw("cannot open dataset", "path", csvPath, "error", err)
		os.Exit(1)
	}
	defer file.Close()

	s := newSeeder(movie.NewUsecase(stores.Movies), genre.NewUsecase(stores.Genres), log)
	count, err := s.importMovies(ctx, file, limit)
	if err != nil {
		log.Errorw("import failed", "imported", count, "error", err)
		os.Exit(1)
	}

	log.Infow("import completed", "movies", count, "genres", len(s.known))
}
