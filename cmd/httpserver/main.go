package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"moviecatalog/genre"
	"moviecatalog/httpserver"
	"moviecatalog/movie"
	"moviecatalog/pkg/config"
	"moviecatalog/pkg/logger"
	"moviecatalog/pkg/sentry"
	"moviecatalog/storage"

	sentrygo "github.com/getsentry/sentry-go"
)

const shutdownTimeout = 10 * time.Second

// @title Movie Catalog API
// @version 1.0.0
// @description CRUD API for movies and genres with paginated search.
// @BasePath /
func main() {
	boot := logger.NewBootstrap(os.Stderr)

	cfg, err := config.LoadConfig()
	if err != nil {
		boot.Fatalw("cannot load config", "error", err)
	}

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		boot.Fatalw("cannot build logger", "error", err)
	}
	defer func() { _ = log.Sync() }()

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Fatalw("cannot init sentry", "error", err)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stores, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatalw("cannot open store", "driver", cfg.DB.Driver, "error", err)
	}
	defer func() {
		if err := stores.Close(context.Background()); err != nil {
			log.Errorw("cannot close store", "error", err)
		}
	}()

	server, err := httpserver.New(
		httpserver.WithConfig(cfg),
		httpserver.WithLogger(log),
		httpserver.WithMovieService(movie.NewUsecase(stores.Movies, movie.WithMaxPageSize(cfg.Pagination.MaxPageSize))),
		httpserver.WithGenreService(genre.NewUsecase(stores.Genres, genre.WithMaxPageSize(cfg.Pagination.MaxPageSize))),
	)
	if err != nil {
		log.Fatalw("cannot create server", "error", err)
	}

	errChan := make(chan error, 1)
	go func() {
		log.Infow("server started", "addr", server.Addr, "driver", stores.Driver)
		errChan <- server.Start()
	}()

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorw("server stopped with error", "error", err)
		}
	case <-ctx.Done():
		log.Infow("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Errorw("graceful shutdown failed", "error", err)
		}
	}
}
