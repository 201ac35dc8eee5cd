// Package storage opens the record store selected by configuration.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"moviecatalog/genre"
	"moviecatalog/mongodb"
	"moviecatalog/movie"
	"moviecatalog/pkg/config"
	"moviecatalog/postgres"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// Stores bundles the repositories of one backing database.
type Stores struct {
	Driver string
	Movies movie.Repository
	Genres genre.Repository

	close func(context.Context) error
}

// Close releases the underlying connection.
func (s *Stores) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

func Open(ctx context.Context, cfg *config.Config) (*Stores, error) {
	switch cfg.DB.Driver {
	case DriverMongo, "":
		return openMongo(ctx, cfg)
	case DriverPostgres:
		return openPostgres(cfg)
	}
	return nil, fmt.Errorf("storage: unknown driver %q", cfg.DB.Driver)
}

func openMongo(ctx context.Context, cfg *config.Config) (*Stores, error) {
	if cfg.Mongo.URL == "" {
		return nil, errors.New("storage: MONGO_URL is required for the mongo driver")
	}

	client, err := mongodb.NewClient(ctx, mongodb.Options{URI: cfg.Mongo.URL})
	if err != nil {
		return nil, err
	}

	db := client.Database(cfg.Mongo.Database)
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return &Stores{
		Driver: DriverMongo,
		Movies: mongodb.NewMovieRepository(db),
		Genres: mongodb.NewGenreRepository(db),
		close:  client.Disconnect,
	}, nil
}

func openPostgres(cfg *config.Config) (*Stores, error) {
	db, err := postgres.NewConnection(postgres.Options{
		DBName:   cfg.DB.Name,
		DBUser:   cfg.DB.User,
		Password: cfg.DB.Pass,
		Host:     cfg.DB.Host,
		Port:     strconv.Itoa(cfg.DB.Port),
		SSLMode:  cfg.DB.EnableSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("storage: postgres: %w", err)
	}

	return &Stores{
		Driver: DriverPostgres,
		Movies: postgres.NewMovieRepository(db),
		Genres: postgres.NewGenreRepository(db),
		close: func(context.Context) error {
			return sqlDB.Close()
		},
	}, nil
}
