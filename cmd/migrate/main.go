// Command migrate applies the SQL migrations of the postgres store.
package main

import (
	"flag"
	"os"
	"strconv"

	"moviecatalog/pkg/config"
	"moviecatalog/pkg/logger"
	"moviecatalog/postgres"

	_ "github.com/lib/pq"
	migrate "github.com/rubenv/sql-migrate"
)

func main() {
	var (
		dir  string
		down bool
	)
	flag.StringVar(&dir, "dir", "migrations", "Directory holding the migration files")
	flag.BoolVar(&down, "down", false, "Roll back the latest migration instead of applying pending ones")
	flag.Parse()

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

	db, err := postgres.NewConnection(postgres.Options{
		DBName:   cfg.DB.Name,
		DBUser:   cfg.DB.User,
		Password: cfg.DB.Pass,
		Host:     cfg.DB.Host,
		Port:     strconv.Itoa(cfg.DB.Port),
		SSLMode:  cfg.DB.EnableSSL,
	})
	if err != nil {
		log.Fatalw("cannot connect to db", "error", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalw("cannot get db instance", "error", err)
	}
	defer sqlDB.Close()

	source := &migrate.FileMigrationSource{Dir: dir}
	if down {
		total, err := migrate.ExecMax(sqlDB, "postgres", source, migrate.Down, 1)
		if err != nil {
			log.Fatalw("cannot roll back migration", "error", err)
		}
		log.Infow("rolled back migrations", "total", total)
		return
	}

	total, err := migrate.Exec(sqlDB, "postgres", source, migrate.Up)
	if err != nil {
		log.Fatalw("cannot execute migration", "error", err)
	}
	log.Infow("applied migrations", "total", total)
}
