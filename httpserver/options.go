package httpserver

import (
	"fmt"
	"strings"

	"moviecatalog/genre"
	"moviecatalog/movie"
	"moviecatalog/pkg/config"

	"go.uber.org/zap"
)

type Options func(s *Server) error

// WithConfig sets the listen address and allowed CORS origins from cfg.
func WithConfig(cfg *config.Config) Options {
	return func(s *Server) error {
		s.Config = cfg
		if cfg.Port > 0 {
			s.Addr = fmt.Sprintf(":%d", cfg.Port)
		}
		if cfg.AllowOrigins != "" {
			s.AllowOrigins = strings.Split(cfg.AllowOrigins, ",")
		}
		return nil
	}
}

func WithLogger(l *zap.SugaredLogger) Options {
	return func(s *Server) error {
		if l == nil {
			return fmt.Errorf("httpserver: nil logger")
		}
		s.Logger = l
		return nil
	}
}

func WithMovieService(svc movie.Service) Options {
	return func(s *Server) error {
		s.MovieService = svc
		return nil
	}
}

func WithGenreService(svc genre.Service) Options {
	return func(s *Server) error {
		s.GenreService = svc
		return nil
	}
}
