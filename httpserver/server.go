package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"moviecatalog/errs"
	"moviecatalog/genre"
	"moviecatalog/movie"
	"moviecatalog/pkg/config"
	"moviecatalog/pkg/logger"
	"moviecatalog/pkg/sentry"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Server struct {
	// Router is the Echo router instance
	Router *echo.Echo

	// Addr represents the address the server will listen on
	Addr string

	// Allowed origins for CORS
	AllowOrigins []string

	Config *config.Config
	Logger *zap.SugaredLogger

	MovieService movie.Service
	GenreService genre.Service
}

func New(options ...Options) (*Server, error) {
	s := Server{
		Router: echo.New(),
		Addr:   ":8080",
		Config: config.Empty,
		Logger: logger.NOOPLogger,
	}

	for _, fn := range options {
		if err := fn(&s); err != nil {
			return nil, err
		}
	}

	s.Router.HideBanner = true
	s.Router.HidePort = true
	s.Router.Validator = NewValidator()
	s.Router.HTTPErrorHandler = s.handleHTTPError

	s.RegisterGlobalMiddlewares()
	s.RegisterHealthRoutes()
	s.RegisterSwaggerRoutes()

	api := s.Router.Group("/api")
	s.RegisterMovieRoutes(api.Group("/movies"))
	s.RegisterGenreRoutes(api.Group("/genres"))

	return &s, nil
}

func (s *Server) RegisterGlobalMiddlewares() {
	s.Router.Use(middleware.Recover())
	s.Router.Use(middleware.Secure())
	s.Router.Use(middleware.RequestID())
	s.Router.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.Logger.Infow("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			)
			return nil
		},
	}))
	s.Router.Use(middleware.Gzip())
	s.Router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))

	// CORS
	if len(s.AllowOrigins) > 0 {
		s.Router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: s.AllowOrigins,
		}))
	}
}

func (s *Server) Start() error {
	return s.Router.Start(s.Addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Router.Shutdown(ctx)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

// handleHTTPError maps application error codes and echo errors to the
// response envelopes. Anything unrecognised is a 500.
func (s *Server) handleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		s.writeEchoError(c, he)
		return
	}

	var werr error
	switch errs.ErrorCode(err) {
	case errs.EINVALID, errs.ECONFLICT:
		werr = writeFail(c, http.StatusBadRequest, errs.ErrorMessage(err))
	case errs.ENOTFOUND:
		werr = writeMessage(c, http.StatusNotFound, errs.ErrorMessage(err))
	case errs.ENOTIMPLEMENTED:
		werr = writeMessage(c, http.StatusNotImplemented, errs.ErrorMessage(err))
	default:
		werr = s.handleError(c, err, http.StatusInternalServerError)
	}
	if werr != nil {
		s.Logger.Errorw("cannot write error response", "error", werr)
	}
}

func (s *Server) writeEchoError(c echo.Context, he *echo.HTTPError) {
	message := fmt.Sprint(he.Message)

	var err error
	switch {
	case he.Code == http.StatusNotFound:
		err = writeMessage(c, http.StatusNotFound, resourceNotFound)
	case he.Code >= http.StatusInternalServerError:
		err = s.handleError(c, he, he.Code)
	case he.Code == http.StatusBadRequest:
		err = writeFail(c, he.Code, message)
	default:
		err = writeMessage(c, he.Code, message)
	}
	if err != nil {
		s.Logger.Errorw("cannot write error response", "error", err)
	}
}

func (s *Server) handleError(c echo.Context, err error, status int) error {
	s.Logger.Errorw(
		err.Error(),
		zap.String("request_id", s.requestID(c)),
		zap.String("method", c.Request().Method),
		zap.String("path", c.Path()),
	)

	if status >= http.StatusInternalServerError {
		sentry.WithContext(c).
			WithTags(map[string]string{"request_id": s.requestID(c)}).
			Error(err)
	}

	return writeMessage(c, status, http.StatusText(status))
}

func (s *Server) requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
