package httpserver

import (
	"errors"
	"net/http"

	"moviecatalog/errs"
	"moviecatalog/movie"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterMovieRoutes(g *echo.Group) {
	g.GET("", s.handleSearchMovies)
	g.POST("", s.handleCreateMovie)
	g.GET("/genre/:genreName", s.handleMoviesByGenre)
	g.GET("/:id", s.handleGetMovie)
	g.PATCH("/:id", s.handleUpdateMovie)
	g.PUT("/:id", s.handleReplaceMovie)
	g.DELETE("/:id", s.handleDeleteMovie)
}

func (s *Server) movieService() (movie.Service, error) {
	if s.MovieService == nil {
		return nil, errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}
	return s.MovieService, nil
}

// movieNotFound rewrites a missing record into the message clients see.
func movieNotFound(err error, id string) error {
	if errors.Is(err, movie.ErrNotFound) {
		return errs.Errorf(errs.ENOTFOUND, "Cannot find any movie with ID %s", id)
	}
	return err
}

// handleSearchMovies godoc
// @Summary Search movies
// @Description Case-insensitive title search with an inclusive release date range, newest release first
// @Tags movies
// @Produce json
// @Param search query string false "Text contained in the title"
// @Param releaseDateFrom query string false "Earliest release date (YYYY-MM-DD)"
// @Param releaseDateTo query string false "Latest release date (YYYY-MM-DD)"
// @Param page query int false "Page number, default 1"
// @Param pageSize query int false "Page size, default 10"
// @Success 200 {object} Response{results=movie.SearchResult}
// @Failure 400 {object} FailResponse
// @Failure 500 {object} MessageResponse
// @Router /api/movies [get]
func (s *Server) handleSearchMovies(c echo.Context) error {
	svc, err := s.movieService()
	if err != nil {
		return err
	}

	pagination, err := parsePagination(c)
	if err != nil {
		return err
	}
	from, err := optionalDate(c, "releaseDateFrom")
	if err != nil {
		return err
	}
	to, err := optionalDate(c, "releaseDateTo")
	if err != nil {
		return err
	}

	result, err := svc.FindBySearch(c.Request().Context(), movie.SearchParams{
		Pagination:      pagination,
		Search:          optionalString(c, "search"),
		ReleaseDateFrom: from,
		ReleaseDateTo:   to,
	})
	if err != nil {
		return err
	}

	return writeResults(c, http.StatusOK, result)
}

// handleMoviesByGenre godoc
// @Summary Browse movies by genre
// @Description Movies tagged with the exact genre label, most recently added first
// @Tags movies
// @Produce json
// @Param genreName path string true "Genre label"
// @Param page query int false "Page number, default 1"
// @Param pageSize query int false "Page size, default 10"
// @Success 200 {object} Response{results=movie.SearchResult}
// @Failure 400 {object} FailResponse
// @Router /api/movies/genre/{genreName} [get]
func (s *Server) handleMoviesByGenre(c echo.Context) error {
	svc, err := s.movieService()
	if err != nil {
		return err
	}

	pagination, err := parsePagination(c)
	if err != nil {
		return err
	}
	genreName := c.Param("genreName")

	result, err := svc.GetMoviesByGenre(c.Request().Context(), movie.GenreParams{
		Pagination: pagination,
		GenreName:  &genreName,
	})
	if err != nil {
		return err
	}

	return writeResults(c, http.StatusOK, result)
}

// handleCreateMovie godoc
// @Summary Create a movie
// @Tags movies
// @Accept json
// @Produce json
// @Param movie body MovieRequest true "Movie"
// @Success 201 {object} Response{results=movie.Movie}
// @Failure 400 {object} FailResponse
// @Router /api/movies [post]
func (s *Server) handleCreateMovie(c echo.Context) error {
	svc, err := s.movieService()
	if err != nil {
		return err
	}

	var req MovieRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := svc.CreateMovie(c.Request().Context(), req.ToMovie())
	if err != nil {
		return err
	}

	return writeResults(c, http.StatusCreated, created)
}

// handleGetMovie godoc
// @Summary Get a movie
// @Tags movies
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} Response{results=movie.Movie}
// @Failure 400 {object} FailResponse
// @Failure 404 {object} MessageResponse
// @Router /api/movies/{id} [get]
func (s *Server) handleGetMovie(c echo.Context) error {
	svc, err := s.movieService()
	if err != nil {
		return err
	}

	id := c.Param("id")
	m, err := svc.FindByID(c.Request().Context(), id)
	if err != nil {
		return movieNotFound(err, id)
	}

	return writeResults(c, http.StatusOK, m)
}

// handleUpdateMovie godoc
// @Summary Update part of a movie
// @Description Only the supplied fields change
// @Tags movies
// @Accept json
// @Produce json
// @Param id path string true "Movie ID"
// @Param movie body UpdateMovieRequest true "Fields to change"
// @Success 200 {object} Response{results=movie.Movie}
// @Failure 400 {object} FailResponse
// @Failure 404 {object} MessageResponse
// @Router /api/movies/{id} [patch]
func (s *Server) handleUpdateMovie(c echo.Context) error {
	svc, err := s.movieService()
	if err != nil {
		return err
	}

	var req UpdateMovieRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id := c.Param("id")
	updated, err := svc.FindByIDAndUpdate(c.Request().Context(), id, req.ToPatch())
	if err != nil {
		return movieNotFound(err, id)
	}

	return writeResults(c, http.StatusOK, updated)
}

// handleReplaceMovie godoc
// @Summary Replace a movie
// @Description Fields left out of the body are reset to their defaults
// @Tags movies
// @Accept json
// @Produce json
// @Param id path string true "Movie ID"
// @Param movie body MovieRequest true "Movie"
// @Success 200 {object} Response{results=movie.Movie}
// @Failure 400 {object} FailResponse
// @Failure 404 {object} MessageResponse
// @Router /api/movies/{id} [put]
func (s *Server) handleReplaceMovie(c echo.Context) error {
	svc, err := s.movieService()
	if err != nil {
		return err
	}

	var req MovieRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id := c.Param("id")
	replaced, err := svc.FindByIDAndUpdateFull(c.Request().Context(), id, req.ToMovie())
	if err != nil {
		return movieNotFound(err, id)
	}

	return writeResults(c, http.StatusOK, replaced)
}

// handleDeleteMovie godoc
// @Summary Delete a movie
// @Tags movies
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} Response{results=movie.Movie}
// @Failure 400 {object} FailResponse
// @Failure 404 {object} MessageResponse
// @Router /api/movies/{id} [delete]
func (s *Server) handleDeleteMovie(c echo.Context) error {
	svc, err := s.movieService()
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	id := c.Param("id")
	if _, err := svc.FindByID(ctx, id); err != nil {
		return movieNotFound(err, id)
	}

	deleted, err := svc.DeleteMovie(ctx, id)
	if err != nil {
		return movieNotFound(err, id)
	}

	return writeResults(c, http.StatusOK, deleted)
}
