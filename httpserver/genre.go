package httpserver

import (
	"errors"
	"net/http"

	"moviecatalog/errs"
	"moviecatalog/genre"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterGenreRoutes(g *echo.Group) {
	g.GET("", s.handleSearchGenres)
	g.POST("", s.handleCreateGenre)
	g.GET("/:id", s.handleGetGenre)
	g.PATCH("/:id", s.handleUpdateGenre)
	// PUT merges as well; a genre has a single field.
	g.PUT("/:id", s.handleUpdateGenre)
	g.DELETE("/:id", s.handleDeleteGenre)
}

func (s *Server) genreService() (genre.Service, error) {
	if s.GenreService == nil {
		return nil, errs.Errorf(errs.ENOTIMPLEMENTED, "genre service not configured")
	}
	return s.GenreService, nil
}

func genreNotFound(err error, id string) error {
	if errors.Is(err, genre.ErrNotFound) {
		return errs.Errorf(errs.ENOTFOUND, "Cannot find any genre with ID %s", id)
	}
	return err
}

// handleSearchGenres godoc
// @Summary Search genres
// @Tags genres
// @Produce json
// @Param search query string false "Text contained in the name"
// @Param page query int false "Page number, default 1"
// @Param pageSize query int false "Page size, default 10"
// @Success 200 {object} Response{results=genre.SearchResult}
// @Failure 400 {object} FailResponse
// @Router /api/genres [get]
func (s *Server) handleSearchGenres(c echo.Context) error {
	svc, err := s.genreService()
	if err != nil {
		return err
	}

	pagination, err := parsePagination(c)
	if err != nil {
		return err
	}

	result, err := svc.FindGenreBySearch(c.Request().Context(), genre.SearchParams{
		Pagination: pagination,
		Search:     optionalString(c, "search"),
	})
	if err != nil {
		return err
	}

	return writeResults(c, http.StatusOK, result)
}

// handleCreateGenre godoc
// @Summary Create a genre
// @Tags genres
// @Accept json
// @Produce json
// @Param genre body GenreRequest true "Genre"
// @Success 201 {object} Response{results=genre.Genre}
// @Failure 400 {object} FailResponse
// @Router /api/genres [post]
func (s *Server) handleCreateGenre(c echo.Context) error {
	svc, err := s.genreService()
	if err != nil {
		return err
	}

	var req GenreRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := svc.CreateGenre(c.Request().Context(), req.ToGenre())
	if err != nil {
		return err
	}

	return writeResults(c, http.StatusCreated, created)
}

// handleGetGenre godoc
// @Summary Get a genre
// @Tags genres
// @Produce json
// @Param id path string true "Genre ID"
// @Success 200 {object} Response{results=genre.Genre}
// @Failure 404 {object} MessageResponse
// @Router /api/genres/{id} [get]
func (s *Server) handleGetGenre(c echo.Context) error {
	svc, err := s.genreService()
	if err != nil {
		return err
	}

	id := c.Param("id")
	g, err := svc.FindByID(c.Request().Context(), id)
	if err != nil {
		return genreNotFound(err, id)
	}

	return writeResults(c, http.StatusOK, g)
}

// handleUpdateGenre godoc
// @Summary Update a genre
// @Tags genres
// @Accept json
// @Produce json
// @Param id path string true "Genre ID"
// @Param genre body UpdateGenreRequest true "Fields to change"
// @Success 200 {object} Response{results=genre.Genre}
// @Failure 400 {object} FailResponse
// @Failure 404 {object} MessageResponse
// @Router /api/genres/{id} [patch]
// @Router /api/genres/{id} [put]
func (s *Server) handleUpdateGenre(c echo.Context) error {
	svc, err := s.genreService()
	if err != nil {
		return err
	}

	var req UpdateGenreRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id := c.Param("id")
	updated, err := svc.FindByIDAndUpdate(c.Request().Context(), id, req.ToPatch())
	if err != nil {
		return genreNotFound(err, id)
	}

	return writeResults(c, http.StatusOK, updated)
}

// handleDeleteGenre godoc
// @Summary Delete a genre
// @Tags genres
// @Produce json
// @Param id path string true "Genre ID"
// @Success 200 {object} Response{results=genre.Genre}
// @Failure 404 {object} MessageResponse
// @Router /api/genres/{id} [delete]
func (s *Server) handleDeleteGenre(c echo.Context) error {
	svc, err := s.genreService()
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	id := c.Param("id")
	if _, err := svc.FindByID(ctx, id); err != nil {
		return genreNotFound(err, id)
	}

	deleted, err := svc.DeleteGenre(ctx, id)
	if err != nil {
		return genreNotFound(err, id)
	}

	return writeResults(c, http.StatusOK, deleted)
}
