package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterHealthRoutes() {
	s.Router.GET("/health", s.health)
	s.Router.GET("/health-check", s.healthCheck)
}

// health godoc
// @Summary Health page
// @Tags health
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /health [get]
func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: "This is Health page"})
}

// healthCheck godoc
// @Summary Health check
// @Description Check if server is alive
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health-check [get]
func (s *Server) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Server is running",
		"app":     "Health",
	})
}
