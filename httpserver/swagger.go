package httpserver

import (
	"net/http"

	_ "moviecatalog/docs"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func (s *Server) RegisterSwaggerRoutes() {
	s.Router.GET("/api-docs", func(c echo.Context) error {
		return c.Redirect(http.StatusMovedPermanently, "/api-docs/index.html")
	})
	s.Router.GET("/api-docs/*", echoSwagger.WrapHandler)
}
