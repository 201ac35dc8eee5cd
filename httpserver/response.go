package httpserver

import (
	"github.com/labstack/echo/v4"
)

const (
	failStatus       = "fail"
	resourceNotFound = "Resource not found"
)

type Response struct {
	Results interface{} `json:"results"`
}

type FailResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func writeResults(c echo.Context, status int, results interface{}) error {
	return c.JSON(status, Response{Results: results})
}

func writeFail(c echo.Context, status int, message string) error {
	return c.JSON(status, FailResponse{Status: failStatus, Message: message})
}

func writeMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, MessageResponse{Message: message})
}
