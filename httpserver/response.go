package httpserver

import (
	"net/http"

	"moviecatalog/pagination"

	"github.com/labstack/echo/v4"
)

// PagedResponse is the envelope for every list endpoint.
type PagedResponse struct {
	Data       interface{}         `json:"data"`
	Pagination pagination.Metadata `json:"pagination"`
}

func writePage(c echo.Context, data interface{}, meta pagination.Metadata) error {
	return c.JSON(http.StatusOK, PagedResponse{
		Data:       data,
		Pagination: meta,
	})
}

func writeCreated(c echo.Context, location string, body interface{}) error {
	c.Response().Header().Set(echo.HeaderLocation, location)
	return c.JSON(http.StatusCreated, body)
}
