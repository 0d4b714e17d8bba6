package router

import (
	"log/slog"
	"net/http"

	"github.com/Thomas-M-Krystyan/LeetCode-RoyalNamesSorter/internal/roman"
	"github.com/Thomas-M-Krystyan/LeetCode-RoyalNamesSorter/internal/sorter"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type RoyalRouter struct {
	e         *echo.Echo
	converter *roman.Converter
	sorter    *sorter.Sorter
}

func NewRoyalRouter(e *echo.Echo, converter *roman.Converter, sorter *sorter.Sorter) *RoyalRouter {
	return &RoyalRouter{
		e:         e,
		converter: converter,
		sorter:    sorter,
	}
}

func (r *RoyalRouter) Bind() {
	r.e.GET("/convert", r.convertHandler)
	r.e.POST("/sort", r.sortHandler)
}

type ConvertResponse struct {
	Token string `json:"token"`
	Value int    `json:"value"`
}

type SortRequest struct {
	Names []string `json:"names"`
}

type SortResponse struct {
	RequestID string   `json:"requestId"`
	Names     []string `json:"names"`
}

func (r *RoyalRouter) convertHandler(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "token parameter is required"})
	}

	value, err := r.converter.Convert(token)
	if err != nil {
		// the global error handler turns validation errors into a 400
		return err
	}

	return c.JSON(http.StatusOK, ConvertResponse{Token: token, Value: value})
}

func (r *RoyalRouter) sortHandler(c echo.Context) error {
	var req SortRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	requestID := uuid.New()

	sorted, err := r.sorter.Sort(req.Names)
	if err != nil {
		slog.Warn("Sort rejected", "requestId", requestID, "error", err)
		return err
	}

	slog.Info("Sorted royal names", "requestId", requestID, "count", len(sorted))
	return c.JSON(http.StatusOK, SortResponse{RequestID: requestID.String(), Names: sorted})
}
