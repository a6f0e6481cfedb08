package httpserver

import (
	"fmt"
	"net/http"

	"moviecatalog/errs"
	"moviecatalog/pagination"
	"moviecatalog/watchlist"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterWatchlistRoutes() {
	g := s.Router.Group("/watchlist", s.requireAPIKey())
	g.GET("/:userId", s.handleListWatchlist)
	g.POST("/:userId/items", s.handleCreateWatchlistItem)
	g.PATCH("/:userId/items/:itemId", s.handleUpdateWatchlistItem)
	g.DELETE("/:userId/items/:itemId", s.handleDeleteWatchlistItem)
}

// handleListWatchlist godoc
// @Summary List Watchlist
// @Description Paginated watchlist of the requesting user
// @Tags watchlist
// @Produce json
// @Param userId path int true "User id"
// @Success 200 {object} PagedResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /watchlist/{userId} [get]
func (s *Server) handleListWatchlist(c echo.Context) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return err
	}
	params := pagination.Parse(c.QueryParam("page"), c.QueryParam("limit"))

	items, meta, err := s.WatchlistService.ListForUser(c.Request().Context(), userID, requesterID(c), params)
	if err != nil {
		return err
	}
	if items == nil {
		items = []watchlist.Item{}
	}

	return writePage(c, items, meta)
}

// handleCreateWatchlistItem godoc
// @Summary Add Watchlist Item
// @Description Add a movie to the requesting user's watchlist
// @Tags watchlist
// @Accept json
// @Produce json
// @Param userId path int true "User id"
// @Param payload body CreateWatchlistItemRequest true "Movie to add"
// @Success 201 {object} watchlist.Item
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /watchlist/{userId}/items [post]
func (s *Server) handleCreateWatchlistItem(c echo.Context) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return err
	}

	var req CreateWatchlistItemRequest
	if err := c.Bind(&req); err != nil {
		return errs.Errorf(errs.EUNPROCESSABLE, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := s.WatchlistService.Create(c.Request().Context(), userID, requesterID(c), *req.MovieID)
	if err != nil {
		return err
	}

	location := fmt.Sprintf("/watchlist/%d/items/%d", userID, created.ID)
	return writeCreated(c, location, created)
}

// handleUpdateWatchlistItem godoc
// @Summary Update Watchlist Item
// @Description Set the watched flag on a watchlist item
// @Tags watchlist
// @Accept json
// @Produce json
// @Param userId path int true "User id"
// @Param itemId path int true "Item id"
// @Param payload body UpdateWatchlistItemRequest true "Watched flag"
// @Success 200 {object} watchlist.Item
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /watchlist/{userId}/items/{itemId} [patch]
func (s *Server) handleUpdateWatchlistItem(c echo.Context) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return err
	}
	itemID, err := parseIDParam(c, "itemId")
	if err != nil {
		return err
	}

	var req UpdateWatchlistItemRequest
	if err := c.Bind(&req); err != nil {
		return errs.Errorf(errs.EUNPROCESSABLE, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := s.WatchlistService.Update(c.Request().Context(), itemID, userID, requesterID(c), *req.Watched)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updated)
}

// handleDeleteWatchlistItem godoc
// @Summary Delete Watchlist Item
// @Tags watchlist
// @Param userId path int true "User id"
// @Param itemId path int true "Item id"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /watchlist/{userId}/items/{itemId} [delete]
func (s *Server) handleDeleteWatchlistItem(c echo.Context) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return err
	}
	itemID, err := parseIDParam(c, "itemId")
	if err != nil {
		return err
	}

	if err := s.WatchlistService.Delete(c.Request().Context(), itemID, userID, requesterID(c)); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
