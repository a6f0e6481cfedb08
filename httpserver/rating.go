package httpserver

import (
	"fmt"
	"net/http"

	"moviecatalog/errs"
	"moviecatalog/pagination"
	"moviecatalog/rating"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterRatingRoutes() {
	g := s.Router.Group("/movies/:movieId/ratings")
	g.GET("", s.handleListRatings)
	g.GET("/:ratingId", s.handleGetRating)

	auth := s.requireAPIKey()
	g.POST("", s.handleCreateRating, auth)
	g.PATCH("/:ratingId", s.handleUpdateRating, auth)
	g.DELETE("/:ratingId", s.handleDeleteRating, auth)
}

// handleListRatings godoc
// @Summary List Ratings
// @Description Paginated ratings for a movie
// @Tags ratings
// @Produce json
// @Param movieId path int true "Movie id"
// @Success 200 {object} PagedResponse
// @Failure 404 {object} map[string]string
// @Router /movies/{movieId}/ratings [get]
func (s *Server) handleListRatings(c echo.Context) error {
	movieID, err := parseIDParam(c, "movieId")
	if err != nil {
		return err
	}
	params := pagination.Parse(c.QueryParam("page"), c.QueryParam("limit"))

	ratings, meta, err := s.RatingService.ListByMovie(c.Request().Context(), movieID, params)
	if err != nil {
		return err
	}
	if ratings == nil {
		ratings = []rating.Rating{}
	}

	return writePage(c, ratings, meta)
}

// handleGetRating godoc
// @Summary Get Rating
// @Tags ratings
// @Produce json
// @Param movieId path int true "Movie id"
// @Param ratingId path int true "Rating id"
// @Success 200 {object} rating.Rating
// @Failure 404 {object} map[string]string
// @Router /movies/{movieId}/ratings/{ratingId} [get]
func (s *Server) handleGetRating(c echo.Context) error {
	movieID, err := parseIDParam(c, "movieId")
	if err != nil {
		return err
	}
	ratingID, err := parseIDParam(c, "ratingId")
	if err != nil {
		return err
	}

	r, err := s.RatingService.GetForMovie(c.Request().Context(), ratingID, movieID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, r)
}

// handleCreateRating godoc
// @Summary Create Rating
// @Description Rate a movie; one rating per user per movie
// @Tags ratings
// @Accept json
// @Produce json
// @Param movieId path int true "Movie id"
// @Param payload body CreateRatingRequest true "Rating payload"
// @Success 201 {object} rating.Rating
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /movies/{movieId}/ratings [post]
func (s *Server) handleCreateRating(c echo.Context) error {
	movieID, err := parseIDParam(c, "movieId")
	if err != nil {
		return err
	}

	var req CreateRatingRequest
	if err := c.Bind(&req); err != nil {
		return errs.Errorf(errs.EUNPROCESSABLE, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := s.RatingService.Create(c.Request().Context(), movieID, requesterID(c), *req.Rating, req.Comment)
	if err != nil {
		return err
	}

	location := fmt.Sprintf("/movies/%d/ratings/%d", movieID, created.ID)
	return writeCreated(c, location, created)
}

// handleUpdateRating godoc
// @Summary Update Rating
// @Description Partial update of the requester's own rating
// @Tags ratings
// @Accept json
// @Produce json
// @Param movieId path int true "Movie id"
// @Param ratingId path int true "Rating id"
// @Param payload body UpdateRatingRequest true "Fields to update"
// @Success 200 {object} rating.Rating
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /movies/{movieId}/ratings/{ratingId} [patch]
func (s *Server) handleUpdateRating(c echo.Context) error {
	movieID, err := parseIDParam(c, "movieId")
	if err != nil {
		return err
	}
	ratingID, err := parseIDParam(c, "ratingId")
	if err != nil {
		return err
	}

	var req UpdateRatingRequest
	if err := c.Bind(&req); err != nil {
		return errs.Errorf(errs.EUNPROCESSABLE, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := s.RatingService.Update(c.Request().Context(), ratingID, movieID, requesterID(c), req.ToPatch())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updated)
}

// handleDeleteRating godoc
// @Summary Delete Rating
// @Description Remove the requester's own rating
// @Tags ratings
// @Param movieId path int true "Movie id"
// @Param ratingId path int true "Rating id"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /movies/{movieId}/ratings/{ratingId} [delete]
func (s *Server) handleDeleteRating(c echo.Context) error {
	movieID, err := parseIDParam(c, "movieId")
	if err != nil {
		return err
	}
	ratingID, err := parseIDParam(c, "ratingId")
	if err != nil {
		return err
	}

	if err := s.RatingService.Delete(c.Request().Context(), ratingID, movieID, requesterID(c)); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
