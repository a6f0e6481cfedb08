package httpserver

import (
	"net/http"
	"strconv"

	"moviecatalog/errs"
	"moviecatalog/movie"
	"moviecatalog/pagination"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterMovieRoutes() {
	s.Router.GET("/movies", s.handleListMovies)
	s.Router.GET("/movies/:movieId", s.handleGetMovie)
}

// handleListMovies godoc
// @Summary List Movies
// @Description Paginated movie catalog, each movie carrying its average rating
// @Tags movies
// @Produce json
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} PagedResponse
// @Router /movies [get]
func (s *Server) handleListMovies(c echo.Context) error {
	params := pagination.Parse(c.QueryParam("page"), c.QueryParam("limit"))

	movies, meta, err := s.MovieService.List(c.Request().Context(), params)
	if err != nil {
		return err
	}
	if movies == nil {
		movies = []movie.WithRating{}
	}

	return writePage(c, movies, meta)
}

// handleGetMovie godoc
// @Summary Get Movie
// @Description Single movie with its derived average rating
// @Tags movies
// @Produce json
// @Param movieId path int true "Movie id"
// @Success 200 {object} movie.WithRating
// @Failure 404 {object} map[string]string
// @Router /movies/{movieId} [get]
func (s *Server) handleGetMovie(c echo.Context) error {
	movieID, err := parseIDParam(c, "movieId")
	if err != nil {
		return err
	}

	m, err := s.MovieService.GetWithRating(c.Request().Context(), movieID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, m)
}

func parseIDParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.Errorf(errs.EINVALID, "Invalid %s", name)
	}
	return id, nil
}
