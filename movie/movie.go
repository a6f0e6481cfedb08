package movie

import "moviecatalog/errs"

var ErrNotFound = errs.Errorf(errs.ENOTFOUND, "Movie not found")

type Movie struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Genre    string `json:"genre"`
	Duration int    `json:"duration"`
}

// WithRating carries the derived average rating. Rating is nil when the
// movie has no ratings; it is computed at read time, never stored.
type WithRating struct {
	Movie
	Rating *float64 `json:"rating"`
}
