package watchlist

import (
	"time"

	"moviecatalog/errs"
)

var (
	ErrItemNotFound  = errs.Errorf(errs.ENOTFOUND, "Watchlist item not found")
	ErrAlreadyListed = errs.Errorf(errs.ECONFLICT, "Movie already in watchlist")
	ErrForbidden     = errs.Errorf(errs.EFORBIDDEN, "Forbidden")
)

// Item marks a movie as of interest to a user. Watched is the only mutable
// field and may toggle in both directions.
type Item struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	MovieID   int64     `json:"movieId"`
	Watched   bool      `json:"watched"`
	CreatedAt time.Time `json:"createdAt"`
}
