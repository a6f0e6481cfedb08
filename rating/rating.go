package rating

import (
	"time"

	"moviecatalog/errs"
)

const (
	MinValue         = 0
	MaxValue         = 5
	MaxCommentLength = 500
)

var (
	ErrNotFound        = errs.Errorf(errs.ENOTFOUND, "Rating not found")
	ErrAlreadyRated    = errs.Errorf(errs.ECONFLICT, "Movie already rated by user")
	ErrNotOwner        = errs.Errorf(errs.EFORBIDDEN, "Forbidden")
	ErrValueOutOfRange = errs.Errorf(errs.EUNPROCESSABLE, "rating must be between 0 and 5")
	ErrCommentTooLong  = errs.Errorf(errs.EUNPROCESSABLE, "comment must be at most 500 characters")
)

type Rating struct {
	ID        int64     `json:"id"`
	MovieID   int64     `json:"movieId"`
	UserID    int64     `json:"userId"`
	Rating    float64   `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r Rating) Validate() error {
	if r.Rating < MinValue || r.Rating > MaxValue {
		return ErrValueOutOfRange
	}

	if len(r.Comment) > MaxCommentLength {
		return ErrCommentTooLong
	}

	return nil
}

// Patch is a partial update. Nil fields are left unchanged.
type Patch struct {
	Rating  *float64
	Comment *string
}

func (p Patch) Validate() error {
	if p.Rating != nil && (*p.Rating < MinValue || *p.Rating > MaxValue) {
		return ErrValueOutOfRange
	}

	if p.Comment != nil && len(*p.Comment) > MaxCommentLength {
		return ErrCommentTooLong
	}

	return nil
}
