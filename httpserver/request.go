package httpserver

import "moviecatalog/rating"

type CreateRatingRequest struct {
	Rating  *float64 `json:"rating" validate:"required,gte=0,lte=5"`
	Comment string   `json:"comment" validate:"omitempty,max=500"`
}

type UpdateRatingRequest struct {
	Rating  *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Comment *string  `json:"comment" validate:"omitempty,max=500"`
}

func (r UpdateRatingRequest) ToPatch() rating.Patch {
	return rating.Patch{
		Rating:  r.Rating,
		Comment: r.Comment,
	}
}

type CreateWatchlistItemRequest struct {
	MovieID *int64 `json:"movieId" validate:"required,gt=0"`
}

type UpdateWatchlistItemRequest struct {
	Watched *bool `json:"watched" validate:"required"`
}
