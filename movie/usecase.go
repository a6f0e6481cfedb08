package movie

import (
	"context"

	"moviecatalog/pagination"
)

type Service interface {
	Get(ctx context.Context, id int64) (Movie, error)
	GetWithRating(ctx context.Context, id int64) (WithRating, error)
	List(ctx context.Context, p pagination.Params) ([]WithRating, pagination.Metadata, error)
}

// Repository is the read-only movie store. ListWithRating must aggregate the
// average per movie before applying offset/limit, and the returned total is
// the distinct movie count, not the joined row count.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Movie, error)
	GetByIDWithRating(ctx context.Context, id int64) (WithRating, error)
	ListWithRating(ctx context.Context, offset, limit int) ([]WithRating, int64, error)
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) Get(ctx context.Context, id int64) (Movie, error) {
	return uc.r.GetByID(ctx, id)
}

func (uc *Usecase) GetWithRating(ctx context.Context, id int64) (WithRating, error) {
	return uc.r.GetByIDWithRating(ctx, id)
}

func (uc *Usecase) List(ctx context.Context, p pagination.Params) ([]WithRating, pagination.Metadata, error) {
	movies, total, err := uc.r.ListWithRating(ctx, p.Offset(), p.Limit)
	if err != nil {
		return nil, pagination.Metadata{}, err
	}
	return movies, pagination.NewMetadata(p, total), nil
}
