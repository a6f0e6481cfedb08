package rating

import (
	"context"

	"moviecatalog/movie"
	"moviecatalog/pagination"
)

type Service interface {
	ListByMovie(ctx context.Context, movieID int64, p pagination.Params) ([]Rating, pagination.Metadata, error)
	GetForMovie(ctx context.Context, ratingID, movieID int64) (Rating, error)
	Create(ctx context.Context, movieID, requesterID int64, value float64, comment string) (Rating, error)
	Update(ctx context.Context, ratingID, movieID, requesterID int64, patch Patch) (Rating, error)
	Delete(ctx context.Context, ratingID, movieID, requesterID int64) error
}

type Repository interface {
	GetByIDAndMovie(ctx context.Context, id, movieID int64) (Rating, error)
	GetByUserAndMovie(ctx context.Context, userID, movieID int64) (Rating, error)
	ListByMovie(ctx context.Context, movieID int64, offset, limit int) ([]Rating, int64, error)
	Create(ctx context.Context, r Rating) (Rating, error)
	Update(ctx context.Context, id int64, patch Patch) (Rating, error)
	Delete(ctx context.Context, id int64) error
}

// MovieRepository is the slice of the catalog the ledger needs: referenced
// movies must exist before a rating is attached to them.
type MovieRepository interface {
	GetByID(ctx context.Context, id int64) (movie.Movie, error)
}

type Usecase struct {
	r      Repository
	movies MovieRepository
}

func NewUsecase(r Repository, movies MovieRepository) *Usecase {
	return &Usecase{r: r, movies: movies}
}

func (uc *Usecase) ListByMovie(ctx context.Context, movieID int64, p pagination.Params) ([]Rating, pagination.Metadata, error) {
	if _, err := uc.movies.GetByID(ctx, movieID); err != nil {
		return nil, pagination.Metadata{}, err
	}

	ratings, total, err := uc.r.ListByMovie(ctx, movieID, p.Offset(), p.Limit)
	if err != nil {
		return nil, pagination.Metadata{}, err
	}
	return ratings, pagination.NewMetadata(p, total), nil
}

func (uc *Usecase) GetForMovie(ctx context.Context, ratingID, movieID int64) (Rating, error) {
	return uc.r.GetByIDAndMovie(ctx, ratingID, movieID)
}

// Create stores a new rating. The duplicate pre-check keeps the common case
// friendly; the unique index on (movie_id, user_id) is the backstop under
// concurrent duplicate requests.
func (uc *Usecase) Create(ctx context.Context, movieID, requesterID int64, value float64, comment string) (Rating, error) {
	if _, err := uc.movies.GetByID(ctx, movieID); err != nil {
		return Rating{}, err
	}

	if _, err := uc.r.GetByUserAndMovie(ctx, requesterID, movieID); err == nil {
		return Rating{}, ErrAlreadyRated
	} else if err != ErrNotFound {
		return Rating{}, err
	}

	r := Rating{
		MovieID: movieID,
		UserID:  requesterID,
		Rating:  value,
		Comment: comment,
	}
	if err := r.Validate(); err != nil {
		return Rating{}, err
	}

	return uc.r.Create(ctx, r)
}

// Update applies a partial update. Existence is checked before ownership so a
// non-owner probing a nonexistent rating sees 404, not 403.
func (uc *Usecase) Update(ctx context.Context, ratingID, movieID, requesterID int64, patch Patch) (Rating, error) {
	existing, err := uc.r.GetByIDAndMovie(ctx, ratingID, movieID)
	if err != nil {
		return Rating{}, err
	}

	if existing.UserID != requesterID {
		return Rating{}, ErrNotOwner
	}

	if err := patch.Validate(); err != nil {
		return Rating{}, err
	}

	return uc.r.Update(ctx, existing.ID, patch)
}

func (uc *Usecase) Delete(ctx context.Context, ratingID, movieID, requesterID int64) error {
	existing, err := uc.r.GetByIDAndMovie(ctx, ratingID, movieID)
	if err != nil {
		return err
	}

	if existing.UserID != requesterID {
		return ErrNotOwner
	}

	return uc.r.Delete(ctx, existing.ID)
}
