package watchlist

import (
	"context"

	"moviecatalog/movie"
	"moviecatalog/pagination"
	"moviecatalog/user"
)

type Service interface {
	ListForUser(ctx context.Context, userID, requesterID int64, p pagination.Params) ([]Item, pagination.Metadata, error)
	Create(ctx context.Context, userID, requesterID, movieID int64) (Item, error)
	Update(ctx context.Context, itemID, userID, requesterID int64, watched bool) (Item, error)
	Delete(ctx context.Context, itemID, userID, requesterID int64) error
}

type Repository interface {
	GetByIDAndUser(ctx context.Context, id, userID int64) (Item, error)
	GetByUserAndMovie(ctx context.Context, userID, movieID int64) (Item, error)
	ListByUser(ctx context.Context, userID int64, offset, limit int) ([]Item, int64, error)
	Create(ctx context.Context, item Item) (Item, error)
	UpdateWatched(ctx context.Context, id int64, watched bool) (Item, error)
	Delete(ctx context.Context, id int64) error
}

type MovieRepository interface {
	GetByID(ctx context.Context, id int64) (movie.Movie, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (user.User, error)
}

type Usecase struct {
	r      Repository
	movies MovieRepository
	users  UserRepository
}

func NewUsecase(r Repository, movies MovieRepository, users UserRepository) *Usecase {
	return &Usecase{r: r, movies: movies, users: users}
}

// A watchlist is private to its owner: the requester check comes before any
// lookup, for every operation including reads. The path names the owner, so
// a mismatch is 403 even when nothing else exists.
func (uc *Usecase) ListForUser(ctx context.Context, userID, requesterID int64, p pagination.Params) ([]Item, pagination.Metadata, error) {
	if requesterID != userID {
		return nil, pagination.Metadata{}, ErrForbidden
	}

	if _, err := uc.users.GetByID(ctx, userID); err != nil {
		return nil, pagination.Metadata{}, err
	}

	items, total, err := uc.r.ListByUser(ctx, userID, p.Offset(), p.Limit)
	if err != nil {
		return nil, pagination.Metadata{}, err
	}
	return items, pagination.NewMetadata(p, total), nil
}

func (uc *Usecase) Create(ctx context.Context, userID, requesterID, movieID int64) (Item, error) {
	if requesterID != userID {
		return Item{}, ErrForbidden
	}

	if _, err := uc.movies.GetByID(ctx, movieID); err != nil {
		return Item{}, err
	}

	if _, err := uc.r.GetByUserAndMovie(ctx, userID, movieID); err == nil {
		return Item{}, ErrAlreadyListed
	} else if err != ErrItemNotFound {
		return Item{}, err
	}

	return uc.r.Create(ctx, Item{
		UserID:  userID,
		MovieID: movieID,
		Watched: false,
	})
}

func (uc *Usecase) Update(ctx context.Context, itemID, userID, requesterID int64, watched bool) (Item, error) {
	if requesterID != userID {
		return Item{}, ErrForbidden
	}

	existing, err := uc.r.GetByIDAndUser(ctx, itemID, userID)
	if err != nil {
		return Item{}, err
	}

	return uc.r.UpdateWatched(ctx, existing.ID, watched)
}

func (uc *Usecase) Delete(ctx context.Context, itemID, userID, requesterID int64) error {
	if requesterID != userID {
		return ErrForbidden
	}

	existing, err := uc.r.GetByIDAndUser(ctx, itemID, userID)
	if err != nil {
		return err
	}

	return uc.r.Delete(ctx, existing.ID)
}
