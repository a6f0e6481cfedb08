package watchlist_test

import (
	"context"
	"testing"

	"moviecatalog/movie"
	"moviecatalog/pagination"
	"moviecatalog/user"
	"moviecatalog/watchlist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockWatchlistRepository struct {
	mock.Mock
}

func (m *MockWatchlistRepository) GetByIDAndUser(ctx context.Context, id, userID int64) (watchlist.Item, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(watchlist.Item), args.Error(1)
}

func (m *MockWatchlistRepository) GetByUserAndMovie(ctx context.Context, userID, movieID int64) (watchlist.Item, error) {
	args := m.Called(ctx, userID, movieID)
	return args.Get(0).(watchlist.Item), args.Error(1)
}

func (m *MockWatchlistRepository) ListByUser(ctx context.Context, userID int64, offset, limit int) ([]watchlist.Item, int64, error) {
	args := m.Called(ctx, userID, offset, limit)
	return args.Get(0).([]watchlist.Item), args.Get(1).(int64), args.Error(2)
}

func (m *MockWatchlistRepository) Create(ctx context.Context, item watchlist.Item) (watchlist.Item, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(watchlist.Item), args.Error(1)
}

func (m *MockWatchlistRepository) UpdateWatched(ctx context.Context, id int64, watched bool) (watchlist.Item, error) {
	args := m.Called(ctx, id, watched)
	return args.Get(0).(watchlist.Item), args.Error(1)
}

func (m *MockWatchlistRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMovieStore struct {
	mock.Mock
}

func (m *MockMovieStore) GetByID(ctx context.Context, id int64) (movie.Movie, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(movie.Movie), args.Error(1)
}

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetByID(ctx context.Context, id int64) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

func newWatchlistUsecase() (*watchlist.Usecase, *MockWatchlistRepository, *MockMovieStore, *MockUserStore) {
	r := new(MockWatchlistRepository)
	movies := new(MockMovieStore)
	users := new(MockUserStore)
	return watchlist.NewUsecase(r, movies, users), r, movies, users
}

func TestListForUser(t *testing.T) {
	t.Run("should return the owner's watchlist", func(t *testing.T) {
		uc, r, _, users := newWatchlistUsecase()
		users.On("GetByID", mock.Anything, int64(7)).Return(user.User{ID: 7}, nil).Once()
		items := []watchlist.Item{{ID: 1, UserID: 7, MovieID: 2}}
		r.On("ListByUser", mock.Anything, int64(7), 0, 10).Return(items, int64(1), nil).Once()

		got, meta, err := uc.ListForUser(context.Background(), 7, 7, pagination.Params{Page: 1, Limit: 10})

		assert.NoError(t, err)
		assert.Equal(t, items, got)
		assert.Equal(t, pagination.Metadata{Page: 1, Limit: 10, Total: 1, TotalPages: 1}, meta)
		r.AssertExpectations(t)
	})

	t.Run("should fail with forbidden for another user before any lookup", func(t *testing.T) {
		uc, r, _, users := newWatchlistUsecase()

		_, _, err := uc.ListForUser(context.Background(), 7, 8, pagination.Params{Page: 1, Limit: 10})

		assert.Equal(t, watchlist.ErrForbidden, err)
		users.AssertNotCalled(t, "GetByID")
		r.AssertNotCalled(t, "ListByUser")
	})

	t.Run("should fail with not found for an unknown user", func(t *testing.T) {
		uc, r, _, users := newWatchlistUsecase()
		users.On("GetByID", mock.Anything, int64(7)).Return(user.User{}, user.ErrNotFound).Once()

		_, _, err := uc.ListForUser(context.Background(), 7, 7, pagination.Params{Page: 1, Limit: 10})

		assert.Equal(t, user.ErrNotFound, err)
		r.AssertNotCalled(t, "ListByUser")
	})
}

func TestCreateItem(t *testing.T) {
	t.Run("should create item with watched defaulting to false", func(t *testing.T) {
		uc, r, movies, _ := newWatchlistUsecase()
		movies.On("GetByID", mock.Anything, int64(2)).Return(movie.Movie{ID: 2}, nil).Once()
		r.On("GetByUserAndMovie", mock.Anything, int64(7), int64(2)).
			Return(watchlist.Item{}, watchlist.ErrItemNotFound).Once()
		created := watchlist.Item{ID: 1, UserID: 7, MovieID: 2, Watched: false}
		r.On("Create", mock.Anything, watchlist.Item{UserID: 7, MovieID: 2, Watched: false}).
			Return(created, nil).Once()

		got, err := uc.Create(context.Background(), 7, 7, 2)

		assert.NoError(t, err)
		assert.Equal(t, created, got)
		assert.False(t, got.Watched)
		r.AssertExpectations(t)
	})

	t.Run("should fail with forbidden for another user's watchlist", func(t *testing.T) {
		uc, r, movies, _ := newWatchlistUsecase()

		_, err := uc.Create(context.Background(), 7, 8, 2)

		assert.Equal(t, watchlist.ErrForbidden, err)
		movies.AssertNotCalled(t, "GetByID")
		r.AssertNotCalled(t, "Create")
	})

	t.Run("should fail with not found for an absent movie", func(t *testing.T) {
		uc, r, movies, _ := newWatchlistUsecase()
		movies.On("GetByID", mock.Anything, int64(999)).Return(movie.Movie{}, movie.ErrNotFound).Once()

		_, err := uc.Create(context.Background(), 7, 7, 999)

		assert.Equal(t, movie.ErrNotFound, err)
		r.AssertNotCalled(t, "Create")
	})

	t.Run("should fail with conflict when the movie is already listed", func(t *testing.T) {
		uc, r, movies, _ := newWatchlistUsecase()
		movies.On("GetByID", mock.Anything, int64(2)).Return(movie.Movie{ID: 2}, nil).Once()
		r.On("GetByUserAndMovie", mock.Anything, int64(7), int64(2)).
			Return(watchlist.Item{ID: 1, UserID: 7, MovieID: 2}, nil).Once()

		_, err := uc.Create(context.Background(), 7, 7, 2)

		assert.Equal(t, watchlist.ErrAlreadyListed, err)
		r.AssertNotCalled(t, "Create")
	})
}

func TestUpdateItem(t *testing.T) {
	t.Run("should toggle watched in both directions", func(t *testing.T) {
		for _, watched := range []bool{true, false} {
			uc, r, _, _ := newWatchlistUsecase()
			existing := watchlist.Item{ID: 1, UserID: 7, MovieID: 2, Watched: !watched}
			r.On("GetByIDAndUser", mock.Anything, int64(1), int64(7)).Return(existing, nil).Once()
			updated := watchlist.Item{ID: 1, UserID: 7, MovieID: 2, Watched: watched}
			r.On("UpdateWatched", mock.Anything, int64(1), watched).Return(updated, nil).Once()

			got, err := uc.Update(context.Background(), 1, 7, 7, watched)

			assert.NoError(t, err)
			assert.Equal(t, watched, got.Watched)
			r.AssertExpectations(t)
		}
	})

	t.Run("should fail with forbidden for another user", func(t *testing.T) {
		uc, r, _, _ := newWatchlistUsecase()

		_, err := uc.Update(context.Background(), 1, 7, 8, true)

		assert.Equal(t, watchlist.ErrForbidden, err)
		r.AssertNotCalled(t, "GetByIDAndUser")
	})

	t.Run("should fail with not found for an item outside the user's list", func(t *testing.T) {
		uc, r, _, _ := newWatchlistUsecase()
		r.On("GetByIDAndUser", mock.Anything, int64(99), int64(7)).
			Return(watchlist.Item{}, watchlist.ErrItemNotFound).Once()

		_, err := uc.Update(context.Background(), 99, 7, 7, true)

		assert.Equal(t, watchlist.ErrItemNotFound, err)
		r.AssertNotCalled(t, "UpdateWatched")
	})
}

func TestDeleteItem(t *testing.T) {
	t.Run("should delete the owner's item", func(t *testing.T) {
		uc, r, _, _ := newWatchlistUsecase()
		existing := watchlist.Item{ID: 1, UserID: 7, MovieID: 2}
		r.On("GetByIDAndUser", mock.Anything, int64(1), int64(7)).Return(existing, nil).Once()
		r.On("Delete", mock.Anything, int64(1)).Return(nil).Once()

		err := uc.Delete(context.Background(), 1, 7, 7)

		assert.NoError(t, err)
		r.AssertExpectations(t)
	})

	t.Run("should fail with forbidden for another user", func(t *testing.T) {
		uc, r, _, _ := newWatchlistUsecase()

		err := uc.Delete(context.Background(), 1, 7, 8)

		assert.Equal(t, watchlist.ErrForbidden, err)
		r.AssertNotCalled(t, "Delete")
	})

	t.Run("should fail with not found for a missing item", func(t *testing.T) {
		uc, r, _, _ := newWatchlistUsecase()
		r.On("GetByIDAndUser", mock.Anything, int64(99), int64(7)).
			Return(watchlist.Item{}, watchlist.ErrItemNotFound).Once()

		err := uc.Delete(context.Background(), 99, 7, 7)

		assert.Equal(t, watchlist.ErrItemNotFound, err)
	})
}
