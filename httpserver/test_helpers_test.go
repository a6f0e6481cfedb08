//nolint:unused
package httpserver_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"moviecatalog/httpserver"
	"moviecatalog/movie"
	"moviecatalog/pagination"
	"moviecatalog/pkg/config"
	"moviecatalog/rating"
	"moviecatalog/user"
	"moviecatalog/watchlist"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testAPIKey = "api_0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"
	testUserID = int64(7)
)

func testConfig() *config.Config {
	return &config.Config{}
}

type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) Get(ctx context.Context, id int64) (movie.Movie, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(movie.Movie), args.Error(1)
}

func (m *MockMovieService) GetWithRating(ctx context.Context, id int64) (movie.WithRating, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(movie.WithRating), args.Error(1)
}

func (m *MockMovieService) List(ctx context.Context, p pagination.Params) ([]movie.WithRating, pagination.Metadata, error) {
	args := m.Called(ctx, p)
	return args.Get(0).([]movie.WithRating), args.Get(1).(pagination.Metadata), args.Error(2)
}

type MockRatingService struct {
	mock.Mock
}

func (m *MockRatingService) ListByMovie(ctx context.Context, movieID int64, p pagination.Params) ([]rating.Rating, pagination.Metadata, error) {
	args := m.Called(ctx, movieID, p)
	return args.Get(0).([]rating.Rating), args.Get(1).(pagination.Metadata), args.Error(2)
}

func (m *MockRatingService) GetForMovie(ctx context.Context, ratingID, movieID int64) (rating.Rating, error) {
	args := m.Called(ctx, ratingID, movieID)
	return args.Get(0).(rating.Rating), args.Error(1)
}

func (m *MockRatingService) Create(ctx context.Context, movieID, requesterID int64, value float64, comment string) (rating.Rating, error) {
	args := m.Called(ctx, movieID, requesterID, value, comment)
	return args.Get(0).(rating.Rating), args.Error(1)
}

func (m *MockRatingService) Update(ctx context.Context, ratingID, movieID, requesterID int64, patch rating.Patch) (rating.Rating, error) {
	args := m.Called(ctx, ratingID, movieID, requesterID, patch)
	return args.Get(0).(rating.Rating), args.Error(1)
}

func (m *MockRatingService) Delete(ctx context.Context, ratingID, movieID, requesterID int64) error {
	args := m.Called(ctx, ratingID, movieID, requesterID)
	return args.Error(0)
}

type MockWatchlistService struct {
	mock.Mock
}

func (m *MockWatchlistService) ListForUser(ctx context.Context, userID, requesterID int64, p pagination.Params) ([]watchlist.Item, pagination.Metadata, error) {
	args := m.Called(ctx, userID, requesterID, p)
	return args.Get(0).([]watchlist.Item), args.Get(1).(pagination.Metadata), args.Error(2)
}

func (m *MockWatchlistService) Create(ctx context.Context, userID, requesterID, movieID int64) (watchlist.Item, error) {
	args := m.Called(ctx, userID, requesterID, movieID)
	return args.Get(0).(watchlist.Item), args.Error(1)
}

func (m *MockWatchlistService) Update(ctx context.Context, itemID, userID, requesterID int64, watched bool) (watchlist.Item, error) {
	args := m.Called(ctx, itemID, userID, requesterID, watched)
	return args.Get(0).(watchlist.Item), args.Error(1)
}

func (m *MockWatchlistService) Delete(ctx context.Context, itemID, userID, requesterID int64) error {
	args := m.Called(ctx, itemID, userID, requesterID)
	return args.Error(0)
}

type MockIdentityService struct {
	mock.Mock
}

func (m *MockIdentityService) ResolveAPIKey(ctx context.Context, apiKey string) (int64, error) {
	args := m.Called(ctx, apiKey)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIdentityService) GetByID(ctx context.Context, id int64) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockIdentityService) Register(ctx context.Context, username, email string) (user.User, error) {
	args := m.Called(ctx, username, email)
	return args.Get(0).(user.User), args.Error(1)
}

type testServer struct {
	*httpserver.Server
	movies    *MockMovieService
	ratings   *MockRatingService
	watchlist *MockWatchlistService
	identity  *MockIdentityService
}

func newTestServer() *testServer {
	ts := &testServer{
		Server:    httpserver.Default(testConfig()),
		movies:    new(MockMovieService),
		ratings:   new(MockRatingService),
		watchlist: new(MockWatchlistService),
		identity:  new(MockIdentityService),
	}
	ts.MovieService = ts.movies
	ts.RatingService = ts.ratings
	ts.WatchlistService = ts.watchlist
	ts.IdentityService = ts.identity
	return ts
}

// authenticate makes the shared test key resolve to testUserID.
func (ts *testServer) authenticate() {
	ts.identity.On("ResolveAPIKey", mock.Anything, testAPIKey).Return(testUserID, nil)
}

func (ts *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	ts.Router.ServeHTTP(rec, req)
	return rec
}

func newJSONRequest(method, path, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func newAuthRequest(method, path, body string) *http.Request {
	req := newJSONRequest(method, path, body)
	req.Header.Set(httpserver.HeaderAPIKey, testAPIKey)
	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, into interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), into))
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	decodeBody(t, rec, &body)
	return body["error"]
}
