package postgres

import (
	"context"
	"errors"

	"moviecatalog/movie"

	"gorm.io/gorm"
)

// MovieModel represents the database model for movies
type MovieModel struct {
	ID       int64  `gorm:"primaryKey"`
	Title    string `gorm:"not null"`
	Genre    string `gorm:"not null;default:''"`
	Duration int    `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (MovieModel) TableName() string {
	return "movies"
}

// movieWithRatingRow holds one row of the grouped movie/rating join.
// Rating stays nil for movies without ratings.
type movieWithRatingRow struct {
	ID       int64
	Title    string
	Genre    string
	Duration int
	Rating   *float64
}

// MovieRepository implements movie.Repository on postgres.
type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

func (r *MovieRepository) GetByID(ctx context.Context, id int64) (movie.Movie, error) {
	var model MovieModel

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return movie.Movie{}, movie.ErrNotFound
		}
		return movie.Movie{}, err
	}

	return toDomainMovie(model), nil
}

func (r *MovieRepository) GetByIDWithRating(ctx context.Context, id int64) (movie.WithRating, error) {
	const sql = `
SELECT m.id, m.title, m.genre, m.duration, AVG(r.rating) AS rating
FROM movies m
LEFT JOIN ratings r ON r.movie_id = m.id
WHERE m.id = ?
GROUP BY m.id`

	var row movieWithRatingRow
	result := r.db.WithContext(ctx).Raw(sql, id).Scan(&row)
	if result.Error != nil {
		return movie.WithRating{}, result.Error
	}
	if result.RowsAffected == 0 {
		return movie.WithRating{}, movie.ErrNotFound
	}

	return toDomainMovieWithRating(row), nil
}

// ListWithRating aggregates the average per movie before applying offset and
// limit; paging the raw joined rows would multiply movies by their rating
// count. The total is counted over the movies table alone for the same
// reason.
func (r *MovieRepository) ListWithRating(ctx context.Context, offset, limit int) ([]movie.WithRating, int64, error) {
	const sql = `
SELECT m.id, m.title, m.genre, m.duration, AVG(r.rating) AS rating
FROM movies m
LEFT JOIN ratings r ON r.movie_id = m.id
GROUP BY m.id
ORDER BY m.id
LIMIT ? OFFSET ?`

	var rows []movieWithRatingRow
	if err := r.db.WithContext(ctx).Raw(sql, limit, offset).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&MovieModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	movies := make([]movie.WithRating, len(rows))
	for i, row := range rows {
		movies[i] = toDomainMovieWithRating(row)
	}
	return movies, total, nil
}

// CreateMovie inserts a movie. Only the seed path uses this; the HTTP surface
// exposes no movie mutation.
func (r *MovieRepository) CreateMovie(ctx context.Context, m movie.Movie) (movie.Movie, error) {
	model := MovieModel{
		Title:    m.Title,
		Genre:    m.Genre,
		Duration: m.Duration,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return movie.Movie{}, err
	}
	return toDomainMovie(model), nil
}

func toDomainMovie(model MovieModel) movie.Movie {
	return movie.Movie{
		ID:       model.ID,
		Title:    model.Title,
		Genre:    model.Genre,
		Duration: model.Duration,
	}
}

func toDomainMovieWithRating(row movieWithRatingRow) movie.WithRating {
	return movie.WithRating{
		Movie: movie.Movie{
			ID:       row.ID,
			Title:    row.Title,
			Genre:    row.Genre,
			Duration: row.Duration,
		},
		Rating: row.Rating,
	}
}
