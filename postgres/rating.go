package postgres

import (
	"context"
	"errors"
	"time"

	"moviecatalog/rating"

	"gorm.io/gorm"
)

// RatingModel represents the database model for ratings
type RatingModel struct {
	ID        int64     `gorm:"primaryKey"`
	MovieID   int64     `gorm:"not null;uniqueIndex:idx_ratings_movie_user"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_ratings_movie_user"`
	Rating    float64   `gorm:"not null"`
	Comment   string    `gorm:"not null;default:''"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (RatingModel) TableName() string {
	return "ratings"
}

// RatingRepository implements rating.Repository on postgres.
type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

func (r *RatingRepository) GetByIDAndMovie(ctx context.Context, id, movieID int64) (rating.Rating, error) {
	var model RatingModel

	err := r.db.WithContext(ctx).Where("id = ? AND movie_id = ?", id, movieID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return rating.Rating{}, rating.ErrNotFound
		}
		return rating.Rating{}, err
	}

	return toDomainRating(model), nil
}

func (r *RatingRepository) GetByUserAndMovie(ctx context.Context, userID, movieID int64) (rating.Rating, error) {
	var model RatingModel

	err := r.db.WithContext(ctx).Where("user_id = ? AND movie_id = ?", userID, movieID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return rating.Rating{}, rating.ErrNotFound
		}
		return rating.Rating{}, err
	}

	return toDomainRating(model), nil
}

func (r *RatingRepository) ListByMovie(ctx context.Context, movieID int64, offset, limit int) ([]rating.Rating, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&RatingModel{}).Where("movie_id = ?", movieID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []RatingModel
	err := r.db.WithContext(ctx).
		Where("movie_id = ?", movieID).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	ratings := make([]rating.Rating, len(models))
	for i, model := range models {
		ratings[i] = toDomainRating(model)
	}
	return ratings, total, nil
}

func (r *RatingRepository) Create(ctx context.Context, rt rating.Rating) (rating.Rating, error) {
	model := RatingModel{
		MovieID: rt.MovieID,
		UserID:  rt.UserID,
		Rating:  rt.Rating,
		Comment: rt.Comment,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if isUniqueViolation(err, "ratings") {
			return rating.Rating{}, rating.ErrAlreadyRated
		}
		return rating.Rating{}, err
	}
	return toDomainRating(model), nil
}

func (r *RatingRepository) Update(ctx context.Context, id int64, patch rating.Patch) (rating.Rating, error) {
	updates := map[string]interface{}{}
	if patch.Rating != nil {
		updates["rating"] = *patch.Rating
	}
	if patch.Comment != nil {
		updates["comment"] = *patch.Comment
	}

	if len(updates) > 0 {
		result := r.db.WithContext(ctx).Model(&RatingModel{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return rating.Rating{}, result.Error
		}
		if result.RowsAffected == 0 {
			return rating.Rating{}, rating.ErrNotFound
		}
	}

	var model RatingModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return rating.Rating{}, rating.ErrNotFound
		}
		return rating.Rating{}, err
	}
	return toDomainRating(model), nil
}

func (r *RatingRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&RatingModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return rating.ErrNotFound
	}
	return nil
}

func toDomainRating(model RatingModel) rating.Rating {
	return rating.Rating{
		ID:        model.ID,
		MovieID:   model.MovieID,
		UserID:    model.UserID,
		Rating:    model.Rating,
		Comment:   model.Comment,
		CreatedAt: model.CreatedAt,
	}
}
