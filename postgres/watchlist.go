package postgres

import (
	"context"
	"errors"
	"time"

	"moviecatalog/watchlist"

	"gorm.io/gorm"
)

// WatchlistItemModel represents the database model for watchlist items
type WatchlistItemModel struct {
	ID        int64     `gorm:"primaryKey"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_watchlist_user_movie"`
	MovieID   int64     `gorm:"not null;uniqueIndex:idx_watchlist_user_movie"`
	Watched   bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (WatchlistItemModel) TableName() string {
	return "watchlist_items"
}

// WatchlistRepository implements watchlist.Repository on postgres.
type WatchlistRepository struct {
	db *gorm.DB
}

func NewWatchlistRepository(db *gorm.DB) *WatchlistRepository {
	return &WatchlistRepository{db: db}
}

func (r *WatchlistRepository) GetByIDAndUser(ctx context.Context, id, userID int64) (watchlist.Item, error) {
	var model WatchlistItemModel

	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return watchlist.Item{}, watchlist.ErrItemNotFound
		}
		return watchlist.Item{}, err
	}

	return toDomainItem(model), nil
}

func (r *WatchlistRepository) GetByUserAndMovie(ctx context.Context, userID, movieID int64) (watchlist.Item, error) {
	var model WatchlistItemModel

	err := r.db.WithContext(ctx).Where("user_id = ? AND movie_id = ?", userID, movieID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return watchlist.Item{}, watchlist.ErrItemNotFound
		}
		return watchlist.Item{}, err
	}

	return toDomainItem(model), nil
}

func (r *WatchlistRepository) ListByUser(ctx context.Context, userID int64, offset, limit int) ([]watchlist.Item, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&WatchlistItemModel{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []WatchlistItemModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	items := make([]watchlist.Item, len(models))
	for i, model := range models {
		items[i] = toDomainItem(model)
	}
	return items, total, nil
}

func (r *WatchlistRepository) Create(ctx context.Context, item watchlist.Item) (watchlist.Item, error) {
	model := WatchlistItemModel{
		UserID:  item.UserID,
		MovieID: item.MovieID,
		Watched: item.Watched,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if isUniqueViolation(err, "watchlist") {
			return watchlist.Item{}, watchlist.ErrAlreadyListed
		}
		return watchlist.Item{}, err
	}
	return toDomainItem(model), nil
}

func (r *WatchlistRepository) UpdateWatched(ctx context.Context, id int64, watched bool) (watchlist.Item, error) {
	result := r.db.WithContext(ctx).Model(&WatchlistItemModel{}).Where("id = ?", id).Update("watched", watched)
	if result.Error != nil {
		return watchlist.Item{}, result.Error
	}
	if result.RowsAffected == 0 {
		return watchlist.Item{}, watchlist.ErrItemNotFound
	}

	var model WatchlistItemModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		return watchlist.Item{}, err
	}
	return toDomainItem(model), nil
}

func (r *WatchlistRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&WatchlistItemModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return watchlist.ErrItemNotFound
	}
	return nil
}

func toDomainItem(model WatchlistItemModel) watchlist.Item {
	return watchlist.Item{
		ID:        model.ID,
		UserID:    model.UserID,
		MovieID:   model.MovieID,
		Watched:   model.Watched,
		CreatedAt: model.CreatedAt,
	}
}
