package postgres

import (
	"context"
	"errors"
	"time"

	"moviecatalog/user"

	"gorm.io/gorm"
)

// UserModel represents the database model for users
type UserModel struct {
	ID        int64     `gorm:"primaryKey"`
	Username  string    `gorm:"not null"`
	Email     string    `gorm:"not null;unique"`
	APIKey    string    `gorm:"column:api_key;not null;uniqueIndex:idx_users_api_key"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// UserRepository implements user.Repository on postgres.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByAPIKey resolves a presented credential against the unique api_key
// column.
func (r *UserRepository) GetByAPIKey(ctx context.Context, apiKey string) (user.User, error) {
	var model UserModel

	err := r.db.WithContext(ctx).Where("api_key = ?", apiKey).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}

	return toDomainUser(model), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (user.User, error) {
	var model UserModel

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}

	return toDomainUser(model), nil
}

func (r *UserRepository) CreateUser(ctx context.Context, u user.User) (user.User, error) {
	model := UserModel{
		Username: u.Username,
		Email:    u.Email,
		APIKey:   u.APIKey,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if isUniqueViolation(err, "email") || isUniqueViolation(err, "api_key") {
			return user.User{}, user.ErrDuplicate
		}
		return user.User{}, err
	}
	return toDomainUser(model), nil
}

func toDomainUser(model UserModel) user.User {
	return user.User{
		ID:        model.ID,
		Username:  model.Username,
		Email:     model.Email,
		APIKey:    model.APIKey,
		CreatedAt: model.CreatedAt,
	}
}
