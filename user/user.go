package user

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"moviecatalog/errs"
)

var (
	ErrNotFound        = errs.Errorf(errs.ENOTFOUND, "User not found")
	ErrInvalidAPIKey   = errs.Errorf(errs.EUNAUTHORIZED, "Invalid API key")
	ErrDuplicate       = errs.Errorf(errs.ECONFLICT, "User already exists")
	ErrInvalidUsername = errs.Errorf(errs.EINVALID, "user: invalid username")
	ErrInvalidEmail    = errs.Errorf(errs.EINVALID, "user: invalid email")
)

// APIKeyPrefix makes issued keys recognizable in logs and headers.
const APIKeyPrefix = "api_"

type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	APIKey    string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return ErrInvalidUsername
	}

	if strings.TrimSpace(u.Email) == "" {
		return ErrInvalidEmail
	}

	return nil
}

// GenerateAPIKey returns an opaque bearer token: the fixed prefix followed by
// 64 hex characters from 32 random bytes. Collisions are left to the unique
// constraint on the api_key column.
func GenerateAPIKey() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return APIKeyPrefix + hex.EncodeToString(buf), nil
}
