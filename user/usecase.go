package user

import (
	"context"
	"strings"
)

// Service resolves presented credentials to user identities and exposes user
// lookup for ownership checks.
type Service interface {
	ResolveAPIKey(ctx context.Context, apiKey string) (int64, error)
	GetByID(ctx context.Context, id int64) (User, error)
	Register(ctx context.Context, username, email string) (User, error)
}

type Repository interface {
	GetByAPIKey(ctx context.Context, apiKey string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	CreateUser(ctx context.Context, u User) (User, error)
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

// ResolveAPIKey maps a presented API key to the owning user's id. A missing
// or unknown key yields ErrInvalidAPIKey; the caller surfaces it as 401.
func (uc *Usecase) ResolveAPIKey(ctx context.Context, apiKey string) (int64, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return 0, ErrInvalidAPIKey
	}

	u, err := uc.r.GetByAPIKey(ctx, apiKey)
	if err != nil {
		if err == ErrNotFound {
			return 0, ErrInvalidAPIKey
		}
		return 0, err
	}
	return u.ID, nil
}

func (uc *Usecase) GetByID(ctx context.Context, id int64) (User, error) {
	return uc.r.GetByID(ctx, id)
}

// Register creates a user with a freshly generated API key. This is the
// seed/admin path; there is no self-service registration endpoint.
func (uc *Usecase) Register(ctx context.Context, username, email string) (User, error) {
	u := User{Username: strings.TrimSpace(username), Email: strings.TrimSpace(email)}
	if err := u.Validate(); err != nil {
		return User{}, err
	}

	key, err := GenerateAPIKey()
	if err != nil {
		return User{}, err
	}
	u.APIKey = key

	return uc.r.CreateUser(ctx, u)
}
