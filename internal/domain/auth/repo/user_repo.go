package repo

import (
	"context"

	"github.com/pagepal-app/pagepal/auth-service/internal/domain/auth/model"
)

type UserRepo interface {
	// CreateUser inserts u and returns the assigned id. Fails with
	// ErrDuplicateEmail when the email is already registered and
	// ErrStoreUnavailable when the backend cannot be reached.
	CreateUser(ctx context.Context, u model.User) (int64, error)

	// GetUserByEmail does an exact-match lookup. ErrNotFound when absent.
	GetUserByEmail(ctx context.Context, email string) (model.User, error)

	GetUserByID(ctx context.Context, id int64) (model.User, error)
}
