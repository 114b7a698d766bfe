package repo

import (
	"context"

	"github.com/pagepal-app/pagepal/auth-service/internal/domain/auth/model"
)

// TokenStore holds live TokenRecords keyed by token value. Implementations
// must be safe for concurrent use; the expiry decision itself belongs to the
// validator so that every backend shares identical semantics.
type TokenStore interface {
	Save(ctx context.Context, rec model.TokenRecord) error

	// Get returns the record for token, or ErrTokenNotFound.
	Get(ctx context.Context, token string) (model.TokenRecord, error)

	// Delete removes the record if present. Deleting an absent token is
	// not an error.
	Delete(ctx context.Context, token string) error
}
