package token

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"time"

	customErrors "github.com/pagepal-app/pagepal/auth-service/internal/domain/auth/errors"
	"github.com/pagepal-app/pagepal/auth-service/internal/domain/auth/model"
	"github.com/pagepal-app/pagepal/auth-service/internal/domain/auth/repo"
)

// tokenBytes gives 384 bits of entropy, 64 chars once encoded; collisions
// are treated as negligible rather than checked for.
const tokenBytes = 48

// Manager issues and validates opaque bearer tokens against a TokenStore.
type Manager struct {
	store repo.TokenStore
	ttl   time.Duration
}

func NewManager(store repo.TokenStore, ttl time.Duration) *Manager {
	return &Manager{store: store, ttl: ttl}
}

func (m *Manager) TTL() time.Duration { return m.ttl }

// Issue mints a URL-safe random token for uid and records it with a fixed
// lifetime. Multiple live tokens per user are allowed.
func (m *Manager) Issue(ctx context.Context, uid int64) (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", customErrors.WrapInternal(err, "Issue")
	}
	tok := base64.RawURLEncoding.EncodeToString(buf)

	now := time.Now()
	rec := model.TokenRecord{
		Token:     tok,
		UserID:    uid,
		IssuedAt:  now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.store.Save(ctx, rec); err != nil {
		return "", err
	}
	return tok, nil
}

// Validate resolves a token to its owning user id. An expired record is
// deleted on the spot (lazy eviction) and reported as ErrTokenExpired; a
// live record is left untouched, so tokens stay reusable until expiry.
func (m *Manager) Validate(ctx context.Context, tok string) (int64, error) {
	rec, err := m.store.Get(ctx, tok)
	if err != nil {
		return 0, err
	}
	if rec.Expired(time.Now()) {
		if err := m.store.Delete(ctx, tok); err != nil {
			return 0, err
		}
		return 0, customErrors.ErrTokenExpired
	}
	return rec.UserID, nil
}

// Revoke drops a token regardless of its remaining lifetime. Revoking an
// unknown token is a no-op.
func (m *Manager) Revoke(ctx context.Context, tok string) error {
	return m.store.Delete(ctx, tok)
}
