package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	customErrors "github.com/pagepal-app/pagepal/auth-service/internal/domain/auth/errors"
	"github.com/pagepal-app/pagepal/auth-service/internal/domain/auth/model"
)

const keyPrefix = "tok:"

// TokenStore backs the token collection with redis so that multiple
// service instances share one session space. Records are written with a
// TTL matching their expiry; redis-side expiry is garbage collection only,
// the validator still decides expiry from the record itself.
type TokenStore struct {
	client *redis.Client
}

func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

func (s *TokenStore) Save(ctx context.Context, rec model.TokenRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return customErrors.WrapInternal(err, "Save")
	}
	if err := s.client.Set(ctx, keyPrefix+rec.Token, payload, safeTTL(rec.ExpiresAt)).Err(); err != nil {
		return customErrors.WrapStoreUnavailable(err, "Save")
	}
	return nil
}

func (s *TokenStore) Get(ctx context.Context, token string) (model.TokenRecord, error) {
	payload, err := s.client.Get(ctx, keyPrefix+token).Bytes()
	switch {
	case err == redis.Nil:
		return model.TokenRecord{}, customErrors.ErrTokenNotFound
	case err != nil:
		return model.TokenRecord{}, customErrors.WrapStoreUnavailable(err, "Get")
	}

	var rec model.TokenRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return model.TokenRecord{}, customErrors.WrapInternal(err, "Get")
	}
	return rec, nil
}

func (s *TokenStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return customErrors.WrapStoreUnavailable(err, "Delete")
	}
	return nil
}

func safeTTL(exp time.Time) time.Duration {
	ttl := time.Until(exp)
	if ttl <= 0 {
		// minimal TTL so the key still disappears
		return time.Minute
	}
	return ttl
}
