// Package memory holds token records in a mutex-guarded in-process map.
// The store is intentionally volatile: records do not survive a restart.
// Multi-instance deployments should use the redis adapter instead.
package memory

import (
	"context"
	"sync"
	"time"

	customErrors "github.com/pagepal-app/pagepal/auth-service/internal/domain/auth/errors"
	"github.com/pagepal-app/pagepal/auth-service/internal/domain/auth/model"
)

type TokenStore struct {
	mu      sync.Mutex
	records map[string]model.TokenRecord
}

func NewTokenStore() *TokenStore {
	return &TokenStore{records: make(map[string]model.TokenRecord)}
}

func (s *TokenStore) Save(_ context.Context, rec model.TokenRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.Token] = rec
	return nil
}

func (s *TokenStore) Get(_ context.Context, token string) (model.TokenRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[token]
	if !ok {
		return model.TokenRecord{}, customErrors.ErrTokenNotFound
	}
	return rec, nil
}

func (s *TokenStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, token)
	return nil
}

// Len reports the number of live records. Used by the sweeper and tests.
func (s *TokenStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// StartSweeper periodically drops expired records until ctx is cancelled.
// Lazy eviction on validate already keeps lookups correct; the sweeper only
// bounds memory held by tokens that are never validated again.
func (s *TokenStore) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				s.sweep(now)
			}
		}
	}()
}

func (s *TokenStore) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for tok, rec := range s.records {
		if rec.Expired(now) {
			delete(s.records, tok)
		}
	}
}
