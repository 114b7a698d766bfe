package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	authErrors "github.com/pagepal-app/pagepal/auth-service/internal/domain/auth/errors"
	"github.com/pagepal-app/pagepal/auth-service/internal/domain/auth/model"
)

func rec(token string, uid int64, ttl time.Duration) model.TokenRecord {
	now := time.Now()
	return model.TokenRecord{
		Token:     token,
		UserID:    uid,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}
}

func TestTokenStore_SaveGetDelete(t *testing.T) {
	s := NewTokenStore()
	ctx := context.Background()

	if err := s.Save(ctx, rec("t1", 1, time.Hour)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Get(ctx, "t1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.UserID != 1 {
		t.Fatalf("want user 1, got %d", got.UserID)
	}

	if err := s.Delete(ctx, "t1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, "t1"); !authErrors.IsTokenNotFound(err) {
		t.Fatalf("want token not found after delete, got %v", err)
	}

	// deleting an absent token is not an error
	if err := s.Delete(ctx, "t1"); err != nil {
		t.Fatalf("repeat Delete: %v", err)
	}
}

func TestTokenStore_ConcurrentAccess(t *testing.T) {
	s := NewTokenStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tok := fmt.Sprintf("tok-%d", i)
			if err := s.Save(ctx, rec(tok, int64(i), time.Hour)); err != nil {
				t.Errorf("Save: %v", err)
				return
			}
			if _, err := s.Get(ctx, tok); err != nil {
				t.Errorf("Get: %v", err)
			}
			if i%2 == 0 {
				if err := s.Delete(ctx, tok); err != nil {
					t.Errorf("Delete: %v", err)
				}
			}
		}(i)
	}
	wg.Wait()

	if got := s.Len(); got != 25 {
		t.Fatalf("want 25 live records, got %d", got)
	}
}

func TestTokenStore_Sweep(t *testing.T) {
	s := NewTokenStore()
	ctx := context.Background()

	_ = s.Save(ctx, rec("live", 1, time.Hour))
	_ = s.Save(ctx, rec("stale", 2, -time.Hour))

	s.sweep(time.Now())

	if _, err := s.Get(ctx, "live"); err != nil {
		t.Fatalf("live record must survive sweep: %v", err)
	}
	if _, err := s.Get(ctx, "stale"); !authErrors.IsTokenNotFound(err) {
		t.Fatalf("stale record must be swept, got %v", err)
	}
}
