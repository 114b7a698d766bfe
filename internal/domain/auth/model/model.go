package model

import (
	"time"
)

type User struct {
	ID           int64  `gorm:"primaryKey"`
	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
}

// TokenRecord is a live bearer token. Records are never mutated, only
// deleted: lazily when validation finds them expired, or on logout.
type TokenRecord struct {
	Token     string    `json:"token"`
	UserID    int64     `json:"user_id"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (r TokenRecord) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

// IssuedToken is what a successful login hands back to the transport.
type IssuedToken struct {
	Token  string
	UserID int64
	TTL    time.Duration
}
