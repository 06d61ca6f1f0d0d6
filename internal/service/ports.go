package service

import (
	"context"
	"time"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
	// DummyCompare performs constant-shape hashing work for the
	// unknown-account path of authentication.
	DummyCompare(password string)
}

type TokenProvider interface {
	Issue(userID uint) (token string, jti string, expires time.Time, err error)
}

type SessionStore interface {
	Put(ctx context.Context, jti string, userID uint, ttl time.Duration) error
	Active(ctx context.Context, jti string) (bool, error)
	Delete(ctx context.Context, jti string) error
}
