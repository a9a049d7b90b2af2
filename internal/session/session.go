// Package session persists visitor sessions for the lifetime of their TTL.
package session

import (
	"context"
	"errors"

	"storefront/internal/domain"
)

var (
	ErrSessionNotFound = errors.New("session not found")
)

// Store defines the interface for session persistence. Get returns
// ErrSessionNotFound for unknown or expired ids.
type Store interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	Save(ctx context.Context, sess *domain.Session) error
	Delete(ctx context.Context, id string) error
}
