package auth

import (
	"context"
	"time"
)

// TokenDenylist registra tokens revocados por su jti (Redis o memoria del proceso).
type TokenDenylist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
