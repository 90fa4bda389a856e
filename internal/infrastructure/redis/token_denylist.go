// Package redis guarda la lista de tokens revocados (logout) en Redis, compartida entre instancias.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "abaya:revoked:"

// TokenDenylist marca identificadores de token (jti) como revocados hasta que el token expira.
type TokenDenylist struct {
	client *redis.Client
}

// NewTokenDenylist crea el cliente; no abre conexión hasta el primer comando (ver Ping).
func NewTokenDenylist(addr, password string, db int) *TokenDenylist {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &TokenDenylist{client: client}
}

// Revoke registra el jti durante ttl. Un ttl no positivo no hace nada: el token ya expiró.
func (d *TokenDenylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if jti == "" || ttl <= 0 {
		return nil
	}
	if err := d.client.Set(ctx, key(jti), 1, ttl).Err(); err != nil {
		return fmt.Errorf("revocar token: %w", err)
	}
	return nil
}

// IsRevoked informa si el jti fue revocado.
func (d *TokenDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}
	err := d.client.Get(ctx, key(jti)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("consultar revocación: %w", err)
	}
	return true, nil
}

// Ping verifica la conexión.
func (d *TokenDenylist) Ping(ctx context.Context) error {
	return d.client.Ping(ctx).Err()
}

// Close libera el pool de conexiones.
func (d *TokenDenylist) Close() error {
	return d.client.Close()
}

func key(jti string) string {
	return keyPrefix + jti
}
