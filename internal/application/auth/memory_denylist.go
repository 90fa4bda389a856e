package auth

import (
	"context"
	"sync"
	"time"
)

var _ TokenDenylist = (*MemoryDenylist)(nil)

// MemoryDenylist lista de revocación local al proceso; se usa cuando no hay Redis configurado.
// Las entradas vencidas se purgan en cada Revoke.
type MemoryDenylist struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

// NewMemoryDenylist crea una lista vacía.
func NewMemoryDenylist() *MemoryDenylist {
	return &MemoryDenylist{entries: make(map[string]time.Time), now: time.Now}
}

// Revoke marca jti como revocado durante ttl.
func (d *MemoryDenylist) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if jti == "" || ttl <= 0 {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	now := d.now()
	for k, exp := range d.entries {
		if !now.Before(exp) {
			delete(d.entries, k)
		}
	}
	d.entries[jti] = now.Add(ttl)
	return nil
}

// IsRevoked informa si jti sigue revocado.
func (d *MemoryDenylist) IsRevoked(_ context.Context, jti string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	exp, ok := d.entries[jti]
	if !ok {
		return false, nil
	}
	return d.now().Before(exp), nil
}
