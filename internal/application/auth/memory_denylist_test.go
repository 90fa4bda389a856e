package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryDenylist_RevokeAndExpire(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)
	d := NewMemoryDenylist()
	d.now = func() time.Time { return clock }

	require.NoError(t, d.Revoke(ctx, "a", time.Minute))
	revoked, err := d.IsRevoked(ctx, "a")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, _ = d.IsRevoked(ctx, "b")
	assert.False(t, revoked)

	clock = clock.Add(2 * time.Minute)
	revoked, _ = d.IsRevoked(ctx, "a")
	assert.False(t, revoked, "vencido")

	require.NoError(t, d.Revoke(ctx, "c", time.Minute))
	assert.NotContains(t, d.entries, "a", "Revoke purga las entradas vencidas")
}

func TestMemoryDenylist_IgnoraTTLNoPositivo(t *testing.T) {
	d := NewMemoryDenylist()
	require.NoError(t, d.Revoke(context.Background(), "a", 0))
	require.NoError(t, d.Revoke(context.Background(), "", time.Minute))
	assert.Empty(t, d.entries)
}
