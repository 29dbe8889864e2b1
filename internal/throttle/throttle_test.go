package throttle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryLimiterFixedWindow(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(2, time.Minute)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := l.Hit(ctx, "ana")
		require.NoError(t, err)
		require.True(t, ok)
	}

	ok, _ := l.Hit(ctx, "ana")
	require.False(t, ok)

	ok, _ = l.Hit(ctx, "other")
	require.True(t, ok)

	now = now.Add(time.Minute)
	ok, _ = l.Hit(ctx, "ana")
	require.True(t, ok)
}

func TestMemoryLimiterReset(t *testing.T) {
	l := NewMemoryLimiter(1, time.Hour)
	ctx := context.Background()

	ok, _ := l.Hit(ctx, "k")
	require.True(t, ok)
	ok, _ = l.Hit(ctx, "k")
	require.False(t, ok)

	require.NoError(t, l.Reset(ctx, "k"))
	ok, _ = l.Hit(ctx, "k")
	require.True(t, ok)
}
