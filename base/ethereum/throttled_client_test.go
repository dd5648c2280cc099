package ethereum

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestThrottleTokens(t *testing.T) {
	c := NewThrottledClient(nil, 2)

	ctx := context.Background()
	t1 := c.before(ctx)
	t2 := c.before(ctx)
	require.NotZero(t, t1)
	require.NotZero(t, t2)

	// pool exhausted, a canceled context gives up instead of blocking
	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	require.Zero(t, c.before(canceled))

	c.after(t1)
	require.Equal(t, t1, c.before(ctx))

	// the zero token never re-enters the pool
	c.after(0)
	require.Empty(t, c.tokens)
}
