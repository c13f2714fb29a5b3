package backoff

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExponential(t *testing.T) {
	req := require.New(t)
	b := NewExponential(time.Millisecond, 4*time.Millisecond)
	req.Equal(time.Millisecond, b.NextDuration)

	ctx := context.Background()
	req.NoError(b.Backoff(ctx))
	req.Equal(2*time.Millisecond, b.NextDuration)
	req.NoError(b.Backoff(ctx))
	req.Equal(4*time.Millisecond, b.NextDuration)
	req.NoError(b.Backoff(ctx))
	req.Equal(4*time.Millisecond, b.NextDuration, "capped by limit")
	req.Equal(3, b.Count())

	b.Reset()
	req.Equal(0, b.Count())
	req.Equal(time.Millisecond, b.NextDuration)
}

func TestPoll(t *testing.T) {
	ctx := context.Background()

	t.Run("done on third call", func(t *testing.T) {
		req := require.New(t)
		calls := 0
		err := NewExponential(time.Millisecond, time.Millisecond).Poll(ctx, 0, func() (bool, error) {
			calls++
			return calls == 3, nil
		})
		req.NoError(err)
		req.Equal(3, calls)
	})

	t.Run("gives up", func(t *testing.T) {
		req := require.New(t)
		calls := 0
		err := NewLinear(time.Millisecond, time.Millisecond).Poll(ctx, 2, func() (bool, error) {
			calls++
			return false, nil
		})
		req.ErrorIs(err, ErrGiveUp)
		req.Equal(2, calls)
	})

	t.Run("fn error stops polling", func(t *testing.T) {
		req := require.New(t)
		boom := errors.New("boom")
		err := NewExponential(time.Millisecond, time.Millisecond).Poll(ctx, 0, func() (bool, error) {
			return false, boom
		})
		req.ErrorIs(err, boom)
	})

	t.Run("context cancelled", func(t *testing.T) {
		req := require.New(t)
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		err := NewExponential(time.Second, time.Second).Poll(cctx, 0, func() (bool, error) {
			return false, nil
		})
		req.ErrorIs(err, context.Canceled)
	})
}
