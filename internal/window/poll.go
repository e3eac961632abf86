package window

import (
	"context"
	"errors"
	"time"
)

// ErrTimeout is returned by Poll once every attempt has been used up.
var ErrTimeout = errors.New("timed out waiting for window")

// Poll calls check up to attempts times, sleeping interval before each call.
// It stops early when check reports done, returns an error, or ctx ends.
func Poll(ctx context.Context, interval time.Duration, attempts int, check func(ctx context.Context) (bool, error)) error {
	if attempts < 1 {
		attempts = 1
	}
	for i := 0; i < attempts; i++ {
		if err := Sleep(ctx, interval); err != nil {
			return err
		}
		done, err := check(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
	return ErrTimeout
}

// Sleep waits for d or until ctx is done, whichever comes first.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
