// Package clock holds the waiting primitives of the sync loop.
package clock

import (
	"context"
	"time"
)

// SleepWithContext blocks for d. It returns ctx.Err() if the context ends first.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
