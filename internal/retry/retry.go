package retry

import (
	"context"
	"fmt"
	"time"
)

// Config controls how Do re-runs a failing operation. Delay grows linearly
// with the attempt number.
type Config struct {
	Attempts int
	Delay    time.Duration
}

// Do runs fn until it succeeds, the attempt budget is spent, or the context
// is cancelled.
func Do(ctx context.Context, cfg Config, fn func() error) error {
	if cfg.Attempts < 1 {
		cfg.Attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= cfg.Attempts; attempt++ {
		if err := fn(); err != nil {
			lastErr = err

			if attempt == cfg.Attempts {
				return fmt.Errorf("failed after %d attempts: %w", cfg.Attempts, err)
			}

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * cfg.Delay):
				continue
			}
		}
		return nil
	}

	return lastErr
}
