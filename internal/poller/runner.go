// internal/poller/runner.go
package poller

import (
	"context"
	"time"
)

// Run polls once immediately, then on every tick, and emits each Result.
// One goroutine per processor. No overlap. No retries.
func (p *Poller) Run(ctx context.Context, out chan<- Result) {
	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case out <- p.PollOnce():
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
