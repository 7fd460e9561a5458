package espn

import (
	"context"
	"sync"
	"time"
)

// hostGate paces outgoing requests so a source never hammers the API: at
// most one request per interval, shared across concurrent research runs
// using the same Source.
type hostGate struct {
	mu       sync.Mutex
	readyAt  time.Time
	interval time.Duration
}

func newHostGate(interval time.Duration) *hostGate {
	return &hostGate{interval: interval}
}

// wait blocks until the caller may issue a request, then reserves the next
// slot. Returns ctx.Err() if the context expires while waiting.
func (g *hostGate) wait(ctx context.Context) error {
	for {
		g.mu.Lock()
		now := time.Now()
		if pause := g.readyAt.Sub(now); pause > 0 {
			g.mu.Unlock() // release while sleeping
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(pause):
			}
			continue
		}
		g.readyAt = now.Add(g.interval)
		g.mu.Unlock()
		return nil
	}
}
