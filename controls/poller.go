package controls

import (
	"context"
	"sync"
	"time"
)

// Poller calls a handler with a fresh View at a fixed interval on its own
// goroutine, independent of the game loop tick. The handler sees whatever
// frame the game loop last published, so it may lag by one frame but never
// observes a half-updated history.
type Poller struct {
	manager  *Manager
	interval time.Duration
	handle   func(v *View, dt time.Duration)

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewPoller creates a stopped poller. dt passed to handle is the time since
// the previous call.
func NewPoller(m *Manager, interval time.Duration, handle func(v *View, dt time.Duration)) *Poller {
	return &Poller{
		manager:  m,
		interval: interval,
		handle:   handle,
	}
}

// Start launches the polling goroutine. It is a no-op while already running.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	p.cancel = cancel
	p.done = done

	go func() {
		defer close(done)
		_ = p.Run(ctx)
	}()
}

// Stop cancels the polling goroutine and waits for it to exit.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Run polls until ctx is done and returns ctx.Err().
func (p *Poller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			p.handle(p.manager.View(), now.Sub(last))
			last = now
		}
	}
}
