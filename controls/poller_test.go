package controls

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollerRunReturnsOnCancel(t *testing.T) {
	m, _ := newTestManager()
	p := NewPoller(m, time.Millisecond, func(*View, time.Duration) {})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- p.Run(ctx) }()
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestPollerSeesPublishedFrame(t *testing.T) {
	m, d := newTestManager()
	d.kb = NewKeyboardState(ebiten.KeyW)
	m.Update()

	seen := make(chan bool, 1)
	var calls atomic.Int32
	p := NewPoller(m, time.Millisecond, func(v *View, dt time.Duration) {
		calls.Add(1)
		select {
		case seen <- v.IsPressed(ActionForward):
		default:
		}
	})

	p.Start(context.Background())
	p.Start(context.Background()) // already running

	select {
	case pressed := <-seen:
		assert.True(t, pressed)
	case <-time.After(time.Second):
		t.Fatal("handler was never called")
	}

	p.Stop()
	n := calls.Load()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, n, calls.Load(), "handler ran after Stop")

	require.NotPanics(t, p.Stop)
}

func TestPollerStopsWithParentContext(t *testing.T) {
	m, _ := newTestManager()
	p := NewPoller(m, time.Millisecond, func(*View, time.Duration) {})

	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		p.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked after parent cancel")
	}
}
