package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/media-finder/internal/config"
	"github.com/MKhiriev/media-finder/internal/logger"
	"github.com/stretchr/testify/assert"
)

type countingPurger struct {
	calls atomic.Int32
	err   error
}

func (c *countingPurger) PurgeExpired(context.Context) (int, error) {
	c.calls.Add(1)
	return 1, c.err
}

func TestNewSessionSweeper_DefaultInterval(t *testing.T) {
	s := NewSessionSweeper(&countingPurger{}, config.Workers{}, logger.Nop())

	assert.Equal(t, config.DefaultSessionSweepInterval, s.interval)
}

func TestSessionSweeper_PurgesOnEveryTick(t *testing.T) {
	purger := &countingPurger{}
	s := NewSessionSweeper(purger, config.Workers{SessionSweepInterval: 10 * time.Millisecond}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	ws := NewWorkers(s)
	ws.Run(ctx)

	assert.Eventually(t, func() bool { return purger.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	cancel()
	waitOrFail(t, ws)
}

func TestSessionSweeper_KeepsRunningAfterError(t *testing.T) {
	purger := &countingPurger{err: errors.New("store unavailable")}
	s := NewSessionSweeper(purger, config.Workers{SessionSweepInterval: 10 * time.Millisecond}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	ws := NewWorkers(s)
	ws.Run(ctx)

	assert.Eventually(t, func() bool { return purger.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

	cancel()
	waitOrFail(t, ws)
}

func TestSessionSweeper_StopsImmediatelyOnCancelledContext(t *testing.T) {
	purger := &countingPurger{}
	s := NewSessionSweeper(purger, config.Workers{SessionSweepInterval: time.Hour}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
	assert.Zero(t, purger.calls.Load())
}
