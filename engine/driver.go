package engine

import (
	"context"
	"time"
)

// Host is the source of frame cues. NextFrame blocks until the next frame
// may run and returns false once no further frames should be produced.
type Host interface {
	NextFrame(ctx context.Context) bool
}

// HostFunc adapts a function to the Host interface.
type HostFunc func(ctx context.Context) bool

func (f HostFunc) NextFrame(ctx context.Context) bool {
	return f(ctx)
}

// Driver runs a fixed sequence of schedulers once per host frame.
// Every frame uses the same virtual Step regardless of wall-clock time;
// slow frames are neither skipped nor caught up.
type Driver struct {
	host   Host
	world  *World
	step   float64
	stages []*Scheduler
}

// NewDriver creates a driver that runs stages in order each frame.
func NewDriver(host Host, world *World, step float64, stages ...*Scheduler) *Driver {
	return &Driver{
		host:   host,
		world:  world,
		step:   step,
		stages: stages,
	}
}

// Frame advances the world frame counter and runs every stage once.
func (d *Driver) Frame() {
	d.world.NextFrame()
	for _, stage := range d.stages {
		stage.Once(d.step)
	}
}

// Run executes frames until the host stops producing them or ctx is done.
// It returns the number of frames executed.
func (d *Driver) Run(ctx context.Context) int {
	frames := 0
	for {
		if ctx.Err() != nil {
			return frames
		}
		if !d.host.NextFrame(ctx) {
			return frames
		}
		d.Frame()
		frames++
	}
}

// Frames returns a host that produces exactly n frames without waiting.
func Frames(n int) Host {
	remaining := n
	return HostFunc(func(ctx context.Context) bool {
		if remaining <= 0 {
			return false
		}
		remaining--
		return true
	})
}

// Unbounded returns a host that produces frames as fast as possible until
// ctx is done.
func Unbounded() Host {
	return HostFunc(func(ctx context.Context) bool {
		return ctx.Err() == nil
	})
}

// Ticker paces frames on the wall clock.
type Ticker struct {
	ticker *time.Ticker
}

// NewTicker creates a host producing one frame per interval.
func NewTicker(interval time.Duration) *Ticker {
	return &Ticker{ticker: time.NewTicker(interval)}
}

// NextFrame waits for the next tick or for ctx to be done.
func (t *Ticker) NextFrame(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-t.ticker.C:
		return true
	}
}

// Stop releases the underlying ticker.
func (t *Ticker) Stop() {
	t.ticker.Stop()
}
