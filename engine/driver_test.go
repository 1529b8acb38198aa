package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/orrery/engine"
	"github.com/stretchr/testify/assert"
)

type FrameRecorder struct {
	stage  string
	log    *[]string
	frames []uint64
	dts    []float64
}

func (r *FrameRecorder) Execute(frame *engine.Frame) {
	*r.log = append(*r.log, r.stage)
	r.frames = append(r.frames, frame.Index)
	r.dts = append(r.dts, frame.DeltaTime)
}

func TestDriverRunsExactFrameCount(t *testing.T) {
	world := engine.NewWorld()
	var log []string

	update := engine.NewScheduler("update", world)
	updateRec := &FrameRecorder{stage: "update", log: &log}
	update.Register(updateRec)

	render := engine.NewScheduler("render", world)
	renderRec := &FrameRecorder{stage: "render", log: &log}
	render.Register(renderRec)

	driver := engine.NewDriver(engine.Frames(3), world, 1, update, render)
	frames := driver.Run(context.Background())

	assert.Equal(t, 3, frames)
	assert.Equal(t, uint64(3), world.Frame())
	assert.Equal(t, []string{"update", "render", "update", "render", "update", "render"}, log)
	assert.Equal(t, []uint64{1, 2, 3}, updateRec.frames)
	assert.Equal(t, []uint64{1, 2, 3}, renderRec.frames)
	assert.Equal(t, []float64{1, 1, 1}, updateRec.dts, "every frame uses the fixed step")
}

func TestDriverStopsOnCancel(t *testing.T) {
	world := engine.NewWorld()
	ctx, cancel := context.WithCancel(context.Background())

	stage := engine.NewScheduler("update", world)
	count := 0
	stage.Register(systemFunc(func(frame *engine.Frame) {
		count++
		if count == 5 {
			cancel()
		}
	}))

	driver := engine.NewDriver(engine.Unbounded(), world, 1, stage)
	frames := driver.Run(ctx)

	assert.Equal(t, 5, frames)
	assert.Equal(t, 5, count)
}

func TestTickerHost(t *testing.T) {
	fast := engine.NewTicker(time.Millisecond)
	defer fast.Stop()
	assert.True(t, fast.NextFrame(context.Background()))

	slow := engine.NewTicker(time.Hour)
	defer slow.Stop()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, slow.NextFrame(ctx))
}
