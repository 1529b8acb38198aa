package engine_test

import (
	"testing"
	"time"

	"github.com/plus3/orrery/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Counter struct {
	Value int
}

type Accumulator struct {
	Total float64
}

type CountingSystem struct {
	Counter      engine.Resource[Counter]
	ExecuteCount int
}

func (s *CountingSystem) Execute(frame *engine.Frame) {
	s.ExecuteCount++
	s.Counter.Get().Value++
}

type AccumulatingSystem struct {
	Accumulator engine.Resource[Accumulator]
	Counter     engine.Resource[Counter]
	seen        []int
}

func (s *AccumulatingSystem) Execute(frame *engine.Frame) {
	s.Accumulator.Get().Total += frame.DeltaTime
	s.seen = append(s.seen, s.Counter.Get().Value)
}

func TestScheduler(t *testing.T) {
	t.Run("systems run in registration order with bound resources", func(t *testing.T) {
		world := engine.NewWorld()
		engine.NewResource(world, Counter{})
		engine.NewResource(world, Accumulator{})

		scheduler := engine.NewScheduler("update", world)
		counting := &CountingSystem{}
		accumulating := &AccumulatingSystem{}
		scheduler.Register(counting)
		scheduler.Register(accumulating)

		scheduler.Once(0.5)
		scheduler.Once(0.5)

		assert.Equal(t, 2, counting.ExecuteCount)
		assert.Equal(t, []int{1, 2}, accumulating.seen)
		assert.InDelta(t, 1.0, accumulating.Accumulator.Get().Total, 1e-12)
	})

	t.Run("resources created after registration are resolved lazily", func(t *testing.T) {
		world := engine.NewWorld()
		scheduler := engine.NewScheduler("update", world)
		counting := &CountingSystem{}
		scheduler.Register(counting)

		assert.False(t, counting.Counter.Exists())

		engine.NewResource(world, Counter{Value: 10})
		scheduler.Once(1)

		assert.Equal(t, 11, counting.Counter.Get().Value)
	})

	t.Run("deferred commands run after all systems", func(t *testing.T) {
		world := engine.NewWorld()
		engine.NewResource(world, Counter{})
		scheduler := engine.NewScheduler("render", world)

		var order []string
		scheduler.Register(systemFunc(func(frame *engine.Frame) {
			frame.Commands.Defer(func() { order = append(order, "deferred") })
			order = append(order, "first")
		}))
		scheduler.Register(systemFunc(func(frame *engine.Frame) {
			order = append(order, "second")
		}))

		scheduler.Once(1)
		assert.Equal(t, []string{"first", "second", "deferred"}, order)

		scheduler.Once(1)
		assert.Equal(t, []string{"first", "second", "deferred", "first", "second", "deferred"}, order)
	})
}

type systemFunc func(frame *engine.Frame)

func (f systemFunc) Execute(frame *engine.Frame) { f(frame) }

type SleepySystem struct {
	executeCount int
	sleepDur     time.Duration
}

func (s *SleepySystem) Execute(frame *engine.Frame) {
	s.executeCount++
	if s.sleepDur > 0 {
		time.Sleep(s.sleepDur)
	}
}

func TestSchedulerStats(t *testing.T) {
	world := engine.NewWorld()
	scheduler := engine.NewScheduler("update", world)

	stats := scheduler.Stats()
	assert.Equal(t, "update", stats.Name)
	assert.Equal(t, 0, stats.SystemCount)
	assert.Equal(t, int64(0), stats.TotalExecutions)

	sys1 := &SleepySystem{sleepDur: 1 * time.Millisecond}
	sys2 := &SleepySystem{sleepDur: 2 * time.Millisecond}
	scheduler.Register(sys1)
	scheduler.Register(sys2)

	stats = scheduler.Stats()
	assert.Equal(t, 2, stats.SystemCount)
	for _, sysStats := range stats.Systems {
		assert.Zero(t, sysStats.MinDuration, "unexecuted systems report zero min duration")
	}

	scheduler.Once(1)
	scheduler.Once(1)
	scheduler.Once(1)

	stats = scheduler.Stats()
	require.Len(t, stats.Systems, 2)
	assert.Equal(t, int64(6), stats.TotalExecutions)

	for _, sysStats := range stats.Systems {
		assert.Equal(t, "SleepySystem", sysStats.Name)
		assert.Equal(t, int64(3), sysStats.ExecutionCount)
		assert.NotZero(t, sysStats.MinDuration)
		assert.NotZero(t, sysStats.LastDuration)
		assert.NotZero(t, sysStats.TotalDuration)
		assert.LessOrEqual(t, sysStats.MinDuration, sysStats.AvgDuration)
		assert.LessOrEqual(t, sysStats.AvgDuration, sysStats.MaxDuration)
	}

	assert.Equal(t, 3, sys1.executeCount)
	assert.Equal(t, 3, sys2.executeCount)
}
