package engine_test

import (
	"context"
	"fmt"

	"github.com/plus3/orrery/engine"
)

type Clock struct {
	Ticks   int
	Elapsed float64
}

type ClockSystem struct {
	Clock engine.Resource[Clock]
}

func (s *ClockSystem) Execute(frame *engine.Frame) {
	clock := s.Clock.Get()
	clock.Ticks++
	clock.Elapsed += frame.DeltaTime
}

// ExampleDriver runs a fixed number of frames without a display.
// Resource fields on systems are bound by the Scheduler when registered.
func ExampleDriver() {
	world := engine.NewWorld()
	engine.NewResource(world, Clock{})

	update := engine.NewScheduler("update", world)
	update.Register(&ClockSystem{})

	driver := engine.NewDriver(engine.Frames(4), world, 0.25, update)
	frames := driver.Run(context.Background())

	var clock *Clock
	world.Read(&clock)
	fmt.Printf("frames=%d ticks=%d elapsed=%.2f\n", frames, clock.Ticks, clock.Elapsed)
	// Output: frames=4 ticks=4 elapsed=1.00
}
