package engine

// Frame is handed to every system during one Scheduler.Once call.
type Frame struct {
	Index     uint64
	DeltaTime float64
	Commands  *Commands
	World     *World
}

func newFrame(index uint64, dt float64, world *World) *Frame {
	return &Frame{
		Index:     index,
		DeltaTime: dt,
		Commands:  newCommands(),
		World:     world,
	}
}

// Commands buffers work that must run after every system of a frame has
// executed, such as immediate-mode UI draw calls.
type Commands struct {
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn to run when the frame is flushed.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.defers)
}

// Flush runs queued commands in order and resets the buffer.
func (c *Commands) Flush() {
	for _, fn := range c.defers {
		fn()
	}
	c.defers = c.defers[:0]
}
