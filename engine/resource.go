package engine

import "reflect"

// Resource provides typed access to a single value stored in a World.
// Systems declare Resource fields and the Scheduler binds them on Register.
type Resource[T any] struct {
	world *World
	ptr   *T
}

// NewResource returns an accessor for the T resource of world.
// If the resource does not exist yet it is created from initializer, or the
// zero value when no initializer is given. The resource exists after the call.
func NewResource[T any](world *World, initializer ...T) *Resource[T] {
	r := &Resource[T]{}
	r.bind(world, initializer...)
	return r
}

// Init binds the accessor to world. Called by the Scheduler during Register.
func (r *Resource[T]) Init(world *World) {
	r.world = world
	r.ptr = nil
	r.refresh()
}

func (r *Resource[T]) bind(world *World, initializer ...T) {
	t := reflect.TypeFor[T]()
	if world.lookup(t) == nil {
		value := new(T)
		if len(initializer) > 0 {
			*value = initializer[0]
		}
		world.put(t, value)
	}
	r.world = world
	r.refresh()
}

func (r *Resource[T]) refresh() {
	if r.world == nil {
		return
	}
	if ptr, ok := r.world.lookup(reflect.TypeFor[T]()).(*T); ok {
		r.ptr = ptr
	}
}

// Get returns a pointer to the resource, or nil if it has not been created.
func (r *Resource[T]) Get() *T {
	if r.ptr == nil {
		r.refresh()
	}
	return r.ptr
}

// Exists reports whether the resource has been created.
func (r *Resource[T]) Exists() bool {
	return r.Get() != nil
}

// resourceField is implemented by *Resource[T] for any T.
type resourceField interface {
	Init(world *World)
}
