// Package engine drives per-frame systems over a shared World.
//
// A World holds typed resources (one value per Go type) that systems read and
// write through Resource fields. A Scheduler runs systems in registration
// order and a Driver paces schedulers against a Host frame source.
package engine

import (
	"reflect"
	"sort"
)

// World is the explicit context shared by every system of an application.
// It owns one value per resource type plus the running frame counter.
type World struct {
	resources map[reflect.Type]any
	frame     uint64
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		resources: make(map[reflect.Type]any),
	}
}

// put stores ptr (a *T) under the type T.
func (w *World) put(t reflect.Type, ptr any) {
	w.resources[t] = ptr
}

// lookup returns the *T stored for type T, or nil.
func (w *World) lookup(t reflect.Type) any {
	return w.resources[t]
}

// Read points *target at the resource matching the pointed-to type.
// target must be a **T. Returns false if the resource does not exist.
func (w *World) Read(target any) bool {
	value := reflect.ValueOf(target)
	if value.Kind() != reflect.Ptr || value.Elem().Kind() != reflect.Ptr {
		panic("World.Read target must be a pointer to a pointer")
	}

	elem := value.Elem()
	ptr := w.lookup(elem.Type().Elem())
	if ptr == nil {
		return false
	}

	elem.Set(reflect.ValueOf(ptr))
	return true
}

// Frame returns the index of the current frame.
func (w *World) Frame() uint64 {
	return w.frame
}

// NextFrame advances the frame counter and returns the new index.
// Whoever owns the frame loop calls this once per displayed frame.
func (w *World) NextFrame() uint64 {
	w.frame++
	return w.frame
}

// ResourceCount returns the number of resources stored in the world.
func (w *World) ResourceCount() int {
	return len(w.resources)
}

// ResourceTypes returns the sorted type names of all resources.
func (w *World) ResourceTypes() []string {
	names := make([]string, 0, len(w.resources))
	for t := range w.resources {
		names = append(names, t.String())
	}
	sort.Strings(names)
	return names
}
