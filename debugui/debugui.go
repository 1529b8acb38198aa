// Package debugui provides Dear ImGui panels for inspecting a running orrery.
// Panels are registered as ImguiItems in a World resource; ImguiSystem queues
// them each frame and publishes ImGui's input capture state.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/orrery/engine"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Name   string
	Render func()
}

// Items is the resource listing every registered ImguiItem.
type Items struct {
	List []ImguiItem
}

// Add registers item to be rendered every frame.
func (i *Items) Add(item ImguiItem) {
	i.List = append(i.List, item)
}

// ImguiInputState tracks Dear ImGui's input capture state.
// Use this to determine if ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// CaptureSource reports whether ImGui wants the mouse or keyboard.
// *imgui.IO implements it.
type CaptureSource interface {
	WantCaptureMouse() bool
	WantCaptureKeyboard() bool
}

// ImguiSystem defers every registered render function and updates the
// ImguiInputState resource with the current capture state.
type ImguiSystem struct {
	Items      engine.Resource[Items]
	InputState engine.Resource[ImguiInputState]

	// IO returns the capture source; nil means imgui.CurrentIO.
	IO func() CaptureSource
}

// Execute updates input state and queues all ImGui render functions.
func (s *ImguiSystem) Execute(frame *engine.Frame) {
	io := s.io()

	if state := s.InputState.Get(); state != nil {
		state.WantCaptureMouse = io.WantCaptureMouse()
		state.WantCaptureKeyboard = io.WantCaptureKeyboard()
	}

	items := s.Items.Get()
	if items == nil {
		return
	}
	for _, item := range items.List {
		frame.Commands.Defer(item.Render)
	}
}

func (s *ImguiSystem) io() CaptureSource {
	if s.IO != nil {
		return s.IO()
	}
	return imgui.CurrentIO()
}

// Install creates the Items and ImguiInputState resources in world and
// returns the item list.
func Install(world *engine.World) *Items {
	engine.NewResource[ImguiInputState](world)
	return engine.NewResource[Items](world).Get()
}
