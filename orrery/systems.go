package orrery

import "github.com/plus3/orrery/engine"

// OrbitSystem advances every planet and moon by the frame's step.
type OrbitSystem struct {
	System engine.Resource[SolarSystem]
}

func (s *OrbitSystem) Execute(frame *engine.Frame) {
	system := s.System.Get()
	if system == nil || system.Paused {
		return
	}
	system.Updater.Advance(system.Planets, system.Descriptors.Planets, frame.DeltaTime)
}

// ControlsSystem feeds pointer input to the camera controls and applies
// their pending motion.
type ControlsSystem struct {
	Rig engine.Resource[CameraRig]
}

func (s *ControlsSystem) Execute(frame *engine.Frame) {
	rig := s.Rig.Get()
	if rig == nil || rig.Controls == nil {
		return
	}

	if rig.Pointer != nil && (rig.Blocked == nil || !rig.Blocked()) {
		rig.Controls.HandleInput(rig.Pointer)
	}
	rig.Controls.Update()
}

// RenderSystem hands the scene and camera to the active renderer.
type RenderSystem struct {
	System engine.Resource[SolarSystem]
	Rig    engine.Resource[CameraRig]
	Output engine.Resource[Output]
}

func (s *RenderSystem) Execute(frame *engine.Frame) {
	out := s.Output.Get()
	system := s.System.Get()
	rig := s.Rig.Get()
	if out == nil || out.Renderer == nil || system == nil || rig == nil {
		return
	}
	out.Renderer.Render(system.Graph, rig.Camera)
}
