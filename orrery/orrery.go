// Package orrery wires the scene, the orbit animation, the camera and a
// renderer into update and render schedulers sharing one engine.World.
package orrery

import (
	"github.com/plus3/orrery/camera"
	"github.com/plus3/orrery/celestial"
	"github.com/plus3/orrery/engine"
	"github.com/plus3/orrery/orbit"
	"github.com/plus3/orrery/scene"
)

// SolarSystem is the resource holding the body table and the scene built
// from it. Planets[i] pairs with Descriptors.Planets[i].
type SolarSystem struct {
	Descriptors celestial.System
	Graph       *scene.Graph
	Planets     []*scene.Node
	Updater     orbit.Updater
	Paused      bool
}

// CameraRig is the resource holding the camera and the controls moving it.
type CameraRig struct {
	Camera   *camera.Camera
	Controls *camera.Controls
	// Pointer feeds the controls; nil disables interactive input.
	Pointer camera.Pointer
	// Blocked, when set and returning true, makes the controls ignore the
	// pointer for the frame. Used when an overlay owns the mouse.
	Blocked func() bool
}

// Renderer draws a scene graph as seen by a camera.
type Renderer interface {
	Render(g *scene.Graph, cam *camera.Camera)
}

// Output is the resource holding the active renderer.
type Output struct {
	Renderer Renderer
}

// Options configures New.
type Options struct {
	System   celestial.System
	Width    int
	Height   int
	Step     float64
	Renderer Renderer
	Pointer  camera.Pointer
}

// App is the composition root: a World with its update and render stages.
type App struct {
	World  *engine.World
	Update *engine.Scheduler
	Render *engine.Scheduler
	Step   float64

	System *SolarSystem
	Rig    *CameraRig
	Output *Output
}

// New builds the scene from opts.System and registers the standard systems.
// A zero Step defaults to 1.
func New(opts Options) *App {
	if opts.Step == 0 {
		opts.Step = 1
	}

	world := engine.NewWorld()

	g, planets := scene.Build(opts.System)
	system := engine.NewResource(world, SolarSystem{
		Descriptors: opts.System,
		Graph:       g,
		Planets:     planets,
		Updater:     orbit.NewUpdater(),
	}).Get()

	cam := camera.New(opts.Width, opts.Height)
	rig := engine.NewResource(world, CameraRig{
		Camera:   cam,
		Controls: camera.NewControls(cam),
		Pointer:  opts.Pointer,
	}).Get()

	output := engine.NewResource(world, Output{Renderer: opts.Renderer}).Get()

	update := engine.NewScheduler("update", world)
	update.Register(&OrbitSystem{})
	update.Register(&ControlsSystem{})

	render := engine.NewScheduler("render", world)
	render.Register(&RenderSystem{})

	return &App{
		World:  world,
		Update: update,
		Render: render,
		Step:   opts.Step,
		System: system,
		Rig:    rig,
		Output: output,
	}
}

// Resize updates the camera for a viewport of width x height.
func (a *App) Resize(width, height int) {
	a.Rig.Camera.SetViewport(width, height)
}

// Tick starts a new frame and runs the update stage.
func (a *App) Tick() {
	a.World.NextFrame()
	a.Update.Once(a.Step)
}

// Draw runs the render stage for the current frame.
func (a *App) Draw() {
	a.Render.Once(a.Step)
}

// Driver returns a driver running both stages once per host frame.
func (a *App) Driver(host engine.Host) *engine.Driver {
	return engine.NewDriver(host, a.World, a.Step, a.Update, a.Render)
}

// TogglePause stops or resumes the orbit animation. The camera keeps
// responding while paused.
func (a *App) TogglePause() {
	a.System.Paused = !a.System.Paused
}
