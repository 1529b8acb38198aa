package orrery_test

import (
	"context"
	"testing"

	"github.com/plus3/orrery/camera"
	"github.com/plus3/orrery/celestial"
	"github.com/plus3/orrery/engine"
	"github.com/plus3/orrery/orbit"
	"github.com/plus3/orrery/orrery"
	"github.com/plus3/orrery/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRenderer struct {
	calls int
	last  *camera.Camera
}

func (r *countingRenderer) Render(g *scene.Graph, cam *camera.Camera) {
	r.calls++
	r.last = cam
}

type dragPointer struct {
	x       int
	pressed bool
}

func (p *dragPointer) Position() (int, int) { return p.x, 0 }
func (p *dragPointer) Pressed() bool        { return p.pressed }
func (p *dragPointer) Wheel() float64       { return 0 }

func newApp(r orrery.Renderer) *orrery.App {
	return orrery.New(orrery.Options{
		System:   celestial.Default(),
		Width:    640,
		Height:   480,
		Renderer: r,
	})
}

func TestHeadlessRun(t *testing.T) {
	r := &countingRenderer{}
	app := newApp(r)
	topology := app.System.Graph.Topology()

	frames := app.Driver(engine.Frames(1000)).Run(context.Background())

	assert.Equal(t, 1000, frames)
	assert.Equal(t, uint64(1000), app.World.Frame())
	assert.Equal(t, 1000, r.calls)
	assert.Same(t, app.Rig.Camera, r.last)
	assert.Equal(t, topology, app.System.Graph.Topology())

	earth := app.System.Planets[2]
	assert.InDelta(t, 1000*orbit.PlanetRate*0.05, earth.Rotation, 1e-9)
	assert.InDelta(t, 45, orbit.Radius(earth), 1e-9)
}

func TestStepScalesAnimation(t *testing.T) {
	app := orrery.New(orrery.Options{System: celestial.Default(), Width: 1, Height: 1, Step: 0.5})
	app.Driver(engine.Frames(10)).Run(context.Background())

	assert.InDelta(t, 10*0.5*orbit.PlanetRate*0.065, app.System.Planets[0].Rotation, 1e-12)
}

func TestTickAndDraw(t *testing.T) {
	r := &countingRenderer{}
	app := newApp(r)

	app.Tick()
	assert.Equal(t, uint64(1), app.World.Frame())
	assert.Zero(t, r.calls)
	assert.NotZero(t, app.System.Planets[0].Rotation)

	app.Draw()
	assert.Equal(t, 1, r.calls)
}

func TestPause(t *testing.T) {
	app := newApp(nil)
	app.Tick()
	before := app.System.Planets[1].Rotation

	app.TogglePause()
	app.Tick()
	app.Tick()
	assert.Equal(t, before, app.System.Planets[1].Rotation)

	app.TogglePause()
	app.Tick()
	assert.Greater(t, app.System.Planets[1].Rotation, before)
}

func TestResize(t *testing.T) {
	app := newApp(nil)
	app.Resize(1920, 1080)

	w, h := app.Rig.Camera.Viewport()
	assert.Equal(t, 1920, w)
	assert.Equal(t, 1080, h)
	assert.InDelta(t, 16.0/9.0, app.Rig.Camera.Aspect(), 1e-12)
}

func TestControlsFollowPointerUnlessBlocked(t *testing.T) {
	p := &dragPointer{}
	app := orrery.New(orrery.Options{System: celestial.Default(), Width: 640, Height: 480, Pointer: p})
	app.Rig.Controls.EnableDamping = false

	blocked := true
	app.Rig.Blocked = func() bool { return blocked }

	p.pressed = true
	app.Tick()
	p.x = 48
	app.Tick()
	assert.InDelta(t, 0, app.Rig.Camera.Azimuth(), 1e-9)

	blocked = false
	p.x = 0
	app.Tick()
	p.x = -48
	app.Tick()
	assert.InDelta(t, 2*3.141592653589793*48/480, app.Rig.Camera.Azimuth(), 1e-9)
}

func TestResourcesInWorld(t *testing.T) {
	app := newApp(nil)

	var system *orrery.SolarSystem
	require.True(t, app.World.Read(&system))
	assert.Same(t, app.System, system)

	var rig *orrery.CameraRig
	require.True(t, app.World.Read(&rig))
	assert.Same(t, app.Rig, rig)

	stats := app.Update.Stats()
	assert.Equal(t, "update", stats.Name)
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, "OrbitSystem", stats.Systems[0].Name)
}
