package orbit_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/orrery/celestial"
	"github.com/plus3/orrery/orbit"
	"github.com/plus3/orrery/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func build(t *testing.T) (celestial.System, *scene.Graph, []*scene.Node) {
	t.Helper()
	sys := celestial.Default()
	g, planets := scene.Build(sys)
	return sys, g, planets
}

func planetNamed(t *testing.T, planets []*scene.Node, name string) *scene.Node {
	t.Helper()
	for _, p := range planets {
		if p.Name == name {
			return p
		}
	}
	require.Failf(t, "planet not found", "%s", name)
	return nil
}

func TestAdvanceEarthFirstStep(t *testing.T) {
	sys, _, planets := build(t)

	orbit.Advance(planets, sys.Planets, 1)

	earth := planetNamed(t, planets, "Earth")
	assert.InDelta(t, 0.005, earth.Rotation, tolerance)
	assert.InDelta(t, math.Sin(0.005)*45, earth.Position.X(), tolerance)
	assert.InDelta(t, 0.225, earth.Position.X(), 1e-4)
	assert.InDelta(t, 44.9994, earth.Position.Z(), 1e-4)
	assert.Zero(t, earth.Position.Y())
}

func TestAdvanceMoonStaysOnLocalCircle(t *testing.T) {
	sys, _, planets := build(t)

	orbit.Advance(planets, sys.Planets, 1)

	mars := planetNamed(t, planets, "Mars")
	deimos := mars.Children()[1]
	require.Equal(t, "Deimos", deimos.Name)

	x, z := deimos.Position.X(), deimos.Position.Z()
	assert.InDelta(t, 625, x*x+z*z, 1e-9)

	// The local position does not depend on where Mars is.
	mars.Position = mgl64.Vec3{1000, 0, -1000}
	mars.Rotation = 2
	deimos.Rotation = 0
	orbit.Step(deimos, 0.015, 25)
	assert.InDelta(t, math.Sin(0.015)*25, deimos.Position.X(), tolerance)
	assert.InDelta(t, math.Cos(0.015)*25, deimos.Position.Z(), tolerance)
}

func TestAdvanceMoonRate(t *testing.T) {
	sys, _, planets := build(t)

	orbit.Advance(planets, sys.Planets, 1)

	moon := planetNamed(t, planets, "Earth").Children()[0]
	assert.InDelta(t, orbit.MoonRate*0.015, moon.Rotation, tolerance)

	custom := orbit.Updater{Rates: orbit.Rates{Planet: 0.1, Moon: 0.1}}
	custom.Advance(planets, sys.Planets, 1)
	assert.InDelta(t, orbit.MoonRate*0.015+0.1*0.015, moon.Rotation, tolerance)
}

func TestZeroSpeedDoesNotDrift(t *testing.T) {
	sys := celestial.System{
		Star: celestial.DefaultStar(),
		Planets: []celestial.BodyDescriptor{
			{
				Name: "Still", Radius: 1, Distance: 20, Speed: 0,
				Moons: []celestial.MoonDescriptor{{Name: "Pebble", Radius: 0.1, Distance: 4, Speed: 0}},
			},
		},
	}
	_, planets := scene.Build(sys)

	// The first step moves the body from (d,0,0) onto the angle-0 point of
	// the circle, (0,0,d); after that nothing changes.
	orbit.Advance(planets, sys.Planets, 1)
	planetAfterFirst := planets[0].Position
	moonAfterFirst := planets[0].Children()[0].Position

	for i := 0; i < 500; i++ {
		orbit.Advance(planets, sys.Planets, 1)
	}

	assert.Equal(t, planetAfterFirst, planets[0].Position)
	assert.Equal(t, moonAfterFirst, planets[0].Children()[0].Position)
	assert.Zero(t, planets[0].Rotation)
	assert.Equal(t, mgl64.Vec3{0, 0, 20}, planets[0].Position)
}

func TestBodiesStayOnTheirCircle(t *testing.T) {
	sys, _, planets := build(t)

	for step := 0; step < 1000; step++ {
		orbit.Advance(planets, sys.Planets, 1)

		for i, planet := range planets {
			d := sys.Planets[i].Distance
			assert.InDelta(t, d, orbit.Radius(planet), 1e-9, "%s step %d", planet.Name, step)

			for j, moon := range planet.Children() {
				md := sys.Planets[i].Moons[j].Distance
				assert.InDelta(t, md, orbit.Radius(moon), 1e-9, "%s step %d", moon.Name, step)
			}
		}
	}
}

func TestAngleAccumulatesLinearly(t *testing.T) {
	sys, _, planets := build(t)

	const steps = 2500
	for i := 0; i < steps; i++ {
		orbit.Advance(planets, sys.Planets, 1)
	}

	for i, planet := range planets {
		want := steps * orbit.PlanetRate * sys.Planets[i].Speed
		assert.InDelta(t, want, planet.Rotation, 1e-9, planet.Name)

		// The angle is not wrapped; positions are periodic in it.
		x, z := orbit.Position(math.Mod(want, 2*math.Pi), sys.Planets[i].Distance)
		assert.InDelta(t, x, planet.Position.X(), 1e-6)
		assert.InDelta(t, z, planet.Position.Z(), 1e-6)
	}

	mercury := planets[0]
	assert.Greater(t, mercury.Rotation, 2*math.Pi, "accumulator grows past a full turn")
}

func TestDeltaScalesStep(t *testing.T) {
	sys, _, planets := build(t)

	orbit.Advance(planets, sys.Planets, 3)
	assert.InDelta(t, 3*0.1*0.05, planets[2].Rotation, tolerance)
}

func TestTopologyInvariantUnderAnimation(t *testing.T) {
	sys, g, planets := build(t)
	before := g.Topology()
	count := g.Len()

	for i := 0; i < 1000; i++ {
		orbit.Advance(planets, sys.Planets, 1)
	}

	assert.Equal(t, count, g.Len())
	assert.Equal(t, before, g.Topology())
}

func TestUpdateOrderIndependent(t *testing.T) {
	sys := celestial.Default()
	_, forward := scene.Build(sys)
	_, backward := scene.Build(sys)

	orbit.Advance(forward, sys.Planets, 1)

	// Advance one planet at a time, last to first.
	for i := len(backward) - 1; i >= 0; i-- {
		orbit.Advance(backward[i:i+1], sys.Planets[i:i+1], 1)
	}

	for i := range forward {
		assert.Equal(t, forward[i].Position, backward[i].Position)
		assert.Equal(t, forward[i].Rotation, backward[i].Rotation)
	}
}

func TestAdvanceIgnoresUnpairedEntries(t *testing.T) {
	sys, _, planets := build(t)

	assert.NotPanics(t, func() {
		orbit.Advance(planets, sys.Planets[:2], 1)
		orbit.Advance(planets[:1], sys.Planets, 1)
	})
	assert.Zero(t, planets[3].Rotation)
	assert.InDelta(t, 2*0.1*0.065, planets[0].Rotation, tolerance)
}
