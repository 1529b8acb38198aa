// Package orbit advances bodies along circular orbits.
//
// Each node's Rotation doubles as its angle accumulator: every step adds
// rate*speed*dt to it, then places the node on a circle of the configured
// distance in its parent's space, with x = sin(angle)*d and z = cos(angle)*d.
// Moons are written in their planet's local space, so their orbit follows
// the planet without any extra composition here.
package orbit

import (
	"math"

	"github.com/plus3/orrery/celestial"
	"github.com/plus3/orrery/scene"
)

const (
	// PlanetRate scales planet speeds into radians per step.
	PlanetRate = 0.1
	// MoonRate scales moon speeds into radians per step.
	MoonRate = 1.0
)

// Rates holds the per-step angle scale applied to descriptor speeds.
type Rates struct {
	Planet float64
	Moon   float64
}

// DefaultRates returns PlanetRate and MoonRate.
func DefaultRates() Rates {
	return Rates{Planet: PlanetRate, Moon: MoonRate}
}

// Updater advances planet and moon nodes.
type Updater struct {
	Rates Rates
}

// NewUpdater returns an Updater using DefaultRates.
func NewUpdater() Updater {
	return Updater{Rates: DefaultRates()}
}

// Advance moves every planet in planets by one step of dt virtual units,
// pairing planets[i] with descriptors[i] and each planet's children with the
// descriptor's moons by index. Extra nodes or descriptors are ignored.
func (u Updater) Advance(planets []*scene.Node, descriptors []celestial.BodyDescriptor, dt float64) {
	n := min(len(planets), len(descriptors))
	for i := 0; i < n; i++ {
		planet := planets[i]
		desc := descriptors[i]

		Step(planet, u.Rates.Planet*desc.Speed*dt, desc.Distance)

		moons := planet.Children()
		m := min(len(moons), len(desc.Moons))
		for j := 0; j < m; j++ {
			moonDesc := desc.Moons[j]
			Step(moons[j], u.Rates.Moon*moonDesc.Speed*dt, moonDesc.Distance)
		}
	}
}

// Advance moves planets and their moons one step using DefaultRates.
func Advance(planets []*scene.Node, descriptors []celestial.BodyDescriptor, dt float64) {
	NewUpdater().Advance(planets, descriptors, dt)
}

// Step adds delta to the node's angle, then places it on the circle of the
// given distance using the updated angle. Y is left untouched.
func Step(n *scene.Node, delta, distance float64) {
	n.Rotation += delta
	x, z := Position(n.Rotation, distance)
	n.Position[0] = x
	n.Position[2] = z
}

// Position returns the point at angle on a circle of radius distance.
func Position(angle, distance float64) (x, z float64) {
	return math.Sin(angle) * distance, math.Cos(angle) * distance
}

// Radius returns the node's distance from its parent's origin in the XZ plane.
func Radius(n *scene.Node) float64 {
	return math.Hypot(n.Position.X(), n.Position.Z())
}
