package main

import (
	"math"
	"reflect"

	"github.com/plus3/orrery/orbit"
	"github.com/plus3/orrery/orrery"
	"github.com/plus3/orrery/scene"
)

// radiusTolerance bounds how far a body may drift off its orbit circle.
const radiusTolerance = 1e-6

// Invariants summarises what the checker saw.
type Invariants struct {
	Checks          int
	MaxRadiusError  float64
	WorstBody       string
	NodeCountStable bool
	TopologyStable  bool
}

// OK reports whether every invariant held.
func (i Invariants) OK() bool {
	return i.MaxRadiusError <= radiusTolerance && i.NodeCountStable && i.TopologyStable
}

// Checker verifies the animation invariants of an App after each frame:
// every body stays on its circle and the scene structure never changes.
type Checker struct {
	app      *orrery.App
	topology []scene.Shape
	nodes    int
	result   Invariants
}

func NewChecker(app *orrery.App) *Checker {
	return &Checker{
		app:      app,
		topology: app.System.Graph.Topology(),
		nodes:    app.System.Graph.Len(),
		result:   Invariants{NodeCountStable: true, TopologyStable: true},
	}
}

// Check inspects the current frame.
func (c *Checker) Check() {
	c.result.Checks++
	sys := c.app.System

	for i, planet := range sys.Planets {
		if i >= len(sys.Descriptors.Planets) {
			break
		}
		desc := sys.Descriptors.Planets[i]
		c.radius(planet, desc.Distance)

		for j, moon := range planet.Children() {
			if j >= len(desc.Moons) {
				break
			}
			c.radius(moon, desc.Moons[j].Distance)
		}
	}

	if sys.Graph.Len() != c.nodes {
		c.result.NodeCountStable = false
	}
}

func (c *Checker) radius(n *scene.Node, distance float64) {
	err := math.Abs(orbit.Radius(n) - math.Abs(distance))
	if err > c.result.MaxRadiusError {
		c.result.MaxRadiusError = err
		c.result.WorstBody = n.Name
	}
}

// Result compares the final structure with the initial one and returns the
// summary.
func (c *Checker) Result() Invariants {
	if !reflect.DeepEqual(c.topology, c.app.System.Graph.Topology()) {
		c.result.TopologyStable = false
	}
	return c.result
}
