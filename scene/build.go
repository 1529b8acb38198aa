package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/orrery/celestial"
)

// Build creates the scene for sys. The star hangs off the root with a fixed
// scale; each planet hangs off the root at (distance, 0, 0) and owns its
// moons, each at (moonDistance, 0, 0) in the planet's space.
//
// Planet nodes are returned in descriptor order so they can be paired with
// sys.Planets by index. Descriptor values are not validated.
func Build(sys celestial.System) (*Graph, []*Node) {
	g := newGraph(sys.BodyCount() + 1)

	star := g.newNode(sys.Star.Name, KindStar)
	star.Scale = sys.Star.Scale
	star.Material = Material{
		Texture: sys.Star.Texture,
		Color:   sys.Star.Color,
		Unlit:   true,
	}
	g.Root.add(star)
	g.Star = star

	planets := make([]*Node, 0, len(sys.Planets))
	for _, desc := range sys.Planets {
		planet := g.newNode(desc.Name, KindPlanet)
		planet.Scale = desc.Radius
		planet.Position = mgl64.Vec3{desc.Distance, 0, 0}
		planet.Material = Material{
			Texture: desc.Texture,
			Color:   desc.Color,
		}

		for _, moonDesc := range desc.Moons {
			moon := g.newNode(moonDesc.Name, KindMoon)
			moon.Scale = moonDesc.Radius
			moon.Position = mgl64.Vec3{moonDesc.Distance, 0, 0}
			moon.Material = Material{
				Texture: celestial.MoonTextureFor(moonDesc),
				Color:   moonDesc.Color,
			}
			planet.add(moon)
		}

		g.Root.add(planet)
		planets = append(planets, planet)
	}

	return g, planets
}
