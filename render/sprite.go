// Package render turns a scene graph seen through a camera into a flat list
// of depth-sorted sprites. Backends in sub-packages draw those sprites.
package render

import (
	"cmp"
	"image/color"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/orrery/camera"
	"github.com/plus3/orrery/celestial"
	"github.com/plus3/orrery/scene"
)

// Lighting describes the ambient term and the point light at the star.
type Lighting struct {
	Ambient   float64
	Intensity float64
}

// DefaultLighting returns ambient 0.13 and a point light of intensity 2.
func DefaultLighting() Lighting {
	return Lighting{Ambient: 0.13, Intensity: 2}
}

// Sprite is one body as it appears on screen.
type Sprite struct {
	Node *scene.Node
	// X and Y are the projected centre in viewport pixels.
	X, Y float64
	// Radius is the on-screen radius in pixels.
	Radius float64
	Depth  float64
	// Light is the brightness multiplier in [0, 1].
	Light float64
	// Spin is the body's accumulated rotation in root space, in radians.
	Spin float64
}

// Collect projects every body in g and returns the visible ones ordered far
// to near, so drawing them in order paints nearer bodies over farther ones.
func Collect(g *scene.Graph, cam *camera.Camera, light Lighting) []Sprite {
	proj := cam.Projector()
	var lightPos mgl64.Vec3
	if g.Star != nil {
		lightPos = g.Star.WorldPosition()
	}

	bodies := g.Bodies()
	sprites := make([]Sprite, 0, len(bodies))
	for _, n := range bodies {
		world := n.WorldPosition()
		p, ok := proj.Project(world)
		if !ok {
			continue
		}

		radius := proj.Radius(celestial.SphereRadius*math.Abs(n.WorldScale()), p.Depth)
		if radius <= 0 {
			continue
		}

		s := Sprite{
			Node:   n,
			X:      p.X,
			Y:      p.Y,
			Radius: radius,
			Depth:  p.Depth,
			Light:  1,
			Spin:   spin(n),
		}
		if !n.Material.Unlit {
			s.Light = light.Shade(world, lightPos, cam.Position)
		}
		sprites = append(sprites, s)
	}

	slices.SortStableFunc(sprites, func(a, b Sprite) int {
		return cmp.Compare(b.Depth, a.Depth)
	})
	return sprites
}

// Shade returns the brightness of a lit sphere at body seen from eye with the
// point light at source. The point light contributes in proportion to the
// lit fraction of the visible disc.
func (l Lighting) Shade(body, source, eye mgl64.Vec3) float64 {
	toLight := source.Sub(body)
	toEye := eye.Sub(body)

	lit := 1.0
	if toLight.Len() > 0 && toEye.Len() > 0 {
		cos := toLight.Normalize().Dot(toEye.Normalize())
		lit = (1 + cos) / 2
	}

	return mgl64.Clamp(l.Ambient+l.Intensity*lit, 0, 1)
}

func spin(n *scene.Node) float64 {
	var a float64
	for ; n != nil; n = n.Parent() {
		a += n.Rotation
	}
	return a
}

// DefaultColor stands in for a zero material colour.
const DefaultColor = 0xbbbbbb

// RGBA converts a 0xRRGGBB material colour scaled by light.
func RGBA(c uint32, light float64) color.RGBA {
	if c == 0 {
		c = DefaultColor
	}
	light = mgl64.Clamp(light, 0, 1)
	channel := func(shift uint) uint8 {
		return uint8(math.Round(float64((c>>shift)&0xff) * light))
	}
	return color.RGBA{R: channel(16), G: channel(8), B: channel(0), A: 0xff}
}
