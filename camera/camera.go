// Package camera provides a perspective camera and orbit-style controls that
// move it around a target point in response to pointer input.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Defaults matching the scene's scale.
const (
	DefaultFOV  = 35.0
	DefaultNear = 0.1
	DefaultFar  = 400.0
)

// Camera is a perspective camera looking at Target.
type Camera struct {
	// FOV is the vertical field of view in degrees.
	FOV      float64
	Near     float64
	Far      float64
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3

	width  int
	height int
	aspect float64
}

// New creates a camera for a viewport of width x height pixels, placed at
// (0, 5, 100) and looking at the origin.
func New(width, height int) *Camera {
	c := &Camera{
		FOV:      DefaultFOV,
		Near:     DefaultNear,
		Far:      DefaultFar,
		Position: mgl64.Vec3{0, 5, 100},
		Up:       mgl64.Vec3{0, 1, 0},
	}
	c.SetViewport(width, height)
	return c
}

// SetViewport records the drawing surface size and recomputes the aspect ratio.
func (c *Camera) SetViewport(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c.width = width
	c.height = height
	c.aspect = float64(width) / float64(height)
}

// Viewport returns the drawing surface size.
func (c *Camera) Viewport() (width, height int) {
	return c.width, c.height
}

// Aspect returns width / height of the viewport.
func (c *Camera) Aspect() float64 {
	return c.aspect
}

// Projection returns the perspective projection matrix.
func (c *Camera) Projection() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FOV), c.aspect, c.Near, c.Far)
}

// View returns the world-to-camera matrix.
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, c.Up)
}

// ViewProjection returns Projection * View.
func (c *Camera) ViewProjection() mgl64.Mat4 {
	return c.Projection().Mul4(c.View())
}

// Distance returns the distance from the camera to its target.
func (c *Camera) Distance() float64 {
	return c.Position.Sub(c.Target).Len()
}

// Azimuth returns the camera's angle around the vertical axis through the
// target, in radians, measured from +Z towards +X.
func (c *Camera) Azimuth() float64 {
	offset := c.Position.Sub(c.Target)
	return math.Atan2(offset.X(), offset.Z())
}

// ScreenPoint is a world point projected onto the viewport.
type ScreenPoint struct {
	X, Y float64
	// Depth is the distance along the view direction.
	Depth float64
}

// Project maps a world-space point to viewport pixels. ok is false when the
// point is behind the camera or outside the near/far range.
func (c *Camera) Project(world mgl64.Vec3) (p ScreenPoint, ok bool) {
	return c.project(c.ViewProjection(), world)
}

func (c *Camera) project(viewProjection mgl64.Mat4, world mgl64.Vec3) (ScreenPoint, bool) {
	clip := viewProjection.Mul4x1(world.Vec4(1))
	w := clip.W()
	if w <= c.Near {
		return ScreenPoint{}, false
	}

	ndc := clip.Vec3().Mul(1 / w)
	if ndc.Z() < -1 || ndc.Z() > 1 {
		return ScreenPoint{}, false
	}

	return ScreenPoint{
		X:     (ndc.X() + 1) / 2 * float64(c.width),
		Y:     (1 - ndc.Y()) / 2 * float64(c.height),
		Depth: w,
	}, true
}

// Projector projects many points with one view-projection matrix.
type Projector struct {
	camera         *Camera
	viewProjection mgl64.Mat4
	pixelsPerUnit  float64
}

// Projector captures the camera's current matrices.
func (c *Camera) Projector() Projector {
	halfFOV := mgl64.DegToRad(c.FOV) / 2
	return Projector{
		camera:         c,
		viewProjection: c.ViewProjection(),
		pixelsPerUnit:  float64(c.height) / 2 / math.Tan(halfFOV),
	}
}

// Project maps a world-space point to viewport pixels.
func (p Projector) Project(world mgl64.Vec3) (ScreenPoint, bool) {
	return p.camera.project(p.viewProjection, world)
}

// Radius returns the on-screen radius in pixels of a sphere of the given
// world radius seen at depth.
func (p Projector) Radius(radius, depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return radius / depth * p.pixelsPerUnit
}
