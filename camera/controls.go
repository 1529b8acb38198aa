package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const epsilon = 1e-6

// Pointer reports the state of a mouse-like input device for one frame.
type Pointer interface {
	// Position returns the cursor position in viewport pixels.
	Position() (x, y int)
	// Pressed reports whether the rotate button is held.
	Pressed() bool
	// Wheel returns the vertical scroll since the last frame. Positive
	// values scroll away from the user.
	Wheel() float64
}

// Controls orbits a Camera around its Target. Dragging rotates, the wheel
// dollies, and with damping enabled motion eases out over following frames.
type Controls struct {
	EnableDamping bool
	DampingFactor float64
	RotateSpeed   float64
	ZoomSpeed     float64
	MinDistance   float64
	MaxDistance   float64

	camera *Camera

	deltaTheta float64
	deltaPhi   float64
	scale      float64

	dragging     bool
	lastX, lastY int
}

// NewControls returns controls for cam with damping on and distance clamped
// to [20, 200].
func NewControls(cam *Camera) *Controls {
	return &Controls{
		EnableDamping: true,
		DampingFactor: 0.05,
		RotateSpeed:   1,
		ZoomSpeed:     1,
		MinDistance:   20,
		MaxDistance:   200,
		camera:        cam,
		scale:         1,
	}
}

// Camera returns the controlled camera.
func (c *Controls) Camera() *Camera {
	return c.camera
}

// HandleInput turns pointer motion into pending rotation and dolly.
func (c *Controls) HandleInput(p Pointer) {
	x, y := p.Position()
	if p.Pressed() {
		if c.dragging {
			c.Rotate(float64(x-c.lastX), float64(y-c.lastY))
		}
		c.dragging = true
	} else {
		c.dragging = false
	}
	c.lastX, c.lastY = x, y

	if w := p.Wheel(); w != 0 {
		c.Dolly(w)
	}
}

// Rotate queues a rotation for a drag of dx, dy pixels. A drag across the
// full viewport height turns the camera once around.
func (c *Controls) Rotate(dx, dy float64) {
	_, height := c.camera.Viewport()
	c.deltaTheta -= 2 * math.Pi * dx / float64(height) * c.RotateSpeed
	c.deltaPhi -= 2 * math.Pi * dy / float64(height) * c.RotateSpeed
}

// Dolly queues a move towards (wheel > 0) or away from the target.
func (c *Controls) Dolly(wheel float64) {
	zoom := math.Pow(0.95, c.ZoomSpeed)
	switch {
	case wheel > 0:
		c.scale *= zoom
	case wheel < 0:
		c.scale /= zoom
	}
}

// Update applies pending motion to the camera. Call it once per frame. It
// reports whether the camera moved.
func (c *Controls) Update() bool {
	cam := c.camera
	offset := cam.Position.Sub(cam.Target)

	radius := offset.Len()
	theta := math.Atan2(offset.X(), offset.Z())
	phi := 0.0
	if radius > 0 {
		phi = math.Acos(mgl64.Clamp(offset.Y()/radius, -1, 1))
	}

	if c.EnableDamping {
		theta += c.deltaTheta * c.DampingFactor
		phi += c.deltaPhi * c.DampingFactor
	} else {
		theta += c.deltaTheta
		phi += c.deltaPhi
	}
	phi = mgl64.Clamp(phi, epsilon, math.Pi-epsilon)
	radius = mgl64.Clamp(radius*c.scale, c.MinDistance, c.MaxDistance)

	sinPhi := math.Sin(phi)
	next := cam.Target.Add(mgl64.Vec3{
		radius * sinPhi * math.Sin(theta),
		radius * math.Cos(phi),
		radius * sinPhi * math.Cos(theta),
	})

	if c.EnableDamping {
		c.deltaTheta *= 1 - c.DampingFactor
		c.deltaPhi *= 1 - c.DampingFactor
	} else {
		c.deltaTheta, c.deltaPhi = 0, 0
	}
	c.scale = 1

	moved := next.Sub(cam.Position).LenSqr() > epsilon
	cam.Position = next
	return moved
}
