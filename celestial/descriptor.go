// Package celestial holds the declarative description of a planetary system:
// one star, an ordered list of planets and the moons each planet owns.
//
// Descriptors are plain values. Once loaded they are treated as read-only
// configuration; the scene builder and the orbit updater only read them.
package celestial

// SphereRadius is the radius of the unit body geometry. A body's rendered
// radius is SphereRadius multiplied by its accumulated scale.
const SphereRadius = 5.0

// Texture file names shipped under the asset directory's textures/ folder.
const (
	SunTexture     = "2k_sun.jpg"
	MercuryTexture = "2k_mercury.jpg"
	VenusTexture   = "2k_venus_surface.jpg"
	EarthTexture   = "2k_earth_daymap.jpg"
	MarsTexture    = "2k_mars.jpg"
	MoonTexture    = "2k_moon.jpg"
)

// StarDescriptor describes the central, non-orbiting body.
type StarDescriptor struct {
	Name    string  `yaml:"name"`
	Scale   float64 `yaml:"scale"`
	Texture string  `yaml:"texture,omitempty"`
	Color   uint32  `yaml:"color,omitempty"`
}

// MoonDescriptor describes a body orbiting a planet.
// Color is an 0xRRGGBB fallback used when no texture is available; zero means
// the renderer default.
type MoonDescriptor struct {
	Name     string  `yaml:"name"`
	Radius   float64 `yaml:"radius"`
	Distance float64 `yaml:"distance"`
	Speed    float64 `yaml:"speed"`
	Texture  string  `yaml:"texture,omitempty"`
	Color    uint32  `yaml:"color,omitempty"`
}

// BodyDescriptor describes a planet orbiting the star and the moons it owns.
type BodyDescriptor struct {
	Name     string           `yaml:"name"`
	Radius   float64          `yaml:"radius"`
	Distance float64          `yaml:"distance"`
	Speed    float64          `yaml:"speed"`
	Texture  string           `yaml:"texture,omitempty"`
	Color    uint32           `yaml:"color,omitempty"`
	Moons    []MoonDescriptor `yaml:"moons,omitempty"`
}

// System is a complete descriptor table.
type System struct {
	Star    StarDescriptor   `yaml:"star"`
	Planets []BodyDescriptor `yaml:"planets"`
}

// BodyCount returns the number of bodies described: the star, every planet
// and every moon.
func (s System) BodyCount() int {
	n := 1 + len(s.Planets)
	for _, p := range s.Planets {
		n += len(p.Moons)
	}
	return n
}

// MoonTextureFor returns the texture a moon is drawn with. Moons without an
// explicit texture share the single moon texture, whichever planet they orbit.
func MoonTextureFor(m MoonDescriptor) string {
	if m.Texture != "" {
		return m.Texture
	}
	return MoonTexture
}

// Clone returns a deep copy of s, so callers can hand out tables without
// sharing moon slices.
func (s System) Clone() System {
	out := System{
		Star:    s.Star,
		Planets: make([]BodyDescriptor, len(s.Planets)),
	}
	for i, p := range s.Planets {
		out.Planets[i] = p
		if p.Moons != nil {
			out.Planets[i].Moons = append([]MoonDescriptor(nil), p.Moons...)
		}
	}
	return out
}
