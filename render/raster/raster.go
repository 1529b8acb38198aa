// Package raster draws the scene onto an ebiten image.
package raster

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/orrery/asset"
	"github.com/plus3/orrery/camera"
	"github.com/plus3/orrery/render"
	"github.com/plus3/orrery/scene"
)

const segments = 16

var background = color.RGBA{0, 0, 0, 255}

// Renderer paints bodies as shaded, textured discs over a skybox panorama.
// Set Target before each Render call.
type Renderer struct {
	Target   *ebiten.Image
	Lighting render.Lighting

	lib      *asset.Library
	textures map[string]*ebiten.Image
	sky      *ebiten.Image
	skyDone  bool

	vertices []ebiten.Vertex
	drawn    int
}

// New returns a renderer loading its images from lib. lib may be nil, in
// which case every body is drawn as a plain disc.
func New(lib *asset.Library) *Renderer {
	return &Renderer{
		Lighting: render.DefaultLighting(),
		lib:      lib,
		textures: make(map[string]*ebiten.Image),
	}
}

// Drawn returns how many bodies the last Render painted.
func (r *Renderer) Drawn() int {
	return r.drawn
}

// Render paints g as seen by cam onto Target.
func (r *Renderer) Render(g *scene.Graph, cam *camera.Camera) {
	dst := r.Target
	if dst == nil {
		return
	}

	r.drawSky(dst, cam)

	sprites := render.Collect(g, cam, r.Lighting)
	for i := range sprites {
		r.drawBody(dst, &sprites[i])
	}
	r.drawn = len(sprites)
}

func (r *Renderer) drawBody(dst *ebiten.Image, s *render.Sprite) {
	tex := r.texture(s.Node.Material.Texture)
	if tex == nil {
		c := render.RGBA(s.Node.Material.Color, s.Light)
		vector.DrawFilledCircle(dst, float32(s.X), float32(s.Y), float32(s.Radius), c, true)
		return
	}

	w, h := tex.Bounds().Dx(), tex.Bounds().Dy()
	mesh := render.Hemisphere(segments, s.Spin)
	light := float32(s.Light)

	r.vertices = r.vertices[:0]
	for _, p := range mesh.Points {
		r.vertices = append(r.vertices, ebiten.Vertex{
			DstX:   float32(s.X + p.X*s.Radius),
			DstY:   float32(s.Y + p.Y*s.Radius),
			SrcX:   float32(p.U * float64(w)),
			SrcY:   float32(p.V * float64(h)),
			ColorR: light,
			ColorG: light,
			ColorB: light,
			ColorA: 1,
		})
	}

	op := &ebiten.DrawTrianglesOptions{
		Address: ebiten.AddressRepeat,
		Filter:  ebiten.FilterLinear,
	}
	dst.DrawTriangles(r.vertices, mesh.Indices, tex, op)
}

func (r *Renderer) texture(file string) *ebiten.Image {
	if file == "" || r.lib == nil {
		return nil
	}
	if tex, ok := r.textures[file]; ok {
		return tex
	}

	var tex *ebiten.Image
	if img := r.lib.Texture(file); img != nil {
		tex = ebiten.NewImageFromImage(img)
	}
	r.textures[file] = tex
	return tex
}

// drawSky fills dst with the four side faces of the cube map laid out as a
// strip, scrolled by the camera's azimuth.
func (r *Renderer) drawSky(dst *ebiten.Image, cam *camera.Camera) {
	dst.Fill(background)

	sky := r.skyStrip()
	if sky == nil {
		return
	}

	bounds := dst.Bounds()
	scale := float64(bounds.Dy()) / float64(sky.Bounds().Dy())
	width := float64(sky.Bounds().Dx()) * scale

	turn := cam.Azimuth() / (2 * math.Pi)
	offset := -math.Mod(turn*width, width)
	if offset > 0 {
		offset -= width
	}

	for x := offset; x < float64(bounds.Dx()); x += width {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x, 0)
		op.Filter = ebiten.FilterLinear
		dst.DrawImage(sky, op)
	}
}

func (r *Renderer) skyStrip() *ebiten.Image {
	if r.skyDone {
		return r.sky
	}
	r.skyDone = true
	if r.lib == nil {
		return nil
	}

	cube := r.lib.Skybox()
	if !cube.Complete() {
		return nil
	}

	// Going round from +Z: pz, px, nz, nx.
	ring := [4]int{4, 0, 5, 1}
	face := cube.Faces[ring[0]].Bounds()
	fw, fh := face.Dx(), face.Dy()

	strip := ebiten.NewImage(fw*len(ring), fh)
	for i, idx := range ring {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(i*fw), 0)
		strip.DrawImage(ebiten.NewImageFromImage(cube.Faces[idx]), op)
	}
	r.sky = strip
	return strip
}
