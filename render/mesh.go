package render

import "math"

// MeshPoint is a vertex of a Mesh.
type MeshPoint struct {
	// X and Y lie in the unit disc, with +Y pointing down the screen.
	X, Y float64
	// U and V are texture coordinates for an equirectangular map. U is not
	// wrapped into [0, 1].
	U, V float64
}

// Mesh is a triangle list.
type Mesh struct {
	Points  []MeshPoint
	Indices []uint16
}

// Hemisphere triangulates the visible half of a unit sphere seen from the
// front, as a segments x segments grid of longitude and latitude. spin turns
// the surface about the vertical axis.
func Hemisphere(segments int, spin float64) Mesh {
	segments = max(segments, 2)
	row := segments + 1

	m := Mesh{
		Points:  make([]MeshPoint, 0, row*row),
		Indices: make([]uint16, 0, segments*segments*6),
	}

	for i := 0; i <= segments; i++ {
		lat := math.Pi/2 - math.Pi*float64(i)/float64(segments)
		for j := 0; j <= segments; j++ {
			lon := -math.Pi/2 + math.Pi*float64(j)/float64(segments)
			m.Points = append(m.Points, MeshPoint{
				X: math.Cos(lat) * math.Sin(lon),
				Y: -math.Sin(lat),
				U: 0.5 + (lon-spin)/(2*math.Pi),
				V: float64(i) / float64(segments),
			})
		}
	}

	for i := 0; i < segments; i++ {
		for j := 0; j < segments; j++ {
			a := uint16(i*row + j)
			b := a + 1
			c := a + uint16(row)
			d := c + 1
			m.Indices = append(m.Indices, a, c, b, b, c, d)
		}
	}
	return m
}
