package render_test

import (
	"math"
	"testing"

	"github.com/plus3/orrery/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHemisphere(t *testing.T) {
	m := render.Hemisphere(8, 0)

	require.Len(t, m.Points, 81)
	assert.Len(t, m.Indices, 8*8*6)

	for _, p := range m.Points {
		assert.LessOrEqual(t, p.X*p.X+p.Y*p.Y, 1+1e-9)
		assert.GreaterOrEqual(t, p.V, 0.0)
		assert.LessOrEqual(t, p.V, 1.0)
	}
	for _, idx := range m.Indices {
		assert.Less(t, int(idx), len(m.Points))
	}

	// The centre of the disc shows the middle of the map.
	centre := m.Points[4*9+4]
	assert.InDelta(t, 0, centre.X, 1e-12)
	assert.InDelta(t, 0, centre.Y, 1e-12)
	assert.InDelta(t, 0.5, centre.U, 1e-12)
	assert.InDelta(t, 0.5, centre.V, 1e-12)
}

func TestHemisphereSpinShiftsTexture(t *testing.T) {
	still := render.Hemisphere(4, 0)
	turned := render.Hemisphere(4, math.Pi/2)

	for i := range still.Points {
		assert.Equal(t, still.Points[i].X, turned.Points[i].X)
		assert.InDelta(t, still.Points[i].U-0.25, turned.Points[i].U, 1e-12)
	}
}

func TestHemisphereMinimumSegments(t *testing.T) {
	m := render.Hemisphere(0, 0)
	assert.Len(t, m.Points, 9)
}
