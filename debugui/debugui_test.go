package debugui_test

import (
	"testing"

	"github.com/plus3/orrery/celestial"
	"github.com/plus3/orrery/debugui"
	"github.com/plus3/orrery/engine"
	"github.com/plus3/orrery/orbit"
	"github.com/plus3/orrery/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIO struct {
	mouse, keyboard bool
}

func (f *fakeIO) WantCaptureMouse() bool    { return f.mouse }
func (f *fakeIO) WantCaptureKeyboard() bool { return f.keyboard }

func TestImguiSystemDefersItems(t *testing.T) {
	world := engine.NewWorld()
	items := debugui.Install(world)

	var order []string
	items.Add(debugui.ImguiItem{Name: "a", Render: func() { order = append(order, "a") }})
	items.Add(debugui.ImguiItem{Name: "b", Render: func() { order = append(order, "b") }})

	io := &fakeIO{mouse: true}
	scheduler := engine.NewScheduler("debug", world)
	scheduler.Register(&debugui.ImguiSystem{IO: func() debugui.CaptureSource { return io }})

	scheduler.Once(1)
	assert.Equal(t, []string{"a", "b"}, order)

	var state *debugui.ImguiInputState
	require.True(t, world.Read(&state))
	assert.True(t, state.WantCaptureMouse)
	assert.False(t, state.WantCaptureKeyboard)

	io.mouse = false
	io.keyboard = true
	scheduler.Once(1)
	assert.Len(t, order, 4)
	assert.False(t, state.WantCaptureMouse)
	assert.True(t, state.WantCaptureKeyboard)
}

func TestImguiSystemWithoutResources(t *testing.T) {
	world := engine.NewWorld()
	scheduler := engine.NewScheduler("debug", world)
	scheduler.Register(&debugui.ImguiSystem{IO: func() debugui.CaptureSource { return &fakeIO{} }})

	assert.NotPanics(t, func() { scheduler.Once(1) })
}

func TestPerformanceStatsAverage(t *testing.T) {
	ps := debugui.NewPerformanceStats(4, nil, nil)
	assert.Zero(t, ps.AverageFrameTime())

	ps.Record(0.010)
	ps.Record(0.020)
	assert.InDelta(t, 15, ps.AverageFrameTime(), 1e-4)

	// The history wraps after four samples.
	for i := 0; i < 4; i++ {
		ps.Record(0.005)
	}
	assert.InDelta(t, 5, ps.AverageFrameTime(), 1e-4)
}

func TestBodiesRows(t *testing.T) {
	sys := celestial.Default()
	g, planets := scene.Build(sys)
	orbit.Advance(planets, sys.Planets, 10)

	panel := &debugui.Bodies{Graph: g}
	rows := panel.Rows()
	require.Len(t, rows, g.BodyCount())

	assert.Equal(t, "Sun", rows[0].Name)
	assert.Equal(t, scene.KindStar, rows[0].Kind)
	assert.Zero(t, rows[0].Radius)

	var moon debugui.BodyRow
	for _, row := range rows {
		if row.Name == "Moon" {
			moon = row
		}
	}
	assert.Equal(t, 1, moon.Depth)
	assert.InDelta(t, 15, moon.Radius, 1e-9)
	assert.InDelta(t, 10*0.015, moon.Angle, 1e-12)

	assert.Nil(t, (&debugui.Bodies{}).Rows())
}
