package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/orrery/orbit"
	"github.com/plus3/orrery/scene"
)

// BodyRow is one line of the bodies table.
type BodyRow struct {
	Name     string
	Kind     scene.Kind
	Depth    int
	Angle    float64
	Position mgl64.Vec3
	Radius   float64
}

// Bodies is a window listing every body with its orbit state, plus
// inputs for the animation rates.
type Bodies struct {
	Graph *scene.Graph
	// Rates, when set, is edited in place by the window.
	Rates *orbit.Rates
}

// Item returns the window as an ImguiItem.
func (b *Bodies) Item() ImguiItem {
	return ImguiItem{Name: "Bodies", Render: b.Render}
}

// Rows returns the table contents in scene order.
func (b *Bodies) Rows() []BodyRow {
	if b.Graph == nil {
		return nil
	}

	rows := make([]BodyRow, 0, b.Graph.BodyCount())
	for _, n := range b.Graph.Bodies() {
		depth := 0
		for p := n.Parent(); p != nil && p.Kind != scene.KindRoot; p = p.Parent() {
			depth++
		}
		rows = append(rows, BodyRow{
			Name:     n.Name,
			Kind:     n.Kind,
			Depth:    depth,
			Angle:    n.Rotation,
			Position: n.Position,
			Radius:   orbit.Radius(n),
		})
	}
	return rows
}

// Render draws the window.
func (b *Bodies) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 340), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(460, 300), imgui.CondOnce)
	if !imgui.BeginV("Bodies", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if b.Rates != nil {
		planet := float32(b.Rates.Planet)
		if imgui.InputFloat("Planet rate", &planet) {
			b.Rates.Planet = float64(planet)
		}
		moon := float32(b.Rates.Moon)
		if imgui.InputFloat("Moon rate", &moon) {
			b.Rates.Moon = float64(moon)
		}
		imgui.Separator()
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSizingFixedFit
	if imgui.BeginTableV("BodiesTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Name")
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("Angle")
		imgui.TableSetupColumn("Local position")
		imgui.TableSetupColumn("Orbit radius")
		imgui.TableHeadersRow()

		for _, row := range b.Rows() {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			if row.Depth > 0 {
				imgui.Indent()
			}
			imgui.Text(row.Name)
			if row.Depth > 0 {
				imgui.Unindent()
			}
			imgui.TableNextColumn()
			imgui.Text(row.Kind.String())
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", row.Angle))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.2f, %.2f, %.2f", row.Position.X(), row.Position.Y(), row.Position.Z()))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.2f", row.Radius))
		}
		imgui.EndTable()
	}

	imgui.End()
}
