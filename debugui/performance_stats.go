package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/orrery/engine"
	"github.com/plus3/orrery/scene"
)

// PerformanceStats is a window showing frame times, per-system timings and
// the size of the scene.
type PerformanceStats struct {
	World      *engine.World
	Graph      *scene.Graph
	Schedulers []*engine.Scheduler

	timer        *FrameTimer
	frameHistory []float32
	frameIndex   int
	recorded     int
}

// NewPerformanceStats keeps historyFrames frame times.
func NewPerformanceStats(historyFrames int, world *engine.World, graph *scene.Graph, schedulers ...*engine.Scheduler) *PerformanceStats {
	return &PerformanceStats{
		World:        world,
		Graph:        graph,
		Schedulers:   schedulers,
		timer:        NewFrameTimer(),
		frameHistory: make([]float32, max(historyFrames, 1)),
	}
}

// Record adds a frame time in seconds to the history.
func (ps *PerformanceStats) Record(deltaTime float64) {
	ps.frameHistory[ps.frameIndex] = float32(deltaTime * 1000.0)
	ps.frameIndex = (ps.frameIndex + 1) % len(ps.frameHistory)
	ps.recorded = min(ps.recorded+1, len(ps.frameHistory))
}

// AverageFrameTime returns the mean of the recorded frame times in
// milliseconds, or 0 before anything is recorded.
func (ps *PerformanceStats) AverageFrameTime() float32 {
	if ps.recorded == 0 {
		return 0
	}
	var sum float32
	for _, ft := range ps.frameHistory {
		sum += ft
	}
	return sum / float32(ps.recorded)
}

// Item returns the window as an ImguiItem.
func (ps *PerformanceStats) Item() ImguiItem {
	return ImguiItem{Name: "Performance Stats", Render: ps.Render}
}

// Render draws the window. It is meant to be called once per frame.
func (ps *PerformanceStats) Render() {
	ps.Record(ps.timer.GetDeltaTime())

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 320), imgui.CondOnce)
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if ps.World != nil {
		imgui.Text(fmt.Sprintf("Frame: %d", ps.World.Frame()))
	}
	if ps.Graph != nil {
		imgui.Text(fmt.Sprintf("Nodes: %d (%d bodies)", ps.Graph.Len(), ps.Graph.BodyCount()))
	}

	avgFrameTime := ps.AverageFrameTime()
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	for _, scheduler := range ps.Schedulers {
		ps.renderScheduler(scheduler.Stats())
	}

	if ps.World != nil && imgui.TreeNodeStr("Resources") {
		for _, name := range ps.World.ResourceTypes() {
			imgui.BulletText(name)
		}
		imgui.TreePop()
	}

	imgui.End()
}

func (ps *PerformanceStats) renderScheduler(stats *engine.SchedulerStats) {
	if !imgui.TreeNodeStr(fmt.Sprintf("%s systems (%d)", stats.Name, stats.SystemCount)) {
		return
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSizingFixedFit
	if imgui.BeginTableV(stats.Name+"Systems", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Name")
		imgui.TableSetupColumn("Avg (ms)")
		imgui.TableSetupColumn("Min (ms)")
		imgui.TableSetupColumn("Max (ms)")
		imgui.TableHeadersRow()

		for _, sys := range stats.Systems {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(sys.Name)
			imgui.TableNextColumn()
			imgui.Text(millis(sys.AvgDuration))
			imgui.TableNextColumn()
			imgui.Text(millis(sys.MinDuration))
			imgui.TableNextColumn()
			imgui.Text(millis(sys.MaxDuration))
		}
		imgui.EndTable()
	}
	imgui.TreePop()
}

func millis(d time.Duration) string {
	return fmt.Sprintf("%.3f", float64(d.Microseconds())/1000.0)
}

// FrameTimer measures wall time between calls.
type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

// GetDeltaTime returns the seconds elapsed since the previous call.
func (ft *FrameTimer) GetDeltaTime() float64 {
	now := time.Now()
	delta := now.Sub(ft.lastFrameTime).Seconds()
	ft.lastFrameTime = now
	return delta
}
