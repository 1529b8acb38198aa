package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/orrery/asset"
	"github.com/plus3/orrery/audio"
	"github.com/plus3/orrery/celestial"
	"github.com/plus3/orrery/config"
	"github.com/plus3/orrery/debugui"
	debugui_ebiten "github.com/plus3/orrery/debugui/ebiten"
	"github.com/plus3/orrery/engine"
	"github.com/plus3/orrery/orrery"
	"github.com/plus3/orrery/render/raster"
)

const title = "Orrery"

// Game implements ebiten.Game on top of an orrery.App.
type Game struct {
	app      *orrery.App
	renderer *raster.Renderer
	imgui    *debugui_ebiten.ImguiBackend
	sound    *audio.Player

	width, height int
}

// pointer reads the mouse through ebiten.
type pointer struct{}

func (pointer) Position() (int, int) { return ebiten.CursorPosition() }
func (pointer) Pressed() bool        { return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) }
func (pointer) Wheel() float64 {
	_, dy := ebiten.Wheel()
	return dy
}

func runWindow(cfg config.Config, system celestial.System, lib *asset.Library, sound *audio.Player) error {
	renderer := raster.New(lib)
	app := orrery.New(orrery.Options{
		System:   system,
		Width:    cfg.Width,
		Height:   cfg.Height,
		Step:     cfg.Step,
		Renderer: renderer,
		Pointer:  pointer{},
	})

	game := &Game{
		app:      app,
		renderer: renderer,
		sound:    sound,
		width:    cfg.Width,
		height:   cfg.Height,
	}

	if cfg.DebugUI {
		game.imgui = debugui_ebiten.New(title, cfg.Width, cfg.Height)
		installDebugUI(app)
	} else {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
		ebiten.SetWindowTitle(title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(game)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// installDebugUI registers the ImGui system and panels and stops the camera
// from reacting to the mouse while ImGui has it.
func installDebugUI(app *orrery.App) {
	items := debugui.Install(app.World)
	app.Update.Register(&debugui.ImguiSystem{})

	perf := debugui.NewPerformanceStats(120, app.World, app.System.Graph, app.Update, app.Render)
	items.Add(perf.Item())

	bodies := &debugui.Bodies{Graph: app.System.Graph, Rates: &app.System.Updater.Rates}
	items.Add(bodies.Item())

	input := engine.NewResource[debugui.ImguiInputState](app.World)
	app.Rig.Blocked = func() bool {
		return input.Get().WantCaptureMouse
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.app.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		toggleSound(g.sound)
	}

	if g.imgui != nil {
		g.imgui.Frame(g.app.Tick)
	} else {
		g.app.Tick()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Target = screen
	g.app.Draw()

	if g.imgui != nil {
		g.imgui.Overlay(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
	}
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.app.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
