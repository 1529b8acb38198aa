package main

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/orrery/audio"
	"github.com/plus3/orrery/celestial"
	"github.com/plus3/orrery/config"
	"github.com/plus3/orrery/engine"
	"github.com/plus3/orrery/orrery"
	"github.com/plus3/orrery/render/term"
)

// termPointer turns tcell mouse events into camera pointer state. It is
// only touched from the driver goroutine.
type termPointer struct {
	x, y    int
	pressed bool
	wheel   float64
}

func (p *termPointer) Position() (int, int) { return p.x, p.y }
func (p *termPointer) Pressed() bool        { return p.pressed }

func (p *termPointer) Wheel() float64 {
	w := p.wheel
	p.wheel = 0
	return w
}

func (p *termPointer) handle(ev *tcell.EventMouse) {
	col, row := ev.Position()
	p.x, p.y = col, row*2

	buttons := ev.Buttons()
	p.pressed = buttons&tcell.Button1 != 0
	if buttons&tcell.WheelUp != 0 {
		p.wheel++
	}
	if buttons&tcell.WheelDown != 0 {
		p.wheel--
	}
}

func runTerminal(ctx context.Context, cfg config.Config, system celestial.System, sound *audio.Player) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	ptr := &termPointer{}
	width, height := term.Viewport(screen.Size())
	app := orrery.New(orrery.Options{
		System:   system,
		Width:    width,
		Height:   height,
		Step:     cfg.Step,
		Renderer: term.New(screen),
		Pointer:  ptr,
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := engine.NewTicker(cfg.FrameInterval())
	defer ticker.Stop()

	// Events are applied on the driver goroutine, between frames.
	host := engine.HostFunc(func(ctx context.Context) bool {
		for {
			select {
			case ev := <-events:
				if !handleEvent(ev, screen, app, ptr, sound) {
					cancel()
					return false
				}
				continue
			default:
			}
			return ticker.NextFrame(ctx)
		}
	})

	app.Driver(host).Run(ctx)
	return nil
}

// handleEvent applies one terminal event and reports whether to keep going.
func handleEvent(ev tcell.Event, screen tcell.Screen, app *orrery.App, ptr *termPointer, sound *audio.Player) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			app.Rig.Controls.Rotate(-4, 0)
		case tcell.KeyRight:
			app.Rig.Controls.Rotate(4, 0)
		case tcell.KeyUp:
			app.Rig.Controls.Rotate(0, -2)
		case tcell.KeyDown:
			app.Rig.Controls.Rotate(0, 2)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				app.TogglePause()
			case 'm':
				toggleSound(sound)
			case '+', '=':
				app.Rig.Controls.Dolly(1)
			case '-':
				app.Rig.Controls.Dolly(-1)
			}
		}

	case *tcell.EventMouse:
		ptr.handle(ev)

	case *tcell.EventResize:
		app.Resize(term.Viewport(screen.Size()))
		screen.Sync()
	}
	return true
}
