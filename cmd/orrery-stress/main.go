package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/orrery/celestial"
	"github.com/plus3/orrery/engine"
	"github.com/plus3/orrery/orrery"
	"github.com/plus3/orrery/render/term"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The longest the test should run for.")
	frames := flag.Int("frames", 0, "Stop after this many frames; 0 runs for the full duration.")
	step := flag.Float64("step", 1, "Virtual time added per frame.")
	systemFile := flag.String("system", "", "Optional YAML body table to animate instead of the built-in one.")
	render := flag.Bool("render", false, "Render every frame to an off-screen terminal.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting orrery stress test...")

	system := celestial.Default()
	if *systemFile != "" {
		var err error
		system, err = celestial.LoadFile(*systemFile)
		if err != nil {
			log.Fatalf("Failed to load body table: %v", err)
		}
	}

	opts := orrery.Options{System: system, Width: 1280, Height: 720, Step: *step}
	if *render {
		screen := tcell.NewSimulationScreen("UTF-8")
		if err := screen.Init(); err != nil {
			log.Fatalf("Failed to init screen: %v", err)
		}
		defer screen.Fini()
		screen.SetSize(160, 48)
		opts.Width, opts.Height = term.Viewport(screen.Size())
		opts.Renderer = term.New(screen)
	}

	app := orrery.New(opts)
	checker := NewChecker(app)

	report := &Report{
		Duration:       *duration,
		FrameLimit:     *frames,
		Step:           *step,
		Bodies:         app.System.Graph.BodyCount(),
		Render:         *render,
		GCPauseMetrics: *gcPauseMetrics,
		FrameTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running %d bodies for %s...\n", report.Bodies, *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	host := engine.Unbounded()
	if *frames > 0 {
		host = engine.Frames(*frames)
	}

	startTime := time.Now()
	frameStart := time.Now()
	measured := engine.HostFunc(func(ctx context.Context) bool {
		if report.TotalFrames > 0 {
			report.FrameTime.Samples = append(report.FrameTime.Samples, time.Since(frameStart))
			checker.Check()
		}
		if !host.NextFrame(ctx) {
			return false
		}
		frameStart = time.Now()
		report.TotalFrames++
		return true
	})

	app.Driver(measured).Run(ctx)
	if len(report.FrameTime.Samples) < report.TotalFrames {
		report.FrameTime.Samples = append(report.FrameTime.Samples, time.Since(frameStart))
		checker.Check()
	}

	report.TotalTime = time.Since(startTime)
	report.FrameTime.Finalize()
	report.Systems = append(app.Update.Stats().Systems, app.Render.Stats().Systems...)
	report.Invariants = checker.Result()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if !report.Invariants.OK() {
		log.Fatalf("Invariant violations detected")
	}
	log.Println("Stress test complete.")
}
