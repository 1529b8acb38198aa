package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/plus3/orrery/asset"
	"github.com/plus3/orrery/audio"
	"github.com/plus3/orrery/celestial"
	"github.com/plus3/orrery/config"
)

func main() {
	dump := flag.Bool("dump", false, "Write the built-in body table as YAML to stdout and exit.")
	flag.Parse()

	if *dump {
		if err := celestial.Write(os.Stdout, celestial.Default()); err != nil {
			log.Fatalf("Failed to write body table: %v", err)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	system := celestial.Default()
	if cfg.SystemFile != "" {
		system, err = celestial.LoadFile(cfg.SystemFile)
		if err != nil {
			log.Fatalf("Failed to load body table: %v", err)
		}
		log.Printf("Loaded %d bodies from %s", system.BodyCount(), cfg.SystemFile)
	}

	lib := asset.NewLibrary(cfg.AssetDir)

	var sound *audio.Player
	if !cfg.Mute {
		sound = startSound(lib, cfg.Volume)
	}
	defer func() {
		if sound != nil {
			sound.Close()
		}
	}()

	if cfg.Terminal {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if err := runTerminal(ctx, cfg, system, sound); err != nil {
			log.Printf("Terminal failed: %v", err)
		}
		return
	}

	if err := runWindow(cfg, system, lib, sound); err != nil {
		log.Printf("Window failed: %v", err)
	}
}

// startSound begins looping the sound track. Any failure leaves the orrery
// silent.
func startSound(lib *asset.Library, volume float64) *audio.Player {
	rc, err := lib.Open(asset.Soundtrack)
	if err != nil {
		log.Printf("Sound disabled: %v", err)
		return nil
	}

	src, format, err := audio.Decode(rc)
	if err != nil {
		rc.Close()
		log.Printf("Sound disabled: %v", err)
		return nil
	}

	out, err := audio.OpenSpeaker()
	if err != nil {
		src.Close()
		log.Printf("Sound disabled: %v", err)
		return nil
	}

	player := audio.NewPlayer(out, src, format)
	player.SetVolume(volume)
	player.Play()
	return player
}

func toggleSound(sound *audio.Player) {
	if sound == nil {
		return
	}
	if sound.Playing() {
		sound.Pause()
	} else {
		sound.Play()
	}
}
