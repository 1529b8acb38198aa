// Package audio plays the background sound track.
package audio

import (
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
)

// SampleRate is the rate the output device runs at.
const SampleRate = beep.SampleRate(48000)

// DefaultVolume is the initial linear volume of the track.
const DefaultVolume = 0.5

// Output is where a Player sends its samples.
type Output interface {
	Play(s beep.Streamer)
	// Lock and Unlock guard changes to a streamer that is already playing.
	Lock()
	Unlock()
}

// Speaker is the system audio device.
type Speaker struct{}

var speakerInit struct {
	once sync.Once
	err  error
}

// OpenSpeaker initializes the audio device. Only the first call does any
// work; later calls return its result.
func OpenSpeaker() (Speaker, error) {
	speakerInit.once.Do(func() {
		speakerInit.err = speaker.Init(SampleRate, SampleRate.N(time.Second/10))
	})
	if speakerInit.err != nil {
		return Speaker{}, fmt.Errorf("init speaker: %w", speakerInit.err)
	}
	return Speaker{}, nil
}

func (Speaker) Play(s beep.Streamer) { speaker.Play(s) }
func (Speaker) Lock()                { speaker.Lock() }
func (Speaker) Unlock()              { speaker.Unlock() }

// Decode reads an OGG Vorbis stream.
func Decode(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
	s, format, err := vorbis.Decode(rc)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("decode soundtrack: %w", err)
	}
	return s, format, nil
}

// Player loops one track forever with adjustable volume.
type Player struct {
	out    Output
	source beep.StreamSeeker
	ctrl   *beep.Ctrl
	volume *effects.Volume

	level   float64
	started bool
}

// NewPlayer prepares src for looped playback on out. Nothing is heard until
// Play is called. If format's rate differs from SampleRate the track is
// resampled.
func NewPlayer(out Output, src beep.StreamSeeker, format beep.Format) *Player {
	var s beep.Streamer = beep.Loop(-1, src)
	if format.SampleRate != 0 && format.SampleRate != SampleRate {
		s = beep.Resample(4, format.SampleRate, SampleRate, s)
	}

	p := &Player{
		out:    out,
		source: src,
		ctrl:   &beep.Ctrl{Streamer: s},
		level:  DefaultVolume,
	}
	p.volume = &effects.Volume{Streamer: p.ctrl, Base: 2}
	p.applyVolume()
	return p
}

// Play starts or resumes playback.
func (p *Player) Play() {
	if !p.started {
		p.started = true
		p.out.Play(p.volume)
		return
	}
	p.out.Lock()
	p.ctrl.Paused = false
	p.out.Unlock()
}

// Pause silences the track, keeping its position.
func (p *Player) Pause() {
	p.out.Lock()
	p.ctrl.Paused = true
	p.out.Unlock()
}

// Playing reports whether the track has been started and is not paused.
func (p *Player) Playing() bool {
	p.out.Lock()
	defer p.out.Unlock()
	return p.started && !p.ctrl.Paused
}

// SetVolume sets the linear volume; 1 is the source level and 0 is silent.
func (p *Player) SetVolume(v float64) {
	p.out.Lock()
	p.level = max(v, 0)
	p.applyVolume()
	p.out.Unlock()
}

// Volume returns the linear volume.
func (p *Player) Volume() float64 {
	return p.level
}

// Close stops playback and releases the source.
func (p *Player) Close() error {
	p.Pause()
	if c, ok := p.source.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (p *Player) applyVolume() {
	if p.level <= 0 {
		p.volume.Silent = true
		p.volume.Volume = 0
		return
	}
	p.volume.Silent = false
	p.volume.Volume = math.Log2(p.level)
}
