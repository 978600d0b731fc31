// Package audio plays procedural sound effects for simulation events.
package audio

import (
	"bytes"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"arena/internal/sim"
)

type SoundKind int

const (
	SoundTick SoundKind = iota
	SoundWhoosh
	SoundBlip
	numSounds
)

const (
	sfxVolume = 0.5
	// maxVoices limits overlapping sounds; wall ticks arrive nearly every
	// tick once the fluid settles.
	maxVoices    = 2
	tickInterval = 60 * time.Millisecond
	// hitsForFullGain is the number of wall hits in one tick that plays a
	// tick at full volume.
	hitsForFullGain = 40.0
)

// Player owns the oto context and the pre-rendered effects.
type Player struct {
	ctx    *oto.Context
	ready  chan struct{}
	sounds [numSounds][]byte
	active int32

	hitGate   throttle
	shakeGate throttle
	levelGate throttle
}

// New opens the audio device. The device may still be starting when New
// returns; sounds requested before it is ready are dropped.
func New() (*Player, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}
	p := &Player{
		ctx:       ctx,
		ready:     ready,
		hitGate:   throttle{interval: tickInterval},
		shakeGate: throttle{interval: 200 * time.Millisecond},
		levelGate: throttle{interval: 250 * time.Millisecond},
	}
	for k := SoundKind(0); k < numSounds; k++ {
		p.sounds[k] = generateSound(k)
	}
	return p, nil
}

// Attach subscribes the player to bus. Handlers run on the simulation
// goroutine and return immediately; playback happens in the background.
func (p *Player) Attach(bus *sim.EventBus) {
	bus.Subscribe(sim.EventBoundaryHits, func(e sim.Event) {
		if p.hitGate.Allow(time.Now()) {
			p.Play(SoundTick, hitGain(e.Data))
		}
	})
	bus.Subscribe(sim.EventShake, func(sim.Event) {
		if p.shakeGate.Allow(time.Now()) {
			p.Play(SoundWhoosh, 1)
		}
	})
	bus.Subscribe(sim.EventLevel, func(sim.Event) {
		if p.levelGate.Allow(time.Now()) {
			p.Play(SoundBlip, 0.6)
		}
	})
}

// Play starts kind at the given gain unless the device is not ready or
// maxVoices sounds are already playing.
func (p *Player) Play(kind SoundKind, gain float64) {
	if p == nil || gain <= 0 || kind < 0 || kind >= numSounds {
		return
	}
	select {
	case <-p.ready:
	default:
		return
	}
	if atomic.AddInt32(&p.active, 1) > maxVoices {
		atomic.AddInt32(&p.active, -1)
		return
	}
	go func() {
		defer atomic.AddInt32(&p.active, -1)
		player := p.ctx.NewPlayer(bytes.NewReader(p.sounds[kind]))
		player.SetVolume(sfxVolume * min(gain, 1))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// hitGain grows with the number of particles that hit the wall in a tick.
func hitGain(hits int) float64 {
	return max(0.1, min(float64(hits)/hitsForFullGain, 1))
}

// throttle lets one event through per interval.
type throttle struct {
	interval time.Duration
	last     time.Time
}

func (t *throttle) Allow(now time.Time) bool {
	if !t.last.IsZero() && now.Sub(t.last) < t.interval {
		return false
	}
	t.last = now
	return true
}
