package audio

import (
	"encoding/binary"
	"math"
	"time"
)

const (
	SampleRate   = 44100
	ChannelCount = 2

	frameBytes = ChannelCount * 4 // float32 per channel
)

// render samples fn over d and returns mono audio duplicated to both
// channels as float32 LE. fn gets the time in seconds and the progress in
// [0, 1); its output is saturated with tanh so every sample stays in (-1, 1).
func render(d time.Duration, fn func(t, p float64) float64) []byte {
	n := int(d.Seconds() * SampleRate)
	buf := make([]byte, n*frameBytes)
	for i := 0; i < n; i++ {
		v := math.Float32bits(float32(math.Tanh(fn(float64(i)/SampleRate, float64(i)/float64(n)))))
		for ch := 0; ch < ChannelCount; ch++ {
			binary.LittleEndian.PutUint32(buf[i*frameBytes+ch*4:], v)
		}
	}
	return buf
}

// fmTone is a sine carrier phase-modulated by a sine at ratio*carrier.
func fmTone(t, carrier, ratio, depth float64) float64 {
	return math.Sin(2*math.Pi*carrier*t + depth*math.Sin(2*math.Pi*carrier*ratio*t))
}

// noise is a 64-bit LCG white-noise source.
type noise uint64

func (s *noise) next() float64 {
	*s = *s*6364136223846793005 + 1442695040888963407
	return float64(int64(*s>>33)-1<<30) / (1 << 30)
}

// swell rises over the first rise fraction, holds, and falls over the last
// fall fraction.
func swell(p, rise, fall float64) float64 {
	switch {
	case p < rise:
		return p / rise
	case p > 1-fall:
		return (1 - p) / fall
	}
	return 1
}

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundTick:
		return genTick()
	case SoundWhoosh:
		return genWhoosh()
	case SoundBlip:
		return genBlip()
	}
	return nil
}

// genTick is the glassy click of particles meeting the wall.
func genTick() []byte {
	src := noise(0x7157)
	return render(25*time.Millisecond, func(t, p float64) float64 {
		env := math.Exp(-p * 9)
		return fmTone(t, 1800, 1.5, 2*env)*env*0.45 + src.next()*math.Exp(-p*40)*0.15
	})
}

// genWhoosh is low-passed noise whose cutoff climbs through the swell.
func genWhoosh() []byte {
	src := noise(0x5EA)
	var lp float64
	return render(280*time.Millisecond, func(_, p float64) float64 {
		lp += (src.next() - lp) * (0.04 + 0.25*p)
		return lp * swell(p, 0.35, 0.45) * 1.2
	})
}

// genBlip steps from 660 Hz to 880 Hz halfway through.
func genBlip() []byte {
	return render(70*time.Millisecond, func(t, p float64) float64 {
		freq := 660.0
		if p > 0.5 {
			freq = 880.0
		}
		return math.Sin(2*math.Pi*freq*t) * math.Exp(-p*5) * 0.35
	})
}
