package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/vi-timer/constant"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates an oscillator that ends after duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.duration {
		return 0, false
	}

	for i := range samples {
		if o.position >= o.duration {
			return i, true
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with an attack ramp and a release ramp ending at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		rel = max(total-att, 0)
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		vol := e.gain(e.position)
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

// gain returns the envelope level at sample position p
func (e *envelope) gain(p int) float64 {
	if p < e.attackSamples {
		return float64(p) / float64(e.attackSamples)
	}
	releaseStart := e.totalSamples - e.releaseSamples
	if e.releaseSamples > 0 && p >= releaseStart {
		return math.Max(float64(e.totalSamples-p)/float64(e.releaseSamples), 0)
	}
	return 1.0
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain, 0 and below is silent
// math.Log2(0) is -Inf so silence is flagged instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// chimeNote is one bell strike: fundamental plus octave overtone
// Frequencies above Nyquist fall back to silence of the same length
func chimeNote(freq float64, rate beep.SampleRate) beep.Streamer {
	d := constant.ChimeNoteDuration
	n := rate.N(d)

	fund, err := generators.SineTone(rate, freq)
	if err != nil {
		return beep.Silence(n)
	}
	over, err := generators.SineTone(rate, freq*2)
	if err != nil {
		over = beep.Silence(-1)
	}

	fundShaped := NewEnvelope(beep.Take(n, fund), d, constant.ChimeAttack, constant.ChimeRelease, rate)
	overShaped := NewEnvelope(beep.Take(n, over), d, constant.ChimeAttack, constant.ChimeRelease/2, rate)

	return beep.Mix(newVolume(fundShaped, 0.7), newVolume(overShaped, 0.3))
}

// CreateChimeSound generates the countdown finish alert: repeated two-note strikes
func CreateChimeSound(sampleRate int, volume float64) beep.Streamer {
	rate := beep.SampleRate(sampleRate)

	var parts []beep.Streamer
	for i := 0; i < constant.ChimeRepeats; i++ {
		parts = append(parts,
			chimeNote(987.77, rate),  // B5
			chimeNote(1318.51, rate), // E6
			beep.Silence(rate.N(constant.ChimeGap)),
		)
	}

	return newVolume(beep.Seq(parts...), volume)
}

// CreateClickSound generates a short tick for pause toggles
func CreateClickSound(sampleRate int, volume float64) beep.Streamer {
	rate := beep.SampleRate(sampleRate)

	noise := NewOscillator(0, constant.ClickDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, constant.ClickDuration, constant.ClickAttack, constant.ClickRelease, rate)

	return newVolume(shaped, volume*0.5)
}
