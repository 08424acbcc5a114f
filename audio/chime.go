package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/yoke-trace/parameter"
)

// sine generates a fixed-duration sine tone
type sine struct {
	freq     float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

func newSine(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sine{
		freq:     freq,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (o *sine) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}
		val := math.Sin(2 * math.Pi * o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *sine) Err() error { return nil }

// Chimes plays short marker tones for playback events. A zero Chimes is
// silent; initialization failure leaves it silent rather than aborting the
// animation.
type Chimes struct {
	rate beep.SampleRate
	init bool
}

// Init opens the speaker. The error is informational; the returned Chimes
// is usable (silently) either way.
func Init() (*Chimes, error) {
	c := &Chimes{rate: beep.SampleRate(parameter.SampleRate)}
	err := speaker.Init(c.rate, c.rate.N(time.Second/10))
	if err == nil {
		c.init = true
	}
	return c, err
}

// Loop marks playback wrapping back to frame 0
func (c *Chimes) Loop() {
	c.play(parameter.LoopChimeFreq)
}

// Pause marks a pause toggle
func (c *Chimes) Pause() {
	c.play(parameter.PauseChimeFreq)
}

func (c *Chimes) play(freq float64) {
	if !c.init {
		return
	}
	speaker.Play(newSine(freq, parameter.ChimeMillis*time.Millisecond, c.rate))
}

// Close releases the speaker
func (c *Chimes) Close() {
	if c.init {
		speaker.Close()
	}
}
