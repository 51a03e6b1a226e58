// Package sound plays the completion chime. Everything here is
// best-effort: a machine without an audio device must never break
// the countdown itself.
package sound

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/akyairhashvil/tempo/internal/util"
)

const sampleRate = beep.SampleRate(44100)

var (
	audioOnce sync.Once
	audioOK   bool
	volume    float64
)

func initAudio() {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		util.LogError("speaker init", err)
		return
	}
	audioOK = true
}

// SetVolume adjusts playback gain in beep's base-2 exponential scale.
func SetVolume(v float64) {
	volume = v
}

// PlayChime sounds a short two-note chime. It returns immediately;
// playback happens on the speaker goroutine.
func PlayChime() {
	audioOnce.Do(initAudio)
	if !audioOK {
		return
	}
	chime := beep.Seq(
		tone(880, 180*time.Millisecond),
		tone(1174.66, 320*time.Millisecond),
	)
	speaker.Play(&effects.Volume{
		Streamer: chime,
		Base:     2,
		Volume:   volume,
	})
}

// tone generates a sine burst with a linear fade-out so the chime does
// not click at note boundaries.
func tone(freq float64, d time.Duration) beep.Streamer {
	total := sampleRate.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			t := float64(pos) / float64(sampleRate)
			fade := 1 - float64(pos)/float64(total)
			v := 0.4 * fade * math.Sin(2*math.Pi*freq*t)
			samples[i][0] = v
			samples[i][1] = v
			pos++
			n++
		}
		return n, true
	})
}
