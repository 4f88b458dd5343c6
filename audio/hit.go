package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// fade applies a linear decay envelope over a fixed number of samples
type fade struct {
	s     beep.Streamer
	pos   int
	total int
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.s.Stream(samples)
	for i := 0; i < n; i++ {
		g := 1 - float64(f.pos)/float64(f.total)
		if g < 0 {
			g = 0
		}
		samples[i][0] *= g
		samples[i][1] *= g
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error {
	return f.s.Err()
}

// newHitStreamer builds one short decaying sine tone
func newHitStreamer(sr beep.SampleRate, freq float64, d time.Duration, volume float64) (beep.Streamer, error) {
	tone, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, fmt.Errorf("hit tone: %w", err)
	}
	n := sr.N(d)
	return &effects.Volume{
		Streamer: &fade{s: beep.Take(n, tone), total: n},
		Base:     2,
		Volume:   math.Log2(volume),
		Silent:   volume <= 0,
	}, nil
}
