// Package sound synthesizes the short tones played for session cues.
//
// Tones are beep streamers. Speaker plays them on the system audio device;
// hosts with their own audio stack render them to PCM with Render.
package sound

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/plus3/stacker/game"
)

const SampleRate = beep.SampleRate(44100)

type note struct {
	freq float64
	dur  time.Duration
}

// tones maps each cue to the notes played for it, in order.
var tones = map[game.Cue][]note{
	game.CueMove:        {{440, 15 * time.Millisecond}},
	game.CueRotate:      {{660, 20 * time.Millisecond}},
	game.CueHold:        {{523, 30 * time.Millisecond}},
	game.CueLock:        {{220, 40 * time.Millisecond}},
	game.CueClear:       {{660, 50 * time.Millisecond}, {880, 70 * time.Millisecond}},
	game.CueSpeedUp:     {{523, 60 * time.Millisecond}, {659, 60 * time.Millisecond}, {784, 90 * time.Millisecond}},
	game.CueGarbageDump: {{110, 120 * time.Millisecond}},
	game.CueDeath:       {{330, 150 * time.Millisecond}, {220, 150 * time.Millisecond}, {110, 300 * time.Millisecond}},
}

// Duration returns how long the tone for cue plays.
func Duration(cue game.Cue) time.Duration {
	var total time.Duration
	for _, n := range tones[cue] {
		total += n.dur
	}
	return total
}

// Tone returns a finite streamer for cue at the given volume, where 1 is
// full scale. It returns nil for cues without a tone or a silent volume.
func Tone(cue game.Cue, sr beep.SampleRate, volume float64) beep.Streamer {
	notes, ok := tones[cue]
	if !ok || volume <= 0 {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(sr, n.freq)
		if err != nil {
			continue
		}
		parts = append(parts, beep.Take(sr.N(n.dur), sine))
	}
	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   math.Log2(min(volume, 1)),
	}
}

// Render drains the tone for cue into signed 16-bit little-endian stereo
// PCM, the layout ebiten's audio players expect.
func Render(cue game.Cue, sr beep.SampleRate, volume float64) []byte {
	s := Tone(cue, sr, volume)
	if s == nil {
		return nil
	}
	var (
		out []byte
		buf = make([][2]float64, 512)
	)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				out = binary.LittleEndian.AppendUint16(out, uint16(int16(clamp(v)*math.MaxInt16)))
			}
		}
		if !ok || n < len(buf) {
			return out
		}
	}
}

// RenderAll renders every cue's tone.
func RenderAll(sr beep.SampleRate, volume float64) map[game.Cue][]byte {
	pcm := make(map[game.Cue][]byte, len(tones))
	for cue := range tones {
		if b := Render(cue, sr, volume); b != nil {
			pcm[cue] = b
		}
	}
	return pcm
}

func clamp(v float64) float64 {
	return max(-1, min(v, 1))
}
