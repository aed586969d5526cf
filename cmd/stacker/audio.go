package main

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/plus3/stacker/game"
	"github.com/plus3/stacker/sound"
)

// Audio plays pre-rendered cue tones through ebiten's audio context.
type Audio struct {
	ctx *audio.Context
	pcm map[game.Cue][]byte
}

func NewAudio(volume float64) *Audio {
	return &Audio{
		ctx: audio.NewContext(int(sound.SampleRate)),
		pcm: sound.RenderAll(sound.SampleRate, volume),
	}
}

func (a *Audio) Trigger(cue game.Cue) {
	pcm, ok := a.pcm[cue]
	if !ok {
		return
	}
	a.ctx.NewPlayerFromBytes(pcm).Play()
}
