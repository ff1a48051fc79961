package game

import (
	"math"

	"mythduel/internal/combat"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	audioSampleRate = 44100
	toneVolume      = 0.35
)

// AudioSystem plays short synthesized cues for combat events. There are no
// sound assets; every clip is a decaying sine tone generated at startup.
type AudioSystem struct {
	ctx   *audio.Context
	clips map[combat.Event][]byte
}

// NewAudioSystem creates the audio context and pre-renders all cues.
func NewAudioSystem() *AudioSystem {
	a := &AudioSystem{
		ctx:   audio.NewContext(audioSampleRate),
		clips: make(map[combat.Event][]byte),
	}
	a.clips[combat.EventHit] = sineTone(220, 0.09)
	a.clips[combat.EventHurt] = sineTone(110, 0.16)
	a.clips[combat.EventParry] = sineTone(880, 0.12)
	a.clips[combat.EventCastDilation] = sineTone(330, 0.20)
	a.clips[combat.EventCastLightning] = sineTone(520, 0.10)
	a.clips[combat.EventCastVoidShift] = sineTone(660, 0.07)
	a.clips[combat.EventLightningHit] = sineTone(160, 0.22)
	a.clips[combat.EventVictory] = sineTone(523, 0.45)
	a.clips[combat.EventDefeat] = sineTone(98, 0.60)
	return a
}

// Play fires the cue for an event; unknown events are silent.
func (a *AudioSystem) Play(event combat.Event) {
	clip, ok := a.clips[event]
	if !ok {
		return
	}
	player := a.ctx.NewPlayerFromBytes(clip)
	player.Play()
}

// sineTone renders a 16-bit stereo PCM sine burst with a linear fade-out.
func sineTone(freq, duration float64) []byte {
	samples := int(audioSampleRate * duration)
	buf := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		fade := 1 - float64(i)/float64(samples)
		value := toneVolume * fade * math.Sin(2*math.Pi*freq*float64(i)/audioSampleRate)
		sample := int16(value * math.MaxInt16)
		buf[4*i] = byte(sample)
		buf[4*i+1] = byte(sample >> 8)
		buf[4*i+2] = byte(sample)
		buf[4*i+3] = byte(sample >> 8)
	}
	return buf
}
