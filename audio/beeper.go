// Package audio plays short sine-tone feedback for consumed commands.
package audio

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/snaketerm/engine"
)

const sampleRate = beep.SampleRate(44100)

// Tone frequencies per command, in Hz.
const (
	extendTone = 880
	shrinkTone = 440
	rotateTone = 660
)

// Beeper plays a tone per consumed command. A failed speaker init
// disables it; the game runs fine without sound.
type Beeper struct {
	enabled bool
}

// Open initializes the speaker. Failure is non-fatal and logged.
func Open() *Beeper {
	b := &Beeper{}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("Audio initialization failed: %v", err)
		return b
	}
	b.enabled = true
	return b
}

// Command implements engine.Feedback.
func (b *Beeper) Command(cmd engine.Command) {
	if !b.enabled {
		return
	}

	var freq float64
	switch cmd.Kind {
	case engine.CmdExtend:
		freq = extendTone
	case engine.CmdShrink:
		freq = shrinkTone
	case engine.CmdRotate:
		freq = rotateTone
	default:
		return
	}

	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(50*time.Millisecond), sine))
}

// Close shuts the speaker down.
func (b *Beeper) Close() {
	if b.enabled {
		speaker.Close()
	}
}
