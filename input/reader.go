package input

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snaketerm/engine"
)

// EventSource is the blocking keyboard event stream. A nil event
// means the stream has ended (the screen was finalized).
type EventSource interface {
	PollEvent() tcell.Event
}

// Reader blocks on keyboard events and forwards mapped commands over
// an unbuffered channel: each send rendezvouses with the simulation
// loop's next per-frame poll, so at most one command is in flight and
// none are dropped. The keymap is swappable for config hot reload.
type Reader struct {
	source EventSource
	keymap atomic.Pointer[Keymap]
}

// NewReader creates a reader over the given event source.
func NewReader(source EventSource, keymap *Keymap) *Reader {
	r := &Reader{source: source}
	r.keymap.Store(keymap)
	return r
}

// SetKeymap swaps the key bindings; subsequent key lookups use the new
// map.
func (r *Reader) SetKeymap(keymap *Keymap) {
	r.keymap.Store(keymap)
}

// Run reads events until the stream ends, a Quit command is sent, or
// done closes while a send is pending (the loop is gone and will never
// receive). Unbound keys and non-key events are discarded. The command
// channel is closed on exit so the loop observes disconnection.
func (r *Reader) Run(commands chan<- engine.Command, done <-chan struct{}) {
	defer close(commands)
	for {
		ev := r.source.PollEvent()
		if ev == nil {
			return
		}
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		cmd, ok := r.keymap.Load().Translate(key)
		if !ok {
			continue
		}
		select {
		case commands <- cmd:
			if cmd.Kind == engine.CmdQuit {
				return
			}
		case <-done:
			return
		}
	}
}
