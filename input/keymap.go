package input

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snaketerm/engine"
)

const quarterTurn = math.Pi / 2

// Action names accepted in config key overrides.
const (
	ActionQuit      = "quit"
	ActionExtend    = "extend"
	ActionShrink    = "shrink"
	ActionTurnRight = "turn_right"
	ActionTurnLeft  = "turn_left"
)

// Keymap maps key events to commands. Rune bindings are overridable
// from config; special keys (arrows) are fixed.
type Keymap struct {
	runes   map[rune]engine.Command
	special map[tcell.Key]engine.Command
}

// DefaultKeymap returns the default key bindings
func DefaultKeymap() *Keymap {
	return &Keymap{
		runes: map[rune]engine.Command{
			'q': {Kind: engine.CmdQuit},
			'e': {Kind: engine.CmdExtend},
			'r': {Kind: engine.CmdShrink},
			'd': engine.RotateCommand(quarterTurn),
			'l': engine.RotateCommand(quarterTurn),
			'a': engine.RotateCommand(-quarterTurn),
			'h': engine.RotateCommand(-quarterTurn),
		},
		special: map[tcell.Key]engine.Command{
			tcell.KeyRight: engine.RotateCommand(quarterTurn),
			tcell.KeyLeft:  engine.RotateCommand(-quarterTurn),
		},
	}
}

// commandFor translates an action name to its command.
func commandFor(action string) (engine.Command, error) {
	switch action {
	case ActionQuit:
		return engine.Command{Kind: engine.CmdQuit}, nil
	case ActionExtend:
		return engine.Command{Kind: engine.CmdExtend}, nil
	case ActionShrink:
		return engine.Command{Kind: engine.CmdShrink}, nil
	case ActionTurnRight:
		return engine.RotateCommand(quarterTurn), nil
	case ActionTurnLeft:
		return engine.RotateCommand(-quarterTurn), nil
	}
	return engine.Command{}, fmt.Errorf("unknown action %q", action)
}

// ApplyOverrides rebinds actions from config. Each entry maps an
// action name to the runes that trigger it; the action's default rune
// bindings are dropped first, so an override fully replaces them.
// Returns an error on unknown action names, leaving the keymap
// unchanged.
func (k *Keymap) ApplyOverrides(bindings map[string]string) error {
	if len(bindings) == 0 {
		return nil
	}

	replacement := make(map[string]engine.Command, len(bindings))
	for action := range bindings {
		cmd, err := commandFor(action)
		if err != nil {
			return fmt.Errorf("key bindings: %w", err)
		}
		replacement[action] = cmd
	}

	for action, cmd := range replacement {
		for r, bound := range k.runes {
			if bound == cmd {
				delete(k.runes, r)
			}
		}
		for _, r := range bindings[action] {
			k.runes[r] = cmd
		}
	}
	return nil
}

// Translate maps a key event to a command. ok is false for unbound
// keys, which callers discard silently.
func (k *Keymap) Translate(ev *tcell.EventKey) (engine.Command, bool) {
	if ev.Key() == tcell.KeyRune {
		cmd, ok := k.runes[ev.Rune()]
		return cmd, ok
	}
	cmd, ok := k.special[ev.Key()]
	return cmd, ok
}
