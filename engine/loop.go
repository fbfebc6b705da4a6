package engine

// Settings are the per-frame tunables, re-read every iteration so a
// hot-reloaded config applies on the next frame.
type Settings struct {
	FPS   float64
	Glyph rune
}

// DefaultSettings returns the built-in frame rate and glyph.
func DefaultSettings() Settings {
	return Settings{FPS: 30, Glyph: '█'}
}

// Renderer draws one complete frame of game state.
type Renderer interface {
	Draw(g *Game, glyph rune)
}

// Feedback observes each consumed command, e.g. to play a tone.
type Feedback interface {
	Command(Command)
}

// Loop runs the simulate/render cycle. It exclusively owns the game
// state; the only cross-goroutine communication is the command
// channel, which it polls without blocking once per frame.
type Loop struct {
	game     *Game
	renderer Renderer
	commands <-chan Command
	settings func() Settings
	feedback Feedback
}

// NewLoop wires a loop. settings may be nil for DefaultSettings;
// feedback may be nil.
func NewLoop(game *Game, renderer Renderer, commands <-chan Command, settings func() Settings, feedback Feedback) *Loop {
	if settings == nil {
		settings = DefaultSettings
	}
	return &Loop{
		game:     game,
		renderer: renderer,
		commands: commands,
		settings: settings,
		feedback: feedback,
	}
}

// Run drives the loop until a Quit command arrives or the command
// channel closes. Each iteration: drain at most one pending command,
// integrate, draw, then pace. The dt measured by the pacing tick at
// the end of iteration N is the timestep integrated at iteration N+1;
// this one-frame lag is a deliberate pipeline choice.
func (l *Loop) Run() {
	l.renderer.Draw(l.game, l.settings().Glyph)
	dt := 0.0
	for {
		select {
		case cmd, ok := <-l.commands:
			if !ok {
				// Input side is gone; shut down cleanly.
				return
			}
			if l.apply(cmd) {
				return
			}
		default:
		}
		l.game.Update(dt)
		s := l.settings()
		l.renderer.Draw(l.game, s.Glyph)
		dt = l.game.Clock.Tick(s.FPS)
	}
}

// apply dispatches one command and reports whether the loop should
// terminate.
func (l *Loop) apply(cmd Command) bool {
	if l.feedback != nil {
		l.feedback.Command(cmd)
	}
	switch cmd.Kind {
	case CmdRotate:
		l.game.Player.Rotate(cmd.Angle)
	case CmdExtend:
		l.game.Player.Extend()
	case CmdShrink:
		l.game.Player.Shrink()
	case CmdQuit:
		return true
	}
	return false
}
