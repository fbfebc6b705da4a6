package engine

import (
	"github.com/lixenwraith/snaketerm/vmath"
)

// Game owns the mutable simulation state: the player body and the
// frame clock. Terminal dimensions are captured once at construction
// and not re-queried on resize.
type Game struct {
	Width  int
	Height int
	Player *Snake
	Clock  *Clock
}

// NewGame creates a game for a terminal of the given cell dimensions.
func NewGame(width, height int, tp TimeProvider) *Game {
	return &Game{
		Width:  width,
		Height: height,
		Player: NewSnake(),
		Clock:  NewClockWith(tp),
	}
}

// Update advances the simulation by dt seconds. The body moves only
// while the next head position stays within the unit field; at the
// boundary it simply stops advancing — no bounce, wrap, or game over.
func (g *Game) Update(dt float64) {
	next := g.Player.Head.Add(g.Player.Forward.Scale(dt))
	if next.Inside(vmath.Vec2{}, vmath.Vec2{X: 1, Y: 1}) {
		g.Player.Move(dt)
	}
}

// TermCoord maps a normalized [0,1]² coordinate to a 1-based terminal
// cell (column, row). Truncation toward zero plus one keeps points off
// the zero row/column that terminals reserve.
func (g *Game) TermCoord(v vmath.Vec2) (int, int) {
	return int(v.X*float64(g.Width)) + 1, int(v.Y*float64(g.Height)) + 1
}
