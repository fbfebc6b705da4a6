package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/snaketerm/vmath"
)

func testGame(width, height int) *Game {
	tp := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewGame(width, height, tp)
}

// TestTermCoord pins the normalized→cell mapping on an 80×24
// terminal: (0.5,0.5) lands on cell (41,13).
func TestTermCoord(t *testing.T) {
	g := testGame(80, 24)

	col, row := g.TermCoord(vmath.Vec2{X: 0.5, Y: 0.5})
	if col != 41 || row != 13 {
		t.Errorf("Expected cell (41,13), got (%d,%d)", col, row)
	}
}

func TestTermCoordOrigin(t *testing.T) {
	g := testGame(80, 24)

	// Cursor coordinates are 1-based; the origin maps to (1,1)
	col, row := g.TermCoord(vmath.Vec2{})
	if col != 1 || row != 1 {
		t.Errorf("Expected cell (1,1), got (%d,%d)", col, row)
	}
}

func TestUpdateMovesInsideField(t *testing.T) {
	g := testGame(80, 24)
	g.Player.Head = vmath.Vec2{X: 0.5, Y: 0.5}

	g.Update(1.0)

	want := vmath.Vec2{X: 0.61, Y: 0.5}
	if !vecNear(g.Player.Head, want) {
		t.Errorf("Expected head %v, got %v", want, g.Player.Head)
	}
}

// TestUpdateStopsAtBoundary verifies the body stops advancing when the
// next head position would leave the unit field.
func TestUpdateStopsAtBoundary(t *testing.T) {
	g := testGame(80, 24)
	g.Player.Head = vmath.Vec2{X: 0.95, Y: 0.5}
	g.Player.Extend()
	count := g.Player.Len()

	g.Update(1.0) // next head would be x=1.06

	if !vecNear(g.Player.Head, vmath.Vec2{X: 0.95, Y: 0.5}) {
		t.Errorf("Expected head unchanged at boundary, got %v", g.Player.Head)
	}
	if g.Player.Len() != count {
		t.Errorf("Expected segment count %d, got %d", count, g.Player.Len())
	}
}

// TestUpdateBoundaryInclusive verifies a step landing exactly on the
// field edge still moves.
func TestUpdateBoundaryInclusive(t *testing.T) {
	g := testGame(80, 24)
	g.Player.Head = vmath.Vec2{X: 0.89, Y: 0.5}

	g.Update(1.0) // next head is exactly x=1.0

	if !vecNear(g.Player.Head, vmath.Vec2{X: 1.0, Y: 0.5}) {
		t.Errorf("Expected head on the boundary, got %v", g.Player.Head)
	}
}
