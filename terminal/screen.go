// Package terminal wraps the tcell screen: raw-mode/alternate-buffer
// lifecycle, event polling for the input reader, and frame drawing for
// the simulation loop.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snaketerm/engine"
)

// Screen owns the terminal for the process lifetime. Open switches to
// raw mode and the alternate buffer; Close restores the terminal and
// must run on every exit path.
type Screen struct {
	tc tcell.Screen
}

// Open takes over the terminal. Any failure here is fatal to startup;
// there is no degraded fallback.
func Open() (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal create: %w", err)
	}
	if err := tc.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}
	tc.HideCursor()
	return &Screen{tc: tc}, nil
}

// Size returns the terminal dimensions in cells.
func (s *Screen) Size() (int, int) {
	return s.tc.Size()
}

// PollEvent blocks on the next terminal event. Returns nil after
// Close, ending the input reader's loop.
func (s *Screen) PollEvent() tcell.Event {
	return s.tc.PollEvent()
}

// Close restores the terminal to its normal mode and primary buffer.
// Safe to call more than once.
func (s *Screen) Close() {
	s.tc.Fini()
}

// Draw renders one frame: clear, two diagnostic lines (head position
// in game and terminal coordinates), then a glyph at the head cell and
// at each trailing segment front-to-back, cursor hidden throughout.
func (s *Screen) Draw(g *engine.Game, glyph rune) {
	s.tc.Clear()

	head := g.Player.Head
	s.print(0, 0, fmt.Sprintf("snake head gamecoord: (%0.2f,%0.2f)", head.X, head.Y))
	col, row := g.TermCoord(head)
	s.print(0, 1, fmt.Sprintf("snake head termcoord: (%d,%d)", col, row))

	s.cell(col, row, glyph)
	for _, seg := range g.Player.Segments() {
		c, r := g.TermCoord(seg)
		s.cell(c, r, glyph)
	}

	s.tc.HideCursor()
	s.tc.Show()
}

func (s *Screen) print(x, y int, msg string) {
	for i, r := range msg {
		s.tc.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}

// cell draws at a 1-based terminal cursor coordinate; tcell addresses
// cells 0-based.
func (s *Screen) cell(col, row int, glyph rune) {
	s.tc.SetContent(col-1, row-1, glyph, nil, tcell.StyleDefault)
}
