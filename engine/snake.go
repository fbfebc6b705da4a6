package engine

import (
	"github.com/lixenwraith/snaketerm/vmath"
)

// growthStep caps the per-Extend head displacement on each axis,
// decoupling growth from the forward vector's magnitude.
const growthStep = 0.01

// Snake is the player body: a head position, a forward direction
// vector (not necessarily unit length), and the trailing segments.
type Snake struct {
	Head    vmath.Vec2
	Forward vmath.Vec2

	// trail holds the vacated head positions oldest-first, so both
	// deque ends (push newest, drop oldest) stay O(1) amortized.
	trail []vmath.Vec2
}

// NewSnake creates a one-cell snake near the top-left corner moving
// right.
func NewSnake() *Snake {
	return &Snake{
		Head:    vmath.Vec2{X: 0.03, Y: 0.03},
		Forward: vmath.Vec2{X: 0.11, Y: 0},
	}
}

// Extend grows the body by one segment: the current head joins the
// trail and the head advances by the forward direction clamped to
// ±growthStep per axis.
func (s *Snake) Extend() {
	step := s.Forward.Clamp(
		vmath.Vec2{X: -growthStep, Y: -growthStep},
		vmath.Vec2{X: growthStep, Y: growthStep},
	)
	s.trail = append(s.trail, s.Head)
	s.Head = s.Head.Add(step)
}

// Shrink drops the oldest segment. No-op on a segmentless body.
func (s *Snake) Shrink() {
	if len(s.trail) == 0 {
		return
	}
	s.trail = s.trail[1:]
}

// Move translates the body by forward·dt: the head advances and the
// trail follows, keeping the segment count unchanged.
func (s *Snake) Move(dt float64) {
	s.trail = append(s.trail, s.Head)
	s.Head = s.Head.Add(s.Forward.Scale(dt))
	s.trail = s.trail[1:]
}

// Rotate turns the forward direction in place by angle radians. Head
// and trail positions are untouched.
func (s *Snake) Rotate(angle float64) {
	s.Forward.Rotate(angle)
}

// Len returns the trailing segment count.
func (s *Snake) Len() int {
	return len(s.trail)
}

// Segments returns the trailing body positions front-to-back: index 0
// is the most recently vacated head position, the last is the oldest.
func (s *Snake) Segments() []vmath.Vec2 {
	out := make([]vmath.Vec2, len(s.trail))
	for i, v := range s.trail {
		out[len(out)-1-i] = v
	}
	return out
}
