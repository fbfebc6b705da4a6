package engine

// CommandKind discriminates the discrete user commands carried from
// the input goroutine to the simulation loop.
type CommandKind uint8

const (
	CmdRotate CommandKind = iota
	CmdExtend
	CmdShrink
	CmdQuit
)

// Command is a single user action. Produced by the input goroutine,
// consumed exactly once by the simulation loop, never retained.
type Command struct {
	Kind CommandKind

	// Angle is the rotation in radians, meaningful for CmdRotate only.
	Angle float64
}

// RotateCommand builds a rotation command for the given angle in
// radians.
func RotateCommand(angle float64) Command {
	return Command{Kind: CmdRotate, Angle: angle}
}
