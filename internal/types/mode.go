// Package types contains shared types used across the application.
package types

// Mode represents the current input mode of the board
type Mode int

const (
	ModeNormal Mode = iota
	ModeMove        // A task is grabbed and follows the cursor keys
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeMove:
		return "MOVE"
	default:
		return "UNKNOWN"
	}
}
