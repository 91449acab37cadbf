package checkers

import "strings"

// Move is either a single diagonal step (Path of length 1, no Captured
// squares) or a jump chain (one Captured square per landing in Path).
// Mixed step+jump moves do not exist.
type Move struct {
	From     Square
	Path     []Square
	Captured []Square
	Promotes bool
}

func (m Move) IsCapture() bool {
	return len(m.Captured) > 0
}

// To returns the final landing square.
func (m Move) To() Square {
	return m.Path[len(m.Path)-1]
}

func (m Move) Equal(other Move) bool {
	if m.From != other.From || len(m.Path) != len(other.Path) {
		return false
	}
	for i := range m.Path {
		if m.Path[i] != other.Path[i] {
			return false
		}
	}
	return true
}

// String renders "b6-a5" for a step and "b6xd4xf2" for a jump chain.
func (m Move) String() string {
	sep := "-"
	if m.IsCapture() {
		sep = "x"
	}
	var sb strings.Builder
	sb.WriteString(m.From.String())
	for _, sq := range m.Path {
		sb.WriteString(sep)
		sb.WriteString(sq.String())
	}
	return sb.String()
}
