package checkers

import (
	"fmt"
	"strings"

	errs "checkers_exe/internal/errors"
)

type Color string

const (
	Red   Color = "red"
	Black Color = "black"
)

func (c Color) Opponent() Color {
	if c == Red {
		return Black
	}
	return Red
}

// PromotionRow is the farthest row from the color's own side.
// Red starts on rows 5..7 and moves up, Black starts on rows 0..2 and moves down.
func (c Color) PromotionRow() int {
	if c == Red {
		return 0
	}
	return 7
}

func (c Color) BackRow() int {
	if c == Red {
		return 7
	}
	return 0
}

// Piece is a value: promotion replaces it rather than mutating it in place.
type Piece struct {
	Color Color
	King  bool
}

func (p Piece) directions() [][2]int {
	if p.King {
		return [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	}
	if p.Color == Red {
		return [][2]int{{-1, -1}, {-1, 1}}
	}
	return [][2]int{{1, -1}, {1, 1}}
}

func (p Piece) String() string {
	s := strings.ToUpper(string(p.Color[0]))
	if p.King {
		s += "K"
	}
	return s
}

type Square struct {
	Row int
	Col int
}

func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < 8 && s.Col >= 0 && s.Col < 8
}

// Dark reports whether the square is playable. Pieces live on dark squares only.
func (s Square) Dark() bool {
	return (s.Row+s.Col)%2 == 1
}

// String renders the square in algebraic style: column a-h, rank 8 at the top row.
func (s Square) String() string {
	return fmt.Sprintf("%c%d", 'a'+s.Col, 8-s.Row)
}

// ParseSquare reads coordinates like "b6". Only dark squares are accepted.
func ParseSquare(text string) (Square, error) {
	t := strings.ToLower(strings.TrimSpace(text))
	if len(t) != 2 || t[0] < 'a' || t[0] > 'h' || t[1] < '1' || t[1] > '8' {
		return Square{}, errs.ErrBadCoordinate
	}
	sq := Square{Row: 8 - int(t[1]-'0'), Col: int(t[0] - 'a')}
	if !sq.Dark() {
		return Square{}, errs.ErrBadCoordinate
	}
	return sq, nil
}
