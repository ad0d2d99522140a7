package game

import "fmt"

type Square struct {
	X int
	Y int
}

func (s Square) String() string {
	return fmt.Sprintf("%c%d", 'a'+rune(s.X), s.Y+1)
}

// ParseSquare reads an algebraic cell name such as "d3" (column letter, row number).
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("invalid square %q", s)
	}
	col := s[0]
	if col >= 'A' && col <= 'Z' {
		col += 'a' - 'A'
	}
	sq := Square{X: int(col) - 'a', Y: int(s[1]) - '1'}
	if !InBounds(sq.X, sq.Y) {
		return Square{}, fmt.Errorf("invalid square %q", s)
	}
	return sq, nil
}

// Move is a placement at (X, Y) together with the opponent discs it flips.
type Move struct {
	X       int
	Y       int
	Changes []Square
}

func (m Move) Square() Square {
	return Square{X: m.X, Y: m.Y}
}

func (m Move) ChangesCount() int {
	return len(m.Changes)
}

func (m Move) String() string {
	return m.Square().String()
}

func (m Move) flipMask() uint64 {
	var mask uint64
	for _, sq := range m.Changes {
		mask |= bit(sq.X, sq.Y)
	}
	return mask
}
