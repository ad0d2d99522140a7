package game

import (
	"fmt"
	"math/bits"
)

// Board holds one bitmask per color, bit y*8+x set when that color occupies (x, y).
type Board struct {
	Black uint64
	White uint64
}

// InitialBoard returns the standard opening square: (3,3) and (4,4) black,
// (3,4) and (4,3) white.
func InitialBoard() Board {
	var b Board
	first := BoardSize/2 - 1
	second := first + 1
	b.set(first, first, Black)
	b.set(second, first, White)
	b.set(first, second, White)
	b.set(second, second, Black)
	return b
}

func InBounds(x, y int) bool {
	return x >= 0 && x < BoardSize && y >= 0 && y < BoardSize
}

func bit(x, y int) uint64 {
	if !InBounds(x, y) {
		panic(fmt.Sprintf("cell (%d,%d) is off the board", x, y))
	}
	return 1 << uint(y*BoardSize+x)
}

// At returns the color occupying (x, y).
func (b Board) At(x, y int) Color {
	mask := bit(x, y)
	switch {
	case b.Black&mask != 0:
		return Black
	case b.White&mask != 0:
		return White
	}
	return Empty
}

func (b *Board) set(x, y int, c Color) {
	mask := bit(x, y)
	b.Black &^= mask
	b.White &^= mask
	switch c {
	case Black:
		b.Black |= mask
	case White:
		b.White |= mask
	}
}

// Count returns the number of cells holding c.
func (b Board) Count(c Color) int {
	switch c {
	case Black:
		return bits.OnesCount64(b.Black)
	case White:
		return bits.OnesCount64(b.White)
	}
	return b.Empties()
}

func (b Board) Empties() int {
	return NumCells - bits.OnesCount64(b.Black|b.White)
}

// Validate reports a cell claimed by both colors.
func (b Board) Validate() error {
	if overlap := b.Black & b.White; overlap != 0 {
		i := bits.TrailingZeros64(overlap)
		return fmt.Errorf("cell (%d,%d) is both black and white", i%BoardSize, i/BoardSize)
	}
	return nil
}
