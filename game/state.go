package game

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

var ErrInvalidMove = errors.New("invalid move")

// Compass directions as (dx, dy), starting north-west and going clockwise
var directions = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1}, {1, 0},
	{1, 1}, {0, 1}, {-1, 1}, {-1, 0},
}

// GameState is the board, whose turn it is, and the legal moves of that player.
// It only changes through Play.
type GameState struct {
	Board       Board
	BlackToMove bool
	moves       []Move
}

// NewGameState returns the opening position with black to move.
func NewGameState() *GameState {
	return NewGameStateFrom(InitialBoard(), true)
}

// NewGameStateFrom builds a state around an arbitrary board. It panics if a
// cell is claimed by both colors.
func NewGameStateFrom(board Board, blackToMove bool) *GameState {
	if err := board.Validate(); err != nil {
		panic(err)
	}
	gs := &GameState{
		Board:       board,
		BlackToMove: blackToMove,
	}
	gs.calculateMoves()
	return gs
}

func (gs GameState) Copy() *GameState {
	moves := make([]Move, len(gs.moves))
	for i, m := range gs.moves {
		changes := make([]Square, len(m.Changes))
		copy(changes, m.Changes)
		moves[i] = Move{X: m.X, Y: m.Y, Changes: changes}
	}
	return &GameState{
		Board:       gs.Board,
		BlackToMove: gs.BlackToMove,
		moves:       moves,
	}
}

// Player returns the color to move.
func (gs GameState) Player() Color {
	if gs.BlackToMove {
		return Black
	}
	return White
}

// LegalMoves returns the mover's moves in row-major order. The slice is shared
// with the state and must not be modified.
func (gs GameState) LegalMoves() []Move {
	return gs.moves
}

func (gs GameState) IsTerminal() bool {
	return len(gs.moves) == 0
}

func (gs GameState) DiscCount(c Color) int {
	return gs.Board.Count(c)
}

// Play places the mover's disc for the index-th legal move, flips its changes
// and passes the turn. The state is left untouched on error.
func (gs *GameState) Play(index int) error {
	if index < 0 || index >= len(gs.moves) {
		return fmt.Errorf("%w: index %d with %d legal moves", ErrInvalidMove, index, len(gs.moves))
	}
	m := gs.moves[index]
	placed := bit(m.X, m.Y) | m.flipMask()

	board := gs.Board
	if gs.BlackToMove {
		board.Black |= placed
		board.White &^= placed
	} else {
		board.White |= placed
		board.Black &^= placed
	}
	if err := board.Validate(); err != nil {
		panic(err)
	}

	gs.Board = board
	gs.BlackToMove = !gs.BlackToMove
	gs.calculateMoves()
	return nil
}

// Winner compares disc counts. It is meaningful once the state is terminal.
func (gs GameState) Winner() Outcome {
	black, white := gs.Board.Count(Black), gs.Board.Count(White)
	switch {
	case black > white:
		return BlackWins
	case white > black:
		return WhiteWins
	}
	return Tie
}

// Hash identifies the position and the side to move.
func (gs GameState) Hash() StateHash {
	var buf [17]byte
	binary.LittleEndian.PutUint64(buf[0:8], gs.Board.Black)
	binary.LittleEndian.PutUint64(buf[8:16], gs.Board.White)
	if gs.BlackToMove {
		buf[16] = 1
	}
	return StateHash(xxhash.Sum64(buf[:]))
}

func (gs *GameState) calculateMoves() {
	gs.moves = gs.moves[:0:0]
	self := gs.Player()
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if gs.Board.At(x, y) != Empty {
				continue
			}
			if changes := gs.Board.Flips(x, y, self); len(changes) > 0 {
				gs.moves = append(gs.moves, Move{X: x, Y: y, Changes: changes})
			}
		}
	}
}

// Flips returns the discs that placing self at (x, y) would flip, walking each
// direction over opponent discs until a disc of self anchors the run.
func (b Board) Flips(x, y int, self Color) []Square {
	other := self.Opponent()
	var changes []Square
	for _, d := range directions {
		var run []Square
		cx, cy := x+d[0], y+d[1]
		for InBounds(cx, cy) && b.At(cx, cy) == other {
			run = append(run, Square{X: cx, Y: cy})
			cx += d[0]
			cy += d[1]
		}
		if len(run) > 0 && InBounds(cx, cy) && b.At(cx, cy) == self {
			changes = append(changes, run...)
		}
	}
	return changes
}
