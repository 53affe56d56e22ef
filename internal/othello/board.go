package othello

import (
	"fmt"
	"math/bits"
)

const (
	MinBoardSize = 4
	MaxBoardSize = 8
)

// Directions: horizontal, vertical, and both diagonals
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is a square Othello grid. Each color has its own bitset, the bit for a
// square is at index row*size+col. Board is a value type: moves return a new Board.
type Board struct {
	size  int
	black uint64
	white uint64
}

// NewBoard creates a board of the given size with the four center discs placed.
func NewBoard(size int) (Board, error) {
	if size < MinBoardSize || size > MaxBoardSize || size%2 != 0 {
		return Board{}, fmt.Errorf(
			"%w: board size must be even and between %d and %d, got %d",
			ErrInvalidConfiguration, MinBoardSize, MaxBoardSize, size,
		)
	}

	board := Board{size: size}

	topMiddle := size/2 - 1
	board.set(topMiddle, topMiddle, Black)
	board.set(topMiddle+1, topMiddle+1, Black)
	board.set(topMiddle+1, topMiddle, White)
	board.set(topMiddle, topMiddle+1, White)

	return board, nil
}

// Size returns the number of rows (and columns) of the board.
func (b Board) Size() int {
	return b.size
}

// InBounds returns whether row and col are both in [0, size).
func (b Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < b.size && col < b.size
}

func (b Board) mask(row, col int) uint64 {
	return uint64(1) << (row*b.size + col)
}

// bitset returns the discs of the given color.
func (b Board) bitset(color Disc) uint64 {
	switch color {
	case Black:
		return b.black
	case White:
		return b.white
	default:
		return 0
	}
}

// Get returns the content of a square.
func (b Board) Get(row, col int) (Disc, error) {
	if !b.InBounds(row, col) {
		return Empty, fmt.Errorf("%w: row %d, col %d on a %dx%d board", ErrOutOfBounds, row, col, b.size, b.size)
	}
	return b.at(row, col), nil
}

// at returns the content of a square that is known to be on the board.
func (b Board) at(row, col int) Disc {
	mask := b.mask(row, col)
	switch {
	case b.black&mask != 0:
		return Black
	case b.white&mask != 0:
		return White
	default:
		return Empty
	}
}

func (b *Board) set(row, col int, disc Disc) {
	mask := b.mask(row, col)
	b.black &^= mask
	b.white &^= mask

	switch disc {
	case Black:
		b.black |= mask
	case White:
		b.white |= mask
	}
}

// Count returns the number of discs of the given color.
func (b Board) Count(color Disc) int {
	return bits.OnesCount64(b.bitset(color))
}

// CountDiscs returns the number of discs on the board.
func (b Board) CountDiscs() int {
	return bits.OnesCount64(b.black | b.white)
}

// IsFull returns whether every square holds a disc.
func (b Board) IsFull() bool {
	return b.CountDiscs() == b.size*b.size
}

// scan walks outward from (row, col) in direction (dRow, dCol) and returns the
// opponent discs that a disc of color placed at (row, col) captures in that direction.
func (b Board) scan(row, col, dRow, dCol int, color Disc) uint64 {
	own := b.bitset(color)
	opponent := b.bitset(color.Opponent())

	run := uint64(0)
	for r, c := row+dRow, col+dCol; b.InBounds(r, c); r, c = r+dRow, c+dCol {
		mask := b.mask(r, c)

		switch {
		case opponent&mask != 0:
			run |= mask
		case own&mask != 0:
			// An own disc right next to the move captures nothing, run is zero then.
			return run
		default:
			return 0
		}
	}

	// Ran off the board without finding an own disc.
	return 0
}

// flipped returns a bitset with all the opponent discs that would be flipped if color played on (row, col).
func (b Board) flipped(row, col int, color Disc) uint64 {
	if !color.IsColor() || !b.InBounds(row, col) {
		return 0
	}

	// If we try to play on an occupied square, this is an invalid move
	if (b.black|b.white)&b.mask(row, col) != 0 {
		return 0
	}

	flipped := uint64(0)
	for _, dir := range directions {
		flipped |= b.scan(row, col, dir[0], dir[1], color)
	}

	return flipped
}

// IsLegalMove checks if color may place a disc at (row, col). Squares off the board are never legal.
func (b Board) IsLegalMove(row, col int, color Disc) bool {
	return b.flipped(row, col, color) != 0
}

// HasMoves returns whether color has any legal move.
func (b Board) HasMoves(color Disc) bool {
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			if b.IsLegalMove(row, col, color) {
				return true
			}
		}
	}
	return false
}

// Moves returns the legal moves for color in row-major order.
func (b Board) Moves(color Disc) []Square {
	moves := make([]Square, 0)
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			if b.IsLegalMove(row, col, color) {
				moves = append(moves, Square{Row: row, Col: col})
			}
		}
	}
	return moves
}

// DoMove places a disc of color at (row, col) and flips all captured discs.
// It returns the new board and the number of flipped discs.
// If the move is illegal the same board and zero are returned.
func (b Board) DoMove(row, col int, color Disc) (Board, int) {
	flipped := b.flipped(row, col, color)
	if flipped == 0 {
		return b, 0
	}

	placed := flipped | b.mask(row, col)

	child := b
	switch color {
	case Black:
		child.black |= placed
		child.white &^= flipped
	case White:
		child.white |= placed
		child.black &^= flipped
	}

	return child, bits.OnesCount64(flipped)
}
