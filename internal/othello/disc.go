package othello

import (
	"fmt"
	"strings"
)

// Disc is the content of a square: Empty, or one of the two disc colors.
type Disc int

const (
	Empty Disc = iota
	Black
	White
)

// IsColor returns whether d is one of the two disc colors.
func (d Disc) IsColor() bool {
	return d == Black || d == White
}

// Opponent returns the opposing color. Empty has no opponent and returns Empty.
func (d Disc) Opponent() Disc {
	switch d {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (d Disc) String() string {
	switch d {
	case Black:
		return "black"
	case White:
		return "white"
	case Empty:
		return "empty"
	default:
		return fmt.Sprintf("Disc(%d)", int(d))
	}
}

// token is the single character used when rendering the board.
func (d Disc) token() string {
	switch d {
	case Black:
		return "B"
	case White:
		return "W"
	default:
		return "-"
	}
}

// ParseDisc parses a disc color such as "black" or "w".
func ParseDisc(s string) (Disc, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black", "b":
		return Black, nil
	case "white", "w":
		return White, nil
	default:
		return Empty, fmt.Errorf("%w: unknown disc color %q", ErrInvalidConfiguration, s)
	}
}

// Player identifies one of the two players of a game.
type Player int

const (
	Player1 Player = 1
	Player2 Player = 2
)

// IsValid returns whether p is Player1 or Player2.
func (p Player) IsValid() bool {
	return p == Player1 || p == Player2
}

// Other returns the other player.
func (p Player) Other() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

func (p Player) String() string {
	return fmt.Sprintf("player %d", int(p))
}

// Outcome is the result of a finished game.
type Outcome int

const (
	Undetermined Outcome = iota
	Player1Wins
	Player2Wins
	Tie
)

func (o Outcome) String() string {
	switch o {
	case Player1Wins:
		return "player 1 wins"
	case Player2Wins:
		return "player 2 wins"
	case Tie:
		return "tie"
	default:
		return "undetermined"
	}
}
