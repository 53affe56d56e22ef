package othello

import (
	"fmt"
	"strings"
)

// Square is a 0-indexed board coordinate.
type Square struct {
	Row int
	Col int
}

// String returns the field notation of the square, e.g. "c4" for row 3, column 2.
func (s Square) String() string {
	return fmt.Sprintf("%c%d", 'a'+rune(s.Col), s.Row+1)
}

// IsPassField returns whether field is one of the notations used for a pass.
func IsPassField(field string) bool {
	switch strings.ToLower(field) {
	case "--", "ps", "pa", "pass":
		return true
	default:
		return false
	}
}

// ParseSquare converts a field notation (e.g. "a1", "d3") to a square on a board of the given size.
func ParseSquare(field string, size int) (Square, error) {
	if len(field) != 2 {
		return Square{}, fmt.Errorf("invalid field length: %q", field)
	}

	field = strings.ToLower(field)

	if field[0] < 'a' || field[0] > 'z' || field[1] < '1' || field[1] > '9' {
		return Square{}, fmt.Errorf("invalid field: %q", field)
	}

	square := Square{
		Row: int(field[1] - '1'),
		Col: int(field[0] - 'a'),
	}

	if square.Row >= size || square.Col >= size {
		return Square{}, fmt.Errorf("%w: field %s on a %dx%d board", ErrOutOfBounds, field, size, size)
	}

	return square, nil
}
