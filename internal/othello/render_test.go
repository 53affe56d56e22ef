package othello

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoard_Lines(t *testing.T) {
	board, err := NewBoard(4)
	require.NoError(t, err)

	expected := []string{
		"  1 2 3 4",
		"1 - - - -",
		"2 - B W -",
		"3 - W B -",
		"4 - - - -",
	}

	require.Equal(t, expected, board.Lines())
}

func TestBoard_String(t *testing.T) {
	board, err := NewBoard(6)
	require.NoError(t, err)

	board, flipped := board.DoMove(1, 3, Black)
	require.Equal(t, 1, flipped)

	expected := "  1 2 3 4 5 6\n" +
		"1 - - - - - -\n" +
		"2 - - - B - -\n" +
		"3 - - B B - -\n" +
		"4 - - W B - -\n" +
		"5 - - - - - -\n" +
		"6 - - - - - -"

	require.Equal(t, expected, board.String())
}

func TestBoard_Lines_Size8(t *testing.T) {
	board, err := NewBoard(8)
	require.NoError(t, err)

	lines := board.Lines()
	require.Len(t, lines, 9)
	require.Equal(t, "  1 2 3 4 5 6 7 8", lines[0])
	require.Equal(t, "8 - - - - - - - -", lines[8])

	for _, line := range lines {
		require.Len(t, line, len(lines[0]))
	}
}
