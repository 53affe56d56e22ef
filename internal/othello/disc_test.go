package othello

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisc_Opponent(t *testing.T) {
	require.Equal(t, White, Black.Opponent())
	require.Equal(t, Black, White.Opponent())
	require.Equal(t, Empty, Empty.Opponent())
}

func TestDisc_IsColor(t *testing.T) {
	require.True(t, Black.IsColor())
	require.True(t, White.IsColor())
	require.False(t, Empty.IsColor())
	require.False(t, Disc(7).IsColor())
}

func TestParseDisc(t *testing.T) {
	tests := map[string]Disc{
		"black": Black,
		"B":     Black,
		"White": White,
		" w ":   White,
	}

	for input, expected := range tests {
		disc, err := ParseDisc(input)
		require.NoError(t, err, "input %q", input)
		require.Equal(t, expected, disc, "input %q", input)
	}

	for _, input := range []string{"", "empty", "red", "-"} {
		_, err := ParseDisc(input)
		require.ErrorIs(t, err, ErrInvalidConfiguration, "input %q", input)
	}
}

func TestPlayer_Other(t *testing.T) {
	require.Equal(t, Player2, Player1.Other())
	require.Equal(t, Player1, Player2.Other())
	require.True(t, Player1.IsValid())
	require.True(t, Player2.IsValid())
	require.False(t, Player(0).IsValid())
	require.False(t, Player(3).IsValid())
}

func TestOutcome_String(t *testing.T) {
	require.Equal(t, "undetermined", Undetermined.String())
	require.Equal(t, "player 1 wins", Player1Wins.String())
	require.Equal(t, "player 2 wins", Player2Wins.String())
	require.Equal(t, "tie", Tie.String())
}
