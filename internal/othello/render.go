package othello

import (
	"fmt"
	"strconv"
	"strings"
)

// Lines returns the text rendering of the board: a header with 1-indexed column
// numbers followed by one labelled line per row.
func (b Board) Lines() []string {
	lines := make([]string, b.size+1)

	header := make([]string, b.size)
	for col := 0; col < b.size; col++ {
		header[col] = strconv.Itoa(col + 1)
	}
	lines[0] = "  " + strings.Join(header, " ")

	for row := 0; row < b.size; row++ {
		tokens := make([]string, b.size)
		for col := 0; col < b.size; col++ {
			tokens[col] = b.at(row, col).token()
		}
		lines[row+1] = fmt.Sprintf("%d %s", row+1, strings.Join(tokens, " "))
	}

	return lines
}

// String returns the text rendering of the board.
func (b Board) String() string {
	return strings.Join(b.Lines(), "\n")
}

// Print prints the board to the console. This is used for debugging.
func (b Board) Print() {
	for _, line := range b.Lines() {
		fmt.Println(line)
	}
}
