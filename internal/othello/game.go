package othello

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Game is an Othello game in progress. It owns the board and tracks whose turn it is.
// Game does no locking, callers sharing a Game between goroutines must serialize access.
type Game struct {
	id    uuid.UUID
	board Board

	// players holds the disc colors of Player1 and Player2, in that order.
	players [2]Disc

	// turn is the player to move, color is the disc color that player plays.
	turn  Player
	color Disc
}

// MoveResult describes an accepted move.
type MoveResult struct {
	Square   Square
	Color    Disc
	Flipped  int
	GameOver bool
}

// NewGame creates a new game. The starting player plays startingColor, the other player the opposite color.
func NewGame(size int, startingPlayer Player, startingColor Disc) (*Game, error) {
	board, err := NewBoard(size)
	if err != nil {
		return nil, err
	}

	if !startingPlayer.IsValid() {
		return nil, fmt.Errorf("%w: player number must be 1 or 2, got %d", ErrInvalidConfiguration, int(startingPlayer))
	}

	if !startingColor.IsColor() {
		return nil, fmt.Errorf("%w: starting disc must be black or white, got %s", ErrInvalidConfiguration, startingColor)
	}

	game := &Game{
		id:    uuid.New(),
		board: board,
		turn:  startingPlayer,
		color: startingColor,
	}

	game.players[startingPlayer-1] = startingColor
	game.players[startingPlayer.Other()-1] = startingColor.Opponent()

	slog.Debug("game created", "game", game.id, "size", size, "player", int(startingPlayer), "color", startingColor)

	return game, nil
}

// ID returns the identifier of the game, used to correlate log lines.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// Size returns the board size.
func (g *Game) Size() int {
	return g.board.Size()
}

// Board returns a copy of the current board.
func (g *Game) Board() Board {
	return g.board
}

// CellAt returns the content of the square at (row, col).
func (g *Game) CellAt(row, col int) (Disc, error) {
	return g.board.Get(row, col)
}

// Turn returns the player to move.
func (g *Game) Turn() Player {
	return g.turn
}

// CurrentColor returns the disc color of the player to move.
func (g *Game) CurrentColor() Disc {
	return g.color
}

// PlayerColor returns the disc color assigned to a player, or Empty for an unknown player.
func (g *Game) PlayerColor(player Player) Disc {
	if !player.IsValid() {
		return Empty
	}
	return g.players[player-1]
}

func (g *Game) Player1Color() Disc {
	return g.players[0]
}

func (g *Game) Player2Color() Disc {
	return g.players[1]
}

// AdvanceTurn hands the turn to the other player.
func (g *Game) AdvanceTurn() {
	g.turn = g.turn.Other()
	g.color = g.PlayerColor(g.turn)
}

// IsLegalMove checks if color may place a disc at (row, col). It never modifies the game.
func (g *Game) IsLegalMove(row, col int, color Disc) bool {
	return g.board.IsLegalMove(row, col, color)
}

// IsAnyLegalMoveAvailable returns whether color has any legal move.
func (g *Game) IsAnyLegalMoveAvailable(color Disc) bool {
	return g.board.HasMoves(color)
}

// LegalMoves returns the legal moves for color in row-major order.
func (g *Game) LegalMoves(color Disc) []Square {
	return g.board.Moves(color)
}

// SubmitMove places a disc of the current color at (row, col), flips captured discs
// and passes the turn unless the game ended. Rejected moves leave the game unchanged.
func (g *Game) SubmitMove(row, col int) (MoveResult, error) {
	if g.IsGameOver() {
		return MoveResult{}, ErrGameOver
	}

	if !g.board.InBounds(row, col) {
		return MoveResult{}, fmt.Errorf("%w: row %d, col %d on a %dx%d board", ErrOutOfBounds, row, col, g.Size(), g.Size())
	}

	square := Square{Row: row, Col: col}

	board, flipped := g.board.DoMove(row, col, g.color)
	if flipped == 0 {
		slog.Debug("move rejected", "game", g.id, "square", square, "color", g.color)
		return MoveResult{}, fmt.Errorf("%w: %s cannot play %s", ErrIllegalMove, g.color, square)
	}

	g.board = board

	result := MoveResult{
		Square:  square,
		Color:   g.color,
		Flipped: flipped,
	}

	slog.Debug("disc placed", "game", g.id, "square", square, "color", g.color, "flipped", flipped)

	if g.IsGameOver() {
		result.GameOver = true
		slog.Debug("game over", "game", g.id, "outcome", g.Outcome())
		return result, nil
	}

	g.AdvanceTurn()
	return result, nil
}

// PlaceDisc is like SubmitMove, but silently ignores rejected moves.
func (g *Game) PlaceDisc(row, col int) {
	_, _ = g.SubmitMove(row, col)
}

// Pass hands the turn to the other player. This is only allowed if the player to move has no legal moves.
func (g *Game) Pass() error {
	if g.IsGameOver() {
		return ErrGameOver
	}

	if g.board.HasMoves(g.color) {
		return fmt.Errorf("%w: %s has legal moves and cannot pass", ErrIllegalMove, g.turn)
	}

	slog.Debug("turn passed", "game", g.id, "player", int(g.turn))

	g.AdvanceTurn()
	return nil
}

// IsBoardFull returns whether every square holds a disc.
func (g *Game) IsBoardFull() bool {
	return g.board.IsFull()
}

// IsGameOver returns whether the board is full or neither color can move.
func (g *Game) IsGameOver() bool {
	return g.board.IsFull() || (!g.board.HasMoves(Black) && !g.board.HasMoves(White))
}

// Score returns the disc counts of Player1 and Player2.
func (g *Game) Score() (int, int) {
	return g.board.Count(g.players[0]), g.board.Count(g.players[1])
}

// Outcome returns the result of the game, or Undetermined if the game is not over.
func (g *Game) Outcome() Outcome {
	if !g.IsGameOver() {
		return Undetermined
	}

	player1, player2 := g.Score()

	switch {
	case player1 > player2:
		return Player1Wins
	case player2 > player1:
		return Player2Wins
	default:
		return Tie
	}
}

// String returns the text rendering of the board.
func (g *Game) String() string {
	return g.board.String()
}

// Print prints the board to the console. This is used for debugging.
func (g *Game) Print() {
	g.board.Print()
}
