package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/othello"
)

func main() {
	cfg, err := config.LoadGameConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	if err = config.SetLogLevel(cfg.LogLevel); err != nil {
		slog.Error("Failed to set log level", "error", err)
		os.Exit(1)
	}

	size := flag.Int("size", cfg.BoardSize, "the board size")
	player := flag.Int("player", cfg.StartingPlayer, "the player that moves first")
	color := flag.String("color", cfg.StartingColor, "the disc color of the player that moves first")
	moves := flag.String("moves", "", "space separated moves to play, e.g. \"d3 c5 --\"")

	header := "Environment variables:"
	flag.Usage = cleanenv.FUsage(flag.CommandLine.Output(), &config.GameConfig{}, &header, flag.Usage)
	flag.Parse()

	startingColor, err := othello.ParseDisc(*color)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	game, err := othello.NewGame(*size, othello.Player(*player), startingColor)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	err = replay(game, strings.Fields(*moves))

	game.Print()
	printStatus(game)

	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// replay plays the moves in field notation, stopping at the first rejected move.
func replay(game *othello.Game, fields []string) error {
	for i, field := range fields {
		if othello.IsPassField(field) {
			if err := game.Pass(); err != nil {
				return fmt.Errorf("move %d: cannot pass: %w", i+1, err)
			}
			continue
		}

		square, err := othello.ParseSquare(field, game.Size())
		if err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}

		if _, err = game.SubmitMove(square.Row, square.Col); err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
	}

	return nil
}

func printStatus(game *othello.Game) {
	player1, player2 := game.Score()
	fmt.Printf("player 1 (%s): %d, player 2 (%s): %d\n", game.Player1Color(), player1, game.Player2Color(), player2)

	if game.IsGameOver() {
		fmt.Printf("game over: %s\n", game.Outcome())
		return
	}

	fmt.Printf("to move: %s (%s)\n", game.Turn(), game.CurrentColor())
}
