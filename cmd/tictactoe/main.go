package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"ctchen222/Tic-Tac-Toe-Console/internal/bot"
	"ctchen222/Tic-Tac-Toe-Console/internal/config"
	"ctchen222/Tic-Tac-Toe-Console/internal/console"
	"ctchen222/Tic-Tac-Toe-Console/internal/game"
	"ctchen222/Tic-Tac-Toe-Console/internal/logger"
	"ctchen222/Tic-Tac-Toe-Console/internal/match"
	"ctchen222/Tic-Tac-Toe-Console/internal/player"
	"ctchen222/Tic-Tac-Toe-Console/internal/telemetry"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		cancel()
	}()

	cfg, err := config.Load("./config.yml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.InitOtel(ctx, cfg.Telemetry.Endpoint)
		if err != nil {
			log.Fatalf("failed to initialize telemetry: %v", err)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	logger.Init(logger.ParseLevel(cfg.LogLevel), cfg.Telemetry.Enabled)

	if err := run(ctx, cfg); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
			fmt.Println("\nGoodbye.")
			return
		}
		slog.Error("game aborted", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	stdin := bufio.NewReader(os.Stdin)
	ui := console.New(stdin, os.Stdout)

	fmt.Println("Tic-Tac-Toe: You are O, AI is X.")
	fmt.Println()

	firstTurn, err := resolveFirstTurn(cfg, ui)
	if err != nil {
		return err
	}

	difficulty := cfg.Difficulty
	if difficulty == "" {
		if difficulty, err = ui.ChooseDifficulty(); err != nil {
			return err
		}
	}

	narrator := console.NewNarrator(os.Stdout)
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	selector := bot.NewSelector(game.PlayerX, rng, narrator)

	human := player.NewHuman(game.PlayerO, stdin, os.Stdout)
	ai := player.NewBot(selector, difficulty)

	for {
		m := match.New(firstTurn, human, ai, difficulty, narrator, ui)
		if _, err := m.Run(ctx); err != nil {
			return err
		}

		again, err := ui.AskPlayAgain()
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
		fmt.Println()
	}
}

func resolveFirstTurn(cfg *config.Config, ui *console.Console) (game.PlayerMark, error) {
	switch cfg.FirstTurn {
	case "human":
		return game.PlayerO, nil
	case "ai":
		return game.PlayerX, nil
	default:
		return ui.ChooseStartingPlayer()
	}
}
