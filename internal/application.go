package application

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/rocketscienceinc/morpion/internal/bot"
	"github.com/rocketscienceinc/morpion/internal/config"
	"github.com/rocketscienceinc/morpion/internal/entity"
	"github.com/rocketscienceinc/morpion/internal/usecase"
	"github.com/rocketscienceinc/morpion/transport/cli"
	"github.com/rocketscienceinc/morpion/transport/tui"
)

// RunApp - runs one game on the configured front end.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	game := usecase.NewGameManager(logger, newOpponent(logger, conf), firstSide(conf))

	log.Info("Starting game", "front-end", conf.FrontEnd, "first-player", conf.FirstPlayer)

	switch conf.FrontEnd {
	case config.FrontEndCLI:
		err := cli.New(logger, game, os.Stdin, os.Stdout).Run()
		if errors.Is(err, cli.ErrInputClosed) {
			log.Info("Input closed, leaving the game")
			return nil
		}
		if err != nil {
			return fmt.Errorf("console game failed: %w", err)
		}
	default:
		if err := tui.Run(logger, game); err != nil {
			return fmt.Errorf("window game failed: %w", err)
		}
	}

	log.Info("Game over", "outcome", game.Outcome().String())

	return nil
}

func newOpponent(logger *slog.Logger, conf *config.Config) *bot.Opponent {
	if conf.Search.DisableCache {
		return bot.New(logger)
	}

	return bot.New(logger, bot.WithCache())
}

func firstSide(conf *config.Config) entity.Side {
	if conf.FirstPlayer == config.FirstPlayerBot {
		return usecase.BotSide
	}

	return usecase.HumanSide
}
