package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/morpion/internal/bot"
	"github.com/rocketscienceinc/morpion/internal/entity"
	"github.com/rocketscienceinc/morpion/internal/usecase"
)

var ErrInputClosed = errors.New("input closed before the game ended")

type gameManager interface {
	Board() entity.Board
	Turn() entity.Side
	Outcome() entity.Outcome
	HumanTurn(cell int) (entity.Outcome, error)
	BotTurn() (bot.Decision, entity.Outcome, error)
}

// Console - plays one game over a line based text stream.
type Console struct {
	logger *slog.Logger
	game   gameManager

	scanner *bufio.Scanner
	out     io.Writer
}

func New(logger *slog.Logger, game gameManager, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger: logger.With("component", "cli"),
		game:   game,

		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Run - alternates turns until the game ends.
func (that *Console) Run() error {
	log := that.logger.With("method", "Run")

	for !that.game.Outcome().IsTerminal() {
		if that.game.Turn() == usecase.BotSide {
			decision, _, err := that.game.BotTurn()
			if err != nil {
				return fmt.Errorf("failed bot turn: %w", err)
			}

			log.Debug("bot played", "cell", decision.Cell, "probability", decision.Probability)
			continue
		}

		if err := that.humanTurn(); err != nil {
			return err
		}
	}

	return that.printResult()
}

// humanTurn - prints the board and reads lines until one is a playable cell.
func (that *Console) humanTurn() error {
	board := that.game.Board()
	if _, err := fmt.Fprintf(that.out, "%s%s >> ", board.String(), usecase.HumanSide.Mark()); err != nil {
		return fmt.Errorf("failed to print board: %w", err)
	}

	for {
		cell, err := that.readCell()
		if err != nil {
			return err
		}

		// errors only mean no move happened, ask again
		if _, err = that.game.HumanTurn(cell); err == nil {
			return nil
		}
	}
}

// readCell - returns the zero-based cell of the next line holding a number in [1, 9].
func (that *Console) readCell() (int, error) {
	for that.scanner.Scan() {
		if cell, ok := ParseCell(that.scanner.Text()); ok {
			return cell, nil
		}
	}

	if err := that.scanner.Err(); err != nil {
		return 0, fmt.Errorf("failed to read input: %w", err)
	}

	return 0, ErrInputClosed
}

func (that *Console) printResult() error {
	board := that.game.Board()

	message := "It's a draw!"
	if winner, ok := that.game.Outcome().Winner(); ok {
		message = fmt.Sprintf("Player %s wins!", winner.Mark())
	}

	if _, err := fmt.Fprintf(that.out, "%s%s\n", board.String(), message); err != nil {
		return fmt.Errorf("failed to print result: %w", err)
	}

	return nil
}

// ParseCell - converts a 1-based cell number typed by the player to a board index.
func ParseCell(line string) (int, bool) {
	number, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || number < 1 || number > entity.CellCount {
		return 0, false
	}

	return number - 1, true
}
