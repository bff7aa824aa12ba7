package usecase

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/morpion/internal/apperror"
	"github.com/rocketscienceinc/morpion/internal/bot"
	"github.com/rocketscienceinc/morpion/internal/entity"
)

const (
	HumanSide = entity.Circle
	BotSide   = bot.Side
)

type opponent interface {
	ChooseMove(board entity.Board) bot.Decision
}

// GameManager - owns the board of one game and the turn flag. Not safe for concurrent use.
type GameManager struct {
	logger   *slog.Logger
	opponent opponent

	board   entity.Board
	turn    entity.Side
	outcome entity.Outcome
}

func NewGameManager(logger *slog.Logger, opponent opponent, first entity.Side) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game"),
		opponent: opponent,

		turn:    first,
		outcome: entity.NotTerminal,
	}
}

func (that *GameManager) Board() entity.Board {
	return that.board
}

func (that *GameManager) Turn() entity.Side {
	return that.turn
}

func (that *GameManager) Outcome() entity.Outcome {
	return that.outcome
}

// HumanTurn - places the human's mark at cell. Placement errors leave the game untouched.
func (that *GameManager) HumanTurn(cell int) (entity.Outcome, error) {
	if err := that.confirmTurn(HumanSide); err != nil {
		return that.outcome, err
	}

	if err := that.board.Place(cell, HumanSide); err != nil {
		return that.outcome, fmt.Errorf("failed make turn: %w", err)
	}

	that.finishTurn(HumanSide, cell)

	return that.outcome, nil
}

// BotTurn - lets the opponent pick a cell and plays it.
func (that *GameManager) BotTurn() (bot.Decision, entity.Outcome, error) {
	if err := that.confirmTurn(BotSide); err != nil {
		return bot.Decision{}, that.outcome, err
	}

	decision := that.opponent.ChooseMove(that.board)

	// the cell comes from the empty cells of this very board
	if err := that.board.Place(decision.Cell, BotSide); err != nil {
		panic(fmt.Errorf("bot chose an unplayable cell: %w", err))
	}

	that.finishTurn(BotSide, decision.Cell)

	return decision, that.outcome, nil
}

// PlayAt - the human plays at cell and, unless that ends the game, the bot replies.
func (that *GameManager) PlayAt(cell int) (entity.Outcome, error) {
	outcome, err := that.HumanTurn(cell)
	if err != nil || outcome.IsTerminal() {
		return outcome, err
	}

	_, outcome, err = that.BotTurn()
	if err != nil {
		return outcome, fmt.Errorf("failed bot turn: %w", err)
	}

	return outcome, nil
}

func (that *GameManager) confirmTurn(side entity.Side) error {
	if that.outcome.IsTerminal() {
		return apperror.ErrGameFinished
	}

	if that.turn != side {
		return apperror.ErrNotYourTurn
	}

	return nil
}

func (that *GameManager) finishTurn(side entity.Side, cell int) {
	log := that.logger.With("method", "finishTurn")

	that.outcome = that.board.Evaluate()
	that.turn = side.Opposite()

	log.Debug("turn played", "side", side.Mark(), "cell", cell)

	if that.outcome.IsTerminal() {
		log.Info("game finished", "outcome", that.outcome.String(), "moves", that.board.Occupied())
	}
}
