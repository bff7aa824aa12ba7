package bot

import (
	"log/slog"

	"github.com/rocketscienceinc/morpion/internal/entity"
)

// Side - the side the computer plays.
const Side = entity.Cross

const (
	lossValue = 0.0
	winValue  = 1.0
	drawValue = 0.5
)

// Candidate - one evaluated reply of the computer.
type Candidate struct {
	Cell        int
	Probability float64
}

// Decision - the chosen cell along with every candidate that was considered.
type Decision struct {
	Cell        int
	Probability float64
	Candidates  []Candidate
}

// Opponent - picks the cell that maximizes the computer's chance of winning when both sides then play
// uniformly at random. Not safe for concurrent use.
type Opponent struct {
	logger *slog.Logger
	cache  *probabilityCache
}

type Option func(*Opponent)

// WithCache - memoizes probabilities per position. Returned values are unaffected.
func WithCache() Option {
	return func(that *Opponent) {
		that.cache = newProbabilityCache()
	}
}

func New(logger *slog.Logger, opts ...Option) *Opponent {
	opponent := &Opponent{
		logger: logger.With("component", "bot"),
	}

	for _, opt := range opts {
		opt(opponent)
	}

	return opponent
}

// ChooseMove - evaluates every empty cell and returns the first one with the greatest probability.
// The board must not be terminal.
func (that *Opponent) ChooseMove(board entity.Board) Decision {
	log := that.logger.With("method", "ChooseMove")

	if board.Evaluate().IsTerminal() {
		panic("bot: asked to move on a finished board")
	}

	decision := Decision{Cell: -1}
	for cell := range board.EmptyCells() {
		next := board
		next[cell] = Side.Cell()

		probability := that.winProbability(next, Side.Opposite())
		log.Debug("candidate evaluated", "cell", cell, "probability", probability)

		decision.Candidates = append(decision.Candidates, Candidate{Cell: cell, Probability: probability})
		if decision.Cell == -1 || probability > decision.Probability {
			decision.Cell = cell
			decision.Probability = probability
		}
	}

	log.Debug("move chosen", "cell", decision.Cell, "probability", decision.Probability)
	if that.cache != nil {
		stats := that.cache.Stats()
		log.Debug("cache stats", "hits", stats.Hits, "misses", stats.Misses, "entries", stats.Entries)
	}

	return decision
}

// Stats - cache counters, zero when the opponent runs without a cache.
func (that *Opponent) Stats() CacheStats {
	if that.cache == nil {
		return CacheStats{}
	}

	return that.cache.Stats()
}

func (that *Opponent) winProbability(board entity.Board, toMove entity.Side) float64 {
	if that.cache == nil {
		return WinProbability(board, toMove)
	}

	key := positionKey{board: board.Key(), toMove: toMove}
	if probability, ok := that.cache.Get(key); ok {
		return probability
	}

	probability, done := terminalProbability(board)
	if !done {
		probability = average(board, toMove, that.winProbability)
	}

	that.cache.Put(key, probability)

	return probability
}

// WinProbability - the chance that the computer wins from board with toMove to play, both sides choosing
// uniformly among their legal moves until the game ends. A draw counts as one half.
func WinProbability(board entity.Board, toMove entity.Side) float64 {
	if probability, done := terminalProbability(board); done {
		return probability
	}

	return average(board, toMove, WinProbability)
}

func terminalProbability(board entity.Board) (float64, bool) {
	switch board.Evaluate() {
	case entity.CircleWins:
		return lossValue, true
	case entity.CrossWins:
		return winValue, true
	case entity.Draw:
		return drawValue, true
	default:
		return 0, false
	}
}

// average - mean of next over every continuation, in ascending cell order.
func average(board entity.Board, toMove entity.Side, next func(entity.Board, entity.Side) float64) float64 {
	total, count := 0.0, 0
	for cell := range board.EmptyCells() {
		continuation := board
		continuation[cell] = toMove.Cell()

		total += next(continuation, toMove.Opposite())
		count++
	}

	return total / float64(count)
}
