package entity

import (
	"fmt"
	"iter"
	"strings"

	"github.com/rocketscienceinc/morpion/internal/apperror"
)

const CellCount = 9

// WinCombos - the 3 rows, 3 columns and 2 diagonals, each exactly once.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board - 3x3 grid in row-major order, index = row*3 + col.
type Board [CellCount]Cell

// Place - puts side on the cell at index. The board is left untouched on error.
func (that *Board) Place(index int, side Side) error {
	if index < 0 || index >= len(that) {
		return fmt.Errorf("%w: cell %d", apperror.ErrOutOfRange, index)
	}

	if that[index] != Empty {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, index)
	}

	that[index] = side.Cell()

	return nil
}

// Evaluate - returns the winner of the first completed combo, Draw for a full board, NotTerminal otherwise.
func (that *Board) Evaluate() Outcome {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != Empty && a == b && b == c {
			side, _ := a.Side()
			return winOutcome(side)
		}
	}

	// the game will continue until all the squares are full
	for _, cell := range that {
		if cell == Empty {
			return NotTerminal
		}
	}

	return Draw
}

// EmptyCells - yields the indices of empty cells in ascending order.
func (that *Board) EmptyCells() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, cell := range that {
			if cell != Empty {
				continue
			}
			if !yield(i) {
				return
			}
		}
	}
}

func (that *Board) Occupied() int {
	count := 0
	for _, cell := range that {
		if cell != Empty {
			count++
		}
	}

	return count
}

// Key - exact base-3 packing of the board.
func (that *Board) Key() uint32 {
	var key uint32
	for _, cell := range that {
		key = key*3 + uint32(cell)
	}

	return key
}

func (that *Board) String() string {
	var sb strings.Builder
	for row := range 3 {
		fmt.Fprintf(&sb, "%s | %s | %s\n", that[row*3].Mark(), that[row*3+1].Mark(), that[row*3+2].Mark())
	}

	return sb.String()
}
