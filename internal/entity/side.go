package entity

import "fmt"

// Side - a player identity. Empty is not a side.
type Side uint8

const (
	Circle Side = iota + 1
	Cross
)

// Opposite - returns the other side. Panics on anything but Circle or Cross.
func (that Side) Opposite() Side {
	switch that {
	case Circle:
		return Cross
	case Cross:
		return Circle
	default:
		panic(fmt.Sprintf("entity: cannot negate side %d", that))
	}
}

// Cell - the cell state held by a board after this side played there.
func (that Side) Cell() Cell {
	return Cell(that)
}

func (that Side) Mark() string {
	return that.Cell().Mark()
}

func (that Side) String() string {
	return that.Mark()
}

// Cell - the state of one board position: Empty or occupied by a side.
type Cell uint8

const Empty Cell = 0

// Side - reports which side occupies the cell, false for Empty.
func (that Cell) Side() (Side, bool) {
	switch Side(that) {
	case Circle, Cross:
		return Side(that), true
	default:
		return 0, false
	}
}

func (that Cell) Mark() string {
	switch Side(that) {
	case Circle:
		return "O"
	case Cross:
		return "X"
	default:
		return " "
	}
}
