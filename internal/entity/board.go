package entity

import "math/bits"

// Bitset holds one bit per cell, row-major:
//
//	0 1 2
//	3 4 5
//	6 7 8
type Bitset uint16

const (
	CellCount = 9

	FullBoard Bitset = 0b111111111
)

var WinPatterns = [8]Bitset{
	NewBitset(0, 1, 2),
	NewBitset(3, 4, 5),
	NewBitset(6, 7, 8),
	NewBitset(0, 3, 6),
	NewBitset(1, 4, 7),
	NewBitset(2, 5, 8),
	NewBitset(0, 4, 8),
	NewBitset(2, 4, 6),
}

// NewBitset - returns the set containing the given cells.
func NewBitset(cells ...int) Bitset {
	var set Bitset
	for _, cell := range cells {
		set |= 1 << cell
	}
	return set
}

// Has reports whether the cell is in the set.
func (that Bitset) Has(cell int) bool {
	return that&(1<<cell) != 0
}

// Len - number of cells in the set.
func (that Bitset) Len() int {
	return bits.OnesCount16(uint16(that))
}

// IsWinning - true when the set covers at least one win pattern.
func IsWinning(set Bitset) bool {
	for _, pattern := range WinPatterns {
		if set&pattern == pattern {
			return true
		}
	}
	return false
}

// IsValidCell reports whether cell addresses the 3x3 grid.
func IsValidCell(cell int) bool {
	return cell >= 0 && cell < CellCount
}

// Board is the occupancy of both sides. The two sets never intersect.
type Board struct {
	O Bitset `json:"o"`
	X Bitset `json:"x"`
}

// Combined - union of both sides.
func (that Board) Combined() Bitset {
	return that.O | that.X
}

func (that Board) IsFull() bool {
	return that.Combined() == FullBoard
}

func (that Board) IsOccupied(cell int) bool {
	return that.Combined().Has(cell)
}

// Occupied - number of taken cells.
func (that Board) Occupied() int {
	return that.Combined().Len()
}

// Turn - side to move, derived from the parity of taken cells. O moves first.
func (that Board) Turn() Mark {
	if that.Occupied()%2 == 0 {
		return PlayerO
	}
	return PlayerX
}

// EmptyCells - free cells in ascending order.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, CellCount-that.Occupied())
	for cell := 0; cell < CellCount; cell++ {
		if !that.IsOccupied(cell) {
			cells = append(cells, cell)
		}
	}
	return cells
}

// Set - cells owned by the given side.
func (that Board) Set(mark Mark) Bitset {
	if mark == PlayerO {
		return that.O
	}
	return that.X
}

// Place - returns a copy of the board with cell added to the side's set.
// Callers check the cell is valid and free first.
func (that Board) Place(mark Mark, cell int) Board {
	if mark == PlayerO {
		that.O |= 1 << cell
	} else {
		that.X |= 1 << cell
	}
	return that
}

// MarkAt - owner of the cell, empty when the cell is free.
func (that Board) MarkAt(cell int) Mark {
	switch {
	case that.O.Has(cell):
		return PlayerO
	case that.X.Has(cell):
		return PlayerX
	default:
		return ""
	}
}
