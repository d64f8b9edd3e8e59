package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Result is the final outcome of a game.
type Result int

const (
	ResultTie Result = iota
	ResultOWins
	ResultXWins
)

func (that Result) String() string {
	switch that {
	case ResultOWins:
		return "o_wins"
	case ResultXWins:
		return "x_wins"
	default:
		return "tie"
	}
}

// Game is the record of a single game, created empty and mutated once per ply.
type Game struct {
	ID     string `json:"id"`
	Board  Board  `json:"board"`
	Moves  []int  `json:"moves"`
	Status string `json:"status"`
	Result Result `json:"result"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Moves:  make([]int, 0, CellCount),
		Status: StatusOngoing,
	}
}

// Turn - side to move.
func (that *Game) Turn() Mark {
	return that.Board.Turn()
}

// MakeTurn - places the side's mark and finishes the game on a win or a full board.
func (that *Game) MakeTurn(mark Mark, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !IsValidCell(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.Board.IsOccupied(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	if that.Turn() != mark {
		return apperror.ErrNotYourTurn
	}

	that.Board = that.Board.Place(mark, cell)
	that.Moves = append(that.Moves, cell)

	switch {
	case IsWinning(that.Board.Set(mark)):
		that.Status = StatusFinished
		if mark == PlayerO {
			that.Result = ResultOWins
		} else {
			that.Result = ResultXWins
		}
	case that.Board.IsFull():
		that.Status = StatusFinished
		that.Result = ResultTie
	}

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// Winner - winning side, empty while ongoing or on a tie.
func (that *Game) Winner() Mark {
	if !that.IsFinished() {
		return ""
	}

	switch that.Result {
	case ResultOWins:
		return PlayerO
	case ResultXWins:
		return PlayerX
	default:
		return ""
	}
}
