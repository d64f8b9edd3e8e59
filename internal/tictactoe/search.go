package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// Score is the outcome count of every line of play that starts with Cell.
type Score struct {
	Cell  int
	Wins  int
	Total int
}

// Ratio - share of leaf lines won by the side that moves into Cell.
func (that Score) Ratio() float64 {
	if that.Total == 0 {
		return 0
	}
	return float64(that.Wins) / float64(that.Total)
}

// CountOutcomes - walks every continuation of board with toMove to play and
// counts the leaves won by self against all leaves. A leaf is a board where
// the side that just moved completed a line, or a full board (counted as a loss).
func CountOutcomes(board entity.Board, toMove, self entity.Mark) (int, int) {
	justMoved := toMove.Opponent()
	if entity.IsWinning(board.Set(justMoved)) {
		if justMoved == self {
			return 1, 1
		}
		return 0, 1
	}

	if board.IsFull() {
		return 0, 1
	}

	wins, total := 0, 0
	for cell := 0; cell < entity.CellCount; cell++ {
		if board.IsOccupied(cell) {
			continue
		}

		w, n := CountOutcomes(board.Place(toMove, cell), toMove.Opponent(), self)
		wins += w
		total += n
	}

	return wins, total
}

// ScoreMoves - scores every empty cell for the side to move, in ascending cell order.
func ScoreMoves(board entity.Board) []Score {
	self := board.Turn()

	scores := make([]Score, 0, entity.CellCount)
	for _, cell := range board.EmptyCells() {
		wins, total := CountOutcomes(board.Place(self, cell), self.Opponent(), self)
		scores = append(scores, Score{Cell: cell, Wins: wins, Total: total})
	}

	return scores
}

// BestMove - picks the empty cell with the highest win ratio. The first cell
// wins a tie. This ranks raw frequencies over all continuations; it is not minimax.
func BestMove(board entity.Board) (Score, []Score, error) {
	scores := ScoreMoves(board)
	if len(scores) == 0 {
		return Score{}, nil, apperror.ErrNoAvailableMoves
	}

	best := scores[0]
	for _, score := range scores[1:] {
		if score.Ratio() > best.Ratio() {
			best = score
		}
	}

	return best, scores, nil
}
