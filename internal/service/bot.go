package service

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

// SearchPlayer picks the move with the best win ratio over all continuations.
type SearchPlayer struct {
	logger *slog.Logger
}

func NewSearchPlayer(logger *slog.Logger, mark entity.Mark) *SearchPlayer {
	return &SearchPlayer{
		logger: logger.With("component", "search", "mark", mark),
	}
}

func (that *SearchPlayer) NextMove(board entity.Board) (int, error) {
	best, scores, err := tictactoe.BestMove(board)
	if err != nil {
		return 0, fmt.Errorf("search failed: %w", err)
	}

	for _, score := range scores {
		that.logger.Debug("candidate scored",
			"cell", score.Cell, "wins", score.Wins, "total", score.Total, "ratio", score.Ratio())
	}

	that.logger.Debug("move chosen", "cell", best.Cell, "ratio", best.Ratio())

	return best.Cell, nil
}
