package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// Tally counts results over a match.
type Tally struct {
	OWins int `json:"o_wins"`
	XWins int `json:"x_wins"`
	Ties  int `json:"ties"`
}

func (that *Tally) Add(result entity.Result) {
	switch result {
	case entity.ResultOWins:
		that.OWins++
	case entity.ResultXWins:
		that.XWins++
	default:
		that.Ties++
	}
}

// Games - number of games counted.
func (that Tally) Games() int {
	return that.OWins + that.XWins + that.Ties
}

type MatchUseCase interface {
	Play(ctx context.Context, rounds int) (Tally, error)
}

type gameRunner interface {
	Run(ctx context.Context) (*entity.Game, error)
}

type matchUseCase struct {
	logger *slog.Logger
	runner gameRunner
}

func NewMatchUseCase(logger *slog.Logger, runner gameRunner) MatchUseCase {
	return &matchUseCase{
		logger: logger.With("component", "match"),
		runner: runner,
	}
}

// Play - runs the given number of games back to back with the same players.
func (that *matchUseCase) Play(ctx context.Context, rounds int) (Tally, error) {
	var tally Tally

	if rounds < 1 {
		return tally, fmt.Errorf("%w: got %d", apperror.ErrInvalidRounds, rounds)
	}

	for round := 1; round <= rounds; round++ {
		game, err := that.runner.Run(ctx)
		if err != nil {
			return tally, fmt.Errorf("failed to play round %d: %w", round, err)
		}

		tally.Add(game.Result)

		that.logger.Info("round finished", "round", round, "game_id", game.ID, "result", game.Result.String())
	}

	that.logger.Info("match finished",
		"games", tally.Games(), "o_wins", tally.OWins, "x_wins", tally.XWins, "ties", tally.Ties)

	return tally, nil
}
