package service

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

// Deps - what player implementations may need. The caller owns all of it.
type Deps struct {
	Logger *slog.Logger
	Input  *bufio.Reader
	Output io.Writer
	Random IntnSource
}

// NewPlayer - builds the player of the given kind for one side.
func NewPlayer(kind entity.PlayerKind, mark entity.Mark, deps Deps) (tictactoe.Player, error) {
	switch kind {
	case entity.KindHuman:
		return NewHumanPlayer(deps.Input, deps.Output, mark), nil
	case entity.KindRandom:
		return NewRandomPlayer(deps.Random), nil
	case entity.KindSearch:
		return NewSearchPlayer(deps.Logger, mark), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownPlayerKind, kind)
	}
}
