package tictactoe

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// Player chooses the next cell for the side to move.
type Player interface {
	NextMove(board entity.Board) (int, error)
}

type GameController struct {
	logger *slog.Logger
	out    io.Writer

	players map[entity.Mark]Player
}

func NewGameController(logger *slog.Logger, out io.Writer, oPlayer, xPlayer Player) *GameController {
	return &GameController{
		logger: logger.With("component", "game"),
		out:    out,
		players: map[entity.Mark]Player{
			entity.PlayerO: oPlayer,
			entity.PlayerX: xPlayer,
		},
	}
}

// Run - plays one game from an empty board until a side completes a line or the board fills.
func (that *GameController) Run(ctx context.Context) (*entity.Game, error) {
	game := entity.NewGame(uuid.NewString())
	log := that.logger.With("game_id", game.ID)

	log.Info("game started")

	for game.IsOngoing() {
		if err := that.render(game.Board, true); err != nil {
			return game, err
		}

		mark := game.Turn()

		cell, err := that.nextMove(ctx, log, game.Board, mark)
		if err != nil {
			return game, err
		}

		if err = game.MakeTurn(mark, cell); err != nil {
			return game, fmt.Errorf("failed to make turn: %w", err)
		}

		log.Debug("turn made", "mark", mark, "cell", cell)
	}

	if err := that.render(game.Board, false); err != nil {
		return game, err
	}

	log.Info("game finished", "result", game.Result.String(), "moves", game.Moves)

	return game, nil
}

// nextMove - queries the side's player until it names a free cell.
func (that *GameController) nextMove(ctx context.Context, log *slog.Logger, board entity.Board, mark entity.Mark) (int, error) {
	player := that.players[mark]

	for {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("game interrupted: %w", err)
		}

		cell, err := player.NextMove(board)
		if err != nil {
			return 0, fmt.Errorf("player %s failed to choose a move: %w", mark, err)
		}

		if entity.IsValidCell(cell) && !board.IsOccupied(cell) {
			return cell, nil
		}

		log.Debug("move rejected, asking again", "mark", mark, "cell", cell)
	}
}

func (that *GameController) render(board entity.Board, gap bool) error {
	if err := RenderBoard(that.out, board); err != nil {
		return err
	}

	if gap {
		if _, err := fmt.Fprintln(that.out); err != nil {
			return fmt.Errorf("failed to write board: %w", err)
		}
	}

	return nil
}
