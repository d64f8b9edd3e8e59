package service

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var ErrInputClosed = errors.New("input closed")

// HumanPlayer reads a cell index from the console. The number is not range checked here.
type HumanPlayer struct {
	in   *bufio.Reader
	out  io.Writer
	mark entity.Mark
}

func NewHumanPlayer(in *bufio.Reader, out io.Writer, mark entity.Mark) *HumanPlayer {
	return &HumanPlayer{
		in:   in,
		out:  out,
		mark: mark,
	}
}

func (that *HumanPlayer) NextMove(entity.Board) (int, error) {
	if _, err := fmt.Fprintf(that.out, "Player %s, choose a cell (0-8): ", that.mark); err != nil {
		return 0, fmt.Errorf("failed to write prompt: %w", err)
	}

	var cell int
	if _, err := fmt.Fscan(that.in, &cell); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, ErrInputClosed
		}
		return 0, fmt.Errorf("%w: %w", apperror.ErrInvalidInput, err)
	}

	return cell, nil
}
