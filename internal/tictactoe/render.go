package tictactoe

import (
	"fmt"
	"io"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const rowSeparator = "------"

// RenderBoard - writes the grid as three |a|b|c| rows, each followed by a rule.
func RenderBoard(w io.Writer, board entity.Board) error {
	for row := 0; row < 3; row++ {
		first := row * 3
		if _, err := fmt.Fprintf(w, "|%s|%s|%s|\n%s\n",
			letterAt(board, first), letterAt(board, first+1), letterAt(board, first+2), rowSeparator,
		); err != nil {
			return fmt.Errorf("failed to write board: %w", err)
		}
	}

	return nil
}

func letterAt(board entity.Board, cell int) string {
	if mark := board.MarkAt(cell); mark != "" {
		return mark.String()
	}
	return " "
}
