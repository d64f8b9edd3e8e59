package service

import "github.com/rocketscienceinc/tictactoe-console/internal/entity"

// IntnSource is the random source a RandomPlayer draws from. *rand.Rand satisfies it.
type IntnSource interface {
	Intn(n int) int
}

// RandomPlayer names any cell uniformly, taken or not; the game loop asks again on a taken cell.
type RandomPlayer struct {
	source IntnSource
}

func NewRandomPlayer(source IntnSource) *RandomPlayer {
	return &RandomPlayer{source: source}
}

func (that *RandomPlayer) NextMove(entity.Board) (int, error) {
	return that.source.Intn(entity.CellCount), nil
}
