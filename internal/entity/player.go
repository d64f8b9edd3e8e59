package entity

// Mark identifies a side on the board.
type Mark string

const (
	PlayerO Mark = "O"
	PlayerX Mark = "X"
)

// Opponent - returns the other side.
func (that Mark) Opponent() Mark {
	if that == PlayerO {
		return PlayerX
	}
	return PlayerO
}

func (that Mark) String() string {
	return string(that)
}

// PlayerKind names a player implementation.
type PlayerKind string

const (
	KindHuman  PlayerKind = "human"
	KindRandom PlayerKind = "random"
	KindSearch PlayerKind = "search"
)

var PlayerKinds = []PlayerKind{KindHuman, KindRandom, KindSearch}

// IsKnown reports whether the kind names a player implementation.
func (that PlayerKind) IsKnown() bool {
	for _, kind := range PlayerKinds {
		if kind == that {
			return true
		}
	}
	return false
}
