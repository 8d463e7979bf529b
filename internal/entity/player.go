package entity

// Player identifies a side of the game. NoPlayer is the zero value and means
// the side has not been decided yet.
type Player int

const (
	NoPlayer Player = iota
	User
	Computer
)

// Opponent returns the other side. NoPlayer has no opponent.
func (that Player) Opponent() Player {
	switch that {
	case User:
		return Computer
	case Computer:
		return User
	case NoPlayer:
		return NoPlayer
	}

	return NoPlayer
}

func (that Player) String() string {
	switch that {
	case User:
		return "user"
	case Computer:
		return "computer"
	case NoPlayer:
		return "none"
	}

	return "unknown"
}
