package entity

const BoardSize = 9

// Mark is the occupancy of a single cell. First belongs to whichever player
// moved first in the current game, Second to the other one.
type Mark int

const (
	Empty Mark = iota
	First
	Second
)

// Symbol returns the character used to draw the mark on the board.
func (that Mark) Symbol() rune {
	switch that {
	case First:
		return 'o'
	case Second:
		return 'x'
	case Empty:
		return ' '
	}

	return '?'
}

// Board is a 3x3 grid stored row by row: 0-2, 3-5, 6-8.
type Board [BoardSize]Mark

// Place returns a copy of the board with mark written at index.
func (that Board) Place(index int, mark Mark) Board {
	that[index] = mark
	return that
}

type StatusKind int

const (
	NotFinished StatusKind = iota
	Draw
	Settled
)

// GameStatus is NotFinished, Draw, or Settled with a winner.
// Winner is only meaningful for Settled.
type GameStatus struct {
	Kind   StatusKind
	Winner Player
}

func StatusNotFinished() GameStatus {
	return GameStatus{Kind: NotFinished}
}

func StatusDraw() GameStatus {
	return GameStatus{Kind: Draw}
}

func StatusSettled(winner Player) GameStatus {
	return GameStatus{Kind: Settled, Winner: winner}
}

func (that GameStatus) IsFinished() bool {
	return that.Kind == Draw || that.Kind == Settled
}

func (that GameStatus) String() string {
	switch that.Kind {
	case NotFinished:
		return "not_finished"
	case Draw:
		return "draw"
	case Settled:
		return "settled:" + that.Winner.String()
	}

	return "unknown"
}

// GameModel is the whole state of one game. It is a value: every step
// produces a new GameModel instead of mutating the previous one.
type GameModel struct {
	FirstPlayer Player
	Board       Board
	Status      GameStatus
}

// NewGameModel builds a model from all of its fields.
func NewGameModel(firstPlayer Player, board Board, status GameStatus) GameModel {
	return GameModel{
		FirstPlayer: firstPlayer,
		Board:       board,
		Status:      status,
	}
}

// NewGame returns the state at program start: no order chosen, empty board.
func NewGame() GameModel {
	return NewGameModel(NoPlayer, Board{}, StatusNotFinished())
}

func (that GameModel) HasFirstPlayer() bool {
	return that.FirstPlayer != NoPlayer
}

// MarkOf returns the mark used by player in this game.
func (that GameModel) MarkOf(player Player) Mark {
	if player == that.FirstPlayer {
		return First
	}

	return Second
}
