package entity

// Message is the outcome of one View pass. The set of variants is closed:
// CellClicked, PlayerOrderChosen and NoMessage.
type Message interface {
	isMessage()
}

// CellClicked carries the cell picked by the user.
type CellClicked struct {
	Index int
}

// PlayerOrderChosen carries the answer to "do you want to play first?".
type PlayerOrderChosen struct {
	UserFirst bool
}

// NoMessage is returned by the final render of a finished game.
type NoMessage struct{}

func (CellClicked) isMessage()       {}
func (PlayerOrderChosen) isMessage() {}
func (NoMessage) isMessage()         {}
