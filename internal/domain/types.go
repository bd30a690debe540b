package domain

// Cell is the state of a single board position.
type Cell int

const (
	Empty Cell = 0
)

// Player identifies one side of the game. Empty is never a player.
type Player int

const (
	Human    Player = 1
	Computer Player = 2
)

const ToWin = 4

// Cell returns the cell state a piece of p occupies.
func (p Player) Cell() Cell {
	return Cell(p)
}

func (p Player) Opponent() Player {
	if p == Human {
		return Computer
	}
	return Human
}

func (p Player) String() string {
	switch p {
	case Human:
		return "player"
	case Computer:
		return "ai"
	default:
		return "unknown"
	}
}

// to represent the game status
type GameStatus string

const (
	StatusOngoing GameStatus = "ongoing"
	StatusWon     GameStatus = "won"
	StatusDraw    GameStatus = "draw"
)

// Outcome is derived from board contents, never stored on the board.
// Winner is only meaningful when Status is StatusWon.
type Outcome struct {
	Status GameStatus
	Winner Player
}

func (o Outcome) IsTerminal() bool {
	return o.Status != StatusOngoing
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove  Error = "invalid move"
	ErrColumnFull   Error = "column is full"
	ErrGameOver     Error = "game is over"
	ErrNoLegalMoves Error = "no legal moves available"
)
