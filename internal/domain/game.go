package domain

// Game tracks whose turn it is on top of a Board. The outcome is always
// re-derived from the board after a move.
type Game struct {
	Board         *Board
	CurrentPlayer Player
	MoveCount     int
}

func NewGame(rows, cols int, first Player) *Game {
	return &Game{
		Board:         NewBoard(rows, cols),
		CurrentPlayer: first,
		MoveCount:     0,
	}
}

// MakeMove places a piece for the current player and passes the turn
// unless the move ended the game.
func (g *Game) MakeMove(column int) error {
	if g.IsFinished() {
		return ErrGameOver
	}

	if column < 0 || column >= g.Board.Cols() {
		return ErrInvalidMove
	}

	if !g.Board.Place(column, g.CurrentPlayer) {
		return ErrColumnFull
	}

	g.MoveCount++

	if g.IsFinished() {
		return nil
	}

	g.CurrentPlayer = g.CurrentPlayer.Opponent()
	return nil
}

func (g *Game) Outcome() Outcome {
	return GameOutcome(g.Board)
}

func (g *Game) IsFinished() bool {
	return g.Outcome().IsTerminal()
}
