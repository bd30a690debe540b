package domain

// line directions as (deltaRow, deltaCol): horizontal, vertical,
// diagonal "\" and diagonal "/"
var directions = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{-1, 1},
}

// CheckWin reports whether player owns ToWin consecutive cells in any
// row, column or diagonal. Every window is tested from scratch, so a
// longer run matches as well.
func CheckWin(board *Board, player Player) bool {
	target := player.Cell()

	for r := 0; r < board.rows; r++ {
		for c := 0; c < board.cols; c++ {
			if board.cells[r][c] != target {
				continue
			}
			for _, d := range directions {
				if windowOwned(board, r, c, d[0], d[1], target) {
					return true
				}
			}
		}
	}

	return false
}

// windowOwned checks the ToWin cells starting at (row, col) along the
// given direction
func windowOwned(board *Board, row, col, dRow, dCol int, target Cell) bool {
	endRow := row + dRow*(ToWin-1)
	endCol := col + dCol*(ToWin-1)
	if endRow < 0 || endRow >= board.rows || endCol < 0 || endCol >= board.cols {
		return false
	}

	for i := 0; i < ToWin; i++ {
		if board.cells[row+dRow*i][col+dCol*i] != target {
			return false
		}
	}
	return true
}

// LegalMoves lists the open columns in ascending order.
func LegalMoves(board *Board) []int {
	moves := make([]int, 0, board.cols)
	for col := 0; col < board.cols; col++ {
		if board.cells[0][col] == Empty {
			moves = append(moves, col)
		}
	}
	return moves
}

// GameOutcome derives the state of the game from the board alone.
func GameOutcome(board *Board) Outcome {
	if CheckWin(board, Human) {
		return Outcome{Status: StatusWon, Winner: Human}
	}
	if CheckWin(board, Computer) {
		return Outcome{Status: StatusWon, Winner: Computer}
	}
	if board.IsFull() {
		return Outcome{Status: StatusDraw}
	}
	return Outcome{Status: StatusOngoing}
}
