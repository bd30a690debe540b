package bot

import (
	"math"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
)

const (
	DefaultDepth = 7
	WinScore     = 1000
	LossScore    = -1000
	DrawScore    = 0
)

// Result describes the column picked by a search.
type Result struct {
	Column int
	Score  int
	Nodes  int
}

// ChooseComputerMove returns the column the computer should play. The
// board must have at least one legal move and is left unchanged.
func ChooseComputerMove(board *domain.Board, depth int) int {
	return Analyze(board, depth).Column
}

// Analyze runs the minimax search with alpha-beta pruning for the
// computer. Every legal column is scored by the evaluator starting at the
// human's ply with the full depth remaining, and the first column with
// the strictly highest score wins.
func Analyze(board *domain.Board, depth int) Result {
	if depth < 0 {
		depth = 0
	}
	s := &search{board: board.Clone()}

	bestCol := -1
	bestScore := math.MinInt

	for _, col := range domain.LegalMoves(s.board) {
		snapshot := s.board.Clone()
		if !s.board.Place(col, domain.Computer) {
			continue
		}
		s.nodes++

		score := s.minimax(depth, false, math.MinInt, math.MaxInt)
		s.board.Restore(snapshot)

		if score > bestScore {
			bestScore = score
			bestCol = col
		}
	}

	if bestCol < 0 {
		panic(domain.ErrNoLegalMoves)
	}

	return Result{Column: bestCol, Score: bestScore, Nodes: s.nodes}
}

// search owns the working copy mutated while exploring the tree
type search struct {
	board *domain.Board
	nodes int
}

// evaluate scores a terminal position from the computer's point of view
func (s *search) evaluate() int {
	if domain.CheckWin(s.board, domain.Computer) {
		return WinScore
	}
	if domain.CheckWin(s.board, domain.Human) {
		return LossScore
	}
	return DrawScore
}

func (s *search) isTerminal(depth int) bool {
	return depth == 0 ||
		domain.CheckWin(s.board, domain.Computer) ||
		domain.CheckWin(s.board, domain.Human) ||
		s.board.IsFull()
}

// minimax implements the minimax algorithm with alpha-beta pruning. The
// board is restored from a snapshot after every child, so siblings never
// observe each other's moves.
func (s *search) minimax(depth int, isMaximizing bool, alpha, beta int) int {
	if s.isTerminal(depth) {
		return s.evaluate()
	}

	if isMaximizing {
		maxEval := math.MinInt
		for _, col := range domain.LegalMoves(s.board) {
			snapshot := s.board.Clone()
			if !s.board.Place(col, domain.Computer) {
				continue
			}
			s.nodes++

			eval := s.minimax(depth-1, false, alpha, beta)
			s.board.Restore(snapshot)

			maxEval = max(maxEval, eval)
			alpha = max(alpha, eval)
			if beta <= alpha {
				break // beta cutoff
			}
		}
		return maxEval
	}

	minEval := math.MaxInt
	for _, col := range domain.LegalMoves(s.board) {
		snapshot := s.board.Clone()
		if !s.board.Place(col, domain.Human) {
			continue
		}
		s.nodes++

		eval := s.minimax(depth-1, true, alpha, beta)
		s.board.Restore(snapshot)

		minEval = min(minEval, eval)
		beta = min(beta, eval)
		if beta <= alpha {
			break // alpha cutoff
		}
	}
	return minEval
}
