package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// assertGravity fails when any column has an empty cell below a filled one.
func assertGravity(t *testing.T, b *Board) {
	t.Helper()
	for c := 0; c < b.Cols(); c++ {
		seenPiece := false
		for r := 0; r < b.Rows(); r++ {
			if b.CellAt(r, c) != Empty {
				seenPiece = true
			} else if seenPiece {
				t.Fatalf("floating piece above empty cell (%d,%d)", r, c)
			}
		}
	}
}

func TestNewBoardIsEmpty(t *testing.T) {
	b := NewBoard(8, 8)

	if b.Rows() != 8 || b.Cols() != 8 {
		t.Fatalf("expected 8x8 board, got %dx%d", b.Rows(), b.Cols())
	}
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if b.CellAt(r, c) != Empty {
				t.Fatalf("expected empty cell at (%d,%d)", r, c)
			}
		}
	}
	if _, _, ok := b.LastMove(); ok {
		t.Fatal("expected no last move on a fresh board")
	}
	if b.IsFull() {
		t.Fatal("fresh board should not be full")
	}
}

func TestNewBoardPanicsOnBadDimensions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero rows")
		}
	}()
	NewBoard(0, 7)
}

func TestPlaceDropsToLowestEmptyCell(t *testing.T) {
	b := NewBoard(6, 7)

	if !b.Place(2, Human) {
		t.Fatal("expected first placement to succeed")
	}
	if got := b.CellAt(5, 2); got != Human.Cell() {
		t.Fatalf("expected human piece at bottom, got %v", got)
	}
	if !b.Place(2, Computer) {
		t.Fatal("expected second placement to succeed")
	}
	if got := b.CellAt(4, 2); got != Computer.Cell() {
		t.Fatalf("expected computer piece stacked on top, got %v", got)
	}

	row, col, ok := b.LastMove()
	if !ok || row != 4 || col != 2 {
		t.Fatalf("expected last move (4,2), got (%d,%d) ok=%v", row, col, ok)
	}
}

func TestPlaceRejectsOutOfRange(t *testing.T) {
	b := NewBoard(8, 8)
	before := b.Grid()

	for _, col := range []int{-1, 8, 100} {
		if b.Place(col, Human) {
			t.Fatalf("expected placement in column %d to fail", col)
		}
	}
	if diff := cmp.Diff(before, b.Grid()); diff != "" {
		t.Fatalf("board changed after rejected placement (-want +got):\n%s", diff)
	}
}

func TestPlaceFullColumn(t *testing.T) {
	b := NewBoard(8, 8)

	for i := 0; i < 8; i++ {
		p := Human
		if i%2 == 1 {
			p = Computer
		}
		if !b.Place(5, p) {
			t.Fatalf("placement %d in column 5 should succeed", i+1)
		}
	}

	before := b.Grid()
	lastRow, lastCol, _ := b.LastMove()

	if b.Place(5, Human) {
		t.Fatal("ninth placement in an 8-row column should fail")
	}
	if diff := cmp.Diff(before, b.Grid()); diff != "" {
		t.Fatalf("board changed after placing in full column (-want +got):\n%s", diff)
	}
	if r, c, _ := b.LastMove(); r != lastRow || c != lastCol {
		t.Fatalf("last move changed to (%d,%d)", r, c)
	}
	if b.CanPlace(5) {
		t.Fatal("full column should not accept pieces")
	}
}

func TestIsFull(t *testing.T) {
	b := NewBoard(2, 3)
	for c := 0; c < 3; c++ {
		b.Place(c, Human)
		b.Place(c, Computer)
	}
	if !b.IsFull() {
		t.Fatal("expected board to be full")
	}
	if len(LegalMoves(b)) != 0 {
		t.Fatal("full board should have no legal moves")
	}
}

func TestGravityHoldsForAnyPlacementSequence(t *testing.T) {
	b := NewBoard(6, 7)
	// a fixed pseudo-random column sequence, including invalid columns
	cols := []int{3, 3, 0, 6, 9, -2, 3, 4, 4, 1, 3, 3, 3, 2, 5, 5, 0, 0, 6, 6, 6, 6, 6, 6, 6}

	player := Human
	for _, col := range cols {
		if b.Place(col, player) {
			player = player.Opponent()
		}
		assertGravity(t, b)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewBoard(4, 4)
	b.Place(0, Human)

	snapshot := b.Clone()
	b.Place(1, Computer)

	if snapshot.CellAt(3, 1) != Empty {
		t.Fatal("clone observed a placement made on the original")
	}
	if r, c, _ := snapshot.LastMove(); r != 3 || c != 0 {
		t.Fatalf("clone last move changed to (%d,%d)", r, c)
	}

	snapshot.Place(3, Computer)
	if b.CellAt(3, 3) != Empty {
		t.Fatal("original observed a placement made on the clone")
	}
}

func TestRestoreRevertsToSnapshot(t *testing.T) {
	b := NewBoard(5, 5)
	b.Place(2, Human)
	snapshot := b.Clone()

	b.Place(2, Computer)
	b.Place(4, Human)
	b.Restore(snapshot)

	if diff := cmp.Diff(snapshot.Grid(), b.Grid()); diff != "" {
		t.Fatalf("restore mismatch (-want +got):\n%s", diff)
	}
	if r, c, _ := b.LastMove(); r != 4 || c != 2 {
		t.Fatalf("expected last move (4,2) after restore, got (%d,%d)", r, c)
	}
}
