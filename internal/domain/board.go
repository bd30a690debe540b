package domain

import "fmt"

// Board is a rows x cols grid. Row 0 is the top row and pieces fall
// towards the highest row index.
type Board struct {
	rows    int
	cols    int
	cells   [][]Cell
	lastRow int
	lastCol int
}

func NewBoard(rows, cols int) *Board {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("domain: invalid board dimensions %dx%d", rows, cols))
	}

	cells := make([][]Cell, rows)
	for i := range cells {
		cells[i] = make([]Cell, cols)
	}
	return &Board{
		rows:    rows,
		cols:    cols,
		cells:   cells,
		lastRow: -1,
		lastCol: -1,
	}
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

// CellAt expects an in-range position.
func (b *Board) CellAt(row, col int) Cell {
	return b.cells[row][col]
}

// CanPlace reports whether column is in range and its top cell is empty.
func (b *Board) CanPlace(column int) bool {
	if column < 0 || column >= b.cols {
		return false
	}

	// here cells[0] represents the top row
	return b.cells[0][column] == Empty
}

// Place drops a piece of player into column. It returns false and leaves
// the board untouched when the column is out of range or already full.
func (b *Board) Place(column int, player Player) bool {
	if !b.CanPlace(column) {
		return false
	}

	// shifting the disk from the bottom up till it finds a free cell
	for row := b.rows - 1; row >= 0; row-- {
		if b.cells[row][column] == Empty {
			b.cells[row][column] = player.Cell()
			b.lastRow, b.lastCol = row, column
			return true
		}
	}

	return false
}

func (b *Board) IsFull() bool {
	for c := 0; c < b.cols; c++ {
		if b.cells[0][c] == Empty {
			return false
		}
	}

	return true
}

// LastMove returns the most recently filled cell. ok is false before the
// first placement.
func (b *Board) LastMove() (row, col int, ok bool) {
	if b.lastRow < 0 {
		return -1, -1, false
	}
	return b.lastRow, b.lastCol, true
}

// this creates a deep copy of the board
func (b *Board) Clone() *Board {
	cells := make([][]Cell, b.rows)
	for i := range b.cells {
		cells[i] = make([]Cell, b.cols)
		copy(cells[i], b.cells[i])
	}
	return &Board{
		rows:    b.rows,
		cols:    b.cols,
		cells:   cells,
		lastRow: b.lastRow,
		lastCol: b.lastCol,
	}
}

// Restore overwrites the board with the contents of a snapshot taken
// earlier with Clone. Both boards must have the same dimensions.
func (b *Board) Restore(snapshot *Board) {
	if snapshot.rows != b.rows || snapshot.cols != b.cols {
		panic(fmt.Sprintf("domain: cannot restore %dx%d snapshot into %dx%d board",
			snapshot.rows, snapshot.cols, b.rows, b.cols))
	}

	for i := range b.cells {
		copy(b.cells[i], snapshot.cells[i])
	}
	b.lastRow, b.lastCol = snapshot.lastRow, snapshot.lastCol
}

// Grid returns a copy of the cells as plain integers, row 0 first.
func (b *Board) Grid() [][]int {
	grid := make([][]int, b.rows)
	for r := range b.cells {
		grid[r] = make([]int, b.cols)
		for c, cell := range b.cells[r] {
			grid[r][c] = int(cell)
		}
	}
	return grid
}
