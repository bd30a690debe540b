// Package render draws boards as plain text for terminal play.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
)

// Board writes one line per row followed by a footer of column numbers.
// The piece placed last is shown in lower case.
func Board(w io.Writer, b *domain.Board) error {
	width := len(strconv.Itoa(b.Cols() - 1))
	lastRow, lastCol, hasLast := b.LastMove()

	bw := bufio.NewWriter(w)
	for r := 0; r < b.Rows(); r++ {
		cells := make([]string, b.Cols())
		for c := 0; c < b.Cols(); c++ {
			symbol := Symbol(b.CellAt(r, c))
			if hasLast && r == lastRow && c == lastCol {
				symbol = strings.ToLower(symbol)
			}
			cells[c] = pad(symbol, width)
		}
		fmt.Fprintln(bw, strings.TrimRight(strings.Join(cells, " "), " "))
	}

	footer := make([]string, b.Cols())
	for c := range footer {
		footer[c] = pad(strconv.Itoa(c), width)
	}
	fmt.Fprintln(bw, strings.TrimRight(strings.Join(footer, " "), " "))

	return bw.Flush()
}

func Symbol(cell domain.Cell) string {
	switch cell {
	case domain.Human.Cell():
		return "X"
	case domain.Computer.Cell():
		return "O"
	default:
		return "."
	}
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
