package tableprinter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/acarl005/stripansi"
	"github.com/mattn/go-runewidth"
)

// TablePrinter renders rows of cells. On a TTY the columns are padded and
// each row is truncated to the terminal width; otherwise cells are joined
// with tabs so the output stays machine-readable.
type TablePrinter struct {
	rows      [][]string
	current   []string
	isTTY     bool
	separator string
	maxWidth  int
}

func NewTablePrinter() *TablePrinter {
	return &TablePrinter{
		separator: "  ",
		maxWidth:  80,
	}
}

func (t *TablePrinter) SetIsTTY(isTTY bool) {
	t.isTTY = isTTY
}

func (t *TablePrinter) SetTTYSeparator(sep string) {
	t.separator = sep
}

func (t *TablePrinter) SetTerminalWidth(width int) {
	t.maxWidth = width
}

func (t *TablePrinter) AddCell(s string) {
	t.current = append(t.current, s)
}

func (t *TablePrinter) AddCellf(format string, a ...any) {
	t.AddCell(fmt.Sprintf(format, a...))
}

func (t *TablePrinter) EndRow() {
	t.rows = append(t.rows, t.current)
	t.current = nil
}

func (t *TablePrinter) Bytes() []byte {
	buf := &bytes.Buffer{}

	if !t.isTTY {
		for _, row := range t.rows {
			fmt.Fprintln(buf, strings.Join(row, "\t"))
		}
		return buf.Bytes()
	}

	widths := t.columnWidths()
	for _, row := range t.rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			if i < len(row)-1 {
				if gap := widths[i] - displayWidth(cell); gap > 0 {
					cell += strings.Repeat(" ", gap)
				}
			}
			cells[i] = cell
		}
		line := strings.Join(cells, t.separator)
		if displayWidth(line) > t.maxWidth {
			line = runewidth.Truncate(line, t.maxWidth, "...")
		}
		fmt.Fprintln(buf, line)
	}
	return buf.Bytes()
}

func (t *TablePrinter) String() string {
	return string(t.Bytes())
}

func (t *TablePrinter) columnWidths() []int {
	var widths []int
	for _, row := range t.rows {
		for i, cell := range row {
			if i == len(widths) {
				widths = append(widths, 0)
			}
			if w := displayWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// displayWidth measures a cell as the terminal renders it, ignoring ANSI
// color sequences.
func displayWidth(s string) int {
	return runewidth.StringWidth(stripansi.Strip(s))
}
