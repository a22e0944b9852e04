//go:build !integration

package tableprinter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ttyTablePrinter(t *testing.T) {
	tp := NewTablePrinter()
	tp.SetIsTTY(true)
	tp.SetTTYSeparator(" ")
	tp.SetTerminalWidth(40)

	tp.AddCell("PAGER")
	tp.AddCell("less -R")
	tp.EndRow()
	tp.AddCell("BAT_THEME")
	tp.AddCell("ansi")
	tp.EndRow()

	expected := "PAGER     less -R\nBAT_THEME ansi\n"
	assert.Equal(t, expected, tp.String())
}

func Test_ttyTablePrinter_truncate(t *testing.T) {
	tp := NewTablePrinter()
	tp.SetIsTTY(true)
	tp.SetTTYSeparator(" ")
	tp.SetTerminalWidth(10)

	tp.AddCell("1")
	tp.AddCell("hello world")
	tp.EndRow()
	tp.AddCell("2")
	tp.AddCell("bye")
	tp.EndRow()

	expected := "1 hello...\n2 bye\n"
	assert.Equal(t, expected, tp.String())
}

func Test_ttyTablePrinter_coloredCells(t *testing.T) {
	tp := NewTablePrinter()
	tp.SetIsTTY(true)
	tp.SetTTYSeparator(" ")
	tp.SetTerminalWidth(40)

	// Color sequences must not count toward column widths.
	tp.AddCell("\x1b[1mPAGER\x1b[0m")
	tp.AddCell("less")
	tp.EndRow()
	tp.AddCell("BAT_THEME")
	tp.AddCell("ansi")
	tp.EndRow()

	expected := "\x1b[1mPAGER\x1b[0m     less\nBAT_THEME ansi\n"
	assert.Equal(t, expected, tp.String())
}

func Test_nonTTYTablePrinter(t *testing.T) {
	tp := NewTablePrinter()
	tp.SetTerminalWidth(10)

	tp.AddCell("1")
	tp.AddCell("hello world")
	tp.EndRow()
	tp.AddCellf("%d", 2)
	tp.AddCell("bye")
	tp.EndRow()

	expected := "1\thello world\n2\tbye\n"
	assert.Equal(t, expected, tp.String())
}
