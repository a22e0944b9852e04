package iostreams

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mgutz/ansi"
)

type ColorPalette struct {
	// Magenta outputs ANSI color if stdout is a tty
	Magenta func(string) string
	// Cyan outputs ANSI color if stdout is a tty
	Cyan func(string) string
	// Red outputs ANSI color if stdout is a tty
	Red func(string) string
	// Yellow outputs ANSI color if stdout is a tty
	Yellow func(string) string
	// Blue outputs ANSI color if stdout is a tty
	Blue func(string) string
	// Green outputs ANSI color if stdout is a tty
	Green func(string) string
	// Gray outputs ANSI color if stdout is a tty
	Gray func(string) string
	// Bold outputs ANSI color if stdout is a tty
	Bold func(string) string
}

func (s *IOStreams) Color() *ColorPalette {
	colorEnabled := s.ColorEnabled()
	return &ColorPalette{
		Magenta: s.makeColorFunc(colorEnabled, "magenta"),
		Cyan:    s.makeColorFunc(colorEnabled, "cyan"),
		Red:     s.makeColorFunc(colorEnabled, "red"),
		Yellow:  s.makeColorFunc(colorEnabled, "yellow"),
		Blue:    s.makeColorFunc(colorEnabled, "blue"),
		Green:   s.makeColorFunc(colorEnabled, "green"),
		Gray:    s.makeColorFunc(colorEnabled, "black+h"),
		Bold:    s.makeColorFunc(colorEnabled, "default+b"),
	}
}

func (s *IOStreams) ColorEnabled() bool {
	return detectIsColorEnabled() && s.IsaTTY && s.IsErrTTY
}

func (s *IOStreams) Is256ColorSupported() bool {
	return s.is256ColorEnabled
}

// NewColorable returns an output stream that handles ANSI color sequences on Windows
func NewColorable(out io.Writer) io.Writer {
	if outFile, isFile := out.(*os.File); isFile {
		return colorable.NewColorable(outFile)
	}
	return out
}

func (s *IOStreams) makeColorFunc(colorEnabled bool, color string) func(string) string {
	if colorEnabled && color == "black+h" && s.is256ColorEnabled {
		return func(t string) string {
			return fmt.Sprintf("\x1b[%d;5;%dm%s\x1b[m", 38, 242, t)
		}
	}

	cf := ansi.ColorFunc(color)
	return func(arg string) string {
		if colorEnabled {
			return cf(arg)
		}
		return arg
	}
}

// detectIsColorEnabled follows the NO_COLOR specification
// (https://no-color.org/): any NO_COLOR value disables color unless
// COLOR_ENABLED is set to "1" or "true" as an explicit override.
func detectIsColorEnabled() bool {
	_, noColorVarExists := os.LookupEnv("NO_COLOR")

	if noColorVarExists {
		colorEnabled := os.Getenv("COLOR_ENABLED")
		return colorEnabled == "1" || colorEnabled == "true"
	}

	return true
}

// Is256ColorSupported reports whether the given TERM and COLORTERM values
// advertise 256-color or better support. The caller hands in the values it
// captured at startup; this function does not read the environment.
func Is256ColorSupported(term, colorterm string) bool {
	return strings.Contains(term, "256") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "truecolor") ||
		strings.Contains(colorterm, "256") ||
		strings.Contains(colorterm, "24bit") ||
		strings.Contains(colorterm, "truecolor")
}
