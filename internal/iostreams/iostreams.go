package iostreams

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

type IOStreams struct {
	In     io.ReadCloser
	StdOut io.Writer
	StdErr io.Writer

	IsaTTY   bool // stdout is a tty
	IsErrTTY bool // stderr is a tty
	IsInTTY  bool // stdin is a tty

	is256ColorEnabled bool

	pagerCommand string
}

type IOStreamsOption func(*IOStreams)

// New builds an IOStreams. Without options it wraps the standard streams
// and assumes no terminal; callers pass WithStdout etc. to attach real
// streams and their TTY state.
func New(options ...IOStreamsOption) *IOStreams {
	ioStream := &IOStreams{
		In:     os.Stdin,
		StdOut: NewColorable(os.Stdout),
		StdErr: NewColorable(os.Stderr),
	}

	for _, opt := range options {
		opt(ioStream)
	}

	return ioStream
}

func WithStdin(stdin io.ReadCloser, isTTY bool) IOStreamsOption {
	return func(i *IOStreams) {
		i.In = stdin
		i.IsInTTY = isTTY
	}
}

func WithStdout(stdout io.Writer, isTTY bool) IOStreamsOption {
	return func(i *IOStreams) {
		i.StdOut = stdout
		i.IsaTTY = isTTY
	}
}

func WithStderr(stderr io.Writer, isTTY bool) IOStreamsOption {
	return func(i *IOStreams) {
		i.StdErr = stderr
		i.IsErrTTY = isTTY
	}
}

// WithPagerCommand records the pager command the host resolved at startup.
// The command is carried for later stages; starting the pager process is
// not this package's job.
func WithPagerCommand(cmd string) IOStreamsOption {
	return func(i *IOStreams) {
		i.pagerCommand = cmd
	}
}

func With256ColorSupport(enabled bool) IOStreamsOption {
	return func(i *IOStreams) {
		i.is256ColorEnabled = enabled
	}
}

func (s *IOStreams) PagerCommand() string {
	return s.pagerCommand
}

func (s *IOStreams) SetPager(cmd string) {
	s.pagerCommand = cmd
}

// IsOutputTTY returns true if both stdout and stderr are TTYs.
func (s *IOStreams) IsOutputTTY() bool {
	return s.IsErrTTY && s.IsaTTY
}

func (s *IOStreams) IsInputTTY() bool {
	return s.IsInTTY && s.IsaTTY && s.IsErrTTY
}

func (s *IOStreams) TerminalWidth() int {
	return TerminalWidth(s.StdOut)
}

func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// TerminalWidth measures the terminal behind w, or returns a default width
// when w is not a terminal.
func TerminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return 80
}
