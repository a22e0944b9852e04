package cmdtest

import (
	"bytes"
	"io"

	"github.com/google/shlex"
	"github.com/spf13/cobra"

	"github.com/prism-view/prism/internal/cmdutils"
	"github.com/prism-view/prism/internal/env"
	"github.com/prism-view/prism/internal/iostreams"
)

// CmdOut captures what a command wrote to its streams.
type CmdOut struct {
	OutBuf, ErrBuf *bytes.Buffer
}

func (c *CmdOut) String() string {
	return c.OutBuf.String()
}

func (c *CmdOut) Stderr() string {
	return c.ErrBuf.String()
}

// TestIOStreams returns streams backed by buffers, not treated as TTYs.
// Options can override individual streams or the TTY flags.
func TestIOStreams(options ...iostreams.IOStreamsOption) (*iostreams.IOStreams, *bytes.Buffer, *bytes.Buffer, *bytes.Buffer) {
	in := &bytes.Buffer{}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	opts := []iostreams.IOStreamsOption{
		iostreams.WithStdin(io.NopCloser(in), false),
		iostreams.WithStdout(out, false),
		iostreams.WithStderr(errOut, false),
	}
	opts = append(opts, options...)

	ios := iostreams.New(opts...)

	return ios, in, out, errOut
}

// WithTestIOStreamsAsTTY marks stdin, stdout and stderr as TTYs. Use
// iostreams.WithStdout etc. to flip a single stream instead.
func WithTestIOStreamsAsTTY(asTTY bool) iostreams.IOStreamsOption {
	return func(i *iostreams.IOStreams) {
		i.IsInTTY = asTTY
		i.IsaTTY = asTTY
		i.IsErrTTY = asTTY
	}
}

// Factory is a cmdutils.Factory for tests.
type Factory struct {
	IOStub        *iostreams.IOStreams
	EnvStub       env.Snapshot
	BuildInfoStub cmdutils.BuildInfo
}

func (f *Factory) IO() *iostreams.IOStreams {
	return f.IOStub
}

func (f *Factory) Env() env.Snapshot {
	return f.EnvStub
}

func (f *Factory) BuildInfo() cmdutils.BuildInfo {
	return f.BuildInfoStub
}

// RunCommand executes cmd with a shell-style argument string.
func RunCommand(cmd *cobra.Command, cli string, out, errOut *bytes.Buffer) (*CmdOut, error) {
	argv, err := shlex.Split(cli)
	if err != nil {
		return nil, err
	}
	cmd.SetArgs(argv)
	_, err = cmd.ExecuteC()

	return &CmdOut{
		OutBuf: out,
		ErrBuf: errOut,
	}, err
}
