package cmdutils

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/prism-view/prism/internal/env"
	"github.com/prism-view/prism/internal/iostreams"
)

// BuildInfo describes the running binary. The fields are stamped at build
// time via -ldflags.
type BuildInfo struct {
	Version  string
	Commit   string
	Platform string
}

func (b BuildInfo) UserAgent() string {
	platform := b.Platform
	if platform == "" {
		platform = runtime.GOOS
	}
	return fmt.Sprintf("prism/%s (%s)", strings.TrimPrefix(b.Version, "v"), platform)
}

// Factory is a way to obtain core tools for the commands.
// Safe for concurrent use.
type Factory interface {
	IO() *iostreams.IOStreams
	// Env returns the environment snapshot taken at startup. Commands read
	// from it instead of the live process environment.
	Env() env.Snapshot
	BuildInfo() BuildInfo
}

type DefaultFactory struct {
	io        *iostreams.IOStreams
	env       env.Snapshot
	buildInfo BuildInfo
}

func NewFactory(io *iostreams.IOStreams, snapshot env.Snapshot, buildInfo BuildInfo) *DefaultFactory {
	return &DefaultFactory{
		io:        io,
		env:       snapshot,
		buildInfo: buildInfo,
	}
}

func (f *DefaultFactory) IO() *iostreams.IOStreams {
	return f.io
}

func (f *DefaultFactory) Env() env.Snapshot {
	return f.env
}

func (f *DefaultFactory) BuildInfo() BuildInfo {
	return f.buildInfo
}
