package main

import (
	"errors"
	"os"
	"runtime"

	"github.com/prism-view/prism/internal/cmdutils"
	"github.com/prism-view/prism/internal/commands"
	"github.com/prism-view/prism/internal/dbg"
	"github.com/prism-view/prism/internal/env"
	"github.com/prism-view/prism/internal/iostreams"
)

var (
	// version is set dynamically at build
	version = "DEV"
	// commit is set dynamically at build
	commit string
	// platform is set dynamically at build
	platform = runtime.GOOS
)

func main() {
	// The snapshot is taken before anything else runs; every later stage
	// reads from it rather than from the live environment.
	snapshot := env.Init()

	pagerCommand := snapshot.Pagers.Fallback
	if snapshot.Pagers.Primary != nil {
		pagerCommand = *snapshot.Pagers.Primary
	}
	dbg.Debugf("using pager command %q", pagerCommand)

	colorTerm := ""
	if snapshot.ColorTerm != nil {
		colorTerm = *snapshot.ColorTerm
	}

	ios := iostreams.New(
		iostreams.WithStdin(os.Stdin, iostreams.IsTerminal(os.Stdin)),
		iostreams.WithStdout(iostreams.NewColorable(os.Stdout), iostreams.IsTerminal(os.Stdout)),
		iostreams.WithStderr(iostreams.NewColorable(os.Stderr), iostreams.IsTerminal(os.Stderr)),
		iostreams.WithPagerCommand(pagerCommand),
		iostreams.With256ColorSupport(iostreams.Is256ColorSupported(os.Getenv("TERM"), colorTerm)),
	)

	cmdFactory := cmdutils.NewFactory(ios, snapshot, cmdutils.BuildInfo{
		Version:  version,
		Commit:   commit,
		Platform: platform,
	})

	rootCmd := commands.NewCmdRoot(cmdFactory)
	if err := rootCmd.Execute(); err != nil {
		var exitErr *cmdutils.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Details != "" {
				ios.LogError(exitErr.Details)
			}
			os.Exit(exitErr.Code)
		}
		ios.LogError(err.Error())
		os.Exit(1)
	}
}
