package commands

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/prism-view/prism/internal/cmdutils"
	envCmd "github.com/prism-view/prism/internal/commands/env"
	versionCmd "github.com/prism-view/prism/internal/commands/version"
)

func NewCmdRoot(f cmdutils.Factory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "prism <command> [flags]",
		Short: "A syntax-highlighting pager for git diff output.",
		Long: heredoc.Doc(`Prism renders git diff output with syntax highlighting and pages it
through your preferred pager.

Prism reads its configuration from environment variables once at startup;
run 'prism env' to see what it captured.
`),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion, _ := cmd.Flags().GetBool("version"); showVersion {
				buildInfo := f.BuildInfo()
				fmt.Fprint(f.IO().StdOut, versionCmd.Scheme(buildInfo.Version, buildInfo.Commit))
				return nil
			}
			return cmd.Help()
		},
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		if err == pflag.ErrHelp {
			return err
		}
		return &cmdutils.FlagError{Err: err}
	})

	rootCmd.Flags().BoolP("version", "v", false, "Show prism version information.")

	rootCmd.AddCommand(envCmd.NewCmdEnv(f))
	rootCmd.AddCommand(versionCmd.NewCmdVersion(f))

	return rootCmd
}
