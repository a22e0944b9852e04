package env

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/prism-view/prism/internal/cmdutils"
	"github.com/prism-view/prism/internal/tableprinter"
)

func NewCmdEnv(f cmdutils.Factory) *cobra.Command {
	var pagerOnly bool

	envCmd := &cobra.Command{
		Use:   "env [flags]",
		Short: "Show the environment prism captured at startup.",
		Long: heredoc.Doc(`Show the environment snapshot prism took when it started.

The snapshot is read once and never refreshed; this command displays what
later stages of prism will see, which may differ from the current shell
environment. The resolved pager line is the command prism would page its
output through, after replacing pagers that mangle colored output and
anything that would make prism page itself.
`),
		Example: heredoc.Doc(`
			# Show every captured variable
			$ prism env

			# Print only the resolved pager command
			$ prism env --pager-only
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot := f.Env()
			streams := f.IO()

			if pagerOnly {
				fmt.Fprintln(streams.StdOut, snapshot.Pagers.Fallback)
				return nil
			}

			c := streams.Color()
			unset := c.Gray("(unset)")
			display := func(v *string) string {
				if v == nil {
					return unset
				}
				return *v
			}

			tp := tableprinter.NewTablePrinter()
			tp.SetIsTTY(streams.IsaTTY)
			tp.SetTerminalWidth(streams.TerminalWidth())

			tp.AddCell(c.Bold("BAT_THEME"))
			tp.AddCell(display(snapshot.BatTheme))
			tp.EndRow()
			tp.AddCell(c.Bold("COLORTERM"))
			tp.AddCell(display(snapshot.ColorTerm))
			tp.EndRow()
			tp.AddCell(c.Bold("GIT_CONFIG_PARAMETERS"))
			tp.AddCell(display(snapshot.GitConfigParameters))
			tp.EndRow()
			tp.AddCell(c.Bold("GIT_PREFIX"))
			tp.AddCell(display(snapshot.GitPrefix))
			tp.EndRow()
			tp.AddCell(c.Bold("PRISM_FEATURES"))
			tp.AddCell(display(snapshot.Features))
			tp.EndRow()
			tp.AddCell(c.Bold("PRISM_NAVIGATE"))
			tp.AddCell(display(snapshot.Navigate))
			tp.EndRow()
			tp.AddCell(c.Bold("PRISM_EXPERIMENTAL_MAX_LINE_DISTANCE_FOR_NAIVELY_PAIRED_LINES"))
			tp.AddCell(display(snapshot.MaxLineDistance))
			tp.EndRow()
			tp.AddCell(c.Bold("PRISM_PAGER"))
			tp.AddCell(display(snapshot.Pagers.Primary))
			tp.EndRow()
			tp.AddCell(c.Bold("resolved pager"))
			tp.AddCell(snapshot.Pagers.Fallback)
			tp.EndRow()
			tp.AddCell(c.Bold("working directory"))
			tp.AddCell(display(snapshot.CurrentDir))
			tp.EndRow()
			tp.AddCell(c.Bold("hostname"))
			tp.AddCell(display(snapshot.Hostname))
			tp.EndRow()

			_, err := streams.StdOut.Write(tp.Bytes())
			return err
		},
	}

	envCmd.Flags().BoolVar(&pagerOnly, "pager-only", false, "Print only the resolved pager command.")

	return envCmd
}
