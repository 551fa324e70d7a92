package commands

import (
	"runtime"

	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [entry]",
		Short: "Execute a pipeline entry point (format, check_format, coverage_report, ...)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			return c.app.RunTarget(cmd.Context(), workDir(cmd), args[0], runtime.NumCPU())
		},
	}
}
