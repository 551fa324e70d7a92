package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.trai.ch/mason/internal/app"
	"go.trai.ch/mason/internal/core/domain"
)

func (c *CLI) newConfigureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "configure",
		Short: "Run the configuration pass and print a summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := c.app.Configure(cmd.Context(), workDir(cmd))
			if err != nil {
				return err
			}
			printSummary(cmd, result)
			return nil
		},
	}
}

func printSummary(cmd *cobra.Command, result *app.Result) {
	out := cmd.OutOrStdout()
	heading := color.New(color.Bold, color.FgCyan).SprintFunc()
	ok := color.New(color.FgGreen).SprintFunc()

	fmt.Fprintln(out, heading("Toolchain"))
	fmt.Fprintf(out, "  %s (%s)\n", result.Toolchain.Identity(), result.Toolchain.CompilerPath)
	if result.LinkerFlag != "" {
		fmt.Fprintf(out, "  linker: %s\n", ok(result.LinkerFlag))
	}

	fmt.Fprintln(out, heading("Supported flags"))
	fmt.Fprintf(out, "  %s\n", strings.Join(result.SupportedFlags, " "))

	fmt.Fprintln(out, heading("Targets"))
	for _, t := range result.Targets {
		fmt.Fprintf(out, "  %s (%s)\n", t.Name, t.Kind)
		for _, scope := range []domain.Scope{domain.ScopePublic, domain.ScopePrivate, domain.ScopeInterface} {
			if flags := t.Flags[scope]; len(flags) > 0 {
				fmt.Fprintf(out, "    %s flags: %s\n", scope, strings.Join(flags, " "))
			}
		}
	}

	var entries []string
	for step := range result.Graph.Walk() {
		entries = append(entries, step.ID)
	}
	sort.Strings(entries)
	fmt.Fprintln(out, heading("Pipeline steps"))
	for _, id := range entries {
		fmt.Fprintf(out, "  %s\n", id)
	}
}
