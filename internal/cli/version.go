package cli

import (
	"fmt"

	"github.com/ariel-frischer/pkgctl/internal/build"
	"github.com/ariel-frischer/pkgctl/internal/cli/shared"
	"github.com/ariel-frischer/pkgctl/internal/output"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Display version information (v)",
		Long:    "Display version, commit, build date, and Go version information for pkgctl",
		Example: `  # Show version info
  pkgctl version

  # Plain output (for scripts)
  pkgctl version --plain`,
		GroupID: shared.GroupGettingStarted,
		Args:    shared.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if plain {
				fmt.Fprintf(out, "pkgctl %s\n", build.Version)
				for _, f := range build.Fields()[1:] {
					fmt.Fprintf(out, "%s: %s\n", f[0], f[1])
				}
				return nil
			}

			output.PrintSectionHeader(out, "pkgctl")
			for _, f := range build.Fields() {
				output.PrintField(out, f[0], 8, f[1])
			}
			output.PrintField(out, "source", 8, build.SourceURL)
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "Plain output without formatting")

	return cmd
}
