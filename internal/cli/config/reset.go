package config

import (
	"fmt"

	"github.com/ariel-frischer/pkgctl/internal/cli/shared"
	"github.com/ariel-frischer/pkgctl/internal/destination"
	"github.com/ariel-frischer/pkgctl/internal/lifecycle"
	"github.com/spf13/cobra"
)

func newResetCommand(rootOpts *shared.RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset <destination-id> <target-triple>",
		Short: "Reset configured path overrides",
		Long: `Reset path overrides of a destination for one target triple.

With property flags, only those properties are reset and the rest of the
record is kept. Without flags, every property is reset and the record is
removed. Resetting a destination that has no configuration prints a warning
and still succeeds.`,
		Example: `  # Reset everything
  pkgctl config reset ubuntu-jammy aarch64-unknown-linux-gnu

  # Reset only the SDK root and toolsets
  pkgctl config reset ubuntu-jammy aarch64-unknown-linux-gnu --sdk-root-path --toolset-path`,
		Args: shared.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var selected []destination.Property
			for _, p := range destination.Properties {
				if on, _ := cmd.Flags().GetBool(p.Flag); on {
					selected = append(selected, p)
				}
			}
			return lifecycle.Run(lifecycle.LogObserver{}, cmd.CommandPath(), func() error {
				_, err := newConfigurator(cmd, rootOpts).Reset(keyFromArgs(args), selected)
				return err
			})
		},
	}

	for _, p := range destination.Properties {
		cmd.Flags().Bool(p.Flag, false, fmt.Sprintf("Reset the configured %s", p.Name))
	}

	return cmd
}
