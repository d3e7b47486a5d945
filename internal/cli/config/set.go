package config

import (
	"github.com/ariel-frischer/pkgctl/internal/cli/shared"
	"github.com/ariel-frischer/pkgctl/internal/destination"
	"github.com/ariel-frischer/pkgctl/internal/lifecycle"
	"github.com/spf13/cobra"
)

func newSetCommand(rootOpts *shared.RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <destination-id> <target-triple>",
		Short: "Override paths of a destination",
		Long: `Override paths of a destination for one target triple.

Only the given properties change; others keep their current state. List
properties take every occurrence of their flag, in order. Relative paths are
resolved against the current directory.`,
		Example: `  # Use a local sysroot
  pkgctl config set ubuntu-jammy aarch64-unknown-linux-gnu --sdk-root-path ./sysroot

  # Two toolsets
  pkgctl config set ubuntu-jammy aarch64-unknown-linux-gnu \
    --toolset-path base.json --toolset-path extra.json`,
		Args: shared.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var assignments []destination.Assignment
			for _, p := range destination.Properties {
				if !cmd.Flags().Changed(p.Flag) {
					continue
				}
				var values []string
				if p.List {
					values, _ = cmd.Flags().GetStringArray(p.Flag)
				} else {
					v, _ := cmd.Flags().GetString(p.Flag)
					values = []string{v}
				}
				for i, v := range values {
					values[i] = rootOpts.Runtime.Resolve(v)
				}
				assignments = append(assignments, destination.Assignment{Property: p, Values: values})
			}
			return lifecycle.Run(lifecycle.LogObserver{}, cmd.CommandPath(), func() error {
				_, err := newConfigurator(cmd, rootOpts).Update(keyFromArgs(args), assignments)
				return err
			})
		},
	}

	for _, p := range destination.Properties {
		if p.List {
			cmd.Flags().StringArray(p.Flag, nil, p.Usage)
		} else {
			cmd.Flags().String(p.Flag, "", p.Usage)
		}
	}

	return cmd
}
