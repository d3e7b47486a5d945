// Package config provides the 'pkgctl config' commands that manage
// per-destination path overrides.
package config

import (
	"github.com/ariel-frischer/pkgctl/internal/cli/shared"
	"github.com/ariel-frischer/pkgctl/internal/destination"
	"github.com/ariel-frischer/pkgctl/internal/diagnostics"
	"github.com/spf13/cobra"
)

// NewConfigCommand creates the config command and its subcommands.
func NewConfigCommand(rootOpts *shared.RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage destination path overrides",
		Long: `Manage path overrides for an installed destination and target triple.

Overrides are stored per (destination ID, target triple) pair under
<destinations-dir>/configuration/. A property that is not overridden falls
back to the value from the destination's own descriptor.

Properties:
  sdkRootPath               --sdk-root-path
  swiftResourcesPath        --swift-resources-path
  swiftStaticResourcesPath  --swift-static-resources-path
  includeSearchPaths        --include-search-path
  librarySearchPaths        --library-search-path
  toolsetPaths              --toolset-path`,
		GroupID: shared.GroupConfiguration,
	}

	cmd.AddCommand(newResetCommand(rootOpts))
	cmd.AddCommand(newSetCommand(rootOpts))
	cmd.AddCommand(newShowCommand(rootOpts))

	return cmd
}

// newConfigurator wires a FileStore under the configured destinations
// directory to a terminal sink on the command's streams.
func newConfigurator(cmd *cobra.Command, rootOpts *shared.RootOptions) *destination.Configurator {
	dir := rootOpts.Destinations()
	return &destination.Configurator{
		Store:           destination.NewFileStore(dir),
		Diagnostics:     diagnostics.NewTerminal(cmd.OutOrStdout(), cmd.ErrOrStderr()),
		DestinationsDir: dir,
	}
}

func keyFromArgs(args []string) destination.Key {
	return destination.Key{DestinationID: args[0], TargetTriple: args[1]}
}
