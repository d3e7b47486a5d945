package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/ariel-frischer/pkgctl/internal/cli/shared"
	"github.com/ariel-frischer/pkgctl/internal/destination"
	"github.com/ariel-frischer/pkgctl/internal/diagnostics"
	"github.com/ariel-frischer/pkgctl/internal/output"
	"github.com/spf13/cobra"
)

// nameWidth is the longest property name, for column alignment.
var nameWidth = func() int {
	w := 0
	for _, p := range destination.Properties {
		w = max(w, len(p.Name))
	}
	return w
}()

func newShowCommand(rootOpts *shared.RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <destination-id> <target-triple>",
		Short: "Show stored and effective paths",
		Long: `Show the stored overrides of a destination for one target triple and,
when the destination is installed, the effective paths after applying them.`,
		Args: shared.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := keyFromArgs(args)
			view, err := newConfigurator(cmd, rootOpts).Show(key)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !view.Found {
				diagnostics.NewTerminal(out, cmd.ErrOrStderr()).Warning(fmt.Sprintf(
					"No configuration for destination `%s` with target triple `%s` found.",
					key.DestinationID, key.TargetTriple))
			} else {
				output.PrintSectionHeader(out, "Overrides")
				printOverrides(out, view.Overrides)
			}

			if view.Effective != nil {
				output.PrintSectionHeader(out, "Effective")
				printOverrides(out, *view.Effective)
			}
			return nil
		},
	}
}

func printOverrides(out io.Writer, o destination.PathOverrides) {
	for _, p := range destination.Properties {
		values, ok := p.Get(o)
		output.PrintField(out, p.Name, nameWidth, formatValues(p, values, ok))
	}
}

func formatValues(p destination.Property, values []string, ok bool) string {
	switch {
	case !ok:
		return output.Dim("(not set)")
	case p.List:
		return "[" + strings.Join(values, ", ") + "]"
	case values[0] == "":
		return `""`
	default:
		return values[0]
	}
}
