package shared

import (
	"fmt"

	clierrors "github.com/ariel-frischer/pkgctl/internal/errors"
	"github.com/spf13/cobra"
)

// ExactArgs is cobra.ExactArgs returning an argument error, so a wrong
// argument count exits with ExitInvalidArguments.
func ExactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return clierrors.NewArgumentErrorWithUsage(
				fmt.Sprintf("accepts %d arg(s), received %d", n, len(args)),
				cmd.UseLine(),
			)
		}
		return nil
	}
}

// FlagError converts a pflag parse failure into an argument error.
func FlagError(cmd *cobra.Command, err error) error {
	return clierrors.NewArgumentErrorWithUsage(err.Error(), cmd.UseLine(),
		fmt.Sprintf("Run '%s --help' for usage", cmd.CommandPath()))
}
