package cli

import (
	"io"

	clicfg "github.com/ariel-frischer/pkgctl/internal/cli/config"
	"github.com/ariel-frischer/pkgctl/internal/cli/shared"
	clierrors "github.com/ariel-frischer/pkgctl/internal/errors"
	xlog "github.com/ariel-frischer/pkgctl/internal/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the pkgctl root command for the given runtime.
func NewRootCommand(rt shared.Runtime) *cobra.Command {
	opts := &shared.RootOptions{Runtime: rt}

	cmd := &cobra.Command{
		Use:   "pkgctl",
		Short: "Scaffold packages and manage destination path overrides",
		Long: `pkgctl creates new packages and manages per-destination path overrides.

Destinations are cross-compilation bundles installed under the destinations
directory. Each (destination, target triple) pair may carry overrides for the
SDK root, Swift resources, search paths and toolsets.

Configuration precedence (highest to lowest):
  1. Environment variables (PKGCTL_*)
  2. Project config (.pkgctl/config.yml or --config)
  3. User config (~/.config/pkgctl/config.yml)
  4. Built-in defaults`,
		Example: `  # Create a library package in the current directory
  pkgctl init --type library

  # Point a destination at a custom SDK root
  pkgctl config set ubuntu-jammy x86_64-unknown-linux-gnu --sdk-root-path ./sysroot

  # Drop every override for that destination
  pkgctl config reset ubuntu-jammy x86_64-unknown-linux-gnu`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd, opts)
		},
	}

	cmd.AddGroup(
		&cobra.Group{ID: shared.GroupGettingStarted, Title: "Getting Started:"},
		&cobra.Group{ID: shared.GroupConfiguration, Title: "Configuration:"},
	)

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "Path to project config file (default: .pkgctl/config.yml)")
	pf.StringVar(&opts.PackagePath, "package-path", "", "Run as if started in this directory")
	pf.StringVar(&opts.DestinationsDir, "destinations-dir", "", "Override the destinations directory")
	pf.BoolVarP(&opts.Debug, "debug", "d", false, "Enable debug logging on stderr")
	pf.BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")

	cmd.SetFlagErrorFunc(shared.FlagError)

	cmd.AddCommand(NewInitCommand(opts))
	cmd.AddCommand(clicfg.NewConfigCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// setup loads configuration and configures colors and logging before any
// subcommand runs.
func setup(cmd *cobra.Command, opts *shared.RootOptions) error {
	if err := opts.LoadConfig(); err != nil {
		return err
	}

	if opts.NoColor || opts.Config.NoColor || opts.Runtime.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}

	level := opts.Config.LogLevel
	if opts.Debug {
		level = "debug"
	}
	xlog.Configure(xlog.Config{Level: level, Output: cmd.ErrOrStderr(), NoColor: color.NoColor})
	logger := xlog.WithComponent("cli")
	logger.Debug().
		Str("workdir", opts.Runtime.WorkDir).
		Str("destinations_dir", opts.Destinations()).
		Msg("configuration loaded")
	return nil
}

// Execute runs pkgctl with args and returns the process exit code. Errors
// are printed to stderr.
func Execute(rt shared.Runtime, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand(rt)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err != nil {
		clierrors.FprintError(stderr, err)
	}
	return shared.ExitCode(err)
}
