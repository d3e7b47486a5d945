package cli

import (
	"os"

	"github.com/ariel-frischer/pkgctl/internal/cli/shared"
	"github.com/ariel-frischer/pkgctl/internal/lifecycle"
	"github.com/ariel-frischer/pkgctl/internal/progress"
	"github.com/ariel-frischer/pkgctl/internal/scaffold"
	"github.com/spf13/cobra"
)

// initOptions holds the flags of the init command.
type initOptions struct {
	packageType scaffold.PackageType
	name        string
	withDocs    bool
}

// NewInitCommand creates the init command. fsys is where files are written;
// nil means the real filesystem.
func NewInitCommand(rootOpts *shared.RootOptions) *cobra.Command {
	return newInitCommand(rootOpts, nil)
}

func newInitCommand(rootOpts *shared.RootOptions, fsys scaffold.FileSystem) *cobra.Command {
	opts := &initOptions{packageType: scaffold.Library}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new package in the current directory",
		Long: `Initialize a new package in the current directory.

The package name defaults to the directory name. Every option is validated
before anything is written, and init refuses to run where a Package.swift
already exists.

Package types:
  library            A library with a test target (default)
  executable         A command-line executable
  tool               An executable built on argument parsing
  build-tool-plugin  A build tool plugin
  command-plugin     A command plugin
  macro              A macro with implementation, client and tests
  empty              A manifest with no targets`,
		Example: `  # Library named after the current directory
  pkgctl init

  # Executable with an explicit name
  pkgctl init --type executable --name hello

  # Library with a documentation catalog
  pkgctl init --type library --with-docs`,
		GroupID: shared.GroupGettingStarted,
		Args:    shared.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("type") && rootOpts.Config != nil && rootOpts.Config.DefaultPackageType != "" {
				if err := opts.packageType.Set(rootOpts.Config.DefaultPackageType); err != nil {
					return err
				}
			}
			return lifecycle.Run(lifecycle.LogObserver{}, cmd.CommandPath(), func() error {
				return runInit(cmd, rootOpts, opts, fsys)
			})
		},
	}

	cmd.Flags().Var(&opts.packageType, "type",
		"Package type: library, executable, tool, build-tool-plugin, command-plugin, macro, empty")
	cmd.Flags().StringVar(&opts.name, "name", "", "Package name (default: name of the current directory)")
	cmd.Flags().BoolVar(&opts.withDocs, "with-docs", false, "Add a documentation catalog (library only)")

	return cmd
}

func runInit(cmd *cobra.Command, rootOpts *shared.RootOptions, opts *initOptions, fsys scaffold.FileSystem) error {
	if fsys == nil {
		fsys = scaffold.OSFileSystem{}
	}
	gen, err := scaffold.New(opts.name, opts.packageType, scaffold.Options{WithDocs: opts.withDocs}, rootOpts.Runtime.WorkDir, fsys)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var caps progress.TerminalCapabilities
	if f, ok := out.(*os.File); ok {
		caps = progress.DetectTerminalCapabilities(f, rootOpts.Runtime.Getenv)
	}
	reporter := progress.NewReporter(out, caps)
	gen.Progress = reporter.Step

	if err := gen.Generate(); err != nil {
		reporter.Fail()
		return err
	}
	reporter.Done()
	return nil
}
