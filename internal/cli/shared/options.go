package shared

import (
	"github.com/ariel-frischer/pkgctl/internal/config"
	clierrors "github.com/ariel-frischer/pkgctl/internal/errors"
)

// RootOptions holds global flags and the configuration loaded from them.
// Subcommands receive a pointer and read Config after the root's
// PersistentPreRunE has run.
type RootOptions struct {
	Runtime Runtime

	ConfigPath      string
	PackagePath     string
	DestinationsDir string
	Debug           bool
	NoColor         bool

	Config *config.Configuration
}

// LoadConfig loads configuration for the runtime's working directory.
// --config falls back to PKGCTL_CONFIG. A --package-path replaces the
// working directory first, so project config is read from the package.
func (o *RootOptions) LoadConfig() error {
	if o.PackagePath != "" {
		o.Runtime.WorkDir = o.Runtime.Resolve(config.ResolvePath("", o.PackagePath))
		o.PackagePath = ""
	}
	path := o.ConfigPath
	if path == "" {
		path = o.Runtime.Getenv("PKGCTL_CONFIG")
	}
	cfg, err := config.LoadWithOptions(config.LoadOptions{
		WorkDir:           o.Runtime.WorkDir,
		ProjectConfigPath: path,
	})
	if err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Configuration, "failed to load configuration",
			"Fix the reported file, or run with PKGCTL_CONFIG unset")
	}
	o.Config = cfg
	return nil
}

// Destinations returns the destinations directory: --destinations-dir when
// given, the configured value otherwise.
func (o *RootOptions) Destinations() string {
	if o.DestinationsDir != "" {
		return config.ResolvePath(o.Runtime.WorkDir, o.DestinationsDir)
	}
	if o.Config != nil {
		return o.Config.DestinationsDir
	}
	return ""
}
