package errors

import "fmt"

// Common error messages for the pkgctl CLI.
// These templates ensure consistent, actionable error messages.

// DocsRequireLibrary creates an error for --with-docs on a non-library package type.
func DocsRequireLibrary(packageType string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("--with-docs is only supported for library packages, not %q", packageType),
		"pkgctl init --type library --with-docs",
		"Drop --with-docs, or",
		"Use --type library to generate a documentation catalog",
	)
}

// UnknownPackageType creates an error for an unrecognized --type value.
func UnknownPackageType(provided string, valid []string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("unknown package type: %s", provided),
		"pkgctl init --type <type>",
		fmt.Sprintf("Valid types: %v", valid),
	)
}

// InvalidPackageName creates an error for a package name that cannot be used as a directory entry.
func InvalidPackageName(name string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("invalid package name: %q", name),
		"Package names must be non-empty and must not contain path separators",
		"Pass an explicit name with --name",
	)
}

// ManifestExists creates an error when init would overwrite an existing manifest.
func ManifestExists(path string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("a manifest file already exists at %s", path),
		"Run 'pkgctl init' in an empty directory",
		"Or remove the existing Package.swift first",
	)
}

// NoPropertiesSelected creates an error for 'config set' without any property flag.
func NoPropertiesSelected() *CLIError {
	return NewArgumentErrorWithUsage(
		"no configuration property was specified",
		"pkgctl config set <destination-id> <target-triple> --sdk-root-path <path>",
		"Pass at least one property flag, e.g. --sdk-root-path or --toolset-path",
		"Run 'pkgctl config set --help' to list all properties",
	)
}

// StoreFailure wraps a store read/write failure.
func StoreFailure(err error, action string) *CLIError {
	return WrapWithMessage(err, Persistence, fmt.Sprintf("failed to %s destination configuration", action),
		"Check that the destinations directory is readable and writable",
		"Set destinations_dir in config or pass --destinations-dir to use another location",
	)
}
