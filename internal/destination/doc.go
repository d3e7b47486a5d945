// Package destination stores user-supplied toolchain path overrides for
// installed cross-compilation destinations.
//
// An override record is keyed by (destination ID, target triple) and holds up
// to six optional paths. An absent field means "use the destination
// descriptor's default"; a present field replaces it, even when it is an empty
// string or empty list. The FileStore persists one YAML file per key and the
// Configurator maps requested property flags onto store operations.
//
// Nothing in this package locks: callers that share a destinations directory
// across processes must serialize access themselves.
package destination
