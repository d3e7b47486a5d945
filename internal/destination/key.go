package destination

import (
	"fmt"
	"net/url"
	"path/filepath"
)

// Key identifies one override record. Both parts are compared literally;
// target triples are not canonicalized.
type Key struct {
	DestinationID string
	TargetTriple  string
}

// String returns a human-readable form used in messages.
func (k Key) String() string {
	return fmt.Sprintf("%s (%s)", k.DestinationID, k.TargetTriple)
}

// Validate rejects keys with an empty part and destination IDs that would
// name the destinations directory or its parent.
func (k Key) Validate() error {
	switch k.DestinationID {
	case "":
		return fmt.Errorf("destination ID must not be empty")
	case ".", "..":
		return fmt.Errorf("invalid destination ID %q", k.DestinationID)
	}
	if k.TargetTriple == "" {
		return fmt.Errorf("target triple must not be empty")
	}
	return nil
}

// relPath returns the record location relative to the configuration dir:
// one directory per destination, one file per triple. Escaping encodes
// separators, so distinct keys never share a path.
func (k Key) relPath() string {
	return filepath.Join(url.PathEscape(k.DestinationID), url.PathEscape(k.TargetTriple)+".yml")
}
