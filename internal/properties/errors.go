package properties

import "errors"

var (
	// ErrOpenFailure wraps failures to open a properties file.
	ErrOpenFailure = errors.New("could not open file")
	// ErrIncludeCycle is reported when a file includes itself, directly or not.
	ErrIncludeCycle = errors.New("include cycle")
	// ErrIncludeDepth is reported when includes nest deeper than the configured limit.
	ErrIncludeDepth = errors.New("include depth exceeded")
)
