// Package logging builds the zap logger used by propctl and provides the
// single-line error sink through which the properties loader and the
// substitution engine report problems. A fatal report is returned to the
// caller as an error wrapping ErrFatal instead of terminating the process.
package logging
