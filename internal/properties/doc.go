// Package properties loads ".properties"-style configuration into a Store.
//
// Files are read line by line. Blank lines and lines starting with '#' are
// skipped, "include <path>" merges another file into the same Store, and
// "key=value" lines set a property. Lines without '=' are ignored. Later
// assignments overwrite earlier ones, including across includes.
//
// A Store is not safe for concurrent mutation. Concurrent reads are fine once
// loading has finished.
package properties
