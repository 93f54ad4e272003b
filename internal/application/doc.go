// Package application provides application initialization and dependency wiring.
// It builds the error reporter, substitution engine and properties loader from
// the resolved configuration, keeping the main package focused on CLI parsing
// and output.
package application
