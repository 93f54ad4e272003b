package subst

import (
	"fmt"
	"strings"

	"github.com/eugenenazirov/propcfg/internal/logging"
)

const (
	delimStart = "${"
	delimStop  = "}"

	// MaxExpansions bounds the replacements made by a single recursive Substitute call.
	MaxExpansions = 1024
)

// Flags controls how variable references are resolved. The zero value looks
// variables up in the environment only, leaves unresolved references intact
// and does not re-scan replaced text.
type Flags struct {
	// AllowEmptySubstitution replaces unresolved references with empty text.
	AllowEmptySubstitution bool
	// ShadowEnvironmentWithStore consults the store before the environment.
	ShadowEnvironmentWithStore bool
	// RecursiveExpansion re-scans replaced text so chained references expand.
	RecursiveExpansion bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithVariables overrides the environment lookup, primarily for tests.
func WithVariables(vars VariableProvider) Option {
	return func(e *Engine) {
		e.vars = vars
	}
}

// WithReporter sets the sink that receives substitution errors.
func WithReporter(reporter logging.Reporter) Option {
	return func(e *Engine) {
		e.reporter = reporter
	}
}

// Engine rewrites "${name}" references in text.
type Engine struct {
	vars     VariableProvider
	reporter logging.Reporter
}

// New creates an Engine that resolves against the process environment.
func New(opts ...Option) *Engine {
	e := &Engine{
		vars:     Environment(),
		reporter: logging.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Substitute expands the variable references in input. It returns the
// rewritten text and whether any replacement happened. On an unterminated
// reference the error is reported and input is returned unchanged.
// store may be nil when flags do not request shadowing.
func (e *Engine) Substitute(input string, store Lookup, flags Flags) (string, bool) {
	pattern := input
	changed := false
	expansions := 0
	i := 0

	for {
		rel := strings.Index(pattern[i:], delimStart)
		if rel < 0 {
			return pattern, changed
		}
		varStart := i + rel

		end := strings.Index(pattern[varStart:], delimStop)
		if end < 0 {
			e.report(fmt.Sprintf("%v: %q has no closing brace, opening brace at position %d",
				ErrUnterminated, pattern, varStart))
			return input, false
		}
		varEnd := varStart + end

		name := pattern[varStart+len(delimStart) : varEnd]
		replacement := e.resolve(name, store, flags)

		if replacement == "" && !flags.AllowEmptySubstitution {
			i = varEnd + len(delimStop)
			continue
		}

		if flags.RecursiveExpansion {
			expansions++
			if expansions > MaxExpansions {
				e.report(fmt.Sprintf("%v: %q expanded more than %d times",
					ErrExpansionLimit, input, MaxExpansions))
				return input, false
			}
		}

		pattern = pattern[:varStart] + replacement + pattern[varEnd+len(delimStop):]
		changed = true
		if flags.RecursiveExpansion {
			i = varStart
		} else {
			i = varStart + len(replacement)
		}
	}
}

func (e *Engine) resolve(name string, store Lookup, flags Flags) string {
	var replacement string
	if flags.ShadowEnvironmentWithStore && store != nil {
		replacement = store.Get(name)
	}
	if !flags.ShadowEnvironmentWithStore || (!flags.AllowEmptySubstitution && replacement == "") {
		replacement, _ = e.vars.LookupVar(name)
	}
	return replacement
}

func (e *Engine) report(msg string) {
	_ = e.reporter.Error(msg, false)
}

// Substitute expands input against store and the process environment,
// discarding error reports.
func Substitute(input string, store Lookup, flags Flags) (string, bool) {
	return New().Substitute(input, store, flags)
}
