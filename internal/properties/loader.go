package properties

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/eugenenazirov/propcfg/internal/logging"
	"github.com/eugenenazirov/propcfg/internal/subst"
	"github.com/eugenenazirov/propcfg/internal/textenc"
	"github.com/eugenenazirov/propcfg/internal/textutil"
)

const (
	commentChar      = '#'
	includeDirective = "include"

	// DefaultMaxIncludeDepth bounds include nesting unless overridden.
	DefaultMaxIncludeDepth = 64
)

// LoadFlags control how files are opened.
type LoadFlags struct {
	Encoding           textenc.Encoding
	RaiseOnOpenFailure bool
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFlags sets the load flags.
func WithFlags(flags LoadFlags) LoaderOption {
	return func(l *Loader) {
		l.flags = flags
	}
}

// WithReporter sets the error sink. It is shared with the default substitution engine.
func WithReporter(reporter logging.Reporter) LoaderOption {
	return func(l *Loader) {
		l.reporter = reporter
	}
}

// WithSubstituter overrides the engine used to expand include paths.
func WithSubstituter(engine *subst.Engine) LoaderOption {
	return func(l *Loader) {
		l.engine = engine
	}
}

// WithMaxIncludeDepth limits include nesting. Non-positive values select the default.
func WithMaxIncludeDepth(depth int) LoaderOption {
	return func(l *Loader) {
		if depth <= 0 {
			depth = DefaultMaxIncludeDepth
		}
		l.maxDepth = depth
	}
}

// WithOpener replaces os.Open, primarily for tests.
func WithOpener(open func(path string) (io.ReadCloser, error)) LoaderOption {
	return func(l *Loader) {
		l.open = open
	}
}

// Loader parses properties text into the Store it owns.
type Loader struct {
	store    *Store
	flags    LoadFlags
	reporter logging.Reporter
	engine   *subst.Engine
	maxDepth int
	open     func(path string) (io.ReadCloser, error)

	depth  int
	active map[string]struct{}
}

// NewLoader creates a Loader with an empty Store.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		store:    NewStore(),
		reporter: logging.Nop(),
		maxDepth: DefaultMaxIncludeDepth,
		open: func(path string) (io.ReadCloser, error) {
			return os.Open(path)
		},
		active: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.engine == nil {
		l.engine = subst.New(subst.WithReporter(l.reporter))
	}
	return l
}

// Store returns the Store populated by the loader.
func (l *Loader) Store() *Store {
	return l.store
}

// Load reads properties from r into the Store. Include paths are resolved
// relative to the working directory. A read error is reported and returned;
// properties parsed before it are kept.
func (l *Loader) Load(r io.Reader) error {
	return l.parse(r)
}

// LoadFile reads the properties file at path into the Store. An empty path
// is a no-op. When the file cannot be opened the failure is reported and an
// error is returned only if RaiseOnOpenFailure is set.
func (l *Loader) LoadFile(path string) error {
	if path == "" {
		return nil
	}
	f, err := l.open(path)
	if err != nil {
		openErr := openFailure(path, err)
		if rerr := l.reporter.Error(openErr.Error(), l.flags.RaiseOnOpenFailure); rerr != nil {
			return errors.Join(openErr, rerr)
		}
		return nil
	}
	defer f.Close()

	key := activeKey(path)
	l.active[key] = struct{}{}
	defer delete(l.active, key)

	return l.parse(textenc.NewReader(f, l.flags.Encoding))
}

func (l *Loader) parse(r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			l.parseLine(strings.TrimSuffix(line, "\n"))
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			l.report(fmt.Sprintf("read properties: %v", err))
			return fmt.Errorf("read properties: %w", err)
		}
	}
}

func (l *Loader) parseLine(line string) {
	line = textutil.TrimLeading(line)
	if line == "" || line[0] == commentChar {
		return
	}
	line = strings.TrimSuffix(line, "\r")

	if path, ok := includePath(line); ok {
		l.include(path)
		return
	}

	key, value, found := strings.Cut(line, "=")
	if !found {
		return
	}
	l.store.Set(textutil.TrimTrailing(key), textutil.Trim(value))
}

// includePath reports whether line is an include directive and returns its
// trimmed argument. The directive needs at least one character after the
// separating whitespace; an argument of only whitespace yields an empty path.
func includePath(line string) (string, bool) {
	rest, ok := strings.CutPrefix(line, includeDirective)
	if !ok {
		return "", false
	}
	r, size := utf8.DecodeRuneInString(rest)
	if size == 0 || !textutil.IsSpace(r) {
		return "", false
	}
	rest = rest[size:]
	if rest == "" {
		return "", false
	}
	return textutil.Trim(rest), true
}

// include merges another file into the Store. Failures are reported and the
// directive is skipped; they never abort the enclosing load.
func (l *Loader) include(raw string) {
	path, _ := l.engine.Substitute(raw, l.store, subst.Flags{})
	key := activeKey(path)

	if _, ok := l.active[key]; ok {
		l.report(fmt.Sprintf("%v: %s is already being loaded", ErrIncludeCycle, path))
		return
	}
	if l.depth >= l.maxDepth {
		l.report(fmt.Sprintf("%v: %s nested deeper than %d", ErrIncludeDepth, path, l.maxDepth))
		return
	}

	f, err := l.open(path)
	if err != nil {
		l.report(openFailure(path, err).Error())
		return
	}
	defer f.Close()

	l.active[key] = struct{}{}
	l.depth++
	defer func() {
		l.depth--
		delete(l.active, key)
	}()

	// read errors were already reported
	_ = l.parse(textenc.NewReader(f, l.flags.Encoding))
}

func (l *Loader) report(msg string) {
	_ = l.reporter.Error(msg, false)
}

func openFailure(path string, err error) error {
	return fmt.Errorf("%w %s: %w", ErrOpenFailure, path, err)
}

func activeKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

// Load reads properties from r into a new Store. On a read error the Store
// holding the properties parsed so far is returned with the error.
func Load(r io.Reader, opts ...LoaderOption) (*Store, error) {
	l := NewLoader(opts...)
	if err := l.Load(r); err != nil {
		return l.Store(), err
	}
	return l.Store(), nil
}

// LoadFile reads the properties file at path into a new Store.
func LoadFile(path string, flags LoadFlags, opts ...LoaderOption) (*Store, error) {
	l := NewLoader(append([]LoaderOption{WithFlags(flags)}, opts...)...)
	if err := l.LoadFile(path); err != nil {
		return nil, err
	}
	return l.Store(), nil
}
