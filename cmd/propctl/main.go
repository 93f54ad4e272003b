package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/propcfg/internal/application"
	"github.com/eugenenazirov/propcfg/internal/config"
	"github.com/eugenenazirov/propcfg/internal/logging"
	"github.com/eugenenazirov/propcfg/internal/properties"
)

var errNotFound = errors.New("property not found")

func main() {
	if err := run(os.Args[1:], os.Stdout, newLogger); err != nil {
		fmt.Fprintf(os.Stderr, "propctl: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	return logging.New(cfg.LogLevel)
}

type commandLine struct {
	app *kingpin.Application

	configFile *string
	file       *string
	encoding   *string
	depth      *int
	logLevel   *string

	raise, allowEmpty, shadow, recursive        *bool
	raiseSet, allowSet, shadowSet, recursiveSet bool

	dump       *kingpin.CmdClause
	dumpExpand *bool

	keys *kingpin.CmdClause

	get        *kingpin.CmdClause
	getKey     *string
	getDefault *string
	getHasDef  bool

	subset       *kingpin.CmdClause
	subsetPrefix *string

	expand     *kingpin.CmdClause
	expandText *string

	typed     *kingpin.CmdClause
	typedKey  *string
	typedKind *string
}

func newCommandLine() *commandLine {
	kingpinApp := kingpin.New("propctl", "Inspect .properties configuration files: includes, typed values and ${VAR} substitution")
	c := &commandLine{app: kingpinApp}

	c.configFile = kingpinApp.Flag("config", "Path to YAML configuration file").String()
	c.file = kingpinApp.Flag("file", "Properties file to load").Short('f').String()
	c.encoding = kingpinApp.Flag("encoding", "File encoding: utf-8, utf-16, utf-32 (default raw bytes)").String()
	c.depth = kingpinApp.Flag("max-include-depth", "Maximum include nesting (0 keeps configured value)").Default("0").Int()
	c.logLevel = kingpinApp.Flag("log-level", "Log level for error reports").String()
	c.raise = kingpinApp.Flag("raise", "Fail when the properties file cannot be opened").IsSetByUser(&c.raiseSet).Bool()
	c.allowEmpty = kingpinApp.Flag("allow-empty", "Replace unresolved variables with empty text").IsSetByUser(&c.allowSet).Bool()
	c.shadow = kingpinApp.Flag("shadow", "Resolve variables from the properties before the environment").IsSetByUser(&c.shadowSet).Bool()
	c.recursive = kingpinApp.Flag("recursive", "Expand variables inside substituted values").IsSetByUser(&c.recursiveSet).Bool()

	c.dump = kingpinApp.Command("dump", "Print all properties as YAML").Default()
	c.dumpExpand = c.dump.Flag("expand", "Substitute variables in every value").Bool()

	c.keys = kingpinApp.Command("keys", "List property names")

	c.get = kingpinApp.Command("get", "Print a single property value")
	c.getKey = c.get.Arg("key", "Property name").Required().String()
	c.getDefault = c.get.Flag("default", "Value printed when the key is absent").IsSetByUser(&c.getHasDef).String()

	c.subset = kingpinApp.Command("subset", "Print properties under a prefix, with the prefix removed, as YAML")
	c.subsetPrefix = c.subset.Arg("prefix", "Key prefix").Required().String()

	c.expand = kingpinApp.Command("expand", "Substitute ${VAR} references in text")
	c.expandText = c.expand.Arg("text", "Text to expand").Required().String()

	c.typed = kingpinApp.Command("typed", "Print a property converted to a type")
	c.typedKey = c.typed.Arg("key", "Property name").Required().String()
	c.typedKind = c.typed.Flag("type", "int, uint, long, ulong, bool or string").Default("string").Enum("int", "uint", "long", "ulong", "bool", "string")

	return c
}

// cliOverrides converts parsed flags into configuration overrides. Flags the
// user did not pass stay nil so lower-precedence sources apply.
func (c *commandLine) cliOverrides() *config.CLIOverrides {
	overrides := &config.CLIOverrides{
		ConfigFile: *c.configFile,
	}
	if *c.file != "" {
		overrides.PropertiesFile = c.file
	}
	if *c.encoding != "" {
		overrides.Encoding = c.encoding
	}
	if *c.depth > 0 {
		overrides.MaxIncludeDepth = c.depth
	}
	if *c.logLevel != "" {
		overrides.LogLevel = c.logLevel
	}
	if c.raiseSet {
		overrides.RaiseOnOpenFailure = c.raise
	}
	if c.allowSet {
		overrides.AllowEmpty = c.allowEmpty
	}
	if c.shadowSet {
		overrides.Shadow = c.shadow
	}
	if c.recursiveSet {
		overrides.Recursive = c.recursive
	}
	return overrides
}

func run(args []string, stdout io.Writer, loggerFactory func(config.Config) (*zap.Logger, error)) error {
	c := newCommandLine()
	command, err := c.app.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(c.cliOverrides())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := loggerFactory(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	app, err := application.New(cfg, logger)
	if err != nil {
		return err
	}

	switch command {
	case c.dump.FullCommand():
		store := app.Store()
		if *c.dumpExpand {
			store = app.ExpandStore()
		}
		return writeYAML(stdout, store)
	case c.keys.FullCommand():
		for _, key := range app.Store().Keys() {
			fmt.Fprintln(stdout, key)
		}
		return nil
	case c.get.FullCommand():
		if !app.Store().Exists(*c.getKey) && !c.getHasDef {
			return fmt.Errorf("%w: %s", errNotFound, *c.getKey)
		}
		fmt.Fprintln(stdout, app.Store().GetDefault(*c.getKey, *c.getDefault))
		return nil
	case c.subset.FullCommand():
		return writeYAML(stdout, app.Store().Subset(*c.subsetPrefix))
	case c.expand.FullCommand():
		out, _ := app.Expand(*c.expandText)
		fmt.Fprintln(stdout, out)
		return nil
	case c.typed.FullCommand():
		value, err := typedValue(app.Store(), *c.typedKey, *c.typedKind)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, value)
		return nil
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func typedValue(store *properties.Store, key, kind string) (string, error) {
	var (
		text string
		ok   bool
	)
	switch kind {
	case "int":
		var v int32
		v, ok = store.GetInt(key)
		text = strconv.FormatInt(int64(v), 10)
	case "uint":
		var v uint32
		v, ok = store.GetUInt(key)
		text = strconv.FormatUint(uint64(v), 10)
	case "long":
		var v int64
		v, ok = store.GetLong(key)
		text = strconv.FormatInt(v, 10)
	case "ulong":
		var v uint64
		v, ok = store.GetULong(key)
		text = strconv.FormatUint(v, 10)
	case "bool":
		var v bool
		v, ok = store.GetBool(key)
		text = strconv.FormatBool(v)
	default:
		text, ok = store.GetString(key)
	}
	if !ok {
		if !store.Exists(key) {
			return "", fmt.Errorf("%w: %s", errNotFound, key)
		}
		return "", fmt.Errorf("property %s: %q is not a valid %s", key, store.Get(key), kind)
	}
	return text, nil
}

// writeYAML prints store as a flat YAML mapping in key order.
func writeYAML(w io.Writer, store *properties.Store) error {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range store.Keys() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: store.Get(key)},
		)
	}
	if len(node.Content) == 0 {
		node.Style = yaml.FlowStyle
	}

	enc := yaml.NewEncoder(w)
	if err := enc.Encode(node); err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}
	return enc.Close()
}
