package application

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/eugenenazirov/propcfg/internal/config"
	"github.com/eugenenazirov/propcfg/internal/logging"
	"github.com/eugenenazirov/propcfg/internal/properties"
	"github.com/eugenenazirov/propcfg/internal/subst"
)

// App encapsulates the loaded properties and the components that produced them.
type App struct {
	cfg      config.Config
	logger   *zap.Logger
	reporter *logging.ZapReporter
	engine   *subst.Engine
	store    *properties.Store
}

// Option configures New.
type Option func(*options)

type options struct {
	vars subst.VariableProvider
}

// WithVariables replaces the process environment as the variable source.
func WithVariables(vars subst.VariableProvider) Option {
	return func(o *options) {
		o.vars = vars
	}
}

// New loads the configured properties file and wires the substitution engine.
func New(cfg config.Config, logger *zap.Logger, opts ...Option) (*App, error) {
	o := options{vars: subst.Environment()}
	for _, opt := range opts {
		opt(&o)
	}

	reporter := logging.NewReporter(logger, logging.WithRateLimit(cfg.ReportRateLimit, cfg.ReportBurst))
	engine := subst.New(subst.WithReporter(reporter), subst.WithVariables(o.vars))

	loader := properties.NewLoader(
		properties.WithFlags(cfg.LoadFlags()),
		properties.WithReporter(reporter),
		properties.WithSubstituter(engine),
		properties.WithMaxIncludeDepth(cfg.MaxIncludeDepth),
	)
	if err := loader.LoadFile(cfg.PropertiesFile); err != nil {
		return nil, fmt.Errorf("failed to load properties: %w", err)
	}

	logger.Debug("properties loaded",
		zap.String("file", cfg.PropertiesFile),
		zap.Int("count", loader.Store().Len()),
	)

	return &App{
		cfg:      cfg,
		logger:   logger,
		reporter: reporter,
		engine:   engine,
		store:    loader.Store(),
	}, nil
}

// Store returns the loaded properties.
func (a *App) Store() *properties.Store {
	return a.store
}

// Expand substitutes variables in text using the configured flags.
func (a *App) Expand(text string) (string, bool) {
	return a.engine.Substitute(text, a.store, a.cfg.Substitution)
}

// ExpandStore returns a copy of the store with every value expanded.
func (a *App) ExpandStore() *properties.Store {
	out := a.store.Clone()
	for _, key := range out.Keys() {
		if v, changed := a.Expand(out.Get(key)); changed {
			out.Set(key, v)
		}
	}
	return out
}

// Suppressed returns how many error reports were throttled.
func (a *App) Suppressed() int64 {
	return a.reporter.Suppressed()
}
