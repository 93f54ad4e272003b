package logging

import (
	"errors"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ErrFatal marks a report that the sink was asked to raise.
var ErrFatal = errors.New("fatal configuration error")

// Reporter is the error sink consumed by the loader and the substitution engine.
// When fatal is true the returned error is non-nil and wraps ErrFatal.
type Reporter interface {
	Error(msg string, fatal bool) error
}

// ReporterOption configures a ZapReporter.
type ReporterOption func(*ZapReporter)

// WithRateLimit throttles non-fatal reports to rps with the given burst.
// A non-positive rps disables throttling.
func WithRateLimit(rps float64, burst int) ReporterOption {
	return func(r *ZapReporter) {
		if rps <= 0 {
			r.limiter = nil
			return
		}
		if burst <= 0 {
			burst = 1
		}
		r.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// ZapReporter writes reports to a zap logger.
type ZapReporter struct {
	logger     *zap.Logger
	limiter    *rate.Limiter
	suppressed atomic.Int64
}

// NewReporter returns a Reporter backed by logger.
func NewReporter(logger *zap.Logger, opts ...ReporterOption) *ZapReporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &ZapReporter{logger: logger}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Error logs msg. Fatal reports bypass the rate limiter and are always logged.
func (r *ZapReporter) Error(msg string, fatal bool) error {
	if fatal {
		r.logger.Error(msg, zap.Bool("fatal", true))
		return fmt.Errorf("%w: %s", ErrFatal, msg)
	}
	if r.limiter != nil && !r.limiter.Allow() {
		r.suppressed.Add(1)
		return nil
	}
	r.logger.Error(msg, zap.Bool("fatal", false))
	return nil
}

// Suppressed returns how many non-fatal reports were dropped by the rate limiter.
func (r *ZapReporter) Suppressed() int64 {
	return r.suppressed.Load()
}

type nopReporter struct{}

// Nop returns a Reporter that logs nothing but still raises fatal reports.
func Nop() Reporter {
	return nopReporter{}
}

func (nopReporter) Error(msg string, fatal bool) error {
	if fatal {
		return fmt.Errorf("%w: %s", ErrFatal, msg)
	}
	return nil
}
