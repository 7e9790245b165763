package taskgroup

import (
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/taskgroup/metrics"
)

// config holds Group configuration.
type config struct {
	// Metrics receives task counters, the outstanding gauge and durations.
	// Default: metrics.NoopProvider.
	Metrics metrics.Provider

	// ErrorTagging wraps every task failure with the task's append index.
	// Default: false.
	ErrorTagging bool

	// RunAfterError executes tasks that reach their turn after a failure was
	// recorded. When false, such tasks complete without running.
	// Default: false.
	RunAfterError bool
}

func defaultConfig() config {
	return config{
		Metrics:       metrics.NoopProvider{},
		ErrorTagging:  false,
		RunAfterError: false,
	}
}

func validateConfig(cfg *config) error {
	if cfg.Metrics == nil {
		return errorc.With(ErrInvalidConfig, errorc.String("", "metrics provider must not be nil"))
	}
	return nil
}

// Option configures a Group.
type Option func(*config) error

// WithMetrics reports group activity to p.
func WithMetrics(p metrics.Provider) Option {
	return func(cfg *config) error {
		if p == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithMetrics requires a non-nil provider"))
		}
		cfg.Metrics = p
		return nil
	}
}

// WithErrorTagging wraps task failures with their append index, see ExtractTaskIndex.
func WithErrorTagging() Option {
	return func(cfg *config) error { cfg.ErrorTagging = true; return nil }
}

// WithRunAfterError keeps executing appended tasks after the first failure.
// By default a task that has not started when a failure is recorded is skipped.
func WithRunAfterError() Option {
	return func(cfg *config) error { cfg.RunAfterError = true; return nil }
}

func buildConfig(opts []Option) (*config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
