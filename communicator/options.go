package communicator

import (
	"io"
	"os"

	"github.com/cnlutao/ice/core/log"
	"github.com/cnlutao/ice/propsx"
	"github.com/cnlutao/ice/runtimex"
)

// LeakDetectionEnv enables the leak registry when set to 1 or true.
const LeakDetectionEnv = "ICE_LEAK_DETECTION"

// InstanceFactory builds the runtime instance in the first setup phase.
// logger is nil unless WithLogger was given.
type InstanceFactory func(props *propsx.Properties, logger log.Logger) (Instance, error)

// Option configures Initialize.
type Option func(*options)

type options struct {
	defaults      *propsx.Properties
	logger        log.Logger
	metrics       Metrics
	leakDetection bool
	newInstance   InstanceFactory
	stdout        io.Writer
}

func defaultOptions() options {
	return options{
		metrics:       nopMetrics{},
		leakDetection: leakDetectionFromEnv(os.Getenv),
		stdout:        os.Stdout,
	}
}

// WithProperties supplies default properties. Config files and command-line
// options given to Initialize override them. The set is cloned.
func WithProperties(p *propsx.Properties) Option {
	return func(o *options) {
		o.defaults = p
	}
}

// WithLogger replaces the logger the runtime would build from properties.
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics installs a lifecycle metrics sink.
func WithMetrics(m Metrics) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

// WithLeakDetection records the handle in the process leak registry until
// it is destroyed. Overrides ICE_LEAK_DETECTION.
func WithLeakDetection(enabled bool) Option {
	return func(o *options) {
		o.leakDetection = enabled
	}
}

// WithInstanceFactory replaces runtimex.NewInstance. Used by tests and
// embedders that bring their own runtime.
func WithInstanceFactory(f InstanceFactory) Option {
	return func(o *options) {
		o.newInstance = f
	}
}

// WithStdout sets where Ice.PrintProcessId writes.
func WithStdout(w io.Writer) Option {
	return func(o *options) {
		o.stdout = w
	}
}

func (o *options) instanceFactory() InstanceFactory {
	if o.newInstance != nil {
		return o.newInstance
	}
	return func(props *propsx.Properties, logger log.Logger) (Instance, error) {
		opts := []runtimex.Option{runtimex.WithStdout(o.stdout)}
		if logger != nil {
			opts = append(opts, runtimex.WithLogger(logger))
		}
		inst, err := runtimex.NewInstance(props, opts...)
		if err != nil {
			return nil, err
		}
		return runtimeInstance{inst}, nil
	}
}

func leakDetectionFromEnv(getenv func(string) string) bool {
	switch getenv(LeakDetectionEnv) {
	case "1", "true", "TRUE", "yes":
		return true
	}
	return false
}
