package runtimex

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"sync"

	"go.uber.org/multierr"

	"github.com/cnlutao/ice/core/errors"
	"github.com/cnlutao/ice/core/log"
	"github.com/cnlutao/ice/logx"
	"github.com/cnlutao/ice/propsx"
	"github.com/cnlutao/ice/propsx/schema"
)

// Option configures NewInstance.
type Option func(*options)

type options struct {
	logger log.Logger
	stdout io.Writer
}

// WithLogger replaces the logger built from properties.
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithStdout sets where Ice.PrintProcessId writes (default: os.Stdout).
func WithStdout(w io.Writer) Option {
	return func(o *options) {
		o.stdout = w
	}
}

type batchRequest struct {
	proxy     *Proxy
	operation string
	payload   []byte
}

// Instance owns the resources of one communicator.
type Instance struct {
	props    *propsx.Properties
	refs     *ReferenceFactory
	proxies  *ProxyFactory
	adapters *ObjectAdapterFactory
	plugins  *PluginManager
	stdout   io.Writer
	loggers  *loggerRef

	mu         sync.Mutex
	cfg        Config
	batch      []batchRequest
	batchBytes int
	destroyed  bool
}

// NewInstance builds an instance from props. props is used, not copied.
func NewInstance(props *propsx.Properties, opts ...Option) (*Instance, error) {
	if props == nil {
		props = propsx.New()
	}
	o := options{stdout: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	cfg, err := LoadConfig(props)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInitialization, "runtimex.NewInstance", err)
	}

	logger := o.logger
	if logger == nil {
		logger = defaultLogger(cfg)
	}

	inst := &Instance{
		props:   props,
		cfg:     cfg,
		stdout:  o.stdout,
		loggers: newLoggerRef(logger),
	}
	inst.refs = NewReferenceFactory()
	inst.proxies = NewProxyFactory(props, inst.refs)
	inst.adapters = newObjectAdapterFactory(props, inst.proxies, inst.loggers)
	inst.plugins = newPluginManager(inst, inst.loggers)
	return inst, nil
}

func defaultLogger(cfg Config) log.Logger {
	level := slog.LevelInfo
	if cfg.Trace.Enabled() {
		level = slog.LevelDebug
	}
	logger := logx.New(logx.WithLevel(level))
	if cfg.ProgramName != "" {
		logger = logger.With(log.Str("program", cfg.ProgramName))
	}
	return logger
}

// Properties returns the property set.
func (i *Instance) Properties() *propsx.Properties { return i.props }

// Logger returns the current logger.
func (i *Instance) Logger() log.Logger {
	return i.loggers.get()
}

// SetLogger replaces the logger used by later operations of the instance,
// its adapter factory, every adapter and the plugin manager. A nil logger
// discards output.
func (i *Instance) SetLogger(l log.Logger) {
	i.loggers.set(l)
}

// Config returns the bound runtime configuration.
func (i *Instance) Config() Config {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.cfg
}

// ObjectAdapterFactory returns the adapter factory.
func (i *Instance) ObjectAdapterFactory() *ObjectAdapterFactory { return i.adapters }

// ProxyFactory returns the proxy factory.
func (i *Instance) ProxyFactory() *ProxyFactory { return i.proxies }

// ReferenceFactory returns the reference factory.
func (i *Instance) ReferenceFactory() *ReferenceFactory { return i.refs }

// PluginManager returns the plugin manager.
func (i *Instance) PluginManager() *PluginManager { return i.plugins }

// FinishSetup completes construction: it consumes the runtime options in
// args, checks property names, resolves the default router and locator and
// loads plugins. The caller must destroy the instance if it fails.
func (i *Instance) FinishSetup(ctx context.Context, args []string) ([]string, error) {
	rest := i.props.ParseIceCommandLineOptions(args)

	cfg, err := LoadConfig(i.props)
	if err != nil {
		return rest, err
	}
	i.mu.Lock()
	i.cfg = cfg
	i.mu.Unlock()
	logger := i.Logger()

	i.checkProperties(cfg, logger)

	if cfg.DefaultRouter != "" {
		router, err := i.proxies.StringToProxy(cfg.DefaultRouter)
		if err != nil {
			return rest, err
		}
		i.refs.SetDefaultRouter(router)
	}
	if cfg.DefaultLocator != "" {
		locator, err := i.proxies.StringToProxy(cfg.DefaultLocator)
		if err != nil {
			return rest, err
		}
		i.refs.SetDefaultLocator(locator)
	}

	if err := i.loadPlugins(ctx, cfg); err != nil {
		return rest, err
	}

	if cfg.PrintProcessId {
		fmt.Fprintln(i.stdout, os.Getpid())
	}
	logger.Debug("runtime setup finished", log.Int("message_size_max_kb", cfg.MessageSizeMax))
	return rest, nil
}

// checkProperties warns about deprecated keys, copying their value to the
// replacement when that is unset, and about unknown keys when enabled.
func (i *Instance) checkProperties(cfg Config, logger log.Logger) {
	for _, r := range schema.ValidateAll(i.props.Keys()) {
		switch {
		case r.Deprecated:
			logger.Warn("deprecated property", log.Str("key", r.Key), log.Str("replacement", r.Replacement))
			if r.Replacement != "" && i.props.GetProperty(r.Replacement) == "" {
				i.props.SetProperty(r.Replacement, i.props.GetProperty(r.Key))
			}
		case cfg.WarnUnknownProperties:
			logger.Warn("unknown property", log.Str("key", r.Key))
		}
	}
}

func (i *Instance) loadPlugins(ctx context.Context, cfg Config) error {
	const prefix = "Ice.Plugin."
	configured := make(map[string]string)
	for k, v := range i.props.GetPropertiesForPrefix(prefix) {
		configured[k[len(prefix):]] = v
	}
	if err := i.plugins.LoadPlugins(configured, cfg.PluginLoadOrder); err != nil {
		return err
	}
	if !cfg.InitPlugins {
		return nil
	}
	return i.plugins.InitializePlugins(ctx)
}

type requestContextKey struct{}

// RequestContext returns the proxy context a request was sent with.
func RequestContext(ctx context.Context) map[string]string {
	m, _ := ctx.Value(requestContextKey{}).(map[string]string)
	return m
}

// Invoke sends a request through p to a servant in this process. Batch
// modes queue the request until FlushBatchRequests; oneway modes drop the reply.
func (i *Instance) Invoke(ctx context.Context, p *Proxy, operation string, payload []byte) ([]byte, error) {
	if p == nil {
		return nil, errors.New(errors.CodeInvalidArgument, "nil proxy")
	}

	i.mu.Lock()
	if i.destroyed {
		i.mu.Unlock()
		return nil, errors.ErrDestroyed
	}
	if p.Mode.IsBatch() {
		i.batch = append(i.batch, batchRequest{proxy: p.Clone(), operation: operation, payload: payload})
		i.batchBytes += len(payload)
		autoFlush := i.cfg.BatchAutoFlush && i.batchBytes > i.cfg.MessageSizeMax*1024
		i.mu.Unlock()
		if autoFlush {
			return nil, i.FlushBatchRequests(ctx)
		}
		return nil, nil
	}
	i.mu.Unlock()

	out, err := i.dispatch(ctx, p, operation, payload)
	if p.Mode != ModeTwoway {
		return nil, err
	}
	return out, err
}

func (i *Instance) dispatch(ctx context.Context, p *Proxy, operation string, payload []byte) ([]byte, error) {
	adapter, _ := i.adapters.FindServant(p.Identity)
	if adapter == nil {
		return nil, errors.Newf(errors.CodeNotFound, "no servant for %q", p.Identity.String())
	}
	if len(p.Context) > 0 {
		ctx = context.WithValue(ctx, requestContextKey{}, maps.Clone(p.Context))
	}
	return adapter.Dispatch(ctx, p.Identity, operation, payload)
}

// PendingBatchRequests returns the number of queued batch requests.
func (i *Instance) PendingBatchRequests() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.batch)
}

// FlushBatchRequests delivers every queued batch request. Errors are combined;
// ctx cancellation stops delivery and drops what is left.
func (i *Instance) FlushBatchRequests(ctx context.Context) error {
	i.mu.Lock()
	batch := i.batch
	i.batch = nil
	i.batchBytes = 0
	i.mu.Unlock()

	var err error
	for _, req := range batch {
		if cerr := ctx.Err(); cerr != nil {
			return multierr.Append(err, cerr)
		}
		_, derr := i.dispatch(ctx, req.proxy, req.operation, req.payload)
		err = multierr.Append(err, derr)
	}
	return err
}

// Destroy shuts down and destroys every adapter, drops queued batch requests
// and destroys the plugins. Later calls return nil.
func (i *Instance) Destroy() error {
	i.mu.Lock()
	if i.destroyed {
		i.mu.Unlock()
		return nil
	}
	i.destroyed = true
	dropped := len(i.batch)
	i.batch = nil
	i.mu.Unlock()
	logger := i.Logger()

	i.adapters.Destroy()
	err := i.plugins.Destroy()
	logger.Debug("runtime destroyed", log.Int("dropped_batch_requests", dropped))
	return err
}
