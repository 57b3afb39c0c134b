// Package communicator provides the Communicator, the handle that owns one
// runtime instance and governs its lifecycle.
//
// Overview:
//   - Responsibility: Gate every runtime operation on the handle being alive and
//     tear the runtime down exactly once
//   - Key Types: Communicator, Instance and its factory interfaces
//   - Concurrency Model: One mutex per handle guards the destroyed flag and the
//     instance reference. Blocking calls run after the mutex is released
//   - Error Semantics: Gated operations on a destroyed handle fail with a
//     COMMUNICATOR_DESTROYED error (errors.Is(err, errors.ErrDestroyed)).
//     Properties, Logger and SetLogger never fail
//
// Usage:
//
//	comm, rest, err := communicator.Initialize(ctx, os.Args[1:])
//	if err != nil {
//		return err
//	}
//	defer comm.Destroy()
//	adapter, err := comm.CreateObjectAdapterWithEndpoints("Hello", "tcp -p 10000")
package communicator

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cnlutao/ice/core/errors"
	"github.com/cnlutao/ice/core/log"
	"github.com/cnlutao/ice/propsx"
	"github.com/cnlutao/ice/runtimex"
)

// Communicator is the user-facing runtime handle. Create it with Initialize
// and release it with Destroy or Close.
type Communicator struct {
	id      string
	metrics Metrics

	mu        sync.Mutex
	destroyed bool
	instance  Instance
	props     *propsx.Properties
	logger    log.Logger
	done      chan struct{}
	published bool

	tracked  bool
	reporter *leakReporter
	cleanup  runtime.Cleanup
}

// Initialize builds properties from args and the options, constructs the
// runtime instance and completes its setup. It returns the arguments that
// were not consumed as properties.
//
// If the instance cannot be built, no handle exists and the error is returned
// as is. If the second setup phase fails, the instance is torn down first and
// the returned error carries SETUP_FAILED wrapping the cause.
func Initialize(ctx context.Context, args []string, opts ...Option) (*Communicator, []string, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	props, rest, err := propsx.NewProperties(args, o.defaults)
	if err != nil {
		if errors.CodeOf(err) == "" {
			err = errors.Wrap(errors.CodeInitialization, "communicator.Initialize", err)
		}
		return nil, nil, err
	}

	inst, err := o.instanceFactory()(props, o.logger)
	if err != nil {
		return nil, nil, err
	}

	c := newCommunicator(inst, o.metrics)
	rest, err = c.finishSetup(ctx, rest)
	if err != nil {
		return nil, nil, err
	}
	c.publish(ctx, o.leakDetection)
	return c, rest, nil
}

func newCommunicator(inst Instance, metrics Metrics) *Communicator {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	props := inst.Properties()
	if props == nil {
		props = propsx.New()
	}
	logger := inst.Logger()
	if logger == nil {
		logger = log.Nop()
	}
	return &Communicator{
		id:       uuid.NewString(),
		metrics:  metrics,
		instance: inst,
		props:    props,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// finishSetup runs the second setup phase. The handle is not shared yet, so
// no lock is held. On failure the handle is rolled back to destroyed.
func (c *Communicator) finishSetup(ctx context.Context, args []string) ([]string, error) {
	rest, err := c.instance.FinishSetup(ctx, args)
	if err == nil {
		return rest, nil
	}
	c.logger.Error(err, "communicator setup failed", log.Str("communicator", c.id))
	c.Destroy()
	c.metrics.SetupFailed(ctx)
	return nil, errors.Wrap(errors.CodeSetupFailed, "communicator.Initialize", err)
}

func (c *Communicator) publish(ctx context.Context, leakDetection bool) {
	c.reporter = &leakReporter{id: c.id, metrics: c.metrics, logger: c.logger}
	c.published = true
	c.tracked = leakDetection
	if leakDetection {
		track(c.id)
	}
	c.cleanup = runtime.AddCleanup(c, func(r *leakReporter) { r.report() }, c.reporter)
	c.metrics.CommunicatorCreated(ctx)
	c.logger.Debug("communicator created", log.Str("communicator", c.id))
}

// liveLocked is the liveness guard. c.mu must be held.
func (c *Communicator) liveLocked(op string) (Instance, error) {
	if c.destroyed {
		return nil, errors.Build(errors.CodeDestroyed).
			WithOp(op).
			WithMsgf("communicator destroyed").
			WithDetails("communicator", c.id).
			Err()
	}
	return c.instance, nil
}

func (c *Communicator) capture(op string) (Instance, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.liveLocked(op)
}

// ID returns the handle's unique id.
func (c *Communicator) ID() string {
	return c.id
}

// IsDestroyed reports whether Destroy has been called. It does not wait for
// teardown to finish.
func (c *Communicator) IsDestroyed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.destroyed
}

// Destroy tears down the runtime instance. Only the first call runs the
// teardown; concurrent and later callers block until it has finished. Destroy
// never fails; teardown errors are logged.
func (c *Communicator) Destroy() {
	c.mu.Lock()
	if c.destroyed {
		done := c.done
		c.mu.Unlock()
		<-done
		return
	}
	c.destroyed = true
	inst := c.instance
	logger := c.logger
	c.mu.Unlock()

	start := time.Now()
	if inst != nil {
		if err := inst.Destroy(); err != nil {
			logger.Error(err, "communicator teardown failed", log.Str("communicator", c.id))
		}
	}
	elapsed := time.Since(start)

	c.mu.Lock()
	c.instance = nil
	published := c.published
	c.mu.Unlock()

	if published {
		c.cleanup.Stop()
		if c.tracked {
			untrack(c.id)
		}
		c.metrics.CommunicatorDestroyed(context.Background(), elapsed)
		logger.Debug("communicator destroyed", log.Str("communicator", c.id), log.Dur("teardown", elapsed))
	}
	close(c.done)
}

// Close destroys the communicator. It always returns nil.
func (c *Communicator) Close() error {
	c.Destroy()
	return nil
}

// Shutdown deactivates every object adapter. It may block while adapters
// deactivate; the handle stays usable by other goroutines meanwhile.
func (c *Communicator) Shutdown() error {
	inst, err := c.capture("communicator.Shutdown")
	if err != nil {
		return err
	}
	inst.ObjectAdapterFactory().Shutdown()
	return nil
}

// IsShutdown reports whether Shutdown was initiated.
func (c *Communicator) IsShutdown() (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	inst, err := c.liveLocked("communicator.IsShutdown")
	if err != nil {
		return false, err
	}
	return inst.ObjectAdapterFactory().IsShutdown(), nil
}

// WaitForShutdown blocks until shutdown has completed. ctx only bounds the
// wait; cancelling it does not cancel the shutdown.
func (c *Communicator) WaitForShutdown(ctx context.Context) error {
	inst, err := c.capture("communicator.WaitForShutdown")
	if err != nil {
		return err
	}
	return inst.ObjectAdapterFactory().WaitForShutdown(ctx)
}

// StringToProxy parses a stringified proxy. An empty string yields nil.
func (c *Communicator) StringToProxy(s string) (*runtimex.Proxy, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	inst, err := c.liveLocked("communicator.StringToProxy")
	if err != nil {
		return nil, err
	}
	return inst.ProxyFactory().StringToProxy(s)
}

// ProxyToString returns the stringified form of p, or "" for nil.
func (c *Communicator) ProxyToString(p *runtimex.Proxy) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	inst, err := c.liveLocked("communicator.ProxyToString")
	if err != nil {
		return "", err
	}
	return inst.ProxyFactory().ProxyToString(p), nil
}

// PropertyToProxy builds a proxy from the property name and its sub-properties.
func (c *Communicator) PropertyToProxy(name string) (*runtimex.Proxy, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	inst, err := c.liveLocked("communicator.PropertyToProxy")
	if err != nil {
		return nil, err
	}
	return inst.ProxyFactory().PropertyToProxy(name)
}

// CreateObjectAdapter creates an adapter configured by <name>.* properties.
func (c *Communicator) CreateObjectAdapter(name string) (*runtimex.ObjectAdapter, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	inst, err := c.liveLocked("communicator.CreateObjectAdapter")
	if err != nil {
		return nil, err
	}
	return inst.ObjectAdapterFactory().CreateObjectAdapter(name)
}

// CreateObjectAdapterWithEndpoints sets <name>.Endpoints and creates the
// adapter. An empty name is replaced by a UUID. The property stays set even
// when creation fails.
func (c *Communicator) CreateObjectAdapterWithEndpoints(name, endpoints string) (*runtimex.ObjectAdapter, error) {
	if name == "" {
		name = uuid.NewString()
	}
	c.Properties().SetProperty(name+".Endpoints", endpoints)
	return c.CreateObjectAdapter(name)
}

// CreateObjectAdapterWithRouter sets <name>.Router from router and creates the
// adapter.
func (c *Communicator) CreateObjectAdapterWithRouter(name string, router *runtimex.Proxy) (*runtimex.ObjectAdapter, error) {
	if name == "" {
		name = uuid.NewString()
	}
	s, err := c.ProxyToString(router)
	if err != nil {
		return nil, err
	}
	c.Properties().SetProperty(name+".Router", s)
	return c.CreateObjectAdapter(name)
}

// Properties returns the property set. Valid after Destroy.
func (c *Communicator) Properties() *propsx.Properties {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.props
}

// Logger returns the current logger. Valid after Destroy.
func (c *Communicator) Logger() log.Logger {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.logger
}

// SetLogger replaces the logger. Allowed after Destroy, for example so a
// logging plugin can detach itself.
func (c *Communicator) SetLogger(l log.Logger) {
	if l == nil {
		l = log.Nop()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger = l
	if c.instance != nil {
		c.instance.SetLogger(l)
	}
	if c.reporter != nil {
		c.reporter.setLogger(l)
	}
}

// DefaultRouter returns the router applied to new proxies, or nil.
func (c *Communicator) DefaultRouter() (*runtimex.Proxy, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	inst, err := c.liveLocked("communicator.DefaultRouter")
	if err != nil {
		return nil, err
	}
	return inst.ReferenceFactory().DefaultRouter(), nil
}

// SetDefaultRouter sets the router applied to proxies created afterwards.
func (c *Communicator) SetDefaultRouter(router *runtimex.Proxy) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	inst, err := c.liveLocked("communicator.SetDefaultRouter")
	if err != nil {
		return err
	}
	inst.ReferenceFactory().SetDefaultRouter(router)
	return nil
}

// DefaultLocator returns the locator applied to new proxies, or nil.
func (c *Communicator) DefaultLocator() (*runtimex.Proxy, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	inst, err := c.liveLocked("communicator.DefaultLocator")
	if err != nil {
		return nil, err
	}
	return inst.ReferenceFactory().DefaultLocator(), nil
}

// SetDefaultLocator sets the locator applied to proxies created afterwards.
func (c *Communicator) SetDefaultLocator(locator *runtimex.Proxy) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	inst, err := c.liveLocked("communicator.SetDefaultLocator")
	if err != nil {
		return err
	}
	inst.ReferenceFactory().SetDefaultLocator(locator)
	return nil
}

// DefaultContext returns a copy of the default request context.
func (c *Communicator) DefaultContext() (map[string]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	inst, err := c.liveLocked("communicator.DefaultContext")
	if err != nil {
		return nil, err
	}
	return inst.ReferenceFactory().DefaultContext(), nil
}

// SetDefaultContext replaces the default request context.
func (c *Communicator) SetDefaultContext(ctx map[string]string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	inst, err := c.liveLocked("communicator.SetDefaultContext")
	if err != nil {
		return err
	}
	inst.ReferenceFactory().SetDefaultContext(ctx)
	return nil
}

// FlushBatchRequests sends queued batch requests. It is best effort and not
// gated on the handle being alive: it still flushes while teardown runs and
// is a no-op returning nil once the instance has been released.
func (c *Communicator) FlushBatchRequests(ctx context.Context) error {
	c.mu.Lock()
	inst := c.instance
	c.mu.Unlock()
	if inst == nil {
		return nil
	}
	return inst.FlushBatchRequests(ctx)
}
