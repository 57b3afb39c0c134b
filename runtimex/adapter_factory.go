package runtimex

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/cnlutao/ice/core/errors"
	"github.com/cnlutao/ice/core/log"
	"github.com/cnlutao/ice/propsx"
)

// ObjectAdapterFactory creates and tracks the object adapters of one instance.
// Shutdown is broadcast through a closed channel so any number of goroutines
// can wait for it.
type ObjectAdapterFactory struct {
	props   *propsx.Properties
	proxies *ProxyFactory
	loggers *loggerRef

	mu         sync.Mutex
	adapters   map[string]*ObjectAdapter
	shutdown   bool
	shutdownCh chan struct{}
}

// NewObjectAdapterFactory creates an adapter factory.
func NewObjectAdapterFactory(props *propsx.Properties, proxies *ProxyFactory, logger log.Logger) *ObjectAdapterFactory {
	return newObjectAdapterFactory(props, proxies, newLoggerRef(logger))
}

func newObjectAdapterFactory(props *propsx.Properties, proxies *ProxyFactory, loggers *loggerRef) *ObjectAdapterFactory {
	return &ObjectAdapterFactory{
		props:      props,
		proxies:    proxies,
		loggers:    loggers,
		adapters:   make(map[string]*ObjectAdapter),
		shutdownCh: make(chan struct{}),
	}
}

// CreateObjectAdapter creates the adapter called name, configured from
// <name>.Endpoints, <name>.AdapterId and <name>.Router. An empty name
// creates an adapter with a UUID name and no configuration.
func (f *ObjectAdapterFactory) CreateObjectAdapter(name string) (*ObjectAdapter, error) {
	cfg := adapterConfig{
		name:    name,
		proxies: f.proxies,
		loggers: f.loggers,
	}
	if name == "" {
		cfg.name = uuid.NewString()
	} else {
		var err error
		if cfg.endpoints, err = ParseEndpoints(f.props.GetProperty(name+".Endpoints"), f.proxies.endpointDefaults()); err != nil {
			return nil, err
		}
		cfg.adapterID = f.props.GetProperty(name + ".AdapterId")
		if cfg.router, err = f.proxies.StringToProxy(f.props.GetProperty(name + ".Router")); err != nil {
			return nil, err
		}
	}
	cfg.onDestroy = f.remove

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.shutdown {
		return nil, errors.Build(errors.CodeDeactivated).
			WithOp("ObjectAdapterFactory.CreateObjectAdapter").
			WithMsgf("cannot create adapter %q after shutdown", cfg.name).
			Err()
	}
	if _, ok := f.adapters[cfg.name]; ok {
		return nil, errors.Build(errors.CodeAlreadyRegistered).
			WithOp("ObjectAdapterFactory.CreateObjectAdapter").
			WithMsgf("object adapter %q already exists", cfg.name).
			Err()
	}

	a := newObjectAdapter(cfg)
	f.adapters[cfg.name] = a
	f.loggers.get().Debug("object adapter created", log.Str("adapter", cfg.name), log.Int("endpoints", len(cfg.endpoints)))
	return a, nil
}

// SetLogger replaces the logger of the factory and of every adapter it
// created, including adapters created earlier.
func (f *ObjectAdapterFactory) SetLogger(l log.Logger) {
	f.loggers.set(l)
}

// FindObjectAdapter returns the adapter called name, or nil.
func (f *ObjectAdapterFactory) FindObjectAdapter(name string) *ObjectAdapter {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.adapters[name]
}

// Adapters returns the live adapters sorted by name.
func (f *ObjectAdapterFactory) Adapters() []*ObjectAdapter {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

func (f *ObjectAdapterFactory) snapshotLocked() []*ObjectAdapter {
	out := make([]*ObjectAdapter, 0, len(f.adapters))
	for _, a := range f.adapters {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// FindServant looks id up in every adapter. It returns the first adapter
// (by name) holding a servant for id.
func (f *ObjectAdapterFactory) FindServant(id Identity) (*ObjectAdapter, Servant) {
	for _, a := range f.Adapters() {
		if s := a.Find(id); s != nil {
			return a, s
		}
	}
	return nil, nil
}

func (f *ObjectAdapterFactory) remove(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.adapters, name)
}

// Shutdown deactivates every adapter and refuses new ones. It does not wait.
func (f *ObjectAdapterFactory) Shutdown() {
	f.mu.Lock()
	if f.shutdown {
		f.mu.Unlock()
		return
	}
	f.shutdown = true
	adapters := f.snapshotLocked()
	close(f.shutdownCh)
	f.mu.Unlock()

	f.loggers.get().Debug("shutting down object adapters", log.Int("adapters", len(adapters)))
	for _, a := range adapters {
		a.Deactivate()
	}
}

// IsShutdown reports whether Shutdown was called.
func (f *ObjectAdapterFactory) IsShutdown() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.shutdown
}

// WaitForShutdown blocks until Shutdown was called and every adapter has
// finished deactivating, or until ctx is done. Cancelling ctx only stops the wait.
func (f *ObjectAdapterFactory) WaitForShutdown(ctx context.Context) error {
	select {
	case <-f.shutdownCh:
	case <-ctx.Done():
		return ctx.Err()
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, a := range f.Adapters() {
		g.Go(func() error {
			return a.WaitForDeactivate(gctx)
		})
	}
	return g.Wait()
}

// Destroy shuts down, waits for deactivation and destroys every adapter.
func (f *ObjectAdapterFactory) Destroy() {
	f.Shutdown()
	_ = f.WaitForShutdown(context.Background())

	var wg sync.WaitGroup
	for _, a := range f.Adapters() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.Destroy()
		}()
	}
	wg.Wait()
}
