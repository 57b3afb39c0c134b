package communicator

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cnlutao/ice/core/log"
	"github.com/cnlutao/ice/propsx"
	"github.com/cnlutao/ice/runtimex"
)

// fakeAdapterFactory wraps the real factory so Shutdown can be made to block
// and creation to fail.
type fakeAdapterFactory struct {
	*runtimex.ObjectAdapterFactory

	shutdownEntered chan struct{}
	releaseShutdown chan struct{}
	createErr       error
}

func (f *fakeAdapterFactory) Shutdown() {
	if f.shutdownEntered != nil {
		close(f.shutdownEntered)
	}
	if f.releaseShutdown != nil {
		<-f.releaseShutdown
	}
	f.ObjectAdapterFactory.Shutdown()
}

func (f *fakeAdapterFactory) CreateObjectAdapter(name string) (*runtimex.ObjectAdapter, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.ObjectAdapterFactory.CreateObjectAdapter(name)
}

// fakeInstance records teardown and lets tests block inside it.
type fakeInstance struct {
	props    *propsx.Properties
	refs     *runtimex.ReferenceFactory
	proxies  *runtimex.ProxyFactory
	adapters *fakeAdapterFactory

	setupErr       error
	destroyErr     error
	destroyEntered chan struct{}
	releaseDestroy chan struct{}

	destroyCalls atomic.Int32
	flushCalls   atomic.Int32
	setupArgs    []string

	mu     sync.Mutex
	logger log.Logger
}

var _ Instance = (*fakeInstance)(nil)

func newFakeInstance(props *propsx.Properties, logger log.Logger) *fakeInstance {
	if props == nil {
		props = propsx.New()
	}
	if logger == nil {
		logger = log.Nop()
	}
	refs := runtimex.NewReferenceFactory()
	proxies := runtimex.NewProxyFactory(props, refs)
	return &fakeInstance{
		props:    props,
		refs:     refs,
		proxies:  proxies,
		adapters: &fakeAdapterFactory{ObjectAdapterFactory: runtimex.NewObjectAdapterFactory(props, proxies, logger)},
		logger:   logger,
	}
}

func (f *fakeInstance) Destroy() error {
	n := f.destroyCalls.Add(1)
	if n == 1 && f.destroyEntered != nil {
		close(f.destroyEntered)
	}
	if f.releaseDestroy != nil {
		<-f.releaseDestroy
	}
	f.adapters.ObjectAdapterFactory.Destroy()
	return f.destroyErr
}

func (f *fakeInstance) ObjectAdapterFactory() AdapterFactory { return f.adapters }
func (f *fakeInstance) ProxyFactory() ProxyFactory           { return f.proxies }
func (f *fakeInstance) ReferenceFactory() ReferenceFactory   { return f.refs }
func (f *fakeInstance) Properties() *propsx.Properties       { return f.props }

func (f *fakeInstance) Logger() log.Logger {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.logger
}

func (f *fakeInstance) SetLogger(l log.Logger) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logger = l
}

func (f *fakeInstance) FlushBatchRequests(context.Context) error {
	f.flushCalls.Add(1)
	return nil
}

func (f *fakeInstance) FinishSetup(_ context.Context, args []string) ([]string, error) {
	f.setupArgs = args
	if f.setupErr != nil {
		return nil, f.setupErr
	}
	return args, nil
}

// factoryFor returns an InstanceFactory handing out inst, adopting the
// properties and logger Initialize built.
func factoryFor(inst *fakeInstance) InstanceFactory {
	return func(props *propsx.Properties, logger log.Logger) (Instance, error) {
		inst.props = props
		inst.proxies = runtimex.NewProxyFactory(props, inst.refs)
		inst.adapters.ObjectAdapterFactory = runtimex.NewObjectAdapterFactory(props, inst.proxies, log.Nop())
		if logger != nil {
			inst.logger = logger
		}
		return inst, nil
	}
}

type recordingMetrics struct {
	created     atomic.Int32
	destroyed   atomic.Int32
	leaked      atomic.Int32
	setupFailed atomic.Int32
}

func (m *recordingMetrics) CommunicatorCreated(context.Context) { m.created.Add(1) }
func (m *recordingMetrics) CommunicatorDestroyed(context.Context, time.Duration) {
	m.destroyed.Add(1)
}
func (m *recordingMetrics) CommunicatorLeaked(context.Context) { m.leaked.Add(1) }
func (m *recordingMetrics) SetupFailed(context.Context)        { m.setupFailed.Add(1) }
