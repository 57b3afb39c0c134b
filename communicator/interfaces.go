package communicator

import (
	"context"
	"time"

	"github.com/cnlutao/ice/core/log"
	"github.com/cnlutao/ice/propsx"
	"github.com/cnlutao/ice/runtimex"
)

// Instance is the runtime aggregate a Communicator owns.
type Instance interface {
	Destroy() error
	ObjectAdapterFactory() AdapterFactory
	ProxyFactory() ProxyFactory
	ReferenceFactory() ReferenceFactory
	Properties() *propsx.Properties
	Logger() log.Logger
	SetLogger(log.Logger)
	FlushBatchRequests(ctx context.Context) error
	FinishSetup(ctx context.Context, args []string) ([]string, error)
}

// AdapterFactory creates object adapters and drives their shutdown.
// Shutdown and WaitForShutdown may block.
type AdapterFactory interface {
	Shutdown()
	IsShutdown() bool
	WaitForShutdown(ctx context.Context) error
	CreateObjectAdapter(name string) (*runtimex.ObjectAdapter, error)
}

// ProxyFactory converts between proxies and their string form.
type ProxyFactory interface {
	StringToProxy(s string) (*runtimex.Proxy, error)
	ProxyToString(p *runtimex.Proxy) string
	PropertyToProxy(name string) (*runtimex.Proxy, error)
}

// ReferenceFactory holds the defaults applied to new proxies.
type ReferenceFactory interface {
	DefaultRouter() *runtimex.Proxy
	SetDefaultRouter(*runtimex.Proxy)
	DefaultLocator() *runtimex.Proxy
	SetDefaultLocator(*runtimex.Proxy)
	DefaultContext() map[string]string
	SetDefaultContext(map[string]string)
}

// Metrics receives lifecycle events. obsx.LifecycleMetrics implements it.
type Metrics interface {
	CommunicatorCreated(ctx context.Context)
	CommunicatorDestroyed(ctx context.Context, teardown time.Duration)
	CommunicatorLeaked(ctx context.Context)
	SetupFailed(ctx context.Context)
}

type nopMetrics struct{}

func (nopMetrics) CommunicatorCreated(context.Context)                  {}
func (nopMetrics) CommunicatorDestroyed(context.Context, time.Duration) {}
func (nopMetrics) CommunicatorLeaked(context.Context)                   {}
func (nopMetrics) SetupFailed(context.Context)                          {}

// runtimeInstance adapts *runtimex.Instance, whose factory accessors return
// concrete types, to Instance.
type runtimeInstance struct {
	*runtimex.Instance
}

var _ Instance = runtimeInstance{}

func (r runtimeInstance) ObjectAdapterFactory() AdapterFactory {
	return r.Instance.ObjectAdapterFactory()
}

func (r runtimeInstance) ProxyFactory() ProxyFactory {
	return r.Instance.ProxyFactory()
}

func (r runtimeInstance) ReferenceFactory() ReferenceFactory {
	return r.Instance.ReferenceFactory()
}
