package runtimex

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/cnlutao/ice/core/errors"
	"github.com/cnlutao/ice/core/log"
	"github.com/cnlutao/ice/core/reqmeta"
	"github.com/cnlutao/ice/logx"
)

// Servant implements the operations of one object.
type Servant interface {
	Dispatch(ctx context.Context, operation string, payload []byte) ([]byte, error)
}

// ServantFunc adapts a function to Servant.
type ServantFunc func(ctx context.Context, operation string, payload []byte) ([]byte, error)

// Dispatch calls f.
func (f ServantFunc) Dispatch(ctx context.Context, operation string, payload []byte) ([]byte, error) {
	return f(ctx, operation, payload)
}

// AdapterState is the lifecycle state of an ObjectAdapter.
type AdapterState int

const (
	StateHolding AdapterState = iota
	StateActive
	StateDeactivating
	StateDeactivated
)

func (s AdapterState) String() string {
	switch s {
	case StateHolding:
		return "holding"
	case StateActive:
		return "active"
	case StateDeactivating:
		return "deactivating"
	default:
		return "deactivated"
	}
}

// ObjectAdapter maps identities to servants and dispatches requests to them.
// It starts in the holding state; Deactivate refuses new requests and
// completes once the in-flight count drains to zero.
type ObjectAdapter struct {
	name      string
	endpoints []Endpoint
	adapterID string
	router    *Proxy
	proxies   *ProxyFactory
	loggers   *loggerRef
	onDestroy func(name string)

	mu          sync.Mutex
	state       AdapterState
	servants    map[Identity]Servant
	inFlight    int
	deactivated chan struct{}
	destroyed   bool
}

type adapterConfig struct {
	name      string
	endpoints []Endpoint
	adapterID string
	router    *Proxy
	proxies   *ProxyFactory
	loggers   *loggerRef
	onDestroy func(name string)
}

func newObjectAdapter(cfg adapterConfig) *ObjectAdapter {
	return &ObjectAdapter{
		name:        cfg.name,
		endpoints:   cfg.endpoints,
		adapterID:   cfg.adapterID,
		router:      cfg.router,
		proxies:     cfg.proxies,
		loggers:     cfg.loggers,
		onDestroy:   cfg.onDestroy,
		servants:    make(map[Identity]Servant),
		deactivated: make(chan struct{}),
	}
}

// logger returns the current instance logger tagged with the adapter name.
func (a *ObjectAdapter) logger() log.Logger {
	return a.loggers.get().With(log.Str("adapter", a.name))
}

// Name returns the adapter name.
func (a *ObjectAdapter) Name() string { return a.name }

// Endpoints returns the endpoints configured through <name>.Endpoints.
func (a *ObjectAdapter) Endpoints() []Endpoint {
	return append([]Endpoint(nil), a.endpoints...)
}

// Router returns the router configured through <name>.Router, or nil.
func (a *ObjectAdapter) Router() *Proxy { return a.router }

// State returns the current state.
func (a *ObjectAdapter) State() AdapterState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Activate starts accepting requests.
func (a *ObjectAdapter) Activate() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state >= StateDeactivating {
		return a.deactivatedErr("Activate")
	}
	a.state = StateActive
	a.logger().Debug("adapter activated")
	return nil
}

// Hold stops accepting requests until the next Activate. Requests arriving
// while holding fail with CodeUnavailable.
func (a *ObjectAdapter) Hold() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state >= StateDeactivating {
		return a.deactivatedErr("Hold")
	}
	a.state = StateHolding
	return nil
}

// Deactivate stops accepting requests. It does not wait for in-flight
// requests; use WaitForDeactivate for that. Calling it again is a no-op.
func (a *ObjectAdapter) Deactivate() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state >= StateDeactivating {
		return
	}
	a.state = StateDeactivating
	a.logger().Debug("adapter deactivating", log.Int("in_flight", a.inFlight))
	if a.inFlight == 0 {
		a.finishDeactivateLocked()
	}
}

func (a *ObjectAdapter) finishDeactivateLocked() {
	a.state = StateDeactivated
	close(a.deactivated)
}

// WaitForDeactivate blocks until deactivation completed or ctx is done.
func (a *ObjectAdapter) WaitForDeactivate(ctx context.Context) error {
	select {
	case <-a.deactivated:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// IsDeactivated reports whether deactivation completed.
func (a *ObjectAdapter) IsDeactivated() bool {
	select {
	case <-a.deactivated:
		return true
	default:
		return false
	}
}

// Destroy deactivates the adapter, waits for in-flight requests, drops every
// servant and unregisters the adapter from its factory.
func (a *ObjectAdapter) Destroy() {
	a.Deactivate()
	<-a.deactivated

	a.mu.Lock()
	if a.destroyed {
		a.mu.Unlock()
		return
	}
	a.destroyed = true
	a.servants = make(map[Identity]Servant)
	a.mu.Unlock()

	if a.onDestroy != nil {
		a.onDestroy(a.name)
	}
	a.logger().Debug("adapter destroyed")
}

// Add registers servant under id and returns a proxy for it.
func (a *ObjectAdapter) Add(servant Servant, id Identity) (*Proxy, error) {
	if id.Name == "" {
		return nil, errors.New(errors.CodeInvalidArgument, "identity name must not be empty")
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state >= StateDeactivating {
		return nil, a.deactivatedErr("Add")
	}
	if _, ok := a.servants[id]; ok {
		return nil, errors.Build(errors.CodeAlreadyRegistered).
			WithOp("ObjectAdapter.Add").
			WithMsgf("servant %q already registered", id.String()).
			WithDetails("adapter", a.name).
			Err()
	}
	a.servants[id] = servant
	return a.newProxy(id), nil
}

// AddWithUUID registers servant under a fresh UUID identity.
func (a *ObjectAdapter) AddWithUUID(servant Servant) (*Proxy, error) {
	return a.Add(servant, Identity{Name: uuid.NewString()})
}

// Remove unregisters the servant for id and returns it.
func (a *ObjectAdapter) Remove(id Identity) (Servant, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state >= StateDeactivating {
		return nil, a.deactivatedErr("Remove")
	}
	s, ok := a.servants[id]
	if !ok {
		return nil, errors.Build(errors.CodeNotRegistered).
			WithOp("ObjectAdapter.Remove").
			WithMsgf("no servant for %q", id.String()).
			WithDetails("adapter", a.name).
			Err()
	}
	delete(a.servants, id)
	return s, nil
}

// Find returns the servant registered under id, or nil.
func (a *ObjectAdapter) Find(id Identity) Servant {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.servants[id]
}

// CreateProxy returns a proxy for id without registering anything.
func (a *ObjectAdapter) CreateProxy(id Identity) (*Proxy, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state >= StateDeactivating {
		return nil, a.deactivatedErr("CreateProxy")
	}
	return a.newProxy(id), nil
}

// newProxy builds an indirect proxy when the adapter has an id, a direct one otherwise.
func (a *ObjectAdapter) newProxy(id Identity) *Proxy {
	p := &Proxy{Identity: id, Router: a.router}
	if a.adapterID != "" {
		p.AdapterID = a.adapterID
	} else {
		p.Endpoints = append([]Endpoint(nil), a.endpoints...)
	}
	if a.proxies != nil && a.proxies.refs != nil {
		if p.Router == nil {
			p.Router = a.proxies.refs.DefaultRouter()
		}
		p.Locator = a.proxies.refs.DefaultLocator()
		p.Context = a.proxies.refs.DefaultContext()
	}
	return p
}

// Dispatch delivers one request to the servant registered under id.
func (a *ObjectAdapter) Dispatch(ctx context.Context, id Identity, operation string, payload []byte) ([]byte, error) {
	a.mu.Lock()
	switch a.state {
	case StateHolding:
		a.mu.Unlock()
		return nil, errors.Newf(errors.CodeUnavailable, "adapter %q is holding", a.name)
	case StateDeactivating, StateDeactivated:
		a.mu.Unlock()
		return nil, a.deactivatedErr("Dispatch")
	}
	servant, ok := a.servants[id]
	if !ok {
		a.mu.Unlock()
		return nil, errors.Newf(errors.CodeNotFound, "object %q not found in adapter %q", id.String(), a.name)
	}
	a.inFlight++
	a.mu.Unlock()

	defer a.dispatchDone()

	ctx, _ = reqmeta.Ensure(ctx, reqmeta.Meta{Adapter: a.name, Identity: id.String(), Operation: operation})
	logger := logx.FromContext(ctx, a.logger())
	logger.Debug("dispatch")

	out, err := servant.Dispatch(ctx, operation, payload)
	if err != nil {
		logger.Debug("dispatch failed", log.Str("error", err.Error()))
	}
	return out, err
}

func (a *ObjectAdapter) dispatchDone() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.inFlight--
	if a.state == StateDeactivating && a.inFlight == 0 {
		a.finishDeactivateLocked()
	}
}

func (a *ObjectAdapter) deactivatedErr(op string) error {
	return errors.Build(errors.CodeDeactivated).
		WithOp("ObjectAdapter." + op).
		WithMsgf("object adapter %q deactivated", a.name).
		Err()
}
