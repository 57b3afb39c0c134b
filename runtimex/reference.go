package runtimex

import (
	"maps"
	"sync"
)

// ReferenceFactory holds the defaults new proxies inherit.
// Contexts are copied on the way in and on the way out.
type ReferenceFactory struct {
	mu             sync.RWMutex
	defaultRouter  *Proxy
	defaultLocator *Proxy
	defaultContext map[string]string
}

// NewReferenceFactory creates an empty reference factory.
func NewReferenceFactory() *ReferenceFactory {
	return &ReferenceFactory{}
}

// DefaultRouter returns the default router, or nil.
func (f *ReferenceFactory) DefaultRouter() *Proxy {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.defaultRouter
}

// SetDefaultRouter sets the default router. nil clears it.
func (f *ReferenceFactory) SetDefaultRouter(p *Proxy) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.defaultRouter = p
}

// DefaultLocator returns the default locator, or nil.
func (f *ReferenceFactory) DefaultLocator() *Proxy {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.defaultLocator
}

// SetDefaultLocator sets the default locator. nil clears it.
func (f *ReferenceFactory) SetDefaultLocator(p *Proxy) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.defaultLocator = p
}

// DefaultContext returns a copy of the default request context.
func (f *ReferenceFactory) DefaultContext() map[string]string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return maps.Clone(f.defaultContext)
}

// SetDefaultContext replaces the default request context with a copy of ctx.
func (f *ReferenceFactory) SetDefaultContext(ctx map[string]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.defaultContext = maps.Clone(ctx)
}
