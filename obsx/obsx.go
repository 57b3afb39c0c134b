// Package obsx exports communicator lifecycle metrics through OpenTelemetry
// and a Prometheus scrape endpoint.
//
// Usage:
//
//	provider, err := obsx.NewProvider(ctx, obsx.Options{ServiceName: "icectl"})
//	if err != nil {
//		return err
//	}
//	defer provider.Shutdown(ctx)
//	metrics, _ := obsx.NewLifecycleMetrics(provider.Meter(obsx.MeterName))
//	comm, rest, err := communicator.Initialize(ctx, args, communicator.WithMetrics(metrics))
package obsx

import (
	"context"
	"net/http"

	"github.com/cnlutao/ice/obsx/internal"
	api "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

// MeterName is the instrumentation scope used for lifecycle metrics.
const MeterName = "github.com/cnlutao/ice/communicator"

// Options holds configuration for the metrics provider.
type Options struct {
	ServiceName    string            // required
	ServiceVersion string            // optional
	ResourceAttrs  map[string]string // extra resource attributes
	Global         bool              // also install as the otel global meter provider
}

// Provider manages an OpenTelemetry meter provider with Prometheus export.
// Call Shutdown when done.
type Provider struct {
	impl *internal.Provider
}

// NewProvider creates a metrics provider with its own Prometheus registry.
func NewProvider(ctx context.Context, opts Options) (*Provider, error) {
	impl, err := internal.NewProvider(ctx, internal.ProviderOptions{
		ServiceName:    opts.ServiceName,
		ServiceVersion: opts.ServiceVersion,
		ResourceAttrs:  opts.ResourceAttrs,
		Global:         opts.Global,
	})
	if err != nil {
		return nil, err
	}
	return &Provider{impl: impl}, nil
}

// MeterProvider returns the underlying SDK meter provider.
func (p *Provider) MeterProvider() *metric.MeterProvider {
	return p.impl.MeterProvider
}

// Meter returns a named meter for creating instruments.
func (p *Provider) Meter(name string) api.Meter {
	return p.impl.MeterProvider.Meter(name)
}

// PrometheusHandler serves the collected metrics. Mount it at /metrics.
func (p *Provider) PrometheusHandler() http.Handler {
	return p.impl.Handler()
}

// EnableRuntimeMetrics registers Go runtime gauges (goroutines, heap, GC cycles).
func (p *Provider) EnableRuntimeMetrics(ctx context.Context) error {
	return internal.EnableRuntimeMetrics(ctx, p.impl.MeterProvider)
}

// Shutdown flushes and stops the provider. Bounded to five seconds.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.impl.Shutdown(ctx)
}
