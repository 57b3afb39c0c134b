// Package internal holds the OpenTelemetry wiring behind obsx.
package internal

import (
	"context"
	"fmt"
	"net/http"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

// ProviderOptions holds configuration for the metrics provider.
type ProviderOptions struct {
	ServiceName    string
	ServiceVersion string
	ResourceAttrs  map[string]string
	Global         bool
}

// Provider owns a meter provider exporting through a private Prometheus registry.
type Provider struct {
	MeterProvider *metric.MeterProvider
	registry      *promclient.Registry
}

// NewProvider builds the resource, the Prometheus exporter and the meter provider.
func NewProvider(ctx context.Context, opts ProviderOptions) (*Provider, error) {
	if opts.ServiceName == "" {
		return nil, fmt.Errorf("service name is required")
	}

	res, err := createResource(ctx, opts)
	if err != nil {
		return nil, err
	}

	mp, reg, err := createMeterProvider(res)
	if err != nil {
		return nil, err
	}

	if opts.Global {
		otel.SetMeterProvider(mp)
	}

	return &Provider{MeterProvider: mp, registry: reg}, nil
}

func createResource(ctx context.Context, opts ProviderOptions) (*resource.Resource, error) {
	attrs := []attribute.KeyValue{
		semconv.ServiceName(opts.ServiceName),
	}
	if opts.ServiceVersion != "" {
		attrs = append(attrs, semconv.ServiceVersion(opts.ServiceVersion))
	}
	for k, v := range opts.ResourceAttrs {
		attrs = append(attrs, attribute.String(k, v))
	}

	res, err := resource.New(ctx, resource.WithAttributes(attrs...))
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}
	return res, nil
}

func createMeterProvider(res *resource.Resource) (*metric.MeterProvider, *promclient.Registry, error) {
	reg := promclient.NewRegistry()
	exporter, err := prometheus.New(
		prometheus.WithRegisterer(reg),
		prometheus.WithoutUnits(),
		prometheus.WithoutScopeInfo(),
		prometheus.WithoutCounterSuffixes(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	mp := metric.NewMeterProvider(
		metric.WithResource(res),
		metric.WithReader(exporter),
	)
	return mp, reg, nil
}

// Handler serves the registry in Prometheus text or OpenMetrics format.
func (p *Provider) Handler() http.Handler {
	if p.registry == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("# metrics not available\n"))
		})
	}
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Shutdown flushes and stops the meter provider, bounded to five seconds.
func (p *Provider) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if p.MeterProvider != nil {
		if err := p.MeterProvider.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown meter provider: %w", err)
		}
	}
	return nil
}
