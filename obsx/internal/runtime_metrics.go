package internal

import (
	"context"
	"runtime"

	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// RuntimeMeterName scopes the Go runtime gauges.
const RuntimeMeterName = "github.com/cnlutao/ice/obsx/runtime"

// EnableRuntimeMetrics registers goroutine, heap and GC observers read on scrape.
func EnableRuntimeMetrics(_ context.Context, mp *sdkmetric.MeterProvider) error {
	meter := mp.Meter(RuntimeMeterName)

	goroutines, err := meter.Int64ObservableGauge(
		"process_runtime_go_goroutines",
		metric.WithDescription("Number of goroutines that currently exist"),
	)
	if err != nil {
		return err
	}
	heap, err := meter.Int64ObservableGauge(
		"process_runtime_go_memory_heap_bytes",
		metric.WithDescription("Heap memory in bytes"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return err
	}
	gc, err := meter.Int64ObservableCounter(
		"process_runtime_go_gc_count_total",
		metric.WithDescription("Total number of GC cycles completed"),
	)
	if err != nil {
		return err
	}

	_, err = meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		o.ObserveInt64(goroutines, int64(runtime.NumGoroutine()))
		o.ObserveInt64(heap, int64(m.HeapAlloc))
		o.ObserveInt64(gc, int64(m.NumGC))
		return nil
	}, goroutines, heap, gc)
	return err
}
