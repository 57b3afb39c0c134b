package obsx

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	api "go.opentelemetry.io/otel/metric"
)

// LifecycleMetrics records communicator creation, teardown and setup failures.
// It satisfies communicator.Metrics.
type LifecycleMetrics struct {
	created     api.Int64Counter
	destroyed   api.Int64Counter
	setupFailed api.Int64Counter
	leaked      api.Int64Counter
	live        api.Int64UpDownCounter
	teardown    api.Float64Histogram
}

// NewLifecycleMetrics creates the lifecycle instruments on meter.
func NewLifecycleMetrics(meter api.Meter) (*LifecycleMetrics, error) {
	m := &LifecycleMetrics{}
	var err error

	if m.created, err = meter.Int64Counter("ice_communicator_created_total",
		api.WithDescription("Communicators that completed setup")); err != nil {
		return nil, err
	}
	if m.destroyed, err = meter.Int64Counter("ice_communicator_destroyed_total",
		api.WithDescription("Communicators torn down")); err != nil {
		return nil, err
	}
	if m.setupFailed, err = meter.Int64Counter("ice_communicator_setup_failed_total",
		api.WithDescription("Communicators rolled back during setup")); err != nil {
		return nil, err
	}
	if m.leaked, err = meter.Int64Counter("ice_communicator_leaked_total",
		api.WithDescription("Communicators garbage collected without destroy")); err != nil {
		return nil, err
	}
	if m.live, err = meter.Int64UpDownCounter("ice_communicator_live",
		api.WithDescription("Communicators created and not yet destroyed")); err != nil {
		return nil, err
	}
	if m.teardown, err = meter.Float64Histogram("ice_communicator_teardown_seconds",
		api.WithDescription("Time spent tearing down the runtime instance"),
		api.WithUnit("s"),
		api.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30)); err != nil {
		return nil, err
	}
	return m, nil
}

// CommunicatorCreated counts a handle that finished both setup phases.
func (m *LifecycleMetrics) CommunicatorCreated(ctx context.Context) {
	m.created.Add(ctx, 1)
	m.live.Add(ctx, 1)
}

// CommunicatorDestroyed counts a completed teardown and records its duration.
func (m *LifecycleMetrics) CommunicatorDestroyed(ctx context.Context, d time.Duration) {
	m.destroyed.Add(ctx, 1)
	m.live.Add(ctx, -1)
	m.teardown.Record(ctx, d.Seconds())
}

// CommunicatorLeaked counts a handle collected without being destroyed.
func (m *LifecycleMetrics) CommunicatorLeaked(ctx context.Context) {
	m.leaked.Add(ctx, 1, api.WithAttributes(attribute.String("reason", "not_destroyed")))
}

// SetupFailed counts a handle rolled back in the second setup phase.
func (m *LifecycleMetrics) SetupFailed(ctx context.Context) {
	m.setupFailed.Add(ctx, 1)
}
