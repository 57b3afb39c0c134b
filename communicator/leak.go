package communicator

import (
	"context"
	"runtime/debug"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cnlutao/ice/core/errors"
	"github.com/cnlutao/ice/core/log"
)

// LeakRecord describes a tracked handle that has not been destroyed.
type LeakRecord struct {
	ID      string
	Created time.Time
	Stack   string
}

var registry = struct {
	mu   sync.Mutex
	live map[string]LeakRecord
}{live: make(map[string]LeakRecord)}

func track(id string) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.live[id] = LeakRecord{ID: id, Created: time.Now(), Stack: string(debug.Stack())}
}

func untrack(id string) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	delete(registry.live, id)
}

// LiveHandles returns the tracked handles not yet destroyed, oldest first.
// Only handles created with leak detection enabled are tracked.
func LiveHandles() []LeakRecord {
	registry.mu.Lock()
	out := make([]LeakRecord, 0, len(registry.live))
	for _, r := range registry.live {
		out = append(out, r)
	}
	registry.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Created.Equal(out[j].Created) {
			return out[i].ID < out[j].ID
		}
		return out[i].Created.Before(out[j].Created)
	})
	return out
}

// VerifyNoLeaks fails if any tracked handle was never destroyed. Call it from
// TestMain or before process exit.
func VerifyNoLeaks() error {
	live := LiveHandles()
	if len(live) == 0 {
		return nil
	}
	ids := make([]string, len(live))
	for i, r := range live {
		ids[i] = r.ID
	}
	return errors.Build(errors.CodeInternal).
		WithOp("communicator.VerifyNoLeaks").
		WithMsgf("%d communicator(s) not destroyed: %s", len(live), strings.Join(ids, ", ")).
		WithDetails("stack", live[0].Stack).
		Err()
}

// leakReporter is attached to a handle with runtime.AddCleanup. It must not
// reference the Communicator.
type leakReporter struct {
	id      string
	metrics Metrics

	mu     sync.Mutex
	logger log.Logger
}

func (r *leakReporter) setLogger(l log.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = l
}

func (r *leakReporter) report() {
	r.mu.Lock()
	logger := r.logger
	r.mu.Unlock()
	logger.Warn("communicator destroy() has not been called", log.Str("communicator", r.id))
	r.metrics.CommunicatorLeaked(context.Background())
}
