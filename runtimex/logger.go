package runtimex

import (
	"sync"

	"github.com/cnlutao/ice/core/log"
)

// loggerRef is the logger slot shared by an instance and the services it
// owns, so replacing the instance logger redirects all of them.
type loggerRef struct {
	mu     sync.RWMutex
	logger log.Logger
}

func newLoggerRef(l log.Logger) *loggerRef {
	if l == nil {
		l = log.Nop()
	}
	return &loggerRef{logger: l}
}

func (r *loggerRef) get() log.Logger {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.logger
}

func (r *loggerRef) set(l log.Logger) {
	if l == nil {
		l = log.Nop()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = l
}
