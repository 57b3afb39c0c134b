// Package appx runs an application body against a communicator it owns.
//
// Run initializes the communicator, reacts to interrupts according to the
// chosen policy and always destroys the communicator when the body returns
// or panics.
//
// Usage:
//
//	err := appx.Run(ctx, os.Args[1:], func(ctx context.Context, comm *communicator.Communicator, args []string) error {
//		adapter, err := comm.CreateObjectAdapterWithEndpoints("Hello", "tcp -p 10000")
//		if err != nil {
//			return err
//		}
//		if err := adapter.Activate(); err != nil {
//			return err
//		}
//		return comm.WaitForShutdown(context.Background())
//	}, appx.WithInterruptMode(appx.ShutdownOnInterrupt))
package appx

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cnlutao/ice/communicator"
	"github.com/cnlutao/ice/core/log"
)

// SignalPolicy selects whether Run installs signal handlers.
type SignalPolicy int

const (
	// HandleSignals treats SIGINT, SIGTERM and SIGHUP as interrupts.
	HandleSignals SignalPolicy = iota
	// NoSignalHandling leaves signals alone. Cancelling the parent context is
	// still an interrupt.
	NoSignalHandling
)

// InterruptMode selects what an interrupt does to the communicator.
type InterruptMode int

const (
	// DestroyOnInterrupt destroys the communicator.
	DestroyOnInterrupt InterruptMode = iota
	// ShutdownOnInterrupt shuts the object adapters down.
	ShutdownOnInterrupt
	// IgnoreInterrupt does nothing.
	IgnoreInterrupt
)

func (m InterruptMode) String() string {
	switch m {
	case DestroyOnInterrupt:
		return "destroy"
	case ShutdownOnInterrupt:
		return "shutdown"
	case IgnoreInterrupt:
		return "ignore"
	default:
		return "unknown"
	}
}

// Func is the application body. ctx is cancelled on interrupt; with
// IgnoreInterrupt it is the parent context unchanged.
type Func func(ctx context.Context, comm *communicator.Communicator, args []string) error

// Option configures Run.
type Option func(*options)

type options struct {
	policy   SignalPolicy
	mode     InterruptMode
	signals  []os.Signal
	commOpts []communicator.Option
}

// WithSignalPolicy sets the signal policy. Default HandleSignals.
func WithSignalPolicy(p SignalPolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithInterruptMode sets the interrupt reaction. Default DestroyOnInterrupt.
func WithInterruptMode(m InterruptMode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// WithCommunicatorOptions forwards options to communicator.Initialize.
func WithCommunicatorOptions(opts ...communicator.Option) Option {
	return func(o *options) {
		o.commOpts = append(o.commOpts, opts...)
	}
}

// Run initializes a communicator from args, calls fn and destroys the
// communicator before returning, including when fn panics.
func Run(ctx context.Context, args []string, fn Func, opts ...Option) error {
	o := options{
		policy:  HandleSignals,
		mode:    DestroyOnInterrupt,
		signals: []os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGHUP},
	}
	for _, opt := range opts {
		opt(&o)
	}

	comm, rest, err := communicator.Initialize(ctx, args, o.commOpts...)
	if err != nil {
		return err
	}
	defer comm.Destroy()

	interruptCtx := ctx
	if o.policy == HandleSignals {
		var stop context.CancelFunc
		interruptCtx, stop = signal.NotifyContext(ctx, o.signals...)
		defer stop()
	}

	fnCtx := interruptCtx
	if o.mode == IgnoreInterrupt {
		fnCtx = ctx
	}

	finished := make(chan struct{})
	watcher := make(chan struct{})
	go func() {
		defer close(watcher)
		select {
		case <-finished:
		case <-interruptCtx.Done():
			interrupt(comm, o.mode)
		}
	}()
	defer func() {
		close(finished)
		<-watcher
	}()

	return fn(fnCtx, comm, rest)
}

func interrupt(comm *communicator.Communicator, mode InterruptMode) {
	logger := comm.Logger()
	logger.Info("interrupt received", log.Str("mode", mode.String()))
	switch mode {
	case DestroyOnInterrupt:
		comm.Destroy()
	case ShutdownOnInterrupt:
		if err := comm.Shutdown(); err != nil {
			logger.Warn("shutdown on interrupt failed", log.Str("error", err.Error()))
		}
	}
}
