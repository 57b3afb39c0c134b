package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/cnlutao/ice/appx"
	"github.com/cnlutao/ice/cmd/icectl/internal/version"
	"github.com/cnlutao/ice/communicator"
	"github.com/cnlutao/ice/core/log"
	"github.com/cnlutao/ice/logx"
	"github.com/cnlutao/ice/obsx"
	"github.com/cnlutao/ice/runtimex"
)

type runOptions struct {
	adapter       string
	endpoints     string
	identity      string
	metricsAddr   string
	leakDetection bool
}

func newRunCmd(g *globalOptions) *cobra.Command {
	o := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run [-- --Ice.Key=value ...]",
		Short: "Serve an echo object until interrupted",
		Long: `Creates an object adapter, registers an echo servant and prints its
proxy. SIGINT or SIGTERM shuts the adapter down and destroys the
communicator. With --metrics-addr, lifecycle and Go runtime metrics are
served at /metrics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, g, o, args)
		},
	}
	cmd.Flags().StringVar(&o.adapter, "adapter", "Echo", "Object adapter name")
	cmd.Flags().StringVar(&o.endpoints, "endpoints", "tcp -h 127.0.0.1 -p 10000", "Adapter endpoints")
	cmd.Flags().StringVar(&o.identity, "identity", "echo", "Identity of the echo object")
	cmd.Flags().StringVar(&o.metricsAddr, "metrics-addr", "", "Listen address for /metrics (disabled when empty)")
	cmd.Flags().BoolVar(&o.leakDetection, "leak-detection", false, "Report communicators that were never destroyed")
	return cmd
}

func runServe(cmd *cobra.Command, g *globalOptions, o *runOptions, args []string) error {
	ctx := cmd.Context()
	logger, err := g.logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	provider, err := obsx.NewProvider(ctx, obsx.Options{
		ServiceName:    "icectl",
		ServiceVersion: version.Version,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			logger.Error(err, "metrics provider shutdown failed")
		}
	}()
	if err := provider.EnableRuntimeMetrics(ctx); err != nil {
		return err
	}
	metrics, err := obsx.NewLifecycleMetrics(provider.Meter(obsx.MeterName))
	if err != nil {
		return err
	}

	if o.metricsAddr != "" {
		_, stop, err := serveMetrics(o.metricsAddr, provider.PrometheusHandler(), logger)
		if err != nil {
			return err
		}
		defer stop()
	}

	err = appx.Run(ctx, g.iceArgs(args), func(ctx context.Context, comm *communicator.Communicator, _ []string) error {
		return serveEcho(cmd, comm, o)
	},
		appx.WithInterruptMode(appx.ShutdownOnInterrupt),
		appx.WithCommunicatorOptions(
			communicator.WithLogger(logger),
			communicator.WithMetrics(metrics),
			communicator.WithLeakDetection(o.leakDetection),
		),
	)
	if err != nil {
		return err
	}
	if o.leakDetection {
		return communicator.VerifyNoLeaks()
	}
	return nil
}

func serveEcho(cmd *cobra.Command, comm *communicator.Communicator, o *runOptions) error {
	adapter, err := comm.CreateObjectAdapterWithEndpoints(o.adapter, o.endpoints)
	if err != nil {
		return err
	}
	id, err := runtimex.ParseIdentity(o.identity)
	if err != nil {
		return err
	}
	proxy, err := adapter.Add(echoServant(comm.Logger()), id)
	if err != nil {
		return err
	}
	if err := adapter.Activate(); err != nil {
		return err
	}

	s, err := comm.ProxyToString(proxy)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), s)

	return comm.WaitForShutdown(context.Background())
}

// echoServant returns the payload unchanged. ice_ping returns nothing.
func echoServant(base log.Logger) runtimex.Servant {
	return runtimex.ServantFunc(func(ctx context.Context, operation string, payload []byte) ([]byte, error) {
		logx.FromContext(ctx, base).Debug("echo", log.Int("bytes", len(payload)))
		if operation == "ice_ping" {
			return nil, nil
		}
		return payload, nil
	})
}

func serveMetrics(addr string, h http.Handler, logger log.Logger) (net.Addr, func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("metrics listener: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", h)
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(err, "metrics server stopped")
		}
	}()
	logger.Info("serving metrics", log.Str("addr", ln.Addr().String()))

	return ln.Addr(), func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
