// Package runtimex is the runtime instance a communicator wraps: object
// adapters, proxies, default references and plugins.
//
// # Overview
//
// runtimex owns every resource a communicator hands out. A communicator
// drives it through a narrow surface: Instance.FinishSetup completes
// construction, Instance.Destroy releases everything, and the factories
// create adapters and proxies. Nothing here speaks a wire protocol;
// proxies dispatch to servants registered in the same process.
//
// # Features
//
//   - Stringified proxy and endpoint grammar (parse and format)
//   - Object adapters with servant registries, hold/activate/deactivate and in-flight tracking
//   - Adapter factory with broadcast shutdown and concurrent deactivation waits
//   - Default router, locator and request context
//   - Plugin loading from Ice.Plugin.* properties in Ice.PluginLoadOrder order
//   - Batched oneway requests flushed on demand
//
// # Usage
//
//	inst, err := runtimex.NewInstance(props, runtimex.WithLogger(logger))
//	rest, err := inst.FinishSetup(ctx, args)
//	adapter, err := inst.ObjectAdapterFactory().CreateObjectAdapter("Hello")
//	defer inst.Destroy()
//
// # Layer
//
// runtimex depends on core/log, core/errors, propsx and logx.
package runtimex
