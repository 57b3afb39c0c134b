package communicator

import (
	"context"
	stderrors "errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cnlutao/ice/core/errors"
	"github.com/cnlutao/ice/core/log"
	"github.com/cnlutao/ice/propsx"
	"github.com/cnlutao/ice/runtimex"
	"github.com/cnlutao/ice/testingx"
)

func newTestCommunicator(t *testing.T, inst *fakeInstance, opts ...Option) *Communicator {
	t.Helper()
	opts = append([]Option{WithInstanceFactory(factoryFor(inst))}, opts...)
	c, _, err := Initialize(context.Background(), nil, opts...)
	require.NoError(t, err)
	t.Cleanup(c.Destroy)
	return c
}

func TestInitialize_RealRuntime(t *testing.T) {
	logger := testingx.NewMockLogger(t)
	c, rest, err := Initialize(context.Background(),
		[]string{"--Ice.ProgramName=hello", "app-arg"},
		WithLogger(logger),
		WithProperties(propsx.FromMap(map[string]string{"Hello.AdapterId": "hello"})),
	)
	require.NoError(t, err)
	defer c.Destroy()

	assert.Equal(t, []string{"app-arg"}, rest)
	assert.Equal(t, "hello", c.Properties().GetProperty("Ice.ProgramName"))
	assert.Equal(t, "hello", c.Properties().GetProperty("Hello.AdapterId"))
	assert.NotEmpty(t, c.ID())

	adapter, err := c.CreateObjectAdapterWithEndpoints("Hello", "tcp -h 127.0.0.1 -p 10000")
	require.NoError(t, err)
	assert.Equal(t, "Hello", adapter.Name())
	require.Len(t, adapter.Endpoints(), 1)
	assert.Equal(t, 10000, adapter.Endpoints()[0].Port)
}

func TestInitialize_InstanceFailureReturnsNoHandle(t *testing.T) {
	boom := stderrors.New("no runtime")
	c, _, err := Initialize(context.Background(), nil,
		WithInstanceFactory(func(*propsx.Properties, log.Logger) (Instance, error) { return nil, boom }))

	assert.Nil(t, c)
	assert.ErrorIs(t, err, boom)
	assert.False(t, errors.IsCode(err, errors.CodeSetupFailed))
}

func TestInitialize_PassesRemainingArgsToSetup(t *testing.T) {
	inst := newFakeInstance(nil, nil)
	c, rest, err := Initialize(context.Background(),
		[]string{"--Ice.Trace.Network=1", "--app"},
		WithInstanceFactory(factoryFor(inst)))
	require.NoError(t, err)
	defer c.Destroy()

	assert.Equal(t, []string{"--app"}, inst.setupArgs)
	assert.Equal(t, []string{"--app"}, rest)
	assert.Equal(t, "1", inst.props.GetProperty("Ice.Trace.Network"))
}

func TestDestroy_ConcurrentCallsTearDownOnce(t *testing.T) {
	inst := newFakeInstance(nil, nil)
	inst.releaseDestroy = make(chan struct{})
	c := newTestCommunicator(t, inst)

	const callers = 32
	var wg sync.WaitGroup
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Destroy()
		}()
	}
	close(inst.releaseDestroy)
	wg.Wait()

	assert.Equal(t, int32(1), inst.destroyCalls.Load())
	assert.True(t, c.IsDestroyed())

	c.Destroy()
	assert.NoError(t, c.Close())
	assert.Equal(t, int32(1), inst.destroyCalls.Load())
}

func TestDestroy_LaterCallersWaitForTeardown(t *testing.T) {
	inst := newFakeInstance(nil, nil)
	inst.destroyEntered = make(chan struct{})
	inst.releaseDestroy = make(chan struct{})
	c := newTestCommunicator(t, inst)

	go c.Destroy()
	<-inst.destroyEntered

	second := make(chan struct{})
	go func() {
		c.Destroy()
		close(second)
	}()

	select {
	case <-second:
		t.Fatal("second Destroy returned before teardown finished")
	case <-time.After(50 * time.Millisecond):
	}

	close(inst.releaseDestroy)
	select {
	case <-second:
	case <-time.After(5 * time.Second):
		t.Fatal("second Destroy did not return after teardown")
	}
	assert.Equal(t, int32(1), inst.destroyCalls.Load())
}

func TestDestroy_TeardownErrorIsLogged(t *testing.T) {
	logger := testingx.NewMockLogger(t)
	inst := newFakeInstance(nil, nil)
	inst.destroyErr = stderrors.New("plugin refused")
	c := newTestCommunicator(t, inst, WithLogger(logger))

	c.Destroy()

	logger.AssertLogged("ERROR", "communicator teardown failed")
}

func TestAfterDestroy_DiagnosticsRemainAvailable(t *testing.T) {
	logger := testingx.NewMockLogger(t)
	inst := newFakeInstance(nil, nil)
	c := newTestCommunicator(t, inst, WithLogger(logger))
	c.Properties().SetProperty("Ice.Warn.Connections", "1")

	props := c.Properties()
	before := c.Logger()
	c.Destroy()

	assert.Same(t, props, c.Properties())
	assert.Equal(t, "1", c.Properties().GetProperty("Ice.Warn.Connections"))
	assert.Same(t, before, c.Logger())

	replacement := testingx.NewMockLogger(t)
	c.SetLogger(replacement)
	assert.Same(t, replacement, c.Logger())
}

func TestAfterDestroy_GatedOperationsFail(t *testing.T) {
	inst := newFakeInstance(nil, nil)
	c := newTestCommunicator(t, inst)
	c.Destroy()

	ops := map[string]func() error{
		"Shutdown": c.Shutdown,
		"WaitForShutdown": func() error {
			return c.WaitForShutdown(context.Background())
		},
		"IsShutdown": func() error {
			_, err := c.IsShutdown()
			return err
		},
		"StringToProxy": func() error {
			_, err := c.StringToProxy("hello:tcp -p 10000")
			return err
		},
		"ProxyToString": func() error {
			_, err := c.ProxyToString(nil)
			return err
		},
		"PropertyToProxy": func() error {
			_, err := c.PropertyToProxy("Hello.Proxy")
			return err
		},
		"CreateObjectAdapter": func() error {
			_, err := c.CreateObjectAdapter("Hello")
			return err
		},
		"CreateObjectAdapterWithEndpoints": func() error {
			_, err := c.CreateObjectAdapterWithEndpoints("Hello", "tcp")
			return err
		},
		"CreateObjectAdapterWithRouter": func() error {
			_, err := c.CreateObjectAdapterWithRouter("Hello", nil)
			return err
		},
		"DefaultRouter": func() error {
			_, err := c.DefaultRouter()
			return err
		},
		"SetDefaultRouter": func() error { return c.SetDefaultRouter(nil) },
		"DefaultLocator": func() error {
			_, err := c.DefaultLocator()
			return err
		},
		"SetDefaultLocator": func() error { return c.SetDefaultLocator(nil) },
		"DefaultContext": func() error {
			_, err := c.DefaultContext()
			return err
		},
		"SetDefaultContext": func() error { return c.SetDefaultContext(nil) },
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			err := op()
			assert.ErrorIs(t, err, errors.ErrDestroyed)
			testingx.AssertCode(t, err, errors.CodeDestroyed)
		})
	}
}

func TestDuringTeardown_GatedOperationsFail(t *testing.T) {
	inst := newFakeInstance(nil, nil)
	inst.destroyEntered = make(chan struct{})
	inst.releaseDestroy = make(chan struct{})
	c := newTestCommunicator(t, inst)

	go c.Destroy()
	<-inst.destroyEntered

	_, err := c.StringToProxy("hello")
	assert.ErrorIs(t, err, errors.ErrDestroyed)
	assert.True(t, c.IsDestroyed())

	close(inst.releaseDestroy)
}

func TestSetupFailure_RollsBack(t *testing.T) {
	cause := stderrors.New("plugin init failed")
	inst := newFakeInstance(nil, nil)
	inst.setupErr = cause
	metrics := &recordingMetrics{}

	c, rest, err := Initialize(context.Background(), []string{"--x"},
		WithInstanceFactory(factoryFor(inst)),
		WithMetrics(metrics),
		WithLeakDetection(true),
	)

	assert.Nil(t, c)
	assert.Nil(t, rest)
	assert.ErrorIs(t, err, cause)
	testingx.AssertCode(t, err, errors.CodeSetupFailed)
	assert.Equal(t, int32(1), inst.destroyCalls.Load())
	assert.Equal(t, int32(1), metrics.setupFailed.Load())
	assert.Equal(t, int32(0), metrics.created.Load())
	assert.Equal(t, int32(0), metrics.destroyed.Load())
	assert.Empty(t, LiveHandles())
}

func TestSetupFailure_HandleLooksDestroyed(t *testing.T) {
	inst := newFakeInstance(nil, nil)
	inst.setupErr = stderrors.New("bad Ice.Default.Router")
	c := newCommunicator(inst, nil)

	_, err := c.finishSetup(context.Background(), nil)
	testingx.AssertCode(t, err, errors.CodeSetupFailed)

	assert.True(t, c.IsDestroyed())
	assert.Nil(t, c.instance)
	assert.Equal(t, int32(1), inst.destroyCalls.Load())

	_, err = c.CreateObjectAdapter("Hello")
	assert.ErrorIs(t, err, errors.ErrDestroyed)
	assert.ErrorIs(t, c.Shutdown(), errors.ErrDestroyed)
	assert.NotNil(t, c.Properties())

	c.Destroy()
	assert.Equal(t, int32(1), inst.destroyCalls.Load())
}

func TestShutdown_LockReleasedWhileBlocked(t *testing.T) {
	inst := newFakeInstance(nil, nil)
	inst.adapters.shutdownEntered = make(chan struct{})
	inst.adapters.releaseShutdown = make(chan struct{})
	c := newTestCommunicator(t, inst)

	shutdownErr := make(chan error, 1)
	go func() { shutdownErr <- c.Shutdown() }()
	<-inst.adapters.shutdownEntered

	destroyed := make(chan struct{})
	go func() {
		c.Destroy()
		close(destroyed)
	}()

	select {
	case <-destroyed:
	case <-time.After(5 * time.Second):
		t.Fatal("Destroy blocked behind Shutdown")
	}
	assert.Equal(t, int32(1), inst.destroyCalls.Load())

	// The blocked Shutdown still completes normally.
	close(inst.adapters.releaseShutdown)
	select {
	case err := <-shutdownErr:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Shutdown never returned")
	}
}

func TestShutdown_ThenWaitForShutdown(t *testing.T) {
	inst := newFakeInstance(nil, nil)
	c := newTestCommunicator(t, inst)

	down, err := c.IsShutdown()
	require.NoError(t, err)
	assert.False(t, down)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, c.WaitForShutdown(ctx), context.DeadlineExceeded)

	waiters := make(chan error, 3)
	for range 3 {
		go func() { waiters <- c.WaitForShutdown(context.Background()) }()
	}
	require.NoError(t, c.Shutdown())
	for range 3 {
		assert.NoError(t, <-waiters)
	}

	down, err = c.IsShutdown()
	require.NoError(t, err)
	assert.True(t, down)
}

func TestCreateObjectAdapterWithEndpoints_PropertySurvivesRejection(t *testing.T) {
	rejected := errors.New(errors.CodeAlreadyRegistered, "adapter exists")
	inst := newFakeInstance(nil, nil)
	inst.adapters.createErr = rejected
	c := newTestCommunicator(t, inst)

	_, err := c.CreateObjectAdapterWithEndpoints("Adapter1", "tcp -p 4061")
	assert.Same(t, rejected, err)
	assert.Equal(t, "tcp -p 4061", c.Properties().GetProperty("Adapter1.Endpoints"))
}

func TestCreateObjectAdapterWithEndpoints_AfterDestroy(t *testing.T) {
	inst := newFakeInstance(nil, nil)
	c := newTestCommunicator(t, inst)
	c.Destroy()

	_, err := c.CreateObjectAdapterWithEndpoints("Adapter1", "tcp -p 4061")
	assert.ErrorIs(t, err, errors.ErrDestroyed)
	assert.Equal(t, "tcp -p 4061", c.Properties().GetProperty("Adapter1.Endpoints"))
}

func TestCreateObjectAdapter_EmptyNameGetsUUID(t *testing.T) {
	inst := newFakeInstance(nil, nil)
	c := newTestCommunicator(t, inst)

	a, err := c.CreateObjectAdapterWithEndpoints("", "tcp -p 4062")
	require.NoError(t, err)
	assert.Len(t, a.Name(), 36)
	assert.Equal(t, "tcp -p 4062", c.Properties().GetProperty(a.Name()+".Endpoints"))
}

func TestCreateObjectAdapterWithRouter(t *testing.T) {
	inst := newFakeInstance(nil, nil)
	c := newTestCommunicator(t, inst)

	router, err := c.StringToProxy("Glacier2/router:tcp -h 10.0.0.1 -p 4063")
	require.NoError(t, err)
	a, err := c.CreateObjectAdapterWithRouter("Callback", router)
	require.NoError(t, err)

	s, err := c.ProxyToString(router)
	require.NoError(t, err)
	assert.Equal(t, s, c.Properties().GetProperty("Callback.Router"))
	require.NotNil(t, a.Router())
	assert.Equal(t, "router", a.Router().Identity.Name)
}

func TestStringToProxy(t *testing.T) {
	inst := newFakeInstance(nil, nil)
	c := newTestCommunicator(t, inst)

	p, err := c.StringToProxy("hello -o:tcp -h localhost -p 10000")
	require.NoError(t, err)
	assert.Equal(t, "hello", p.Identity.Name)
	assert.Equal(t, runtimex.ModeOneway, p.Mode)

	s, err := c.ProxyToString(p)
	require.NoError(t, err)
	again, err := c.StringToProxy(s)
	require.NoError(t, err)
	assert.Equal(t, p.String(), again.String())

	nilProxy, err := c.StringToProxy("")
	require.NoError(t, err)
	assert.Nil(t, nilProxy)

	_, err = c.StringToProxy("a/b/c")
	testingx.AssertCode(t, err, errors.CodeProxyParse)
}

func TestDefaults(t *testing.T) {
	inst := newFakeInstance(nil, nil)
	c := newTestCommunicator(t, inst)

	router, err := c.StringToProxy("Glacier2/router:tcp -p 4063")
	require.NoError(t, err)
	locator, err := c.StringToProxy("IceGrid/Locator:tcp -p 4061")
	require.NoError(t, err)

	require.NoError(t, c.SetDefaultRouter(router))
	require.NoError(t, c.SetDefaultLocator(locator))
	require.NoError(t, c.SetDefaultContext(map[string]string{"tenant": "a"}))

	got, err := c.DefaultRouter()
	require.NoError(t, err)
	assert.Equal(t, router.String(), got.String())

	gotLoc, err := c.DefaultLocator()
	require.NoError(t, err)
	assert.Equal(t, locator.String(), gotLoc.String())

	dctx, err := c.DefaultContext()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"tenant": "a"}, dctx)

	dctx["tenant"] = "b"
	again, err := c.DefaultContext()
	require.NoError(t, err)
	assert.Equal(t, "a", again["tenant"])
}

func TestFlushBatchRequests_BestEffort(t *testing.T) {
	inst := newFakeInstance(nil, nil)
	inst.destroyEntered = make(chan struct{})
	inst.releaseDestroy = make(chan struct{})
	c := newTestCommunicator(t, inst)

	require.NoError(t, c.FlushBatchRequests(context.Background()))
	assert.Equal(t, int32(1), inst.flushCalls.Load())

	done := make(chan struct{})
	go func() {
		c.Destroy()
		close(done)
	}()
	<-inst.destroyEntered

	// Teardown is running but the instance is still held.
	require.NoError(t, c.FlushBatchRequests(context.Background()))
	assert.Equal(t, int32(2), inst.flushCalls.Load())

	close(inst.releaseDestroy)
	<-done

	require.NoError(t, c.FlushBatchRequests(context.Background()))
	assert.Equal(t, int32(2), inst.flushCalls.Load())
}

func TestSetLogger_ReachesInstance(t *testing.T) {
	inst := newFakeInstance(nil, nil)
	c := newTestCommunicator(t, inst)

	logger := testingx.NewMockLogger(t)
	c.SetLogger(logger)
	assert.Same(t, logger, inst.Logger())

	c.SetLogger(nil)
	assert.NotNil(t, c.Logger())
}

func TestSetLogger_RedirectsRuntimeLogging(t *testing.T) {
	first := testingx.NewMockLogger(t)
	c, _, err := Initialize(context.Background(), nil, WithLogger(first))
	require.NoError(t, err)
	defer c.Destroy()

	before, err := c.CreateObjectAdapter("A")
	require.NoError(t, err)

	second := testingx.NewMockLogger(t)
	c.SetLogger(second)
	first.Clear()

	_, err = c.CreateObjectAdapter("B")
	require.NoError(t, err)
	require.NoError(t, before.Activate())

	second.AssertLogged("DEBUG", "object adapter created")
	second.AssertLogged("DEBUG", "adapter activated")
	assert.Empty(t, first.Entries())
}

func TestMetrics_CreatedAndDestroyed(t *testing.T) {
	metrics := &recordingMetrics{}
	inst := newFakeInstance(nil, nil)
	c := newTestCommunicator(t, inst, WithMetrics(metrics))

	assert.Equal(t, int32(1), metrics.created.Load())
	c.Destroy()
	c.Destroy()
	assert.Equal(t, int32(1), metrics.destroyed.Load())
	assert.Equal(t, int32(0), metrics.leaked.Load())
}

func TestClose_IsCloser(t *testing.T) {
	inst := newFakeInstance(nil, nil)
	var closer io.Closer = newTestCommunicator(t, inst)

	require.NoError(t, closer.Close())
	assert.Equal(t, int32(1), inst.destroyCalls.Load())
}
