package appx

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cnlutao/ice/communicator"
	"github.com/cnlutao/ice/core/errors"
	"github.com/cnlutao/ice/testingx"
)

func quiet(t *testing.T) Option {
	return WithCommunicatorOptions(communicator.WithLogger(testingx.NewMockLogger(t)))
}

func TestRun_ReturnsBodyErrorAndDestroys(t *testing.T) {
	boom := stderrors.New("body failed")
	var got *communicator.Communicator

	err := Run(context.Background(), []string{"--Ice.ProgramName=app", "rest"},
		func(ctx context.Context, comm *communicator.Communicator, args []string) error {
			got = comm
			assert.Equal(t, []string{"rest"}, args)
			assert.False(t, comm.IsDestroyed())
			return boom
		}, WithSignalPolicy(NoSignalHandling), quiet(t))

	assert.ErrorIs(t, err, boom)
	require.NotNil(t, got)
	assert.True(t, got.IsDestroyed())
}

func TestRun_DestroysOnPanic(t *testing.T) {
	var got *communicator.Communicator

	assert.PanicsWithValue(t, "kaboom", func() {
		_ = Run(context.Background(), nil,
			func(ctx context.Context, comm *communicator.Communicator, args []string) error {
				got = comm
				panic("kaboom")
			}, WithSignalPolicy(NoSignalHandling), quiet(t))
	})
	require.NotNil(t, got)
	assert.True(t, got.IsDestroyed())
}

func TestRun_InitializeFailureSkipsBody(t *testing.T) {
	called := false
	err := Run(context.Background(), []string{"--Ice.MessageSizeMax=0"},
		func(context.Context, *communicator.Communicator, []string) error {
			called = true
			return nil
		}, WithSignalPolicy(NoSignalHandling), quiet(t))

	testingx.AssertCode(t, err, errors.CodeInitialization)
	assert.False(t, called)
}

func TestRun_DestroyOnInterrupt(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := Run(ctx, nil, func(ctx context.Context, comm *communicator.Communicator, _ []string) error {
		cancel()
		<-ctx.Done()
		assert.Eventually(t, comm.IsDestroyed, 5*time.Second, 5*time.Millisecond)
		return nil
	}, WithSignalPolicy(NoSignalHandling), quiet(t))

	assert.NoError(t, err)
}

func TestRun_ShutdownOnInterrupt(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := Run(ctx, nil, func(_ context.Context, comm *communicator.Communicator, _ []string) error {
		adapter, err := comm.CreateObjectAdapterWithEndpoints("Hello", "tcp -p 10000")
		require.NoError(t, err)
		require.NoError(t, adapter.Activate())

		cancel()
		if err := comm.WaitForShutdown(context.Background()); err != nil {
			return err
		}
		assert.False(t, comm.IsDestroyed())
		assert.True(t, adapter.IsDeactivated())
		return nil
	}, WithSignalPolicy(NoSignalHandling), WithInterruptMode(ShutdownOnInterrupt), quiet(t))

	assert.NoError(t, err)
}

func TestRun_IgnoreInterrupt(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := Run(ctx, nil, func(ctx context.Context, comm *communicator.Communicator, _ []string) error {
		cancel()
		<-ctx.Done()
		assert.Never(t, func() bool {
			down, _ := comm.IsShutdown()
			return down || comm.IsDestroyed()
		}, 50*time.Millisecond, 5*time.Millisecond)
		return nil
	}, WithSignalPolicy(NoSignalHandling), WithInterruptMode(IgnoreInterrupt), quiet(t))

	assert.NoError(t, err)
}

func TestRun_HandleSignalsWithoutSignal(t *testing.T) {
	err := Run(context.Background(), nil,
		func(ctx context.Context, comm *communicator.Communicator, _ []string) error {
			assert.NoError(t, ctx.Err())
			return nil
		}, quiet(t))
	assert.NoError(t, err)
}

func TestInterruptMode_String(t *testing.T) {
	assert.Equal(t, "destroy", DestroyOnInterrupt.String())
	assert.Equal(t, "shutdown", ShutdownOnInterrupt.String())
	assert.Equal(t, "ignore", IgnoreInterrupt.String())
	assert.Equal(t, "unknown", InterruptMode(9).String())
}
