package runtimex

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cnlutao/ice/core/errors"
	"github.com/cnlutao/ice/core/reqmeta"
	"github.com/cnlutao/ice/propsx"
	"github.com/cnlutao/ice/testingx"
)

func echo() Servant {
	return ServantFunc(func(ctx context.Context, op string, payload []byte) ([]byte, error) {
		return append([]byte(op+":"), payload...), nil
	})
}

// blockingServant parks every dispatch until release is closed.
type blockingServant struct {
	entered chan struct{}
	release chan struct{}
}

func newBlockingServant() *blockingServant {
	return &blockingServant{entered: make(chan struct{}, 16), release: make(chan struct{})}
}

func (b *blockingServant) Dispatch(ctx context.Context, op string, payload []byte) ([]byte, error) {
	b.entered <- struct{}{}
	<-b.release
	return nil, nil
}

func newTestAdapterFactory(t *testing.T, props map[string]string) *ObjectAdapterFactory {
	t.Helper()
	p := propsx.FromMap(props)
	return NewObjectAdapterFactory(p, NewProxyFactory(p, NewReferenceFactory()), testingx.NewMockLogger(t))
}

func TestObjectAdapter_ServantRegistry(t *testing.T) {
	f := newTestAdapterFactory(t, map[string]string{"Hello.Endpoints": "tcp -p 10000"})
	a, err := f.CreateObjectAdapter("Hello")
	require.NoError(t, err)

	id := Identity{Name: "hello"}
	p, err := a.Add(echo(), id)
	require.NoError(t, err)
	assert.Equal(t, "hello -t:tcp -p 10000", p.String())

	_, err = a.Add(echo(), id)
	testingx.AssertCode(t, err, errors.CodeAlreadyRegistered)

	_, err = a.Add(echo(), Identity{})
	testingx.AssertCode(t, err, errors.CodeInvalidArgument)

	assert.NotNil(t, a.Find(id))
	_, err = a.Remove(id)
	require.NoError(t, err)
	assert.Nil(t, a.Find(id))

	_, err = a.Remove(id)
	testingx.AssertCode(t, err, errors.CodeNotRegistered)
}

func TestObjectAdapter_AddWithUUID(t *testing.T) {
	a, err := newTestAdapterFactory(t, nil).CreateObjectAdapter("A")
	require.NoError(t, err)

	p1, err := a.AddWithUUID(echo())
	require.NoError(t, err)
	p2, err := a.AddWithUUID(echo())
	require.NoError(t, err)
	assert.NotEqual(t, p1.Identity, p2.Identity)
	assert.Len(t, p1.Identity.Name, 36)
}

func TestObjectAdapter_IndirectProxy(t *testing.T) {
	f := newTestAdapterFactory(t, map[string]string{
		"Hello.Endpoints": "tcp -p 10000",
		"Hello.AdapterId": "HelloAdapter",
		"Hello.Router":    "Glacier2/router:tcp -p 4063",
	})
	a, err := f.CreateObjectAdapter("Hello")
	require.NoError(t, err)

	p, err := a.CreateProxy(Identity{Name: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello -t @ HelloAdapter", p.String())
	require.NotNil(t, p.Router)
	assert.Equal(t, "router", p.Router.Identity.Name)
}

func TestObjectAdapter_DispatchStates(t *testing.T) {
	a, err := newTestAdapterFactory(t, nil).CreateObjectAdapter("A")
	require.NoError(t, err)
	id := Identity{Name: "x"}
	_, err = a.Add(echo(), id)
	require.NoError(t, err)

	_, err = a.Dispatch(context.Background(), id, "ping", nil)
	testingx.AssertCode(t, err, errors.CodeUnavailable)

	require.NoError(t, a.Activate())
	out, err := a.Dispatch(context.Background(), id, "ping", []byte("!"))
	require.NoError(t, err)
	assert.Equal(t, "ping:!", string(out))

	_, err = a.Dispatch(context.Background(), Identity{Name: "missing"}, "ping", nil)
	testingx.AssertCode(t, err, errors.CodeNotFound)

	require.NoError(t, a.Hold())
	_, err = a.Dispatch(context.Background(), id, "ping", nil)
	testingx.AssertCode(t, err, errors.CodeUnavailable)

	a.Deactivate()
	_, err = a.Dispatch(context.Background(), id, "ping", nil)
	testingx.AssertCode(t, err, errors.CodeDeactivated)
	testingx.AssertCode(t, a.Activate(), errors.CodeDeactivated)
	assert.Equal(t, StateDeactivated, a.State())
}

func TestObjectAdapter_DispatchCarriesMeta(t *testing.T) {
	a, err := newTestAdapterFactory(t, nil).CreateObjectAdapter("Meta")
	require.NoError(t, err)
	require.NoError(t, a.Activate())

	var got *reqmeta.Meta
	id := Identity{Name: "m"}
	_, err = a.Add(ServantFunc(func(ctx context.Context, op string, _ []byte) ([]byte, error) {
		got, _ = reqmeta.From(ctx)
		return nil, nil
	}), id)
	require.NoError(t, err)

	_, err = a.Dispatch(context.Background(), id, "op", nil)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Meta", got.Adapter)
	assert.Equal(t, "op", got.Operation)
	assert.NotEmpty(t, got.RequestID)
}

func TestObjectAdapter_DeactivateWaitsForInFlight(t *testing.T) {
	a, err := newTestAdapterFactory(t, nil).CreateObjectAdapter("A")
	require.NoError(t, err)
	require.NoError(t, a.Activate())

	srv := newBlockingServant()
	id := Identity{Name: "slow"}
	_, err = a.Add(srv, id)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = a.Dispatch(context.Background(), id, "work", nil)
	}()
	<-srv.entered

	a.Deactivate()
	assert.Equal(t, StateDeactivating, a.State())
	assert.False(t, a.IsDeactivated())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, a.WaitForDeactivate(ctx), context.DeadlineExceeded)

	close(srv.release)
	<-done
	require.NoError(t, a.WaitForDeactivate(context.Background()))
	assert.True(t, a.IsDeactivated())
}

func TestObjectAdapter_DestroyUnregisters(t *testing.T) {
	f := newTestAdapterFactory(t, nil)
	a, err := f.CreateObjectAdapter("A")
	require.NoError(t, err)

	a.Destroy()
	a.Destroy()
	assert.Nil(t, f.FindObjectAdapter("A"))

	_, err = f.CreateObjectAdapter("A")
	require.NoError(t, err)
}
