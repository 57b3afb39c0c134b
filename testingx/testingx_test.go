package testingx

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreerrors "github.com/cnlutao/ice/core/errors"
	"github.com/cnlutao/ice/core/log"
	"github.com/cnlutao/ice/core/reqmeta"
)

func TestMockLogger_RecordsFields(t *testing.T) {
	logger := NewMockLogger(t)
	child := logger.With(log.Str("adapter", "Hello"))

	child.Warn("unknown property", log.Str("key", "Ice.Foo"), "n", 1)
	logger.Error(errors.New("boom"), "teardown failed")

	entries := logger.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "WARN", entries[0].Level)
	assert.Equal(t, map[string]any{"adapter": "Hello", "key": "Ice.Foo", "n": 1}, entries[0].Fields)
	assert.EqualError(t, entries[1].Error, "boom")

	logger.AssertLogged("WARN", "unknown property")
	logger.AssertNotLogged("INFO", "unknown property")
	assert.Len(t, logger.Find("ERROR", "teardown failed"), 1)

	logger.Clear()
	assert.Empty(t, logger.Entries())
}

func TestMockLogger_Concurrent(t *testing.T) {
	logger := NewMockLogger(t)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.With("i", i).Info("tick")
		}()
	}
	wg.Wait()
	assert.Len(t, logger.Find("INFO", "tick"), 20)
}

func TestAssertCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", coreerrors.New(coreerrors.CodeDestroyed, "gone"))
	AssertCode(t, err, coreerrors.CodeDestroyed)
	AssertNoError(t, nil)
}

func TestNewContextWithMeta(t *testing.T) {
	ctx := NewContextWithMeta(t, &reqmeta.Meta{RequestID: "r"})
	m, ok := reqmeta.From(ctx)
	require.True(t, ok)
	assert.Equal(t, "r", m.RequestID)
}
