package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cnlutao/ice/core/log"
	"github.com/cnlutao/ice/obsx"
)

// syncBuffer is a bytes.Buffer safe for a writer and a polling reader.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.cfg")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestValidate_ReportsProblems(t *testing.T) {
	cfg := writeConfig(t, `
Ice.Trace.Network=1
Ice.Bogus=1
Glacier2.AllowCategories=cat
MyApp.Anything=ok
`)
	out, err := execute(t, "validate", "--config", cfg)
	require.NoError(t, err)

	assert.Contains(t, out, "unknown property: Ice.Bogus")
	assert.Contains(t, out, "deprecated property: Glacier2.AllowCategories (use Glacier2.Filter.Category.Accept)")
	assert.NotContains(t, out, "Ice.Trace.Network")
	assert.NotContains(t, out, "MyApp.Anything")
	assert.Contains(t, out, "2 problem(s)")
}

func TestValidate_Strict(t *testing.T) {
	_, err := execute(t, "validate", "--strict", "--", "--Ice.Bogus=1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 property problem(s)")

	_, err = execute(t, "validate", "--strict", "--", "--Ice.Trace.Network=1")
	assert.NoError(t, err)
}

func TestValidate_EnvPrefix(t *testing.T) {
	t.Setenv("ICECTL_TEST_Ice__Nope", "1")
	out, err := execute(t, "validate", "--env-prefix", "ICECTL_TEST_")
	require.NoError(t, err)
	assert.Contains(t, out, "unknown property: Ice.Nope")
}

func TestProxy_Normalizes(t *testing.T) {
	out, err := execute(t, "proxy", "--describe", "hello:tcp -h localhost -p 10000", "cat/obj -o @ Adapter")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "hello -t:tcp -h localhost -p 10000", lines[0])
	assert.Contains(t, out, "  identity: hello\n")
	assert.Contains(t, out, "cat/obj -o @ Adapter\n")
	assert.Contains(t, out, "  adapter: Adapter\n")
	assert.Contains(t, out, "  mode: oneway\n")
}

func TestProxy_ParseError(t *testing.T) {
	_, err := execute(t, "proxy", "a/b/c")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PROXY_PARSE")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "icectl version "))
	assert.Contains(t, out, "go version")
}

func TestRootFlags_BadLogFormat(t *testing.T) {
	_, err := execute(t, "proxy", "--log-format", "xml", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--log-format")
}

func TestRun_ServesUntilInterrupted(t *testing.T) {
	root := newRootCmd()
	out := &syncBuffer{}
	root.SetOut(out)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"run", "--log-format", "console", "--identity", "demo/echo",
		"--endpoints", "tcp -h 127.0.0.1 -p 10077", "--leak-detection"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := make(chan error, 1)
	go func() { errCh <- root.ExecuteContext(ctx) }()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "demo/echo -t:tcp -h 127.0.0.1 -p 10077")
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop after interrupt")
	}
}

func TestServeMetrics(t *testing.T) {
	provider, err := obsx.NewProvider(context.Background(), obsx.Options{ServiceName: "icectl-test"})
	require.NoError(t, err)
	defer provider.Shutdown(context.Background())
	require.NoError(t, provider.EnableRuntimeMetrics(context.Background()))

	addr, stop, err := serveMetrics("127.0.0.1:0", provider.PrometheusHandler(), log.Nop())
	require.NoError(t, err)
	defer stop()

	resp, err := http.Get("http://" + addr.String() + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "process_runtime_go_goroutines")
}
