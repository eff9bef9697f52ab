package runtime

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/dep2p-check/config"
	"github.com/dep2p/dep2p-check/internal/debug/introspect"
	"github.com/dep2p/dep2p-check/pkg/types"
)

// ============================================================================
//                              辅助函数
// ============================================================================

func foundAt(path string) func(string) (string, error) {
	return func(string) (string, error) { return path, nil }
}

func notFound(name string) (string, error) {
	return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
}

func printing(out string) CommandRunner {
	return func(context.Context, string, ...string) ([]byte, error) {
		return []byte(out), nil
	}
}

func startDaemon(t *testing.T, set ...types.InterfaceDescriptor) string {
	t.Helper()

	server := introspect.New(introspect.Config{
		Addr:       "127.0.0.1:0",
		NodeID:     "node-under-test",
		Version:    "v0.2.0",
		Interfaces: introspect.StaticInterfaces(set...),
	})
	require.NoError(t, server.Start(context.Background()))
	t.Cleanup(func() { _ = server.Stop() })
	return server.Addr()
}

// closedAddr 返回一个当前无人监听的本地地址
func closedAddr(t *testing.T) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func newRuntime(addr string, opts ...Option) *Runtime {
	return New(Config{IntrospectAddr: addr, Timeout: 2 * time.Second}, opts...)
}

// ============================================================================
//                              Version
// ============================================================================

func TestRuntime_Version(t *testing.T) {
	var gotName string
	var gotArgs []string
	rt := newRuntime("", WithLookPath(foundAt("/usr/local/bin/dep2p")), WithCommandRunner(
		func(_ context.Context, name string, args ...string) ([]byte, error) {
			gotName, gotArgs = name, args
			return []byte("dep2p v0.2.0-beta.1\n"), nil
		}))

	v, err := rt.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v0.2.0-beta.1", v)
	assert.Equal(t, "/usr/local/bin/dep2p", gotName)
	assert.Equal(t, []string{"-version"}, gotArgs)
}

func TestRuntime_Version_NotInstalled(t *testing.T) {
	rt := newRuntime("", WithLookPath(notFound))

	_, err := rt.Version(context.Background())
	assert.ErrorIs(t, err, ErrRuntimeNotInstalled)
	assert.Contains(t, err.Error(), "dep2p")
}

func TestRuntime_Version_TooOld(t *testing.T) {
	rt := New(Config{MinVersion: "v0.3.0"},
		WithLookPath(foundAt("dep2p")), WithCommandRunner(printing("dep2p v0.2.0\n")))

	_, err := rt.Version(context.Background())
	assert.ErrorIs(t, err, ErrRuntimeTooOld)
}

func TestRuntime_Version_MeetsMinimum(t *testing.T) {
	rt := New(Config{MinVersion: "0.2.0"},
		WithLookPath(foundAt("dep2p")), WithCommandRunner(printing("dep2p v0.2.1\n")))

	v, err := rt.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v0.2.1", v)
}

func TestRuntime_Version_CommandFails(t *testing.T) {
	rt := newRuntime("", WithLookPath(foundAt("dep2p")), WithCommandRunner(
		func(context.Context, string, ...string) ([]byte, error) {
			return nil, errors.New("exit status 2")
		}))

	_, err := rt.Version(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRuntimeNotInstalled)
	assert.Contains(t, err.Error(), "exit status 2")
}

func TestRuntime_Version_Unparsable(t *testing.T) {
	rt := newRuntime("", WithLookPath(foundAt("dep2p")), WithCommandRunner(printing("usage: dep2p\n")))

	_, err := rt.Version(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRuntimeNotInstalled)
	assert.NotErrorIs(t, err, ErrRuntimeTooOld)
}

// ============================================================================
//                              Attach / Interfaces
// ============================================================================

func TestRuntime_Attach(t *testing.T) {
	addr := startDaemon(t, types.InterfaceDescriptor{Name: "tcp0", Kind: "tcp"})

	h, err := newRuntime(addr).Attach(context.Background())
	require.NoError(t, err)

	assert.Equal(t, addr, h.Endpoint())
	assert.Equal(t, "node-under-test", h.NodeID())
	assert.Equal(t, introspect.StatusOK, h.Status())
}

func TestRuntime_Attach_Unreachable(t *testing.T) {
	_, err := newRuntime(closedAddr(t)).Attach(context.Background())
	assert.ErrorIs(t, err, ErrDaemonUnreachable)
}

func TestRuntime_Attach_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newRuntime(strings.TrimPrefix(srv.URL, "http://")).Attach(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.NotErrorIs(t, err, ErrDaemonUnreachable)
	assert.Contains(t, err.Error(), "500")
}

func TestRuntime_Attach_BadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "not json")
	}))
	defer srv.Close()

	_, err := newRuntime(strings.TrimPrefix(srv.URL, "http://")).Attach(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDaemonUnreachable)
}

func TestHandle_Interfaces(t *testing.T) {
	set := []types.InterfaceDescriptor{
		{Name: "quic0", Kind: "quic", Mode: types.ModeFull, Online: true, Bitrate: types.Bitrate(500000)},
		{Name: "ap0", Kind: "relay", Mode: types.ModeAccessPoint, Online: true},
		{Name: "tcp0", Kind: "tcp", Mode: types.ModeFull, Online: false},
	}
	addr := startDaemon(t, set...)

	h, err := newRuntime(addr).Attach(context.Background())
	require.NoError(t, err)

	got, err := h.Interfaces(context.Background())
	require.NoError(t, err)
	assert.Equal(t, set, got) // 注册顺序不变
}

func TestHandle_Interfaces_Empty(t *testing.T) {
	addr := startDaemon(t)

	h, err := newRuntime(addr).Attach(context.Background())
	require.NoError(t, err)

	got, err := h.Interfaces(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestHandle_Interfaces_InvalidMode(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(introspect.PathHealth, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"status":"ok"}`)
	})
	mux.HandleFunc(introspect.PathInterfaces, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"interfaces":[{"name":"x","mode":"mesh"}]}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	h, err := newRuntime(strings.TrimPrefix(srv.URL, "http://")).Attach(context.Background())
	require.NoError(t, err)

	_, err = h.Interfaces(context.Background())
	assert.ErrorIs(t, err, types.ErrInvalidInterfaceMode)
}

func TestConfigFromUnified(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Runtime.MinVersion = "v0.2.0"

	got := ConfigFromUnified(cfg)
	assert.Equal(t, "dep2p", got.Binary)
	assert.Equal(t, "v0.2.0", got.MinVersion)
	assert.Equal(t, "127.0.0.1:6060", got.IntrospectAddr)
	assert.Equal(t, 5*time.Second, got.Timeout)
}
