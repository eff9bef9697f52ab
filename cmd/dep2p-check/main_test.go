package main

import (
	"bytes"
	"context"
	"net"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/dep2p-check/internal/debug/introspect"
	"github.com/dep2p/dep2p-check/pkg/types"
)

// ============================================================================
//                              辅助函数
// ============================================================================

// fakeRuntime 写一个打印版本号的可执行脚本
func fakeRuntime(t *testing.T, version string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script runtime not supported on windows")
	}

	path := filepath.Join(t.TempDir(), "dep2p")
	script := "#!/bin/sh\necho \"dep2p " + version + "\"\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0700)) //nolint:gosec // 测试脚本需要可执行权限
	return path
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

func closedAddr(t *testing.T) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func runCLI(t *testing.T, args ...string) (int, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"-env-file", ""}, args...), &stdout, &stderr)
	return code, stdout.String()
}

// ============================================================================
//                              端到端
// ============================================================================

func TestRun_AllPassed(t *testing.T) {
	bin := fakeRuntime(t, "v0.2.0-beta.1")
	addr := startDaemon(t,
		types.InterfaceDescriptor{Name: "tcp-0", Kind: "tcp", Mode: types.ModeFull, Online: true, Bitrate: types.Bitrate(500000)},
		types.InterfaceDescriptor{Name: "relay-0", Kind: "relay", Mode: types.ModeAccessPoint, Online: true},
	)

	code, out := runCLI(t, "-bin", bin, "-addr", addr)

	assert.Equal(t, 0, code, out)
	assert.Contains(t, out, "dep2p version: v0.2.0-beta.1")
	assert.Contains(t, out, "Node ID: node-under-test")
	assert.Contains(t, out, "Rate: 500.00 kbps")
	assert.Contains(t, out, "Mode: Access Point")
	assert.Contains(t, out, "✓ All checks passed!")
}

func TestRun_MissingRuntime(t *testing.T) {
	code, out := runCLI(t, "-bin", filepath.Join(t.TempDir(), "no-such-dep2p"))

	assert.Equal(t, 1, code)
	assert.Contains(t, out, "(missing-dependency)")
	assert.Contains(t, out, "[2/4] Attaching to node runtime...\n      - skipped")
}

func TestRun_RuntimeTooOld(t *testing.T) {
	bin := fakeRuntime(t, "v0.1.0")

	code, out := runCLI(t, "-bin", bin, "-min-version", "v0.2.0")

	assert.Equal(t, 1, code)
	assert.Contains(t, out, "(missing-dependency)")
}

func TestRun_DaemonUnreachable(t *testing.T) {
	bin := fakeRuntime(t, "v0.2.0")

	code, out := runCLI(t, "-bin", bin, "-addr", closedAddr(t), "-timeout", "1s")

	assert.Equal(t, 1, code)
	assert.Contains(t, out, "✓ dep2p version: v0.2.0")
	assert.Contains(t, out, "(unreachable-daemon)")
}

func TestRun_NoInterfaces(t *testing.T) {
	bin := fakeRuntime(t, "v0.2.0")
	addr := startDaemon(t)

	code, out := runCLI(t, "-bin", bin, "-addr", addr)

	assert.Equal(t, 1, code)
	assert.Contains(t, out, "⚠ No interfaces found!")
	assert.Contains(t, out, "[4/4] Node identity...\n      - skipped")
}

// ============================================================================
//                              参数与配置
// ============================================================================

func TestRun_Version(t *testing.T) {
	code, out := runCLI(t, "-version")

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "dep2p-check v")
}

func TestRun_Help(t *testing.T) {
	code, out := runCLI(t, "-help")

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "DEP2P_INTROSPECT_ADDR")
	assert.Contains(t, out, "-min-version")
}

func TestRun_InvalidConfigIsClassified(t *testing.T) {
	code, out := runCLI(t, "-addr", "no-port")

	assert.Equal(t, 1, code)
	assert.Contains(t, out, "(runtime-error)")
	assert.Contains(t, out, "diagnostics.introspect_addr")
}

func TestRun_UnknownFlagIsClassified(t *testing.T) {
	code, out := runCLI(t, "-bogus")

	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Troubleshooting:")
}

func TestBuildConfig_Priority(t *testing.T) {
	dir := t.TempDir()

	cfgFile := filepath.Join(dir, "check.json")
	require.NoError(t, os.WriteFile(cfgFile, []byte(`{
		"runtime": {"binary": "from-file", "min_version": "v0.1.0"},
		"diagnostics": {"introspect_addr": "127.0.0.1:1000", "timeout": "3s"}
	}`), 0600))

	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"DEP2P_RUNTIME_BIN=from-dotenv\nDEP2P_MIN_VERSION=v0.1.5\n"), 0600))

	t.Setenv("DEP2P_MIN_VERSION", "v0.1.9")
	t.Setenv("DEP2P_RUNTIME_BIN", "")
	t.Setenv("DEP2P_INTROSPECT_ADDR", "127.0.0.1:2000")
	require.NoError(t, os.Unsetenv("DEP2P_RUNTIME_BIN"))

	f := &cliFlags{}
	fs := newFlagSet("test", f)
	require.NoError(t, parseFlags(fs, f, []string{
		"-config", cfgFile,
		"-env-file", envFile,
		"-addr", "127.0.0.1:3000",
	}))

	cfg, err := buildConfig(f)
	require.NoError(t, err)

	// 命令行 > 环境变量 > .env > 配置文件
	assert.Equal(t, "127.0.0.1:3000", cfg.Diagnostics.IntrospectAddr)
	assert.Equal(t, "v0.1.9", cfg.Runtime.MinVersion)
	assert.Equal(t, "from-dotenv", cfg.Runtime.Binary)
	assert.Equal(t, "3s", cfg.Diagnostics.Timeout.String())
}

func TestBuildConfig_MissingEnvFileIgnored(t *testing.T) {
	f := &cliFlags{}
	fs := newFlagSet("test", f)
	require.NoError(t, parseFlags(fs, f, []string{"-env-file", filepath.Join(t.TempDir(), "absent.env")}))

	_, err := buildConfig(f)
	assert.NoError(t, err)
}
