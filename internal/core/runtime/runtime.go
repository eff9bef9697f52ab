package runtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/exec"
	"time"

	"github.com/hashicorp/go-version"

	"github.com/dep2p/dep2p-check/config"
	"github.com/dep2p/dep2p-check/internal/debug/introspect"
	"github.com/dep2p/dep2p-check/internal/util/logger"
	runtimeif "github.com/dep2p/dep2p-check/pkg/interfaces/runtime"
	"github.com/dep2p/dep2p-check/pkg/types"
)

var log = logger.Logger("runtime")

// ============================================================================
//                              配置
// ============================================================================

// Config 运行时访问配置
type Config struct {
	// Binary 运行时可执行文件
	Binary string

	// MinVersion 最低版本，为空表示不检查
	MinVersion string

	// IntrospectAddr 守护进程自省服务地址
	IntrospectAddr string

	// Timeout 单次请求超时
	Timeout time.Duration
}

// ConfigFromUnified 从统一配置创建运行时配置
func ConfigFromUnified(cfg *config.Config) Config {
	return Config{
		Binary:         cfg.Runtime.Binary,
		MinVersion:     cfg.Runtime.MinVersion,
		IntrospectAddr: cfg.Diagnostics.IntrospectAddr,
		Timeout:        cfg.Diagnostics.Timeout.Duration(),
	}
}

// CommandRunner 执行外部命令并返回 stdout
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// Option 运行时选项
type Option func(*Runtime)

// WithLookPath 替换可执行文件查找函数
func WithLookPath(fn func(string) (string, error)) Option {
	return func(r *Runtime) {
		r.lookPath = fn
	}
}

// WithCommandRunner 替换外部命令执行函数
func WithCommandRunner(fn CommandRunner) Option {
	return func(r *Runtime) {
		r.run = fn
	}
}

// WithHTTPClient 替换 HTTP 客户端
func WithHTTPClient(c *http.Client) Option {
	return func(r *Runtime) {
		r.client = c
	}
}

// ============================================================================
//                              Runtime
// ============================================================================

// Runtime 本地 dep2p 运行时
type Runtime struct {
	cfg Config

	client   *http.Client
	lookPath func(string) (string, error)
	run      CommandRunner
}

var _ runtimeif.Runtime = (*Runtime)(nil)

// New 创建运行时访问器
func New(cfg Config, opts ...Option) *Runtime {
	if cfg.Binary == "" {
		cfg.Binary = config.DefaultRuntimeConfig().Binary
	}
	if cfg.IntrospectAddr == "" {
		cfg.IntrospectAddr = introspect.DefaultAddr
	}

	r := &Runtime{
		cfg:      cfg,
		client:   &http.Client{Timeout: cfg.Timeout},
		lookPath: exec.LookPath,
		run:      runCommand,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Version 定位运行时并返回其版本
func (r *Runtime) Version(ctx context.Context) (string, error) {
	path, err := r.lookPath(r.cfg.Binary)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrRuntimeNotInstalled, r.cfg.Binary, err)
	}
	log.Debug("找到运行时", "path", path)

	if r.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.Timeout)
		defer cancel()
	}

	out, err := r.run(ctx, path, "-version")
	if err != nil {
		return "", fmt.Errorf("query runtime version: %w", err)
	}

	v, raw, err := ParseVersionOutput(out)
	if err != nil {
		return "", fmt.Errorf("query runtime version: %w", err)
	}

	if r.cfg.MinVersion != "" {
		minVersion, err := version.NewVersion(r.cfg.MinVersion)
		if err != nil {
			return "", fmt.Errorf("parse minimum version %q: %w", r.cfg.MinVersion, err)
		}
		if v.LessThan(minVersion) {
			return "", fmt.Errorf("%w: %s < %s", ErrRuntimeTooOld, raw, r.cfg.MinVersion)
		}
	}

	return raw, nil
}

// Attach 连接守护进程
func (r *Runtime) Attach(ctx context.Context) (runtimeif.Handle, error) {
	var health introspect.HealthResponse
	if err := r.getJSON(ctx, introspect.PathHealth, &health); err != nil {
		if isDialError(err) {
			return nil, fmt.Errorf("%w: %s: %v", ErrDaemonUnreachable, r.cfg.IntrospectAddr, err)
		}
		return nil, fmt.Errorf("attach %s: %w", r.cfg.IntrospectAddr, err)
	}

	log.Debug("已连接守护进程", "addr", r.cfg.IntrospectAddr, "node", health.NodeID, "status", health.Status)
	return &handle{
		runtime: r,
		nodeID:  health.NodeID,
		status:  health.Status,
	}, nil
}

// getJSON 请求自省端点并解码 JSON
func (r *Runtime) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://"+r.cfg.IntrospectAddr+path, nil)
	if err != nil {
		return err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: GET %s: %s", ErrUnexpectedStatus, path, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// isDialError 判断错误是否发生在建立连接阶段
func isDialError(err error) bool {
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output() //nolint:gosec // G204: 可执行文件来自用户配置
}

// ============================================================================
//                              Handle
// ============================================================================

// handle 已连接的运行时句柄
type handle struct {
	runtime *Runtime
	nodeID  string
	status  string
}

var _ runtimeif.Handle = (*handle)(nil)

func (h *handle) Endpoint() string {
	return h.runtime.cfg.IntrospectAddr
}

func (h *handle) NodeID() string {
	return h.nodeID
}

func (h *handle) Status() string {
	return h.status
}

// Interfaces 查询传输接口，保持守护进程返回的顺序
func (h *handle) Interfaces(ctx context.Context) ([]types.InterfaceDescriptor, error) {
	var body introspect.InterfacesResponse
	if err := h.runtime.getJSON(ctx, introspect.PathInterfaces, &body); err != nil {
		return nil, fmt.Errorf("enumerate interfaces: %w", err)
	}

	if body.Interfaces == nil {
		return []types.InterfaceDescriptor{}, nil
	}
	return body.Interfaces, nil
}
