package introspect

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/dep2p/dep2p-check/internal/util/logger"
	"github.com/dep2p/dep2p-check/pkg/types"
)

var log = logger.Logger("introspect")

// DefaultAddr 默认监听地址
const DefaultAddr = "127.0.0.1:6060"

// 端点路径
const (
	PathHealth     = "/health"
	PathIntrospect = "/debug/introspect"
	PathNode       = "/debug/introspect/node"
	PathInterfaces = "/debug/introspect/interfaces"
	PathRuntime    = "/debug/introspect/runtime"
)

// 健康状态
const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"
)

// ============================================================================
//                              配置
// ============================================================================

// InterfaceSource 传输接口来源
//
// 返回的切片按注册顺序排列，服务不会重新排序。
type InterfaceSource interface {
	Interfaces() []types.InterfaceDescriptor
}

// InterfaceSourceFunc 函数适配器
type InterfaceSourceFunc func() []types.InterfaceDescriptor

// Interfaces 实现 InterfaceSource
func (f InterfaceSourceFunc) Interfaces() []types.InterfaceDescriptor {
	return f()
}

// StaticInterfaces 返回固定接口集合的来源
func StaticInterfaces(set ...types.InterfaceDescriptor) InterfaceSource {
	return InterfaceSourceFunc(func() []types.InterfaceDescriptor {
		return set
	})
}

// Config 服务配置
type Config struct {
	// Addr 监听地址，默认 "127.0.0.1:6060"
	Addr string

	// NodeID 节点 ID
	NodeID string

	// Version 运行时版本
	Version string

	// Interfaces 可选的传输接口来源
	Interfaces InterfaceSource
}

// ============================================================================
//                              Server
// ============================================================================

// Server 本地自省 HTTP 服务
type Server struct {
	config Config

	server   *http.Server
	listener net.Listener

	running   bool
	startTime time.Time

	mu sync.Mutex
}

// New 创建自省服务
func New(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}

	return &Server{
		config: cfg,
	}
}

// Handler 返回服务的路由
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(PathHealth, s.handleHealth)
	mux.HandleFunc(PathIntrospect, s.handleIntrospect)
	mux.HandleFunc(PathNode, s.handleNode)
	mux.HandleFunc(PathInterfaces, s.handleInterfaces)
	mux.HandleFunc(PathRuntime, s.handleRuntime)
	return mux
}

// Start 启动服务
func (s *Server) Start(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}

	listener, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return err
	}
	s.listener = listener

	s.server = &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("自省服务异常退出", "error", err)
		}
	}()

	s.running = true
	s.startTime = time.Now()
	log.Info("自省服务已启动", "addr", listener.Addr().String())
	return nil
}

// Stop 停止服务
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		log.Error("关闭自省服务失败", "error", err)
		return err
	}

	s.running = false
	log.Info("自省服务已停止")
	return nil
}

// Addr 返回实际监听地址
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.config.Addr
}

// ============================================================================
//                              响应结构
// ============================================================================

// IntrospectResponse 完整诊断响应
type IntrospectResponse struct {
	Timestamp  time.Time           `json:"timestamp"`
	Uptime     string              `json:"uptime"`
	Node       *NodeInfo           `json:"node,omitempty"`
	Interfaces *InterfacesResponse `json:"interfaces,omitempty"`
	Runtime    *RuntimeInfo        `json:"runtime,omitempty"`
}

// NodeInfo 节点信息
type NodeInfo struct {
	ID             string `json:"id"`
	Version        string `json:"version,omitempty"`
	InterfaceCount int    `json:"interface_count"`
}

// InterfacesResponse 传输接口列表
type InterfacesResponse struct {
	Interfaces []types.InterfaceDescriptor `json:"interfaces"`
}

// RuntimeInfo 运行时信息
type RuntimeInfo struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutine"`
	NumCPU       int    `json:"num_cpu"`
	MemAlloc     uint64 `json:"mem_alloc"`
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version,omitempty"`
	NodeID    string    `json:"node_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Uptime    string    `json:"uptime,omitempty"`
}

// ============================================================================
//                              HTTP 处理器
// ============================================================================

// handleHealth 处理健康检查请求
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	health := HealthResponse{
		Status:    StatusOK,
		Version:   s.config.Version,
		NodeID:    s.config.NodeID,
		Timestamp: time.Now(),
		Uptime:    s.uptime(),
	}

	// 没有接口来源时无法报告传输状态
	if s.config.Interfaces == nil {
		health.Status = StatusDegraded
	}

	s.writeJSON(w, health)
}

// handleIntrospect 处理完整诊断请求
func (s *Server) handleIntrospect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.writeJSON(w, IntrospectResponse{
		Timestamp:  time.Now(),
		Uptime:     s.uptime(),
		Node:       s.collectNodeInfo(),
		Interfaces: s.collectInterfaces(),
		Runtime:    collectRuntimeInfo(),
	})
}

// handleNode 处理节点信息请求
func (s *Server) handleNode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.writeJSON(w, s.collectNodeInfo())
}

// handleInterfaces 处理传输接口请求
func (s *Server) handleInterfaces(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if s.config.Interfaces == nil {
		http.Error(w, "Interface registry not available", http.StatusServiceUnavailable)
		return
	}

	s.writeJSON(w, s.collectInterfaces())
}

// handleRuntime 处理运行时信息请求
func (s *Server) handleRuntime(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.writeJSON(w, collectRuntimeInfo())
}

// ============================================================================
//                              数据收集
// ============================================================================

func (s *Server) collectNodeInfo() *NodeInfo {
	info := &NodeInfo{
		ID:      s.config.NodeID,
		Version: s.config.Version,
	}
	if s.config.Interfaces != nil {
		info.InterfaceCount = len(s.config.Interfaces.Interfaces())
	}
	return info
}

func (s *Server) collectInterfaces() *InterfacesResponse {
	if s.config.Interfaces == nil {
		return nil
	}

	set := s.config.Interfaces.Interfaces()
	if set == nil {
		// 空集合编码为 []，而不是 null
		set = []types.InterfaceDescriptor{}
	}
	return &InterfacesResponse{Interfaces: set}
}

func collectRuntimeInfo() *RuntimeInfo {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return &RuntimeInfo{
		GoVersion:    runtime.Version(),
		NumGoroutine: runtime.NumGoroutine(),
		NumCPU:       runtime.NumCPU(),
		MemAlloc:     memStats.Alloc,
	}
}

func (s *Server) uptime() string {
	if s.startTime.IsZero() {
		return ""
	}
	return time.Since(s.startTime).Truncate(time.Second).String()
}

// ============================================================================
//                              辅助方法
// ============================================================================

// writeJSON 写入 JSON 响应
func (s *Server) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		log.Error("JSON 编码失败", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
