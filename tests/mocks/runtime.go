package mocks

import (
	"context"

	runtimeif "github.com/dep2p/dep2p-check/pkg/interfaces/runtime"
	"github.com/dep2p/dep2p-check/pkg/types"
)

// MockRuntime 模拟 Runtime 接口实现
type MockRuntime struct {
	// 基本属性
	VersionValue string
	HandleValue  *MockHandle

	// 可覆盖的方法
	VersionFunc func(ctx context.Context) (string, error)
	AttachFunc  func(ctx context.Context) (runtimeif.Handle, error)

	// 调用记录
	VersionCalls int
	AttachCalls  int
}

// NewMockRuntime 创建带有默认值的 MockRuntime
//
// 默认连接成功，返回的句柄没有任何接口。
func NewMockRuntime(version string) *MockRuntime {
	return &MockRuntime{
		VersionValue: version,
		HandleValue:  NewMockHandle(),
	}
}

// Version 返回运行时版本
func (m *MockRuntime) Version(ctx context.Context) (string, error) {
	m.VersionCalls++
	if m.VersionFunc != nil {
		return m.VersionFunc(ctx)
	}
	return m.VersionValue, nil
}

// Attach 连接守护进程
func (m *MockRuntime) Attach(ctx context.Context) (runtimeif.Handle, error) {
	m.AttachCalls++
	if m.AttachFunc != nil {
		return m.AttachFunc(ctx)
	}
	return m.HandleValue, nil
}

// MockHandle 模拟 Handle 接口实现
type MockHandle struct {
	// 基本属性
	EndpointValue   string
	NodeIDValue     string
	StatusValue     string
	InterfacesValue []types.InterfaceDescriptor

	// 可覆盖的方法
	InterfacesFunc func(ctx context.Context) ([]types.InterfaceDescriptor, error)

	// 调用记录
	InterfacesCalls int
}

// NewMockHandle 创建带有默认值的 MockHandle
func NewMockHandle(ifaces ...types.InterfaceDescriptor) *MockHandle {
	return &MockHandle{
		EndpointValue:   "127.0.0.1:6060",
		NodeIDValue:     "mock-node",
		StatusValue:     "ok",
		InterfacesValue: ifaces,
	}
}

// Endpoint 返回端点地址
func (m *MockHandle) Endpoint() string {
	return m.EndpointValue
}

// NodeID 返回节点 ID
func (m *MockHandle) NodeID() string {
	return m.NodeIDValue
}

// Status 返回健康状态
func (m *MockHandle) Status() string {
	return m.StatusValue
}

// Interfaces 返回接口集合
func (m *MockHandle) Interfaces(ctx context.Context) ([]types.InterfaceDescriptor, error) {
	m.InterfacesCalls++
	if m.InterfacesFunc != nil {
		return m.InterfacesFunc(ctx)
	}
	return m.InterfacesValue, nil
}

var (
	_ runtimeif.Runtime = (*MockRuntime)(nil)
	_ runtimeif.Handle  = (*MockHandle)(nil)
)
