// Package runtime 定义节点运行时的访问接口
//
// 节点运行时是本地运行的 dep2p 守护进程。诊断工具只通过以下接口
// 读取它的共享状态，不做任何写入：
//   - Runtime.Version: 定位运行时安装并读取版本（导入检查）
//   - Runtime.Attach:  连接守护进程，获得 Handle
//   - Handle.Interfaces: 查询当前传输接口集合
package runtime

import (
	"context"

	"github.com/dep2p/dep2p-check/pkg/types"
)

// ============================================================================
//                              Runtime 接口
// ============================================================================

// Runtime 节点运行时接口
type Runtime interface {
	// Version 返回已安装运行时的版本字符串
	//
	// 运行时未安装或版本过低时返回的错误包装对应的哨兵错误。
	Version(ctx context.Context) (string, error)

	// Attach 连接本地运行的守护进程
	//
	// 只尝试一次，不重试。守护进程不可达时返回的错误包装
	// 对应的哨兵错误。
	Attach(ctx context.Context) (Handle, error)
}

// ============================================================================
//                              Handle 接口
// ============================================================================

// Handle 已连接运行时的只读句柄
//
// Handle 在一次诊断中只获取一次，无需显式关闭。
type Handle interface {
	// Endpoint 返回所连接的端点地址
	Endpoint() string

	// NodeID 返回守护进程报告的节点 ID
	NodeID() string

	// Status 返回守护进程报告的健康状态
	Status() string

	// Interfaces 返回运行时当前已知的传输接口
	//
	// 顺序为运行时内部注册顺序，集合可能为空。
	Interfaces(ctx context.Context) ([]types.InterfaceDescriptor, error)
}
