// Package introspect 提供节点侧的本地自省 HTTP 服务
//
// 守护进程嵌入该服务后，dep2p-check 通过它读取节点的共享运行时状态。
// 默认绑定到 127.0.0.1，不暴露到网络，所有端点只读。
//
// # 端点
//
//	GET /health                        - 健康检查（状态、版本、节点 ID）
//	GET /debug/introspect              - 完整诊断报告 (JSON)
//	GET /debug/introspect/node         - 节点信息
//	GET /debug/introspect/interfaces   - 传输接口列表（注册顺序）
//	GET /debug/introspect/runtime      - Go 运行时信息
//
// # 使用示例
//
//	server := introspect.New(introspect.Config{
//	    Addr:       "127.0.0.1:6060",
//	    NodeID:     nodeID,
//	    Version:    version,
//	    Interfaces: registry,
//	})
//	server.Start(ctx)
//	defer server.Stop()
package introspect
