// Package dep2pcheck 是本地 dep2p 节点的健康检查工具
//
// dep2p-check 不实现网络协议栈，只读取本地守护进程的共享状态
// （传输接口集合与身份子系统），输出分阶段的诊断报告，
// 并以退出码反映结果。
//
// # 诊断阶段
//
//	[1/4] 运行时安装与版本     internal/core/runtime
//	[2/4] 连接守护进程         internal/core/runtime
//	[3/4] 传输接口枚举         internal/core/runtime
//	[4/4] 身份探测             internal/core/identity
//
// 阶段的编排、失败分类与报告渲染位于 internal/doctor。
//
// # 守护进程侧
//
// 守护进程通过 internal/debug/introspect 暴露 HTTP 自省端点
// （默认 127.0.0.1:6060），examples/stubnode 提供一个最小示例。
//
// # 命令行
//
//	dep2p-check                         # 检查默认端点
//	dep2p-check -addr 127.0.0.1:7070    # 指定自省地址
//	dep2p-check -min-version v0.2.0     # 要求最低运行时版本
package dep2pcheck
