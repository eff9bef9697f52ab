// Package runtime 实现对本地 dep2p 守护进程的只读访问
//
// Runtime 完成两件事：
//   - Version: 在 PATH 中定位运行时可执行文件并读取其版本
//   - Attach:  通过自省服务的 /health 端点连接守护进程
//
// Attach 返回的 Handle 通过 /debug/introspect/interfaces 查询传输接口。
// 所有调用都只尝试一次，不重试。
package runtime
