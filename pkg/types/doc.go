// Package types 定义 dep2p-check 的公共数据结构
//
// 这是整个系统的最底层包，不依赖任何其他内部包。
// 所有类型都是纯值类型，用于在探测器、自省服务和报告之间传递数据。
//
// # 文件组织
//
//   - enums.go     - KeyType, InterfaceMode
//   - interface.go - InterfaceDescriptor 传输接口快照
//   - hex.go       - PrettyHex 指纹渲染
package types
