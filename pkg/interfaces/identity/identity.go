// Package identity 定义身份探测相关接口
//
// 身份模块负责节点的密码学身份，包括：
// - 密钥对生成
// - 指纹派生
// - 签名和验证
package identity

import (
	"github.com/dep2p/dep2p-check/pkg/types"
)

// ============================================================================
//                              Identity 接口
// ============================================================================

// Identity 密码学身份接口
//
// Identity 在每次诊断中新建，仅用于确认身份子系统可用，不会持久化。
type Identity interface {
	// Fingerprint 返回固定长度的身份指纹
	// 指纹为公钥 SHA-256 的截断值
	Fingerprint() []byte

	// PeerID 返回由公钥派生的节点 ID（Base58）
	PeerID() string

	// KeyType 返回密钥类型
	KeyType() types.KeyType

	// Sign 使用私钥签名数据
	Sign(data []byte) ([]byte, error)

	// Verify 使用自身公钥验证签名
	Verify(data, signature []byte) (bool, error)
}

// ============================================================================
//                              Factory 接口
// ============================================================================

// Factory 身份工厂接口
type Factory interface {
	// New 创建一个全新的身份
	New() (Identity, error)
}
