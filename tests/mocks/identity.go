package mocks

import (
	"bytes"

	identityif "github.com/dep2p/dep2p-check/pkg/interfaces/identity"
	"github.com/dep2p/dep2p-check/pkg/types"
)

// MockIdentity 模拟 Identity 接口实现
type MockIdentity struct {
	// 基本属性
	FingerprintValue []byte
	PeerIDValue      string
	KeyTypeValue     types.KeyType

	// 可覆盖的方法
	SignFunc   func(data []byte) ([]byte, error)
	VerifyFunc func(data, sig []byte) (bool, error)

	// 调用记录
	SignCalls   int
	VerifyCalls int
}

// NewMockIdentity 创建带有默认值的 MockIdentity
func NewMockIdentity(fingerprint []byte) *MockIdentity {
	return &MockIdentity{
		FingerprintValue: fingerprint,
		PeerIDValue:      "mock-peer-id",
		KeyTypeValue:     types.KeyTypeEd25519,
	}
}

// Fingerprint 返回指纹
func (m *MockIdentity) Fingerprint() []byte {
	return m.FingerprintValue
}

// PeerID 返回节点 ID
func (m *MockIdentity) PeerID() string {
	return m.PeerIDValue
}

// KeyType 返回密钥类型
func (m *MockIdentity) KeyType() types.KeyType {
	return m.KeyTypeValue
}

// Sign 签名数据
//
// 默认签名为 "sig:" 前缀加原数据。
func (m *MockIdentity) Sign(data []byte) ([]byte, error) {
	m.SignCalls++
	if m.SignFunc != nil {
		return m.SignFunc(data)
	}
	return append([]byte("sig:"), data...), nil
}

// Verify 验证签名
func (m *MockIdentity) Verify(data, sig []byte) (bool, error) {
	m.VerifyCalls++
	if m.VerifyFunc != nil {
		return m.VerifyFunc(data, sig)
	}
	return bytes.Equal(sig, append([]byte("sig:"), data...)), nil
}

// MockIdentityFactory 模拟 Factory 接口实现
type MockIdentityFactory struct {
	// 基本属性
	IdentityValue *MockIdentity

	// 可覆盖的方法
	NewFunc func() (identityif.Identity, error)

	// 调用记录
	NewCalls int
}

// NewMockIdentityFactory 创建带有默认值的 MockIdentityFactory
func NewMockIdentityFactory() *MockIdentityFactory {
	return &MockIdentityFactory{
		IdentityValue: NewMockIdentity([]byte{
			0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef,
			0xfe, 0xdc, 0xba, 0x98, 0x76, 0x54, 0x32, 0x10,
		}),
	}
}

// New 创建身份
func (m *MockIdentityFactory) New() (identityif.Identity, error) {
	m.NewCalls++
	if m.NewFunc != nil {
		return m.NewFunc()
	}
	return m.IdentityValue, nil
}

var (
	_ identityif.Identity = (*MockIdentity)(nil)
	_ identityif.Factory  = (*MockIdentityFactory)(nil)
)
