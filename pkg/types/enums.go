package types

import "fmt"

// ============================================================================
//                              KeyType - 密钥类型
// ============================================================================

// KeyType 密钥类型
type KeyType int

const (
	// KeyTypeUnknown 未知密钥类型
	KeyTypeUnknown KeyType = iota
	// KeyTypeEd25519 Ed25519 密钥
	KeyTypeEd25519
	// KeyTypeECDSA ECDSA 密钥（通用）
	KeyTypeECDSA
	// KeyTypeRSA RSA 密钥
	KeyTypeRSA
)

// String 返回密钥类型的字符串表示
func (kt KeyType) String() string {
	switch kt {
	case KeyTypeEd25519:
		return "Ed25519"
	case KeyTypeECDSA:
		return "ECDSA"
	case KeyTypeRSA:
		return "RSA"
	default:
		return "Unknown"
	}
}

// ============================================================================
//                              InterfaceMode - 接口模式
// ============================================================================

// InterfaceMode 传输接口的工作模式
type InterfaceMode int

const (
	// ModeFull 完整模式，参与全部转发
	ModeFull InterfaceMode = iota
	// ModeAccessPoint 接入点模式，仅服务本地客户端
	ModeAccessPoint
)

// String 返回报告中使用的显示名称
func (m InterfaceMode) String() string {
	switch m {
	case ModeFull:
		return "Full"
	case ModeAccessPoint:
		return "Access Point"
	default:
		return "Unknown"
	}
}

// MarshalText 实现 encoding.TextMarshaler
func (m InterfaceMode) MarshalText() ([]byte, error) {
	switch m {
	case ModeFull:
		return []byte("full"), nil
	case ModeAccessPoint:
		return []byte("access_point"), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidInterfaceMode, int(m))
	}
}

// UnmarshalText 实现 encoding.TextUnmarshaler
//
// 未知的模式名称返回 ErrInvalidInterfaceMode。
func (m *InterfaceMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "full":
		*m = ModeFull
	case "access_point":
		*m = ModeAccessPoint
	default:
		return fmt.Errorf("%w: %q", ErrInvalidInterfaceMode, string(text))
	}
	return nil
}
