package identity

import "errors"

// ============================================================================
// 错误定义
// ============================================================================

var (
	// ErrFailedToGenerateKey 密钥生成失败
	ErrFailedToGenerateKey = errors.New("failed to generate key")

	// ErrNilPrivateKey 私钥为 nil
	ErrNilPrivateKey = errors.New("private key is nil")
)
