package types

import "errors"

// 公共错误定义
var (
	// ErrInvalidInterfaceMode 无效的接口模式
	ErrInvalidInterfaceMode = errors.New("invalid interface mode")
)
