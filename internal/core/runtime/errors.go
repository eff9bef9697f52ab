package runtime

import (
	"errors"

	runtimeif "github.com/dep2p/dep2p-check/pkg/interfaces/runtime"
)

// ============================================================================
// 错误定义
// ============================================================================

var (
	// ErrRuntimeNotInstalled 找不到运行时可执行文件
	ErrRuntimeNotInstalled = runtimeif.ErrRuntimeNotInstalled

	// ErrRuntimeTooOld 运行时版本低于要求
	ErrRuntimeTooOld = runtimeif.ErrRuntimeTooOld

	// ErrDaemonUnreachable 守护进程不可达
	ErrDaemonUnreachable = runtimeif.ErrDaemonUnreachable

	// ErrUnexpectedStatus 自省服务返回非 200 状态
	ErrUnexpectedStatus = errors.New("unexpected introspect status")
)
