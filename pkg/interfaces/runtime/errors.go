package runtime

import "errors"

// 实现必须包装以下哨兵错误，诊断流程据此区分失败类别
var (
	// ErrRuntimeNotInstalled 找不到运行时安装
	ErrRuntimeNotInstalled = errors.New("runtime not installed")

	// ErrRuntimeTooOld 运行时版本低于要求
	ErrRuntimeTooOld = errors.New("runtime version too old")

	// ErrDaemonUnreachable 守护进程不可达
	ErrDaemonUnreachable = errors.New("daemon unreachable")
)
