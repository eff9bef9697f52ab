package doctor

import (
	"errors"

	runtimeif "github.com/dep2p/dep2p-check/pkg/interfaces/runtime"
)

// ============================================================================
// 错误定义
// ============================================================================

var (
	// ErrNoInterfaces 运行时没有任何传输接口
	ErrNoInterfaces = errors.New("no interfaces configured")

	// ErrSignatureMismatch 身份自检签名验证失败
	ErrSignatureMismatch = errors.New("identity signature verification failed")

	// ErrStagePanic 阶段执行时发生 panic
	ErrStagePanic = errors.New("stage panicked")
)

// ============================================================================
//                              Category - 失败类别
// ============================================================================

// Category 失败类别
type Category int

const (
	// CategoryRuntimeError 其他运行时错误（兜底类别）
	CategoryRuntimeError Category = iota
	// CategoryMissingDependency 运行时未安装或版本过低
	CategoryMissingDependency
	// CategoryUnreachableDaemon 守护进程不可达
	CategoryUnreachableDaemon
	// CategoryNoInterfaces 没有配置传输接口
	CategoryNoInterfaces
)

// String 返回类别标识
func (c Category) String() string {
	switch c {
	case CategoryMissingDependency:
		return "missing-dependency"
	case CategoryUnreachableDaemon:
		return "unreachable-daemon"
	case CategoryNoInterfaces:
		return "no-interfaces"
	default:
		return "runtime-error"
	}
}

// ExitFailure 所有失败类别共用的退出码
const ExitFailure = 1

// ExitSuccess 全部阶段通过时的退出码
const ExitSuccess = 0

// Classification 失败分类结果
type Classification struct {
	// Category 失败类别
	Category Category

	// Remediation 按顺序给出的修复建议
	Remediation []string

	// ExitCode 进程退出码
	ExitCode int

	// ShowMessage 是否在报告中显示原始错误信息
	// 只有兜底类别显示，其余类别显示整理过的修复建议
	ShowMessage bool
}

var remediations = map[Category][]string{
	CategoryMissingDependency: {
		"Install or upgrade dep2p: go install github.com/dep2p/go-dep2p/cmd/dep2p@latest",
		"Make sure the dep2p binary is on PATH: dep2p -version",
	},
	CategoryUnreachableDaemon: {
		"Start the node daemon: dep2p",
		"Check that it is running: ps aux | grep dep2p",
		"Make sure the introspect service is enabled (diagnostics.enable_introspect) and listening on the checked address",
	},
	CategoryNoInterfaces: {
		"Make sure the daemon was started with transports enabled: dep2p -config <file>",
		"Check the transport section of the node configuration",
	},
	CategoryRuntimeError: {
		"Check if the daemon is running: ps aux | grep dep2p",
		"Try starting it: dep2p",
		"Check its health endpoint: curl http://127.0.0.1:6060/health",
	},
}

// Classify 将阶段失败映射为分类结果
//
// 映射是全函数：任何阶段、任何错误（包括 nil）都得到唯一的类别。
// 类别只由失败发生的阶段和哨兵错误决定，不解析错误文本。
func Classify(stage Stage, err error) Classification {
	category := CategoryRuntimeError

	switch stage {
	case StageImport:
		if errors.Is(err, runtimeif.ErrRuntimeNotInstalled) || errors.Is(err, runtimeif.ErrRuntimeTooOld) {
			category = CategoryMissingDependency
		}
	case StageAttach:
		if errors.Is(err, runtimeif.ErrDaemonUnreachable) {
			category = CategoryUnreachableDaemon
		}
	case StageInterfaces:
		if errors.Is(err, ErrNoInterfaces) {
			category = CategoryNoInterfaces
		}
	}

	return Classification{
		Category:    category,
		Remediation: append([]string(nil), remediations[category]...),
		ExitCode:    ExitFailure,
		ShowMessage: category == CategoryRuntimeError,
	}
}
