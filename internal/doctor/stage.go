package doctor

import "time"

// ============================================================================
//                              Stage - 诊断阶段
// ============================================================================

// Stage 诊断阶段
type Stage int

const (
	// StageImport 运行时安装与版本检查
	StageImport Stage = iota
	// StageAttach 连接守护进程
	StageAttach
	// StageInterfaces 传输接口枚举
	StageInterfaces
	// StageIdentity 身份探测
	StageIdentity
)

// NumStages 阶段总数
const NumStages = 4

// Stages 按执行顺序排列的全部阶段
var Stages = [NumStages]Stage{StageImport, StageAttach, StageInterfaces, StageIdentity}

// String 返回阶段标识
func (s Stage) String() string {
	switch s {
	case StageImport:
		return "import-check"
	case StageAttach:
		return "runtime-attach"
	case StageInterfaces:
		return "interface-enumeration"
	case StageIdentity:
		return "identity-probe"
	default:
		return "unknown"
	}
}

// Title 返回报告中的阶段标题
func (s Stage) Title() string {
	switch s {
	case StageImport:
		return "Checking dep2p runtime..."
	case StageAttach:
		return "Attaching to node runtime..."
	case StageInterfaces:
		return "Checking interfaces..."
	case StageIdentity:
		return "Node identity..."
	default:
		return "Unknown stage..."
	}
}

// ============================================================================
//                              Status - 阶段状态
// ============================================================================

// Status 阶段状态
type Status int

const (
	// StatusPending 尚未执行
	StatusPending Status = iota
	// StatusPassed 通过
	StatusPassed
	// StatusFailed 失败
	StatusFailed
)

// String 返回状态的字符串表示
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusPassed:
		return "passed"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// StageResult 单个阶段的结果
type StageResult struct {
	// Stage 阶段
	Stage Stage

	// Status 状态
	Status Status

	// Err 失败原因，仅 StatusFailed 时非 nil
	Err error

	// Classification 失败分类，仅 StatusFailed 时有效
	Classification Classification

	// Elapsed 阶段耗时
	Elapsed time.Duration
}
