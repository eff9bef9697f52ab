package doctor

import (
	"time"

	"github.com/google/uuid"

	"github.com/dep2p/dep2p-check/pkg/types"
)

// Report 诊断报告
//
// Stages 按固定顺序排列。终态只有两种：四个阶段全部通过，
// 或恰好一个阶段失败且其后的阶段保持 PENDING。
type Report struct {
	// RunID 本次诊断的 ID，用于关联日志
	RunID string

	// StartedAt 诊断开始时间
	StartedAt time.Time

	// Stages 各阶段结果
	Stages [NumStages]StageResult

	// RuntimeVersion 运行时版本（阶段 1）
	RuntimeVersion string

	// Endpoint 已连接的自省端点（阶段 2）
	Endpoint string

	// NodeID 守护进程报告的节点 ID（阶段 2）
	NodeID string

	// DaemonStatus 守护进程报告的健康状态（阶段 2）
	DaemonStatus string

	// Interfaces 传输接口快照（阶段 3）
	Interfaces []types.InterfaceDescriptor

	// Fingerprint 临时身份指纹（阶段 4）
	Fingerprint []byte

	// PeerID 临时身份的节点 ID（阶段 4）
	PeerID string

	// KeyType 临时身份的密钥类型（阶段 4）
	KeyType types.KeyType
}

func newReport(runID string, startedAt time.Time) *Report {
	r := &Report{
		RunID:     runID,
		StartedAt: startedAt,
	}
	for i, stage := range Stages {
		r.Stages[i] = StageResult{Stage: stage, Status: StatusPending}
	}
	return r
}

// NewFailedReport 为诊断开始前发生的失败创建报告
//
// 配置错误、组件装配失败等都记录为阶段 1 失败，
// 从而同样经过 Classify 得到类别和退出码。
func NewFailedReport(err error) *Report {
	r := newReport(uuid.NewString(), time.Now())
	r.fail(StageImport, err, 0)
	return r
}

// Result 返回指定阶段的结果
func (r *Report) Result(stage Stage) StageResult {
	return r.Stages[stage]
}

// Success 所有阶段都通过时返回 true
func (r *Report) Success() bool {
	for _, res := range r.Stages {
		if res.Status != StatusPassed {
			return false
		}
	}
	return true
}

// Failure 返回失败的阶段，没有失败时返回 nil
func (r *Report) Failure() *StageResult {
	for i := range r.Stages {
		if r.Stages[i].Status == StatusFailed {
			return &r.Stages[i]
		}
	}
	return nil
}

// ExitCode 返回进程退出码
func (r *Report) ExitCode() int {
	if r.Success() {
		return ExitSuccess
	}
	if f := r.Failure(); f != nil {
		return f.Classification.ExitCode
	}
	return ExitFailure
}

// Elapsed 返回所有已执行阶段的总耗时
func (r *Report) Elapsed() time.Duration {
	var total time.Duration
	for _, res := range r.Stages {
		total += res.Elapsed
	}
	return total
}

func (r *Report) pass(stage Stage, elapsed time.Duration) {
	res := &r.Stages[stage]
	if res.Status != StatusPending {
		return
	}
	res.Status = StatusPassed
	res.Elapsed = elapsed
}

func (r *Report) fail(stage Stage, err error, elapsed time.Duration) {
	res := &r.Stages[stage]
	if res.Status != StatusPending {
		return
	}
	res.Status = StatusFailed
	res.Err = err
	res.Classification = Classify(stage, err)
	res.Elapsed = elapsed
}
