package doctor

import (
	"context"
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"

	"github.com/dep2p/dep2p-check/internal/util/logger"
	identityif "github.com/dep2p/dep2p-check/pkg/interfaces/identity"
	runtimeif "github.com/dep2p/dep2p-check/pkg/interfaces/runtime"
)

var log = logger.Logger("doctor")

// probePayload 身份自检时签名的数据前缀
const probePayload = "dep2p-check identity probe "

// Option Checker 选项
type Option func(*Checker)

// WithClock 设置计时使用的时钟
func WithClock(c clock.Clock) Option {
	return func(ch *Checker) {
		ch.clock = c
	}
}

// WithRunID 设置运行 ID 生成函数
func WithRunID(fn func() string) Option {
	return func(ch *Checker) {
		ch.newRunID = fn
	}
}

// Checker 诊断流程
//
// Checker 不持有跨运行的可变状态，每次 Run 都从头开始。
type Checker struct {
	runtime    runtimeif.Runtime
	identities identityif.Factory

	clock    clock.Clock
	newRunID func() string
}

// New 创建诊断流程
func New(rt runtimeif.Runtime, identities identityif.Factory, opts ...Option) *Checker {
	c := &Checker{
		runtime:    rt,
		identities: identities,
		clock:      clock.New(),
		newRunID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// run 单次诊断的上下文
type run struct {
	report *Report
	handle runtimeif.Handle
}

// Run 按顺序执行四个阶段
//
// 第一个失败的阶段终止诊断。Run 总是返回报告，从不返回错误。
func (c *Checker) Run(ctx context.Context) *Report {
	r := &run{report: newReport(c.newRunID(), c.clock.Now())}
	l := log.With("run_id", r.report.RunID)

	steps := [NumStages]func(context.Context, *run) error{
		StageImport:     c.checkImport,
		StageAttach:     c.checkAttach,
		StageInterfaces: c.checkInterfaces,
		StageIdentity:   c.checkIdentity,
	}

	for _, stage := range Stages {
		l.Debug("阶段开始", "stage", stage)

		start := c.clock.Now()
		err := runStep(ctx, r, steps[stage])
		elapsed := c.clock.Since(start)

		if err != nil {
			r.report.fail(stage, err, elapsed)
			l.Warn("阶段失败",
				"stage", stage,
				"category", r.report.Stages[stage].Classification.Category,
				"elapsed", elapsed,
				"error", err)
			return r.report
		}

		r.report.pass(stage, elapsed)
		l.Debug("阶段通过", "stage", stage, "elapsed", elapsed)
	}

	l.Debug("诊断完成", "elapsed", r.report.Elapsed())
	return r.report
}

// runStep 执行单个阶段，把 panic 转为错误
func runStep(ctx context.Context, r *run, step func(context.Context, *run) error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrStagePanic, p)
		}
	}()
	return step(ctx, r)
}

// checkImport 阶段 1：运行时安装与版本
func (c *Checker) checkImport(ctx context.Context, r *run) error {
	v, err := c.runtime.Version(ctx)
	if err != nil {
		return err
	}
	r.report.RuntimeVersion = v
	return nil
}

// checkAttach 阶段 2：连接守护进程
func (c *Checker) checkAttach(ctx context.Context, r *run) error {
	h, err := c.runtime.Attach(ctx)
	if err != nil {
		return err
	}
	r.handle = h
	r.report.Endpoint = h.Endpoint()
	r.report.NodeID = h.NodeID()
	r.report.DaemonStatus = h.Status()
	return nil
}

// checkInterfaces 阶段 3：传输接口枚举
//
// 空集合不是异常，但同样使诊断失败。
func (c *Checker) checkInterfaces(ctx context.Context, r *run) error {
	set, err := r.handle.Interfaces(ctx)
	if err != nil {
		return err
	}
	if len(set) == 0 {
		return ErrNoInterfaces
	}
	r.report.Interfaces = set
	return nil
}

// checkIdentity 阶段 4：生成临时身份并自检签名
func (c *Checker) checkIdentity(_ context.Context, r *run) error {
	id, err := c.identities.New()
	if err != nil {
		return fmt.Errorf("create identity: %w", err)
	}

	payload := []byte(probePayload + r.report.RunID)
	sig, err := id.Sign(payload)
	if err != nil {
		return fmt.Errorf("sign probe: %w", err)
	}
	ok, err := id.Verify(payload, sig)
	if err != nil {
		return fmt.Errorf("verify probe: %w", err)
	}
	if !ok {
		return ErrSignatureMismatch
	}

	r.report.Fingerprint = id.Fingerprint()
	r.report.PeerID = id.PeerID()
	r.report.KeyType = id.KeyType()
	return nil
}
