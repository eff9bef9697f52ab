package doctor

import (
	"github.com/benbjohnson/clock"
	"go.uber.org/fx"

	identityif "github.com/dep2p/dep2p-check/pkg/interfaces/identity"
	runtimeif "github.com/dep2p/dep2p-check/pkg/interfaces/runtime"
)

// Params 诊断模块依赖
type Params struct {
	fx.In

	Runtime    runtimeif.Runtime
	Identities identityif.Factory
	Clock      clock.Clock `optional:"true"`
}

// ModuleOutput 定义模块输出服务
type ModuleOutput struct {
	fx.Out

	Checker *Checker
}

// ProvideChecker 从依赖创建诊断流程
func ProvideChecker(p Params) ModuleOutput {
	var opts []Option
	if p.Clock != nil {
		opts = append(opts, WithClock(p.Clock))
	}
	return ModuleOutput{Checker: New(p.Runtime, p.Identities, opts...)}
}

// Module 返回诊断模块
func Module() fx.Option {
	return fx.Module("doctor",
		fx.Provide(ProvideChecker),
	)
}
