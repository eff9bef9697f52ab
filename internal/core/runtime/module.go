package runtime

import (
	"go.uber.org/fx"

	"github.com/dep2p/dep2p-check/config"
	runtimeif "github.com/dep2p/dep2p-check/pkg/interfaces/runtime"
)

// ModuleOutput 定义模块输出服务
type ModuleOutput struct {
	fx.Out

	Runtime runtimeif.Runtime
}

// ProvideRuntime 从统一配置提供运行时访问器
func ProvideRuntime(cfg *config.Config) ModuleOutput {
	return ModuleOutput{Runtime: New(ConfigFromUnified(cfg))}
}

// Module 返回运行时模块
func Module() fx.Option {
	return fx.Module("runtime",
		fx.Provide(ProvideRuntime),
	)
}
