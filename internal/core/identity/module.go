package identity

import (
	"go.uber.org/fx"

	identityif "github.com/dep2p/dep2p-check/pkg/interfaces/identity"
)

// ModuleOutput 定义模块输出服务
type ModuleOutput struct {
	fx.Out

	Factory identityif.Factory
}

// ProvideFactory 提供身份工厂
func ProvideFactory() ModuleOutput {
	return ModuleOutput{Factory: NewGenerator()}
}

// Module 返回身份模块
func Module() fx.Option {
	return fx.Module("identity",
		fx.Provide(ProvideFactory),
	)
}
