package introspect

import (
	"context"

	"go.uber.org/fx"
)

// Module 返回自省服务 Fx 模块
//
// 需要在容器中提供 Config。
func Module() fx.Option {
	return fx.Module("introspect",
		fx.Provide(New),
		fx.Invoke(registerLifecycle),
	)
}

// registerLifecycle 注册生命周期钩子
func registerLifecycle(lc fx.Lifecycle, server *Server) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return server.Start(ctx)
		},
		OnStop: func(_ context.Context) error {
			return server.Stop()
		},
	})
}
