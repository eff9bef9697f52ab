// Package mocks 提供统一的测试 Mock 实现
//
// # 运行时 Mock
//
//   - MockRuntime: 模拟 runtime.Runtime，支持自定义版本和连接结果
//   - MockHandle: 模拟 runtime.Handle，支持自定义接口集合
//
// # 身份 Mock
//
//   - MockIdentity: 模拟 identity.Identity，包含签名验证功能
//   - MockIdentityFactory: 模拟 identity.Factory
//
// # 设计原则
//
// 1. 函数式注入: 每个 Mock 都支持通过 XxxFunc 字段注入自定义行为
// 2. 调用记录: 关键 Mock 记录调用次数，便于验证诊断在失败后不再继续
//
// # 使用示例
//
//	func TestUnreachable(t *testing.T) {
//	    rt := mocks.NewMockRuntime("v0.2.0")
//	    rt.AttachFunc = func(ctx context.Context) (runtime.Handle, error) {
//	        return nil, runtime.ErrDaemonUnreachable
//	    }
//	    report := doctor.New(rt, mocks.NewMockIdentityFactory()).Run(context.Background())
//	    if rt.AttachCalls != 1 {
//	        t.Error("expected one attach")
//	    }
//	}
package mocks
