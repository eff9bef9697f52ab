// Package doctor 实现节点健康检查的诊断流程
//
// 诊断由四个固定顺序的阶段组成：
//
//	[1/4] import-check          运行时安装与版本
//	[2/4] runtime-attach        连接守护进程
//	[3/4] interface-enumeration 查询传输接口
//	[4/4] identity-probe        生成临时身份并自检签名
//
// 每个阶段只转换一次，从 PENDING 变为 PASSED 或 FAILED。
// 第一个失败的阶段终止诊断，其后的阶段保持 PENDING。
//
// 失败由 Classify 映射为固定的类别、修复建议和退出码，
// 任何失败都不会以未分类的原始错误退出。
//
// # 使用示例
//
//	checker := doctor.New(rt, identity.NewGenerator())
//	report := checker.Run(ctx)
//	_ = doctor.Render(os.Stdout, report)
//	os.Exit(report.ExitCode())
package doctor
