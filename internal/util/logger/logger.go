// Package logger 提供 dep2p-check 的统一日志系统
//
// 基于标准库 log/slog，支持按子系统配置日志级别和 JSON 输出。
//
// 使用示例:
//
//	var log = logger.Logger("doctor")
//
//	func foo() {
//	    log.Debug("stage finished", "stage", stage, "elapsed", elapsed)
//	}
//
// 环境变量配置:
//
//	DEP2P_LOG_LEVEL=doctor=debug,warn
//	DEP2P_LOG_FORMAT=json
package logger

import (
	"io"
	"log/slog"
	"sync"
)

var (
	// loggers 缓存各子系统的 Logger
	loggers sync.Map // map[string]*slog.Logger

	// handlers 缓存各子系统的 Handler（用于动态调整级别）
	handlers sync.Map // map[string]*subsystemHandler

	// globalLevel 非 nil 时覆盖所有子系统的级别
	globalLevel   *slog.Level
	globalLevelMu sync.RWMutex
)

// Logger 获取指定子系统的 Logger
//
// 同一子系统多次调用会返回相同的 Logger 实例。
func Logger(subsystem string) *slog.Logger {
	if l, ok := loggers.Load(subsystem); ok {
		return l.(*slog.Logger)
	}

	cfg := ConfigFromEnv()
	level := cfg.LevelForSubsystem(subsystem)

	globalLevelMu.RLock()
	if globalLevel != nil {
		level = *globalLevel
	}
	globalLevelMu.RUnlock()

	handler := newHandler(subsystem, level, cfg)
	actual, loaded := loggers.LoadOrStore(subsystem, slog.New(handler))
	if !loaded {
		handlers.Store(subsystem, handler)
	}
	return actual.(*slog.Logger)
}

// SetLevel 动态设置子系统的日志级别
func SetLevel(subsystem string, level slog.Level) {
	if h, ok := handlers.Load(subsystem); ok {
		h.(*subsystemHandler).level.Set(level)
	}
}

// SetGlobalLevel 设置所有子系统的日志级别
//
// 对已创建和之后创建的 Logger 都生效。
func SetGlobalLevel(level slog.Level) {
	globalLevelMu.Lock()
	globalLevel = &level
	globalLevelMu.Unlock()

	handlers.Range(func(_, value any) bool {
		value.(*subsystemHandler).level.Set(level)
		return true
	})
}

// Discard 返回一个丢弃所有日志的 Logger
func Discard() *slog.Logger {
	return slog.New(discardHandler{})
}

// SetOutput 设置全局日志输出目标
//
// 已创建的 Logger 也会重定向到新的 writer。
func SetOutput(w io.Writer) {
	globalOutputMu.Lock()
	globalOutput = w
	globalOutputMu.Unlock()
}

// Reload 重新读取环境变量并更新已创建 Logger 的级别
//
// 用于环境变量在 Logger 创建之后才被设置的情况（例如由 .env 文件加载）。
// 输出格式在 Logger 创建时确定，不受影响。
func Reload() {
	ResetConfig()
	cfg := ConfigFromEnv()

	globalLevelMu.RLock()
	override := globalLevel
	globalLevelMu.RUnlock()

	handlers.Range(func(key, value any) bool {
		level := cfg.LevelForSubsystem(key.(string))
		if override != nil {
			level = *override
		}
		value.(*subsystemHandler).level.Set(level)
		return true
	})
}
