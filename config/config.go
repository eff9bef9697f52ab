// Package config 提供 dep2p-check 的配置管理
//
// 每个子配置在独立文件中定义，主 Config 嵌入所有子配置。
// 配置来源优先级（从高到低）：
//  1. 命令行参数
//  2. 环境变量（DEP2P_* 前缀，可由 .env 文件提供）
//  3. JSON 配置文件
//  4. 默认值
//
// 使用示例：
//
//	cfg, err := config.LoadFile("check.json")
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go.uber.org/multierr"
)

// Config 是 dep2p-check 的完整配置结构
//
//   - Runtime: 运行时安装定位与版本要求
//   - Diagnostics: 自省端点与超时
//   - Log: 日志输出
type Config struct {
	// Runtime 运行时配置
	Runtime RuntimeConfig `json:"runtime"`

	// Diagnostics 诊断配置
	Diagnostics DiagnosticsConfig `json:"diagnostics"`

	// Log 日志配置
	Log LogConfig `json:"log"`
}

// NewConfig 创建默认配置
func NewConfig() *Config {
	return &Config{
		Runtime:     DefaultRuntimeConfig(),
		Diagnostics: DefaultDiagnosticsConfig(),
		Log:         DefaultLogConfig(),
	}
}

// FromJSON 从 JSON 数据创建配置
//
// 未出现的字段保留默认值。
//
// 示例 JSON:
//
//	{
//	  "runtime": {"binary": "dep2p", "min_version": "v0.2.0"},
//	  "diagnostics": {"introspect_addr": "127.0.0.1:6060", "timeout": "5s"}
//	}
func FromJSON(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// LoadFile 从 JSON 文件加载配置
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: 用户指定的配置文件路径是预期行为
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return FromJSON(data)
}

// Validate 验证配置
//
// 收集所有子配置的错误后一并返回。
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	return multierr.Combine(
		c.Runtime.Validate(),
		c.Diagnostics.Validate(),
	)
}
