package config

import "os"

// 环境变量
const (
	// EnvPrefix 环境变量前缀
	EnvPrefix = "DEP2P_"

	// EnvIntrospectAddr 自省服务地址
	EnvIntrospectAddr = "INTROSPECT_ADDR"

	// EnvRuntimeBin 运行时可执行文件
	EnvRuntimeBin = "RUNTIME_BIN"

	// EnvMinVersion 最低运行时版本
	EnvMinVersion = "MIN_VERSION"

	// EnvCheckTimeout 请求超时
	EnvCheckTimeout = "CHECK_TIMEOUT"

	// EnvLogFile 日志文件路径
	EnvLogFile = "LOG_FILE"
)

// ApplyEnv 应用环境变量覆盖
//
// 无法解析的值被忽略，保留原配置。
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvPrefix + EnvIntrospectAddr); v != "" {
		c.Diagnostics.IntrospectAddr = v
	}
	if v := os.Getenv(EnvPrefix + EnvRuntimeBin); v != "" {
		c.Runtime.Binary = v
	}
	if v := os.Getenv(EnvPrefix + EnvMinVersion); v != "" {
		c.Runtime.MinVersion = v
	}
	if v := os.Getenv(EnvPrefix + EnvCheckTimeout); v != "" {
		var d Duration
		if err := d.UnmarshalText([]byte(v)); err == nil {
			c.Diagnostics.Timeout = d
		}
	}
	if v := os.Getenv(EnvPrefix + EnvLogFile); v != "" {
		c.Log.File = v
	}
}
