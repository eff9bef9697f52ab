package config

import (
	"errors"
	"fmt"
	"net"
	"time"

	"go.uber.org/multierr"
)

const (
	// DefaultIntrospectAddr 默认自省服务地址
	DefaultIntrospectAddr = "127.0.0.1:6060"

	// DefaultTimeout 默认请求超时
	DefaultTimeout = 5 * time.Second
)

// DiagnosticsConfig 诊断配置
type DiagnosticsConfig struct {
	// IntrospectAddr 守护进程自省服务地址
	// 默认 "127.0.0.1:6060"
	IntrospectAddr string `json:"introspect_addr"`

	// Timeout 单次请求超时
	// 默认 5s
	Timeout Duration `json:"timeout"`
}

// DefaultDiagnosticsConfig 返回默认诊断配置
func DefaultDiagnosticsConfig() DiagnosticsConfig {
	return DiagnosticsConfig{
		IntrospectAddr: DefaultIntrospectAddr,
		Timeout:        Duration(DefaultTimeout),
	}
}

// Validate 验证诊断配置
func (c DiagnosticsConfig) Validate() error {
	var err error
	if _, _, splitErr := net.SplitHostPort(c.IntrospectAddr); splitErr != nil {
		err = multierr.Append(err, fmt.Errorf("diagnostics.introspect_addr %q: %w", c.IntrospectAddr, splitErr))
	}
	if c.Timeout <= 0 {
		err = multierr.Append(err, errors.New("diagnostics.timeout must be positive"))
	}
	return err
}
