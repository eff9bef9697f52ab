package config

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-version"
)

// DefaultRuntimeBinary 默认运行时可执行文件
const DefaultRuntimeBinary = "dep2p"

// RuntimeConfig 运行时安装配置
type RuntimeConfig struct {
	// Binary 运行时可执行文件名或路径
	// 默认 "dep2p"
	Binary string `json:"binary"`

	// MinVersion 要求的最低运行时版本，为空表示不检查
	MinVersion string `json:"min_version,omitempty"`
}

// DefaultRuntimeConfig 返回默认运行时配置
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Binary: DefaultRuntimeBinary,
	}
}

// Validate 验证运行时配置
func (c RuntimeConfig) Validate() error {
	if c.Binary == "" {
		return errors.New("runtime.binary must not be empty")
	}
	if c.MinVersion != "" {
		if _, err := version.NewVersion(c.MinVersion); err != nil {
			return fmt.Errorf("runtime.min_version %q: %w", c.MinVersion, err)
		}
	}
	return nil
}
