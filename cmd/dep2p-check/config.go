package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/dep2p/dep2p-check/config"
)

// ============================================================================
//                              配置加载（CLI 专用）
// ============================================================================

// cliFlags 命令行参数
type cliFlags struct {
	configFile string
	envFile    string
	addr       string
	bin        string
	minVersion string
	timeout    config.Duration
	logFile    string

	showVersion bool
	showHelp    bool

	set map[string]bool
}

// newFlagSet 注册全部命令行参数
func newFlagSet(name string, f *cliFlags) *flag.FlagSet {
	set := flag.NewFlagSet(name, flag.ContinueOnError)

	set.StringVar(&f.configFile, "config", "", "配置文件路径（JSON）")
	set.StringVar(&f.envFile, "env-file", ".env", "环境变量文件路径（不存在时忽略）")
	set.StringVar(&f.addr, "addr", "", "守护进程自省地址（默认 "+config.DefaultIntrospectAddr+"）")
	set.StringVar(&f.bin, "bin", "", "dep2p 可执行文件（默认 "+config.DefaultRuntimeBinary+"）")
	set.StringVar(&f.minVersion, "min-version", "", "要求的最低运行时版本")
	set.Var(&durationFlag{&f.timeout}, "timeout", "单次请求超时（如 5s）")
	set.StringVar(&f.logFile, "log", "", "日志文件路径（默认丢弃到标准错误）")

	set.BoolVar(&f.showVersion, "version", false, "显示版本信息")
	set.BoolVar(&f.showHelp, "help", false, "显示帮助信息")

	return set
}

// parseFlags 解析参数并记录显式设置过的参数
func parseFlags(set *flag.FlagSet, f *cliFlags, args []string) error {
	if err := set.Parse(args); err != nil {
		return err
	}
	f.set = make(map[string]bool)
	set.Visit(func(fl *flag.Flag) {
		f.set[fl.Name] = true
	})
	return nil
}

// isFlagSet 参数是否在命令行中显式设置
func (f *cliFlags) isFlagSet(name string) bool {
	return f.set[name]
}

// durationFlag 将 config.Duration 适配为 flag.Value
type durationFlag struct {
	d *config.Duration
}

func (v *durationFlag) String() string {
	if v.d == nil {
		return ""
	}
	return v.d.Duration().String()
}

func (v *durationFlag) Set(s string) error {
	return v.d.UnmarshalText([]byte(s))
}

// buildConfig 构建最终配置
//
// 配置优先级（从高到低）：
//  1. 命令行参数
//  2. 环境变量（DEP2P_* 前缀）
//  3. .env 文件（不覆盖已存在的环境变量）
//  4. 配置文件
//  5. 默认值
func buildConfig(f *cliFlags) (*config.Config, error) {
	// ═══════════════════════════════════════════════════════════════════
	// 1. 加载配置文件
	// ═══════════════════════════════════════════════════════════════════
	cfg := config.NewConfig()
	if f.configFile != "" {
		loaded, err := config.LoadFile(f.configFile)
		if err != nil {
			return nil, fmt.Errorf("加载配置文件失败: %w", err)
		}
		cfg = loaded
	}

	// ═══════════════════════════════════════════════════════════════════
	// 2. 环境变量覆盖（.env 只补充未设置的变量）
	// ═══════════════════════════════════════════════════════════════════
	if f.envFile != "" {
		if err := godotenv.Load(f.envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("加载环境变量文件失败: %w", err)
		}
	}
	cfg.ApplyEnv()

	// ═══════════════════════════════════════════════════════════════════
	// 3. 命令行参数覆盖
	// ═══════════════════════════════════════════════════════════════════
	if f.isFlagSet("addr") {
		cfg.Diagnostics.IntrospectAddr = f.addr
	}
	if f.isFlagSet("bin") {
		cfg.Runtime.Binary = f.bin
	}
	if f.isFlagSet("min-version") {
		cfg.Runtime.MinVersion = f.minVersion
	}
	if f.isFlagSet("timeout") {
		cfg.Diagnostics.Timeout = f.timeout
	}
	if f.isFlagSet("log") {
		cfg.Log.File = f.logFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("配置无效: %w", err)
	}
	return cfg, nil
}
