// Package main 提供 dep2p-check 命令行入口
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	dep2pcheck "github.com/dep2p/dep2p-check"
	"github.com/dep2p/dep2p-check/config"
	"github.com/dep2p/dep2p-check/internal/core/identity"
	"github.com/dep2p/dep2p-check/internal/core/runtime"
	"github.com/dep2p/dep2p-check/internal/doctor"
	"github.com/dep2p/dep2p-check/internal/util/logger"
)

var log = logger.Logger("cmd")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run 执行一次诊断并返回退出码
//
// 所有失败路径（参数、配置、组件装配）都生成报告并经过分类。
func run(args []string, stdout, stderr io.Writer) int {
	f := &cliFlags{}
	fs := newFlagSet("dep2p-check", f)
	fs.SetOutput(stderr)
	fs.Usage = func() { printHelp(stderr, fs) }

	if err := parseFlags(fs, f, args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return doctor.ExitSuccess
		}
		return report(stdout, doctor.NewFailedReport(fmt.Errorf("参数错误: %w", err)))
	}

	if f.showVersion {
		printVersion(stdout)
		return doctor.ExitSuccess
	}
	if f.showHelp {
		printHelp(stdout, fs)
		return doctor.ExitSuccess
	}

	cfg, err := buildConfig(f)
	if err != nil {
		return report(stdout, doctor.NewFailedReport(err))
	}

	logger.Reload()

	closeLog, err := setupLogging(cfg.Log.File)
	if err != nil {
		fmt.Fprintf(stderr, "警告: %v\n", err)
	}
	defer closeLog()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return report(stdout, check(ctx, cfg))
}

// check 装配组件并执行诊断
func check(ctx context.Context, cfg *config.Config) *doctor.Report {
	var checker *doctor.Checker
	app := fx.New(
		fx.Supply(cfg),
		runtime.Module(),
		identity.Module(),
		doctor.Module(),
		fx.Populate(&checker),
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: zap.NewNop()}
		}),
	)
	if err := app.Err(); err != nil {
		return doctor.NewFailedReport(fmt.Errorf("组件装配失败: %w", err))
	}

	log.Info("开始诊断",
		"version", dep2pcheck.Version,
		"addr", cfg.Diagnostics.IntrospectAddr,
		"bin", cfg.Runtime.Binary)

	return checker.Run(ctx)
}

// report 输出报告并返回退出码
func report(w io.Writer, r *doctor.Report) int {
	if err := doctor.Render(w, r); err != nil {
		log.Error("输出报告失败", "error", err)
	}
	log.Info("诊断结束", "run_id", r.RunID, "result", doctor.Summary(r))
	return r.ExitCode()
}

// setupLogging 将日志重定向到文件
//
// 未指定文件时日志保持默认输出（stderr，默认级别 warn）。
func setupLogging(path string) (func(), error) {
	if path == "" {
		return func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return func() {}, fmt.Errorf("创建日志目录失败: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600) //nolint:gosec // G304: 用户指定的日志路径是预期行为
	if err != nil {
		return func() {}, fmt.Errorf("打开日志文件失败: %w", err)
	}

	logger.SetOutput(file)
	return func() {
		logger.SetOutput(os.Stderr)
		_ = file.Close()
	}, nil
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "dep2p-check %s\n", dep2pcheck.Version)
	if dep2pcheck.GitCommit != "" {
		fmt.Fprintf(w, "  commit: %s\n", dep2pcheck.GitCommit)
	}
	if dep2pcheck.BuildDate != "" {
		fmt.Fprintf(w, "  built:  %s\n", dep2pcheck.BuildDate)
	}
}

func printHelp(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "dep2p-check - 本地 dep2p 节点健康检查")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "用法:")
	fmt.Fprintln(w, "  dep2p-check [选项]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "选项:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "环境变量:")
	fmt.Fprintln(w, "  DEP2P_INTROSPECT_ADDR     守护进程自省地址")
	fmt.Fprintln(w, "  DEP2P_RUNTIME_BIN         dep2p 可执行文件")
	fmt.Fprintln(w, "  DEP2P_MIN_VERSION         最低运行时版本")
	fmt.Fprintln(w, "  DEP2P_CHECK_TIMEOUT       单次请求超时")
	fmt.Fprintln(w, "  DEP2P_LOG_FILE            日志文件路径")
	fmt.Fprintln(w, "  DEP2P_LOG_LEVEL           日志级别（如 doctor=debug,warn）")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "退出码:")
	fmt.Fprintln(w, "  0  全部检查通过")
	fmt.Fprintln(w, "  1  任一检查失败")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "示例:")
	fmt.Fprintln(w, "  dep2p-check")
	fmt.Fprintln(w, "  dep2p-check -addr 127.0.0.1:7070 -timeout 2s")
	fmt.Fprintln(w, "  dep2p-check -config check.json -min-version v0.2.0")
}
