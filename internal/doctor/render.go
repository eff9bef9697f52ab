package doctor

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/dep2p/dep2p-check/pkg/types"
)

// ============================================================================
//                              报告渲染
// ============================================================================

const (
	bannerTitle = "DeP2P Node Check"
	rule        = "============================================================"
	indent      = "      "
	subIndent   = "        "
)

const (
	markPass = "✓"
	markWarn = "⚠"
	markFail = "✗"
	markSkip = "-"
)

// styles 报告标记的样式
//
// 输出不是终端时 lipgloss 自动降级为纯文本。
type styles struct {
	pass lipgloss.Style
	warn lipgloss.Style
	fail lipgloss.Style
	dim  lipgloss.Style
	bold lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		pass: r.NewStyle().Foreground(lipgloss.Color("10")),
		warn: r.NewStyle().Foreground(lipgloss.Color("11")),
		fail: r.NewStyle().Foreground(lipgloss.Color("9")),
		dim:  r.NewStyle().Foreground(lipgloss.Color("8")),
		bold: r.NewStyle().Bold(true),
	}
}

// printer 记录第一个写错误，之后的写入全部跳过
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) println(s string) {
	p.printf("%s\n", s)
}

// Render 将报告渲染为分阶段的文本
//
// 四个 [i/4] 小节总是按顺序输出，未执行的阶段标记为 skipped。
// 之后是成功信息或故障排查建议。
func Render(w io.Writer, r *Report) error {
	p := &printer{w: w}
	s := newStyles(w)

	p.println(rule)
	p.println(s.bold.Render(bannerTitle))
	p.println(rule)
	p.println("")

	for _, res := range r.Stages {
		p.printf("[%d/%d] %s\n", int(res.Stage)+1, NumStages, res.Stage.Title())
		switch res.Status {
		case StatusPassed:
			renderPassed(p, s, r, res.Stage)
		case StatusFailed:
			renderFailed(p, s, res)
		default:
			p.printf("%s%s\n", indent, s.dim.Render(markSkip+" skipped"))
		}
		p.println("")
	}

	if r.Success() {
		renderSuccess(p, s)
	} else {
		renderTroubleshooting(p, s, r)
	}
	return p.err
}

func renderPassed(p *printer, s styles, r *Report, stage Stage) {
	ok := s.pass.Render(markPass)
	switch stage {
	case StageImport:
		p.printf("%s%s dep2p version: %s\n", indent, ok, r.RuntimeVersion)
	case StageAttach:
		p.printf("%s%s Attached to node at %s\n", indent, ok, r.Endpoint)
		if r.NodeID != "" {
			p.printf("%sNode ID: %s\n", indent, r.NodeID)
		}
		if r.DaemonStatus != "" {
			p.printf("%sStatus: %s\n", indent, r.DaemonStatus)
		}
	case StageInterfaces:
		p.printf("%s%s Found %d interface(s):\n", indent, ok, len(r.Interfaces))
		for _, iface := range r.Interfaces {
			renderInterface(p, iface)
		}
	case StageIdentity:
		p.printf("%s%s Identity created\n", indent, ok)
		p.printf("%sHash: %s\n", indent, types.PrettyHex(r.Fingerprint))
		if r.PeerID != "" {
			p.printf("%sPeer ID: %s\n", indent, r.PeerID)
		}
	}
}

// renderInterface 输出单个接口，没有速率时不输出 Rate 行
func renderInterface(p *printer, iface types.InterfaceDescriptor) {
	p.printf("%s- %s\n", subIndent, iface.Name)
	p.printf("%s  Type: %s\n", subIndent, iface.Kind)
	p.printf("%s  Mode: %s\n", subIndent, iface.Mode)
	p.printf("%s  Online: %t\n", subIndent, iface.Online)
	if kbps, ok := iface.BitrateKbps(); ok {
		p.printf("%s  Rate: %s\n", subIndent, FormatKbps(kbps))
	}
}

// FormatKbps 以两位小数格式化 kbps 速率
func FormatKbps(kbps float64) string {
	return fmt.Sprintf("%.2f kbps", kbps)
}

func renderFailed(p *printer, s styles, res StageResult) {
	switch res.Classification.Category {
	case CategoryMissingDependency:
		p.printf("%s%s dep2p runtime is not available\n", indent, s.fail.Render(markFail))
	case CategoryUnreachableDaemon:
		p.printf("%s%s Node daemon is not reachable\n", indent, s.fail.Render(markFail))
	case CategoryNoInterfaces:
		p.printf("%s%s No interfaces found!\n", indent, s.warn.Render(markWarn))
	default:
		p.printf("%s%s Error: %s\n", indent, s.fail.Render(markFail), errorMessage(res.Err))
	}
}

func errorMessage(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}

func renderSuccess(p *printer, s styles) {
	p.println(rule)
	p.println(s.pass.Render(markPass + " All checks passed!"))
	p.println(rule)
	p.println("")
	p.println("Your dep2p node is operational and ready to use.")
	p.println("")
	p.println("Next steps:")
	p.println("  - Inspect the node: curl http://127.0.0.1:6060/debug/introspect")
	p.println("  - Build your own applications with github.com/dep2p/go-dep2p")
	p.println("  - Connect with other nodes in your realm")
	p.println("")
}

func renderTroubleshooting(p *printer, s styles, r *Report) {
	f := r.Failure()
	if f == nil {
		return
	}
	c := f.Classification

	p.println(rule)
	p.println(s.fail.Render(fmt.Sprintf("%s Check failed at %s (%s)", markFail, f.Stage, c.Category)))
	p.println(rule)
	p.println("")
	if c.ShowMessage {
		p.printf("Error: %s\n", errorMessage(f.Err))
		p.println("")
	}
	p.println("Troubleshooting:")
	for i, step := range c.Remediation {
		p.printf("  %d. %s\n", i+1, step)
	}
	p.println("")
}

// Summary 返回一行摘要，供日志使用
func Summary(r *Report) string {
	if r.Success() {
		return "all checks passed"
	}
	f := r.Failure()
	if f == nil {
		return "incomplete"
	}
	return fmt.Sprintf("%s failed (%s)", f.Stage, f.Classification.Category)
}
