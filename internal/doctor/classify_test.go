package doctor

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	runtimeif "github.com/dep2p/dep2p-check/pkg/interfaces/runtime"
)

func TestClassify(t *testing.T) {
	other := errors.New("boom")

	tests := []struct {
		name     string
		stage    Stage
		err      error
		expected Category
	}{
		{"not installed", StageImport, runtimeif.ErrRuntimeNotInstalled, CategoryMissingDependency},
		{"wrapped not installed", StageImport, fmt.Errorf("locate dep2p: %w", runtimeif.ErrRuntimeNotInstalled), CategoryMissingDependency},
		{"too old", StageImport, fmt.Errorf("v0.1.0 < v0.2.0: %w", runtimeif.ErrRuntimeTooOld), CategoryMissingDependency},
		{"version query failed", StageImport, other, CategoryRuntimeError},
		{"unreachable", StageAttach, fmt.Errorf("dial: %w", runtimeif.ErrDaemonUnreachable), CategoryUnreachableDaemon},
		{"attach other", StageAttach, other, CategoryRuntimeError},
		{"no interfaces", StageInterfaces, ErrNoInterfaces, CategoryNoInterfaces},
		{"enumeration error", StageInterfaces, other, CategoryRuntimeError},
		{"identity error", StageIdentity, other, CategoryRuntimeError},
		{"panic", StageIdentity, fmt.Errorf("%w: oops", ErrStagePanic), CategoryRuntimeError},
		{"nil error", StageAttach, nil, CategoryRuntimeError},
		{"unknown stage", Stage(42), runtimeif.ErrDaemonUnreachable, CategoryRuntimeError},
		// 哨兵只在对应阶段有效
		{"sentinel at wrong stage", StageIdentity, runtimeif.ErrRuntimeNotInstalled, CategoryRuntimeError},
		{"unreachable during import", StageImport, runtimeif.ErrDaemonUnreachable, CategoryRuntimeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(tt.stage, tt.err)
			assert.Equal(t, tt.expected, c.Category)
			assert.Equal(t, ExitFailure, c.ExitCode)
			assert.NotEmpty(t, c.Remediation)
			assert.Equal(t, tt.expected == CategoryRuntimeError, c.ShowMessage)
		})
	}
}

func TestClassify_RemediationIsCopied(t *testing.T) {
	c := Classify(StageImport, runtimeif.ErrRuntimeNotInstalled)
	c.Remediation[0] = "changed"

	again := Classify(StageImport, runtimeif.ErrRuntimeNotInstalled)
	assert.NotEqual(t, "changed", again.Remediation[0])
}

func TestClassify_RemediationText(t *testing.T) {
	assert.Contains(t, Classify(StageImport, runtimeif.ErrRuntimeNotInstalled).Remediation[0], "go install")

	unreachable := Classify(StageAttach, runtimeif.ErrDaemonUnreachable).Remediation
	assert.Contains(t, unreachable[0], "Start the node daemon")
	assert.Contains(t, unreachable[1], "running")
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "missing-dependency", CategoryMissingDependency.String())
	assert.Equal(t, "unreachable-daemon", CategoryUnreachableDaemon.String())
	assert.Equal(t, "no-interfaces", CategoryNoInterfaces.String())
	assert.Equal(t, "runtime-error", CategoryRuntimeError.String())
	assert.Equal(t, "runtime-error", Category(99).String())
}

func TestStage_String(t *testing.T) {
	assert.Equal(t, "import-check", StageImport.String())
	assert.Equal(t, "runtime-attach", StageAttach.String())
	assert.Equal(t, "interface-enumeration", StageInterfaces.String())
	assert.Equal(t, "identity-probe", StageIdentity.String())
	assert.Equal(t, "unknown", Stage(-1).String())
}
