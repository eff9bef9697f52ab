package identity

import (
	"testing"

	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	identityif "github.com/dep2p/dep2p-check/pkg/interfaces/identity"
)

// TestModule_Load 测试 Fx 模块加载
func TestModule_Load(t *testing.T) {
	var factory identityif.Factory

	app := fxtest.New(t,
		Module(),
		fx.Populate(&factory),
	)
	app.RequireStart()
	defer app.RequireStop()

	if factory == nil {
		t.Fatal("Factory not injected by Fx")
	}

	id, err := factory.New()
	if err != nil {
		t.Fatalf("factory.New() failed: %v", err)
	}
	if id.PeerID() == "" {
		t.Error("generated identity has empty PeerID")
	}
}
