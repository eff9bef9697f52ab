package doctor

import (
	"context"
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	identityif "github.com/dep2p/dep2p-check/pkg/interfaces/identity"
	runtimeif "github.com/dep2p/dep2p-check/pkg/interfaces/runtime"
	"github.com/dep2p/dep2p-check/tests/mocks"
)

func TestModule(t *testing.T) {
	rt := mocks.NewMockRuntime("v0.2.0")
	rt.HandleValue.InterfacesValue = twoInterfaces()

	var checker *Checker
	app := fxtest.New(t,
		fx.Provide(
			func() runtimeif.Runtime { return rt },
			func() identityif.Factory { return mocks.NewMockIdentityFactory() },
		),
		Module(),
		fx.Populate(&checker),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, checker)
	assert.True(t, checker.Run(context.Background()).Success())
}

func TestModule_OptionalClock(t *testing.T) {
	mock := clock.NewMock()

	var checker *Checker
	app := fxtest.New(t,
		fx.Provide(
			func() runtimeif.Runtime { return mocks.NewMockRuntime("v0.2.0") },
			func() identityif.Factory { return mocks.NewMockIdentityFactory() },
			func() clock.Clock { return mock },
		),
		Module(),
		fx.Populate(&checker),
	)
	app.RequireStart()
	defer app.RequireStop()

	assert.Same(t, mock, checker.clock)
}
