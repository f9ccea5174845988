package app_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/iconic/internal/app"
	_ "go.trai.ch/iconic/internal/wiring" // Register providers
)

func TestAppWiring(t *testing.T) {
	// Pin the environment so the config loader resolves against the
	// temporary directory instead of the host.
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("XDG_DATA_DIRS", "")
	t.Setenv("XDG_CONFIG_HOME", "")

	// Verify that the application graph can be constructed
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components)
	require.NotNil(t, components.Service)
	require.NotNil(t, components.Logger)
	require.NotEmpty(t, components.Config.BaseDirs)
}
