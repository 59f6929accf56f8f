package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovenlight/turnbake/testbed"
)

const triangleOBJ = `o Triangle
v -1.0 -1.0 0.0
v 1.0 -1.0 0.0
v 0.0 1.0 1.0
vt 0.0 0.0
vt 1.0 0.0
vt 0.5 1.0
f 1/1 2/2 3/3
`

func exporterConfig(t *testing.T) *Config {
	t.Helper()

	meshDir := filepath.Join(t.TempDir(), "meshes")
	require.NoError(t, os.MkdirAll(meshDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(meshDir, "tri.obj"), []byte(triangleOBJ), 0o644))

	cfg := DefaultConfig()
	cfg.Input.Path = meshDir
	cfg.Output.Path = filepath.Join(t.TempDir(), "dataset")
	cfg.Bake.Resolution = 8
	cfg.Bake.WireframeResolution = 8
	cfg.Bake.Modes = []string{"base_color", "ao"}
	cfg.Render.Resolution = 8
	cfg.Render.CameraCount = 2
	return cfg
}

func TestExporterEndToEnd(t *testing.T) {
	cfg := exporterConfig(t)

	exporter, err := New(cfg, testbed.NewSynthHost())
	require.NoError(t, err)
	require.NoError(t, exporter.Initialize())
	require.NoError(t, exporter.Run(context.Background()))
	require.NoError(t, exporter.Shutdown())

	// One view file per camera per mode plus one backup per mode.
	for _, mode := range []string{"base_color", "ao"} {
		views, err := os.ReadDir(filepath.Join(cfg.Output.Path, mode))
		require.NoError(t, err)
		assert.Len(t, views, cfg.Render.CameraCount)
	}
	backups, err := os.ReadDir(filepath.Join(cfg.Output.Path, "textures_backup"))
	require.NoError(t, err)
	assert.Len(t, backups, 2)

	// The checkpoint recorded the mesh.
	_, err = os.Stat(filepath.Join(cfg.Output.Path, "checkpoint.toml"))
	assert.NoError(t, err)
}

func TestExporterRunRequiresInitialize(t *testing.T) {
	cfg := exporterConfig(t)

	exporter, err := New(cfg, testbed.NewSynthHost())
	require.NoError(t, err)

	assert.Error(t, exporter.Run(context.Background()))
}

func TestExporterEmptyInputDir(t *testing.T) {
	cfg := exporterConfig(t)
	empty := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.MkdirAll(empty, 0o755))
	cfg.Input.Path = empty

	exporter, err := New(cfg, testbed.NewSynthHost())
	require.NoError(t, err)
	require.NoError(t, exporter.Initialize())
	defer exporter.Shutdown()

	assert.Error(t, exporter.Run(context.Background()))
}
