package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ovenlight/turnbake/engine/scene"
)

func TestSanitize(t *testing.T) {
	assert.Equal(t, "Suzanne", Sanitize("Suzanne"))
	assert.Equal(t, "my_mesh_001", Sanitize("my mesh.001"))
	assert.Equal(t, "a_b", Sanitize("a---___b"))
	assert.Equal(t, "mesh", Sanitize("  mesh  "))
	assert.Equal(t, "unnamed", Sanitize(""))
	assert.Equal(t, "unnamed", Sanitize("!!!"))
}

func TestTextureFilename(t *testing.T) {
	name := TextureFilename("my mesh", "20240101_120000_000123", scene.BakeModeAO)
	assert.Equal(t, "my_mesh_20240101_120000_000123_ao.png", name)
}

func TestViewFilename(t *testing.T) {
	name := ViewFilename("Suzanne", "20240101_120000_000123", 3)
	assert.Equal(t, "Suzanne_20240101_120000_000123_view03.png", name)

	name = ViewFilename("Suzanne", "20240101_120000_000123", 12)
	assert.Equal(t, "Suzanne_20240101_120000_000123_view12.png", name)
}
