package loaders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovenlight/turnbake/engine/math"
)

const cubeOBJ = `# comment
o TestCube
v -1.0 -2.0 -3.0
v 1.0 -2.0 -3.0
v 1.0 2.0 -3.0
v -1.0 2.0 -3.0
v -1.0 -2.0 3.0
v 1.0 -2.0 3.0
v 1.0 2.0 3.0
v -1.0 2.0 3.0
vt 0.0 0.0
vt 1.0 0.0
f 1 2 3 4
f 5 6 7 8
f 1 2 6 5
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestOBJLoad(t *testing.T) {
	loader := &OBJLoader{}
	mesh, err := loader.Load(writeTemp(t, "cube.obj", cubeOBJ))
	require.NoError(t, err)

	assert.Equal(t, "TestCube", mesh.Name)
	assert.Equal(t, 8, mesh.VertexCount)
	assert.Equal(t, 3, mesh.FaceCount)
	assert.True(t, mesh.HasUV)
	assert.NoError(t, mesh.Validate())

	// Corners span the vertex extents.
	minV := mesh.BoundBox[0]
	maxV := mesh.BoundBox[7]
	assert.True(t, minV.Compare(math.NewVec3(-1, -2, -3), 1e-5))
	assert.True(t, maxV.Compare(math.NewVec3(1, 2, 3), 1e-5))
}

func TestOBJLoadUnnamed(t *testing.T) {
	loader := &OBJLoader{}
	mesh, err := loader.Load(writeTemp(t, "statue.obj", "v 0 0 0\nv 1 1 1\nf 1 2 1\n"))
	require.NoError(t, err)

	assert.Equal(t, "statue", mesh.Name)
	assert.False(t, mesh.HasUV)
}

func TestOBJLoadEmpty(t *testing.T) {
	loader := &OBJLoader{}
	mesh, err := loader.Load(writeTemp(t, "empty.obj", "# nothing here\n"))
	require.NoError(t, err)

	assert.Equal(t, 0, mesh.VertexCount)
	assert.Error(t, mesh.Validate())
	for _, c := range mesh.BoundBox {
		assert.True(t, c.Compare(math.NewVec3Zero(), 1e-6))
	}
}
