package loaders

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ovenlight/turnbake/engine/math"
	"github.com/ovenlight/turnbake/engine/scene"
)

/**
 * @brief OBJLoader extracts export metadata from Wavefront OBJ files:
 * vertex/face counts, UV presence and the local-space bounding box. The
 * geometry itself is never retained; the render host loads the file on its
 * own when baking.
 */
type OBJLoader struct{}

func (l *OBJLoader) Load(path string) (*scene.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	minV := math.NewVec3(math.K_INFINITY, math.K_INFINITY, math.K_INFINITY)
	maxV := math.NewVec3(-math.K_INFINITY, -math.K_INFINITY, -math.K_INFINITY)

	vertexCount := 0
	faceCount := 0
	hasUV := false
	named := false

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "v "):
			fields := strings.Fields(line)
			if len(fields) < 4 {
				continue
			}
			x, errX := strconv.ParseFloat(fields[1], 32)
			y, errY := strconv.ParseFloat(fields[2], 32)
			z, errZ := strconv.ParseFloat(fields[3], 32)
			if errX != nil || errY != nil || errZ != nil {
				continue
			}
			vertexCount++
			v := math.NewVec3(float32(x), float32(y), float32(z))
			if v.X < minV.X {
				minV.X = v.X
			}
			if v.Y < minV.Y {
				minV.Y = v.Y
			}
			if v.Z < minV.Z {
				minV.Z = v.Z
			}
			if v.X > maxV.X {
				maxV.X = v.X
			}
			if v.Y > maxV.Y {
				maxV.Y = v.Y
			}
			if v.Z > maxV.Z {
				maxV.Z = v.Z
			}
		case strings.HasPrefix(line, "f "):
			faceCount++
		case strings.HasPrefix(line, "vt "):
			hasUV = true
		case strings.HasPrefix(line, "o ") && !named:
			// First object statement names the mesh; later ones are
			// sub-objects the host flattens anyway.
			name = strings.TrimSpace(line[2:])
			named = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if vertexCount == 0 {
		minV = math.NewVec3Zero()
		maxV = math.NewVec3Zero()
	}

	return &scene.Mesh{
		Name:        name,
		SourcePath:  path,
		VertexCount: vertexCount,
		FaceCount:   faceCount,
		HasUV:       hasUV,
		BoundBox:    scene.BoundBoxCorners(minV, maxV),
		World:       math.NewMat4Identity(),
	}, nil
}
