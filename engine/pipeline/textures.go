package pipeline

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/ovenlight/turnbake/engine/scene"
)

// WritePNG encodes an image to disk, replacing any previous file.
func WritePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		os.Remove(path)
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	return file.Close()
}

/**
 * @brief Writes the baked maps of one mesh to the texture backup directory
 * so a dataset consumer can use the raw maps without re-baking.
 */
func SaveBakedTextures(dirs *OutputDirs, meshName, meshID string, maps []*scene.BakedMap) error {
	for _, baked := range maps {
		path := filepath.Join(dirs.TexturesBackup, TextureFilename(meshName, meshID, baked.Mode))
		if err := WritePNG(path, baked.Pixels); err != nil {
			return err
		}
	}
	return nil
}
