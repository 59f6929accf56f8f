package pipeline

import (
	"os"
	"path/filepath"

	"github.com/ovenlight/turnbake/engine/scene"
)

// Baked texture backups live next to the per-mode view directories.
const texturesBackupDir = "textures_backup"

/**
 * @brief The output directory layout of one export run: one subdirectory
 * per enabled bake mode plus a texture backup directory.
 */
type OutputDirs struct {
	Base           string
	Modes          map[scene.BakeMode]string
	TexturesBackup string
}

/**
 * @brief Creates the output directory structure for the enabled modes.
 */
func SetupOutputDirs(base string, modes []scene.BakeMode) (*OutputDirs, error) {
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, err
	}

	dirs := &OutputDirs{
		Base:  abs,
		Modes: make(map[scene.BakeMode]string, len(modes)),
	}
	for _, mode := range modes {
		path := filepath.Join(abs, mode.String())
		if err := os.MkdirAll(path, 0o755); err != nil {
			return nil, err
		}
		dirs.Modes[mode] = path
	}

	dirs.TexturesBackup = filepath.Join(abs, texturesBackupDir)
	if err := os.MkdirAll(dirs.TexturesBackup, 0o755); err != nil {
		return nil, err
	}

	return dirs, nil
}
