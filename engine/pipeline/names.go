package pipeline

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ovenlight/turnbake/engine/scene"
)

var (
	nonAlnum    = regexp.MustCompile(`[^a-zA-Z0-9_]`)
	underscores = regexp.MustCompile(`_+`)
)

/**
 * @brief Cleans a mesh name for use in file names: only alphanumerics and
 * underscores survive, runs collapse, and an empty result becomes
 * "unnamed".
 */
func Sanitize(name string) string {
	sanitized := nonAlnum.ReplaceAllString(name, "_")
	sanitized = underscores.ReplaceAllString(sanitized, "_")
	sanitized = strings.Trim(sanitized, "_")
	if sanitized == "" {
		return "unnamed"
	}
	return sanitized
}

// TextureFilename names a baked texture backup.
func TextureFilename(meshName, meshID string, mode scene.BakeMode) string {
	return fmt.Sprintf("%s_%s_%s.png", Sanitize(meshName), meshID, mode)
}

// ViewFilename names one rendered turnaround view.
func ViewFilename(meshName, meshID string, viewIndex int) string {
	return fmt.Sprintf("%s_%s_view%02d.png", Sanitize(meshName), meshID, viewIndex)
}
