package scene

import "fmt"

/**
 * @brief Represents the data maps the render host can bake for a mesh.
 */
type BakeMode int

const (
	/** @brief World-space position encoded as color. */
	BakeModePosition BakeMode = iota
	/** @brief UV wireframe lines. */
	BakeModeWireframe
	/** @brief Flat paint-base coat. */
	BakeModePaintBase
	/** @brief Object-space normals. */
	BakeModeNormalObject
	/** @brief Material base color. */
	BakeModeBaseColor
	/** @brief Ambient occlusion. */
	BakeModeAO
	/** @brief Surface thickness. */
	BakeModeThickness
	/** @brief Cavity/edge curvature. */
	BakeModeCurvature
)

// Token used in directory names and file suffixes.
func (m BakeMode) String() string {
	switch m {
	case BakeModePosition:
		return "position"
	case BakeModeWireframe:
		return "wireframe"
	case BakeModePaintBase:
		return "paint_base"
	case BakeModeNormalObject:
		return "normal_object"
	case BakeModeBaseColor:
		return "base_color"
	case BakeModeAO:
		return "ao"
	case BakeModeThickness:
		return "thickness"
	case BakeModeCurvature:
		return "curvature"
	}
	return "unknown"
}

/**
 * @brief Parses a bake mode from its directory/file token.
 */
func ParseBakeMode(token string) (BakeMode, error) {
	for _, m := range AllBakeModes() {
		if m.String() == token {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown bake mode %q", token)
}

/**
 * @brief Returns every supported bake mode in a stable order.
 */
func AllBakeModes() []BakeMode {
	return []BakeMode{
		BakeModePosition,
		BakeModeWireframe,
		BakeModePaintBase,
		BakeModeNormalObject,
		BakeModeBaseColor,
		BakeModeAO,
		BakeModeThickness,
		BakeModeCurvature,
	}
}
