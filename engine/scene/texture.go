package scene

import (
	"image"
	"image/color"
	"image/draw"
)

/**
 * @brief A baked data map produced by the render host for one mesh.
 */
type BakedMap struct {
	/** @brief The bake mode that produced this map. */
	Mode BakeMode
	/** @brief The map name, used for file naming. */
	Name string
	/** @brief The map width in pixels. */
	Width int
	/** @brief The map height in pixels. */
	Height int
	/** @brief The pixel data. */
	Pixels *image.NRGBA
	/** @brief Data maps are linear (non-color); only base color is sRGB. */
	NonColor bool
}

/**
 * @brief Allocates a baked map with an opaque black background, the same
 * starting state bake targets are cleared to.
 */
func NewBakedMap(mode BakeMode, name string, width, height int) *BakedMap {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.NRGBA{A: 255}), image.Point{}, draw.Src)

	return &BakedMap{
		Mode:     mode,
		Name:     name,
		Width:    width,
		Height:   height,
		Pixels:   img,
		NonColor: mode != BakeModeBaseColor,
	}
}
