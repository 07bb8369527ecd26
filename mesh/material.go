// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package mesh

import (
	"image"

	"github.com/SoftbearStudios/terrainmesh/terrain"
)

// Material is how a consumer shades a Mesh. It is either Textured or FlatColor.
type Material interface {
	material()
}

// Textured maps Image over the whole grid, pixel (i, j) at lattice point (i, j).
type Textured struct {
	Image image.Image
}

// FlatColor shades the whole mesh with one color.
type FlatColor struct {
	Color terrain.ColorVec
}

func (Textured) material()  {}
func (FlatColor) material() {}

// HeightTexture renders source as a Textured material for a width x length grid.
func HeightTexture(source terrain.Source, width, length int) Textured {
	return Textured{Image: terrain.Render(source, width, length)}
}
