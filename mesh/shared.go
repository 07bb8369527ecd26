// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package mesh

import "github.com/SoftbearStudios/terrainmesh/terrain"

// BuildShared builds the same surface as Build from a single
// (width+1) x (length+1) vertex grid, lattice point (x, y) at vertex
// x*(length+1)+y. Triangles keep Build's corner order and winding, but
// the buffers differ from Build's.
func BuildShared(width, length int, heightScale float64, source terrain.Source) (*Mesh, error) {
	if err := validate(width, length, heightScale, source); err != nil {
		return nil, err
	}

	stride := length + 1
	m := &Mesh{
		Vertices: make([]Vec3f, (width+1)*stride),
		Indices:  make([]uint32, 0, width*length*indicesPerCell),
	}

	for x := 0; x <= width; x++ {
		for y := 0; y <= length; y++ {
			h := source.ValueFor(int32(x), int32(y)) / heightScale
			m.Vertices[x*stride+y] = Vec3f{X: float32(x), Y: float32(h), Z: float32(y)}
		}
	}

	vertex := func(x, y int) uint32 {
		return uint32(x*stride + y)
	}

	for x := 0; x < width; x++ {
		for y := 0; y < length; y++ {
			bottomLeft := vertex(x, y)
			topLeft := vertex(x, y+1)
			topRight := vertex(x+1, y+1)
			bottomRight := vertex(x+1, y)
			m.Indices = append(m.Indices, bottomLeft, topLeft, topRight, bottomLeft, topRight, bottomRight)
		}
	}

	return m, nil
}
