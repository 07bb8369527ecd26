// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package mesh

import (
	"errors"
	"fmt"
	"math"

	"github.com/SoftbearStudios/terrainmesh/terrain"
)

// Primitive is how a consumer assembles Indices into geometry.
type Primitive string

const TriangleList Primitive = "triangles"

const (
	verticesPerCell = 4
	indicesPerCell  = 6
)

var (
	ErrInvalidWidth       = errors.New("mesh: width must be positive")
	ErrInvalidLength      = errors.New("mesh: length must be positive")
	ErrInvalidHeightScale = errors.New("mesh: height scale must be non-zero")
	ErrNilSource          = errors.New("mesh: nil height source")
	ErrTooLarge           = errors.New("mesh: too many vertices for 32 bit indices")
	ErrMalformed          = errors.New("mesh: malformed buffers")
)

// Mesh is a triangle list.
type Mesh struct {
	Vertices []Vec3f
	Indices  []uint32
}

// Build samples source at the corners of every cell of a width x length grid
// and emits 4 vertices and 2 triangles per cell. Vertices are never shared
// between cells. Cells are emitted x-major: cell (x, y) starts at vertex
// (x*length+y)*4.
func Build(width, length int, heightScale float64, source terrain.Source) (*Mesh, error) {
	if err := validate(width, length, heightScale, source); err != nil {
		return nil, err
	}

	m := allocate(width, length)
	for x := 0; x < width; x++ {
		m.writeColumn(x, length, heightScale, source)
	}

	return m, nil
}

func validate(width, length int, heightScale float64, source terrain.Source) error {
	if err := CheckDimensions(width, length, heightScale); err != nil {
		return err
	}
	if source == nil {
		return ErrNilSource
	}
	return nil
}

// CheckDimensions returns the error Build would return for these dimensions.
func CheckDimensions(width, length int, heightScale float64) error {
	if width <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
	if length <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	if heightScale == 0 || math.IsNaN(heightScale) {
		return fmt.Errorf("%w: %v", ErrInvalidHeightScale, heightScale)
	}
	if uint64(width)*uint64(length)*verticesPerCell > math.MaxUint32 {
		return fmt.Errorf("%w: %dx%d", ErrTooLarge, width, length)
	}
	return nil
}

func allocate(width, length int) *Mesh {
	cells := width * length
	return &Mesh{
		Vertices: make([]Vec3f, cells*verticesPerCell),
		Indices:  make([]uint32, cells*indicesPerCell),
	}
}

// writeColumn writes every cell of column x at its precomputed offset.
func (m *Mesh) writeColumn(x, length int, heightScale float64, source terrain.Source) {
	for y := 0; y < length; y++ {
		cell := x*length + y
		m.writeCell(cell, int32(x), int32(y), heightScale, source)
	}
}

func (m *Mesh) writeCell(cell int, x, y int32, heightScale float64, source terrain.Source) {
	height := func(x, y int32) float32 {
		return float32(source.ValueFor(x, y) / heightScale)
	}

	bottomLeftZ := height(x, y)
	bottomRightZ := height(x+1, y)
	topLeftZ := height(x, y+1)
	topRightZ := height(x+1, y+1)

	fx, fy := float32(x), float32(y)

	vertices := m.Vertices[cell*verticesPerCell : (cell+1)*verticesPerCell]
	vertices[0] = Vec3f{X: fx, Y: bottomLeftZ, Z: fy}       // bottom left
	vertices[1] = Vec3f{X: fx, Y: topLeftZ, Z: fy + 1}      // top left
	vertices[2] = Vec3f{X: fx + 1, Y: topRightZ, Z: fy + 1} // top right
	vertices[3] = Vec3f{X: fx + 1, Y: bottomRightZ, Z: fy}  // bottom right

	// Both triangles share the bottom left to top right diagonal.
	base := uint32(cell * verticesPerCell)
	indices := m.Indices[cell*indicesPerCell : (cell+1)*indicesPerCell]
	indices[0], indices[1], indices[2] = base, base+1, base+2
	indices[3], indices[4], indices[5] = base, base+2, base+3
}

// Primitive returns how Indices are assembled.
func (m *Mesh) Primitive() Primitive {
	return TriangleList
}

func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the vertices of the ith triangle.
func (m *Mesh) Triangle(i int) [3]Vec3f {
	return [3]Vec3f{
		m.Vertices[m.Indices[i*3]],
		m.Vertices[m.Indices[i*3+1]],
		m.Vertices[m.Indices[i*3+2]],
	}
}

// FaceNormals returns the unit normal of every triangle.
func (m *Mesh) FaceNormals() []Vec3f {
	normals := make([]Vec3f, m.TriangleCount())
	for i := range normals {
		t := m.Triangle(i)
		normals[i] = t[1].Sub(t[0]).Cross(t[2].Sub(t[0])).Norm()
	}
	return normals
}

// Validate checks that Indices form whole triangles of valid vertices.
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices", ErrMalformed, len(m.Indices))
	}
	for i, index := range m.Indices {
		if int(index) >= len(m.Vertices) {
			return fmt.Errorf("%w: index %d is %d of %d vertices", ErrMalformed, i, index, len(m.Vertices))
		}
	}
	return nil
}
