// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"bytes"
	"image/png"

	"github.com/SoftbearStudios/terrainmesh/generator"
	"github.com/SoftbearStudios/terrainmesh/mesh"
	"github.com/SoftbearStudios/terrainmesh/terrain/heightmap"
)

type (
	// Mesh is a generated mesh ready to be uploaded by a renderer.
	// Vertices are marshaled as [x, y, z] arrays.
	Mesh struct {
		Seed      int64          `json:"seed,string"`
		Vertices  []mesh.Vec3f   `json:"vertices"`
		Indices   []uint32       `json:"indices"`
		Primitive mesh.Primitive `json:"primitive"`
		Material  Material       `json:"material"`
	}

	// Material has exactly one of Color and Texture set.
	Material struct {
		Color   *[3]float32 `json:"color,omitempty"`
		Texture []byte      `json:"texture,omitempty"` // PNG
	}

	// Heightmap is a compressed heightmap.
	Heightmap struct {
		heightmap.Data
		Seed int64 `json:"seed,string"`
	}

	// Error is sent in response to a request that couldn't be served.
	Error struct {
		Message string `json:"message"`
	}
)

func init() {
	registerOutbound(
		&Mesh{},
		&Heightmap{},
		&Error{},
	)
}

func (*Mesh) outbound()      {}
func (*Heightmap) outbound() {}
func (*Error) outbound()     {}

func errorOutbound(err error) *Error {
	return &Error{Message: err.Error()}
}

func newMeshOutbound(result *generator.Result, material mesh.Material) (*Mesh, error) {
	m, err := encodeMaterial(material)
	if err != nil {
		return nil, err
	}

	return &Mesh{
		Seed:      result.Seed,
		Vertices:  result.Mesh.Vertices,
		Indices:   result.Mesh.Indices,
		Primitive: result.Mesh.Primitive(),
		Material:  m,
	}, nil
}

func encodeMaterial(material mesh.Material) (Material, error) {
	switch m := material.(type) {
	case mesh.FlatColor:
		color := [3]float32(m.Color)
		return Material{Color: &color}, nil
	case mesh.Textured:
		var buf bytes.Buffer
		if err := png.Encode(&buf, m.Image); err != nil {
			return Material{}, err
		}
		return Material{Texture: buf.Bytes()}, nil
	default:
		panic("unknown material")
	}
}
