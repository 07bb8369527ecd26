// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"fmt"

	"github.com/SoftbearStudios/terrainmesh/generator"
	"github.com/SoftbearStudios/terrainmesh/mesh"
	"github.com/SoftbearStudios/terrainmesh/terrain"
	"github.com/SoftbearStudios/terrainmesh/terrain/heightmap"
	"github.com/nfnt/resize"
)

const maxTextureSize = 4096

type (
	// GenerateMesh requests a mesh. Texture selects a height colored
	// texture instead of a flat color, resized to TextureSize squared
	// pixels if TextureSize is set.
	GenerateMesh struct {
		generator.Config
		Texture     bool `json:"texture,omitempty"`
		TextureSize uint `json:"textureSize,omitempty"`
	}

	// GenerateHeightmap requests the compressed heights a mesh would be built from.
	GenerateHeightmap struct {
		generator.Config
	}

	// InvalidInbound is a placeholder for an unrecognized message type.
	InvalidInbound struct {
		messageType messageType
	}
)

func init() {
	registerInbound(
		GenerateMesh{},
		GenerateHeightmap{},
	)
}

func (s *Server) checkConfig(c generator.Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Width*c.Length > s.maxCells {
		return fmt.Errorf("%dx%d exceeds %d cells", c.Width, c.Length, s.maxCells)
	}
	return nil
}

func (data GenerateMesh) Inbound(s *Server) outbound {
	if err := s.checkConfig(data.Config); err != nil {
		return errorOutbound(err)
	}
	if data.TextureSize > maxTextureSize {
		return &Error{Message: fmt.Sprintf("texture size %d exceeds %d", data.TextureSize, maxTextureSize)}
	}

	result, err := generator.Generate(data.Config, s.entropy)
	if err != nil {
		return errorOutbound(err)
	}

	var material mesh.Material = mesh.FlatColor{Color: terrain.HeightColor(terrain.GrassLevel)}
	if data.Texture {
		textured := mesh.HeightTexture(result.Source, data.Width, data.Length)
		if data.TextureSize > 0 {
			textured.Image = resize.Resize(data.TextureSize, data.TextureSize, textured.Image, resize.Bilinear)
		}
		material = textured
	}

	out, err := newMeshOutbound(result, material)
	if err != nil {
		return errorOutbound(err)
	}
	return out
}

func (data GenerateHeightmap) Inbound(s *Server) outbound {
	if err := s.checkConfig(data.Config); err != nil {
		return errorOutbound(err)
	}

	source, seed, err := generator.NewSource(data.Config, s.entropy)
	if err != nil {
		return errorOutbound(err)
	}

	h, err := heightmap.Sample(source, data.Width, data.Length)
	if err != nil {
		return errorOutbound(err)
	}

	return &Heightmap{Data: *h.Encode(), Seed: seed}
}

func (data InvalidInbound) Inbound(_ *Server) outbound {
	return &Error{Message: fmt.Sprintf("invalid message type %q", data.messageType)}
}
