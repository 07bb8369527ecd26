// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package perlin

import (
	"github.com/SoftbearStudios/terrainmesh/terrain"
	"github.com/aquilax/go-perlin"
)

const frequency = 0.05

// Source generates a height field using perlin noise.
type Source struct {
	noise *perlin.Perlin
}

var _ terrain.Source = (*Source)(nil)

// New creates a new Source with a seed.
func New(seed int64) *Source {
	return &Source{
		noise: perlin.NewPerlin(2, 2, 3, seed),
	}
}

// ValueFor implements terrain.Source.ValueFor.
func (s *Source) ValueFor(x, y int32) float64 {
	n := s.noise.Noise2D(float64(x)*frequency, float64(y)*frequency)
	return terrain.ClampHeight(n*128 + 128)
}
