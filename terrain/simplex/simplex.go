// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package simplex

import (
	"github.com/SoftbearStudios/terrainmesh/terrain"
	"github.com/ojrac/opensimplex-go"
)

const frequency = 0.05

// Source generates a height field using OpenSimplex noise.
type Source struct {
	noise opensimplex.Noise
}

var _ terrain.Source = (*Source)(nil)

// New creates a new Source with a seed.
func New(seed int64) *Source {
	return &Source{
		noise: opensimplex.New(seed),
	}
}

// ValueFor implements terrain.Source.ValueFor.
func (s *Source) ValueFor(x, y int32) float64 {
	n := s.noise.Eval2(float64(x)*frequency, float64(y)*frequency)
	return terrain.ClampHeight(n*128 + 128)
}
