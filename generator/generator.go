// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package generator

import (
	"errors"
	"fmt"
	"io"

	"github.com/SoftbearStudios/terrainmesh/mesh"
	"github.com/SoftbearStudios/terrainmesh/terrain"
	"github.com/SoftbearStudios/terrainmesh/terrain/noise"
	"github.com/SoftbearStudios/terrainmesh/terrain/perlin"
	"github.com/SoftbearStudios/terrainmesh/terrain/simplex"
)

// Kind selects the height source.
type Kind string

const (
	KindNoise   Kind = "noise"
	KindPerlin  Kind = "perlin"
	KindSimplex Kind = "simplex"
	KindFlat    Kind = "flat"
)

var (
	ErrUnknownKind        = errors.New("generator: unknown source kind")
	ErrOctavesUnsupported = errors.New("generator: octaves only apply to noise")
)

// Config is everything needed to generate one terrain mesh.
type Config struct {
	Width       int     `json:"width"`
	Length      int     `json:"length"`
	HeightScale float64 `json:"heightScale"`
	// Seed is drawn from an entropy source if nil.
	Seed *int64 `json:"seed,omitempty"`
	// Octaves only applies to KindNoise and must be zero for other kinds.
	// Zero means noise.DefaultParams.Octaves.
	Octaves int  `json:"octaves,omitempty"`
	Source  Kind `json:"source,omitempty"`
	// Shared deduplicates vertices between cells (see mesh.BuildShared).
	Shared bool `json:"shared,omitempty"`
}

// Default returns a 64x64 noise terrain with a random seed.
func Default() Config {
	return Config{
		Width:       64,
		Length:      64,
		HeightScale: 10,
		Source:      KindNoise,
	}
}

// Validate reports whether the grid dimensions and source are usable.
func (c Config) Validate() error {
	switch c.Source {
	case "", KindNoise, KindPerlin, KindSimplex, KindFlat:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, c.Source)
	}
	if c.Octaves < 0 || c.Octaves > noise.MaxOctaves {
		return fmt.Errorf("%w: %d", noise.ErrInvalidOctaves, c.Octaves)
	}
	if c.Octaves != 0 && c.Source != "" && c.Source != KindNoise {
		return fmt.Errorf("%w: %q source has no octaves", ErrOctavesUnsupported, c.Source)
	}
	return mesh.CheckDimensions(c.Width, c.Length, c.HeightScale)
}

// NewSource resolves the seed, reading it from entropy if c.Seed is nil,
// and creates the height source.
func NewSource(c Config, entropy io.Reader) (source terrain.Source, seed int64, err error) {
	if c.Seed != nil {
		seed = *c.Seed
	} else if seed, err = noise.ReadSeed(entropy); err != nil {
		return nil, 0, err
	}

	switch c.Source {
	case "", KindNoise:
		params := noise.DefaultParams
		if c.Octaves != 0 {
			params.Octaves = c.Octaves
		}
		var g *noise.Generator
		if g, err = noise.NewWithParams(seed, params); err != nil {
			return nil, 0, err
		}
		source = g
	case KindPerlin:
		source = perlin.New(seed)
	case KindSimplex:
		source = simplex.New(seed)
	case KindFlat:
		source = terrain.Flat(terrain.SandLevel)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownKind, c.Source)
	}

	return source, seed, nil
}

// Result is a generated mesh and what generated it.
type Result struct {
	Mesh   *mesh.Mesh
	Source terrain.Source
	Seed   int64
}

// Generate validates c, creates its source and builds the mesh.
func Generate(c Config, entropy io.Reader) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	source, seed, err := NewSource(c, entropy)
	if err != nil {
		return nil, err
	}

	build := mesh.Build
	if c.Shared {
		build = mesh.BuildShared
	}

	m, err := build(c.Width, c.Length, c.HeightScale, source)
	if err != nil {
		return nil, err
	}

	return &Result{Mesh: m, Source: source, Seed: seed}, nil
}
