// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/SoftbearStudios/terrainmesh/terrain"
)

// MaxOctaves bounds Params.Octaves so lattice coordinates stay in int64 range.
const MaxOctaves = 24

var (
	ErrInvalidOctaves     = errors.New("noise: invalid octaves")
	ErrInvalidPersistence = errors.New("noise: invalid persistence")
	ErrInvalidZoom        = errors.New("noise: invalid zoom")
)

// Params controls octave summation.
type Params struct {
	// Octaves is the number of octaves actually summed, starting at a = 0.
	Octaves     int
	Persistence float64
	Zoom        float64
}

// DefaultParams sums a single octave. The generator this noise is modeled on
// declares two octaves but its loop bound only ever evaluates the first, and
// terrain generated from existing seeds depends on that.
var DefaultParams = Params{
	Octaves:     1,
	Persistence: 0.5,
	Zoom:        6,
}

func (p Params) validate() error {
	if p.Octaves < 1 || p.Octaves > MaxOctaves {
		return fmt.Errorf("%w: %d", ErrInvalidOctaves, p.Octaves)
	}
	if !(p.Persistence > 0) || math.IsInf(p.Persistence, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidPersistence, p.Persistence)
	}
	if !(p.Zoom > 0) || math.IsInf(p.Zoom, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidZoom, p.Zoom)
	}
	return nil
}

// Generator generates a height field using hashed value noise.
// It is immutable and safe for concurrent use.
type Generator struct {
	seed   int64
	params Params
}

var _ terrain.Source = (*Generator)(nil)

// New creates a new Generator with a seed and DefaultParams.
func New(seed int64) *Generator {
	return &Generator{seed: seed, params: DefaultParams}
}

// NewWithParams creates a new Generator with a seed and custom octave parameters.
func NewWithParams(seed int64, params Params) (*Generator, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	return &Generator{seed: seed, params: params}, nil
}

// NewRandom creates a new Generator whose seed is read from entropy.
func NewRandom(entropy io.Reader, params Params) (*Generator, error) {
	seed, err := ReadSeed(entropy)
	if err != nil {
		return nil, err
	}
	return NewWithParams(seed, params)
}

// ReadSeed reads a little endian int64 seed from entropy.
func ReadSeed(entropy io.Reader) (int64, error) {
	if entropy == nil {
		return 0, errors.New("noise: nil entropy source")
	}
	var buf [8]byte
	if _, err := io.ReadFull(entropy, buf[:]); err != nil {
		return 0, fmt.Errorf("noise: reading seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(buf[:])), nil
}

// Seed returns the seed the generator was created with.
func (g *Generator) Seed() int64 {
	return g.seed
}

// ValueFor implements terrain.Source.ValueFor. The result is in [0, 255].
func (g *Generator) ValueFor(x, y int32) float64 {
	return terrain.ClampHeight(g.octaves(float64(x), float64(y))*128 + 128)
}

// octaves sums lattice noise over the configured octaves.
func (g *Generator) octaves(x, y float64) float64 {
	var total float64
	for a := 0; a < g.params.Octaves; a++ {
		frequency := math.Pow(2, float64(a))
		amplitude := math.Pow(g.params.Persistence, float64(a))
		total += g.lattice(x*frequency/g.params.Zoom, y*frequency/g.params.Zoom) * amplitude
	}
	return total
}

// lattice blends the hashes of the 4 lattice points around (x, y).
func (g *Generator) lattice(x, y float64) float64 {
	floorX := math.Floor(x)
	floorY := math.Floor(y)
	fracX := x - floorX
	fracY := y - floorY

	ix := int32(int64(floorX))
	iy := int32(int64(floorY))

	s := hash(ix, iy, g.seed)
	t := hash(ix+1, iy, g.seed)
	u := hash(ix, iy+1, g.seed)
	v := hash(ix+1, iy+1, g.seed)

	return Interpolate(Interpolate(s, t, fracX), Interpolate(u, v, fracX), fracY)
}

// Interpolate blends a and b with a cosine ease curve.
// It returns exactly a when t is 0 and exactly b when t is 1.
func Interpolate(a, b, t float64) float64 {
	f := (1 - math.Cos(t*math.Pi)) * 0.5
	return a*(1-f) + b*f
}
