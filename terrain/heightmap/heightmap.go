// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package heightmap

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/SoftbearStudios/terrainmesh/terrain"
)

var (
	ErrEmpty   = errors.New("heightmap: empty")
	ErrCorrupt = errors.New("heightmap: corrupt data")
)

// Heightmap is a Source backed by sampled heights of (width+1) x (length+1)
// lattice points, enough for a width x length mesh.
// Heights outside the sampled area are 0.
type Heightmap struct {
	stride  int
	rows    int
	heights []byte
}

var _ terrain.Source = (*Heightmap)(nil)

// Data describes a heightmap in a compressed format.
type Data struct {
	Data   []byte `json:"data"`   // Data is a compressed heightmap.
	Stride int    `json:"stride"` // Stride is width of Data.
	Length int    `json:"length"` // Length is uncompressed length of Data for faster reading.
}

// Sample evaluates source on every lattice point of a width x length grid.
func Sample(source terrain.Source, width, length int) (*Heightmap, error) {
	if width <= 0 || length <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmpty, width, length)
	}

	h := &Heightmap{
		stride:  width + 1,
		rows:    length + 1,
		heights: make([]byte, (width+1)*(length+1)),
	}

	for j := 0; j < h.rows; j++ {
		for i := 0; i < h.stride; i++ {
			h.heights[i+j*h.stride] = terrain.ClampToByte(source.ValueFor(int32(i), int32(j)))
		}
	}

	return h, nil
}

// FromImage loads heights from the luminance of img. Pixel (i, j) relative
// to the image bounds is lattice point (i, j).
func FromImage(img image.Image) (*Heightmap, error) {
	bounds := img.Bounds()
	if bounds.Dx() < 2 || bounds.Dy() < 2 {
		return nil, fmt.Errorf("%w: image %v", ErrEmpty, bounds)
	}

	h := &Heightmap{
		stride:  bounds.Dx(),
		rows:    bounds.Dy(),
		heights: make([]byte, bounds.Dx()*bounds.Dy()),
	}

	for j := 0; j < h.rows; j++ {
		for i := 0; i < h.stride; i++ {
			gray := color.GrayModel.Convert(img.At(bounds.Min.X+i, bounds.Min.Y+j)).(color.Gray)
			h.heights[i+j*h.stride] = gray.Y
		}
	}

	return h, nil
}

// Decode decodes data into a Heightmap.
func Decode(data *Data) (*Heightmap, error) {
	if data.Stride < 2 || data.Length < 2*data.Stride || data.Length%data.Stride != 0 {
		return nil, fmt.Errorf("%w: stride %d length %d", ErrCorrupt, data.Stride, data.Length)
	}

	var buffer Buffer
	buffer.Reset(data.Data)

	heights := make([]byte, data.Length)
	n, _ := buffer.Read(heights)
	if n != data.Length {
		return nil, fmt.Errorf("%w: expected %d heights got %d", ErrCorrupt, data.Length, n)
	}

	return &Heightmap{
		stride:  data.Stride,
		rows:    data.Length / data.Stride,
		heights: heights,
	}, nil
}

// Encode compresses the heightmap to 4 bits per height.
func (h *Heightmap) Encode() *Data {
	var buffer Buffer
	buffer.Grow(len(h.heights))
	_, _ = buffer.Write(h.heights)

	return &Data{
		Data:   buffer.Buffer(),
		Stride: h.stride,
		Length: len(h.heights),
	}
}

// Width returns the number of cells along x.
func (h *Heightmap) Width() int {
	return h.stride - 1
}

// Length returns the number of cells along y.
func (h *Heightmap) Length() int {
	return h.rows - 1
}

// ValueFor implements terrain.Source.ValueFor.
func (h *Heightmap) ValueFor(x, y int32) float64 {
	if x < 0 || y < 0 || int(x) >= h.stride || int(y) >= h.rows {
		return 0
	}
	return float64(h.heights[int(x)+int(y)*h.stride])
}
