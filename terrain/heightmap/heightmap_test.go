// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package heightmap

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/SoftbearStudios/terrainmesh/terrain"
	"github.com/SoftbearStudios/terrainmesh/terrain/noise"
)

func TestBuffer_Write(t *testing.T) {
	const n = 1024
	var buffer Buffer

	_, _ = buffer.Write(make([]byte, n))

	if buf := buffer.Buffer(); len(buf) != n/16 {
		t.Error("Buffer.Write(make([]byte, 1024) expected", n/16, "got", len(buf))
		t.Error(buf)
	}
}

func TestBuffer_Read(t *testing.T) {
	const n = 1024
	var buffer Buffer

	input := make([]byte, n)
	for i := range input {
		input[i] = roundByte(byte(rand.Intn(256)))
	}
	// Long runs
	for i := 100; i < 300; i++ {
		input[i] = 0x70
	}

	_, _ = buffer.Write(input)
	encoded := append([]byte(nil), buffer.Buffer()...)

	for pass := 0; pass < 2; pass++ {
		buffer.Reset(encoded)
		output := make([]byte, n*2)
		r, _ := buffer.Read(output)
		output = output[:r]

		if !bytes.Equal(input, output) {
			t.Error("Buffer.Read pass", pass, "expected", len(input), "got", len(output), "\ninput:", input, "\noutput:", output)
		}
	}
}

func TestSample(t *testing.T) {
	source := noise.New(56)
	h, err := Sample(source, 8, 5)
	if err != nil {
		t.Fatal(err)
	}

	if h.Width() != 8 || h.Length() != 5 {
		t.Fatal("expected 8x5 got", h.Width(), h.Length())
	}

	for x := int32(0); x <= 8; x++ {
		for y := int32(0); y <= 5; y++ {
			if want := float64(terrain.ClampToByte(source.ValueFor(x, y))); h.ValueFor(x, y) != want {
				t.Errorf("ValueFor(%d, %d) expected %f got %f", x, y, want, h.ValueFor(x, y))
			}
		}
	}

	for _, p := range [][2]int32{{-1, 0}, {0, -1}, {9, 0}, {0, 6}} {
		if v := h.ValueFor(p[0], p[1]); v != 0 {
			t.Errorf("ValueFor(%d, %d) outside expected 0 got %f", p[0], p[1], v)
		}
	}

	if _, err := Sample(source, 0, 5); !errors.Is(err, ErrEmpty) {
		t.Error("expected ErrEmpty got", err)
	}
}

func TestEncodeDecode(t *testing.T) {
	h, err := Sample(noise.New(7), 32, 16)
	if err != nil {
		t.Fatal(err)
	}

	data := h.Encode()
	if data.Length != 33*17 || data.Stride != 33 {
		t.Fatal("unexpected data dimensions", data.Stride, data.Length)
	}

	decoded, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}

	for x := int32(0); x <= 32; x++ {
		for y := int32(0); y <= 16; y++ {
			want := float64(roundByte(byte(h.ValueFor(x, y))))
			if got := decoded.ValueFor(x, y); got != want {
				t.Errorf("decoded ValueFor(%d, %d) expected %f got %f", x, y, want, got)
			}
		}
	}

	// Decoding doesn't consume data.
	if _, err := Decode(data); err != nil {
		t.Error("second decode:", err)
	}

	corrupt := *data
	corrupt.Length++
	if _, err := Decode(&corrupt); !errors.Is(err, ErrCorrupt) {
		t.Error("expected ErrCorrupt got", err)
	}

	truncated := *data
	truncated.Data = data.Data[:len(data.Data)/2]
	if _, err := Decode(&truncated); !errors.Is(err, ErrCorrupt) {
		t.Error("expected ErrCorrupt for truncated data got", err)
	}
}

func TestFromImage(t *testing.T) {
	img := image.NewGray(image.Rect(10, 10, 13, 12))
	img.SetGray(10, 10, color.Gray{Y: 1})
	img.SetGray(12, 11, color.Gray{Y: 200})

	h, err := FromImage(img)
	if err != nil {
		t.Fatal(err)
	}

	if h.Width() != 2 || h.Length() != 1 {
		t.Fatal("expected 2x1 got", h.Width(), h.Length())
	}
	if h.ValueFor(0, 0) != 1 || h.ValueFor(2, 1) != 200 || h.ValueFor(1, 0) != 0 {
		t.Error("unexpected heights", h.ValueFor(0, 0), h.ValueFor(2, 1), h.ValueFor(1, 0))
	}

	if _, err := FromImage(image.NewGray(image.Rect(0, 0, 1, 5))); !errors.Is(err, ErrEmpty) {
		t.Error("expected ErrEmpty got", err)
	}
}
