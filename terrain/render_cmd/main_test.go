// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"image"
	"image/color"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/SoftbearStudios/terrainmesh/generator"
	"github.com/SoftbearStudios/terrainmesh/mesh"
	"github.com/SoftbearStudios/terrainmesh/server"
)

type meshFile struct {
	Vertices  []mesh.Vec3f   `json:"vertices"`
	Indices   []uint32       `json:"indices"`
	Primitive mesh.Primitive `json:"primitive"`
}

func readMesh(t *testing.T, filename string) meshFile {
	buf, err := ioutil.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}

	var m meshFile
	if err := server.JSON().Unmarshal(buf, &m); err != nil {
		t.Fatal(err)
	}
	return m
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	seed := int64(56)

	c := generator.Default()
	c.Width, c.Length, c.Seed = 6, 4, &seed

	for _, parallel := range []bool{false, true} {
		o := options{
			config:   c,
			parallel: parallel,
			out:      filepath.Join(dir, "out.png"),
			mesh:     filepath.Join(dir, "mesh.json"),
		}
		if err := run(o); err != nil {
			t.Fatal(err)
		}

		if _, err := os.Stat(o.out); err != nil {
			t.Error("preview not written:", err)
		}

		m := readMesh(t, o.mesh)
		if len(m.Vertices) != 6*4*4 || len(m.Indices) != 6*4*6 || m.Primitive != mesh.TriangleList {
			t.Errorf("unexpected mesh file: %d vertices %d indices %q", len(m.Vertices), len(m.Indices), m.Primitive)
		}
	}

	c.Width = 0
	if err := run(options{config: c}); err == nil {
		t.Error("expected invalid width error")
	}
}

func TestRun_Heightmap(t *testing.T) {
	dir := t.TempDir()

	img := image.NewGray(image.Rect(0, 0, 3, 3))
	img.SetGray(1, 1, color.Gray{Y: 100})
	input := filepath.Join(dir, "heights.png")
	if err := writePNG(input, img); err != nil {
		t.Fatal(err)
	}

	c := generator.Default()
	c.HeightScale = 10
	o := options{
		config:    c,
		heightmap: input,
		mesh:      filepath.Join(dir, "mesh.json"),
	}
	if err := run(o); err != nil {
		t.Fatal(err)
	}

	m := readMesh(t, o.mesh)
	if len(m.Vertices) != 2*2*4 {
		t.Fatal("expected 16 vertices got", len(m.Vertices))
	}
	// Cell (0, 0) top right corner is lattice point (1, 1).
	if m.Vertices[2].Y != 10 {
		t.Error("expected height 10 got", m.Vertices[2].Y)
	}
}
