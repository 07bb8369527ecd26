// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"crypto/rand"
	"flag"
	"image"
	"image/png"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/SoftbearStudios/terrainmesh/generator"
	"github.com/SoftbearStudios/terrainmesh/mesh"
	"github.com/SoftbearStudios/terrainmesh/server"
	"github.com/SoftbearStudios/terrainmesh/terrain"
	"github.com/SoftbearStudios/terrainmesh/terrain/heightmap"
)

type options struct {
	config    generator.Config
	parallel  bool
	heightmap string
	out       string
	mesh      string
}

func main() {
	var (
		cpuProfile string
		seed       int64
		source     string
		o          options
	)

	c := generator.Default()
	flag.StringVar(&cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	flag.IntVar(&c.Width, "width", c.Width, "grid cells along x")
	flag.IntVar(&c.Length, "length", c.Length, "grid cells along y")
	flag.Float64Var(&c.HeightScale, "scale", c.HeightScale, "divisor applied to heights")
	flag.Int64Var(&seed, "seed", 0, "noise seed (random if unset)")
	flag.IntVar(&c.Octaves, "octaves", 0, "noise octaves summed, noise source only (0 for default)")
	flag.StringVar(&source, "source", string(generator.KindNoise), "height source: noise, perlin, simplex or flat")
	flag.BoolVar(&c.Shared, "shared", false, "share vertices between cells")
	flag.BoolVar(&o.parallel, "parallel", false, "build cells in parallel")
	flag.StringVar(&o.heightmap, "heightmap", "", "read heights from a grayscale PNG `file` instead of a source")
	flag.StringVar(&o.out, "out", "out.png", "write height colored preview to `file`")
	flag.StringVar(&o.mesh, "mesh", "", "write mesh JSON to `file`")
	flag.Parse()

	c.Source = generator.Kind(source)
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			c.Seed = &seed
		}
	})
	o.config = c

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(o); err != nil {
		log.Fatal(err)
	}
}

func run(o options) error {
	c := o.config

	var (
		source terrain.Source
		err    error
	)
	if o.heightmap != "" {
		h, err := readHeightmap(o.heightmap)
		if err != nil {
			return err
		}
		source = h
		c.Width, c.Length = h.Width(), h.Length()
		log.Printf("loaded %dx%d heightmap from %s", c.Width, c.Length, o.heightmap)
	} else {
		if err = c.Validate(); err != nil {
			return err
		}
		var seed int64
		if source, seed, err = generator.NewSource(c, rand.Reader); err != nil {
			return err
		}
		log.Printf("%s source with seed %d", c.Source, seed)
	}

	start := time.Now()
	var m *mesh.Mesh
	switch {
	case c.Shared:
		m, err = mesh.BuildShared(c.Width, c.Length, c.HeightScale, source)
	case o.parallel:
		m, err = mesh.BuildParallel(c.Width, c.Length, c.HeightScale, source)
	default:
		m, err = mesh.Build(c.Width, c.Length, c.HeightScale, source)
	}
	if err != nil {
		return err
	}
	log.Printf("built %dx%d mesh in %s: %d vertices, %d triangles", c.Width, c.Length, time.Since(start), m.VertexCount(), m.TriangleCount())

	if o.out != "" {
		if err := writePNG(o.out, mesh.HeightTexture(source, c.Width, c.Length).Image); err != nil {
			return err
		}
	}

	if o.mesh != "" {
		if err := writeMesh(o.mesh, m); err != nil {
			return err
		}
	}

	return nil
}

func readHeightmap(filename string) (*heightmap.Heightmap, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		return nil, err
	}
	return heightmap.FromImage(img)
}

func writePNG(filename string, img image.Image) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

func writeMesh(filename string, m *mesh.Mesh) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return server.JSON().NewEncoder(file).Encode(struct {
		Vertices  []mesh.Vec3f   `json:"vertices"`
		Indices   []uint32       `json:"indices"`
		Primitive mesh.Primitive `json:"primitive"`
	}{m.Vertices, m.Indices, m.Primitive()})
}
