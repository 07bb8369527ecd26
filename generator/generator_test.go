// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package generator

import (
	"bytes"
	"errors"
	"testing"

	"github.com/SoftbearStudios/terrainmesh/mesh"
	"github.com/SoftbearStudios/terrainmesh/terrain/noise"
)

func seed(s int64) *int64 {
	return &s
}

func TestGenerate(t *testing.T) {
	kinds := []Kind{"", KindNoise, KindPerlin, KindSimplex, KindFlat}

	for _, kind := range kinds {
		c := Config{Width: 5, Length: 3, HeightScale: 10, Seed: seed(56), Source: kind}
		result, err := Generate(c, nil)
		if err != nil {
			t.Fatalf("%q: %v", kind, err)
		}

		if result.Seed != 56 {
			t.Errorf("%q: expected seed 56 got %d", kind, result.Seed)
		}
		if len(result.Mesh.Vertices) != 5*3*4 || len(result.Mesh.Indices) != 5*3*6 {
			t.Errorf("%q: unexpected sizes %d %d", kind, len(result.Mesh.Vertices), len(result.Mesh.Indices))
		}
		if err := result.Mesh.Validate(); err != nil {
			t.Errorf("%q: %v", kind, err)
		}
	}
}

func TestGenerate_MatchesNoise(t *testing.T) {
	result, err := Generate(Config{Width: 4, Length: 4, HeightScale: 2, Seed: seed(9)}, nil)
	if err != nil {
		t.Fatal(err)
	}

	want, _ := mesh.Build(4, 4, 2, noise.New(9))
	for i := range want.Vertices {
		if result.Mesh.Vertices[i] != want.Vertices[i] {
			t.Fatalf("vertex %d expected %v got %v", i, want.Vertices[i], result.Mesh.Vertices[i])
		}
	}
}

func TestGenerate_Shared(t *testing.T) {
	result, err := Generate(Config{Width: 4, Length: 2, HeightScale: 1, Seed: seed(1), Shared: true}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Mesh.Vertices) != 5*3 {
		t.Error("expected 15 shared vertices got", len(result.Mesh.Vertices))
	}
}

func TestGenerate_EntropySeed(t *testing.T) {
	entropy := []byte{42, 0, 0, 0, 0, 0, 0, 0}
	c := Config{Width: 2, Length: 2, HeightScale: 1}

	a, err := Generate(c, bytes.NewReader(entropy))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(c, bytes.NewReader(entropy))
	if err != nil {
		t.Fatal(err)
	}

	if a.Seed != 42 || b.Seed != 42 {
		t.Error("expected seed 42 got", a.Seed, b.Seed)
	}
	for i := range a.Mesh.Vertices {
		if a.Mesh.Vertices[i] != b.Mesh.Vertices[i] {
			t.Fatal("same entropy produced different meshes")
		}
	}

	if _, err := Generate(c, bytes.NewReader(nil)); err == nil {
		t.Error("expected error from empty entropy")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		config Config
		err    error
	}{
		{Config{Width: 0, Length: 1, HeightScale: 1}, mesh.ErrInvalidWidth},
		{Config{Width: 1, Length: 0, HeightScale: 1}, mesh.ErrInvalidLength},
		{Config{Width: 1, Length: 1, HeightScale: 0}, mesh.ErrInvalidHeightScale},
		{Config{Width: 1, Length: 1, HeightScale: 1, Source: "voronoi"}, ErrUnknownKind},
		{Config{Width: 1, Length: 1, HeightScale: 1, Octaves: -1}, noise.ErrInvalidOctaves},
		{Config{Width: 1, Length: 1, HeightScale: 1, Octaves: noise.MaxOctaves + 1}, noise.ErrInvalidOctaves},
		{Config{Width: 1, Length: 1, HeightScale: 1, Octaves: 3, Source: KindPerlin}, ErrOctavesUnsupported},
		{Config{Width: 1, Length: 1, HeightScale: 1, Octaves: 3, Source: KindSimplex}, ErrOctavesUnsupported},
		{Config{Width: 1, Length: 1, HeightScale: 1, Octaves: 3, Source: KindFlat}, ErrOctavesUnsupported},
		{Config{Width: 1, Length: 1, HeightScale: 1, Seed: seed(1), Octaves: 3, Source: KindNoise}, nil},
		{Config{Width: 1, Length: 1, HeightScale: 1, Seed: seed(1), Octaves: 3}, nil},
	}

	for _, test := range tests {
		if err := test.config.Validate(); !errors.Is(err, test.err) {
			t.Errorf("%+v expected %v got %v", test.config, test.err, err)
		}
		if _, err := Generate(test.config, nil); !errors.Is(err, test.err) {
			t.Errorf("Generate(%+v) expected %v got %v", test.config, test.err, err)
		}
	}

	if err := Default().Validate(); err != nil {
		t.Error("default config:", err)
	}
}
