// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package mesh

import (
	"github.com/SoftbearStudios/terrainmesh/terrain"
	"github.com/dgravesa/go-parallel/parallel"
)

// BuildParallel is Build with columns spread over goroutines. Each cell
// writes at the same offset Build uses, so the output is identical.
// source must be safe for concurrent use.
func BuildParallel(width, length int, heightScale float64, source terrain.Source) (*Mesh, error) {
	if err := validate(width, length, heightScale, source); err != nil {
		return nil, err
	}

	m := allocate(width, length)
	parallel.For(width, func(x, _ int) {
		m.writeColumn(x, length, heightScale, source)
	})

	return m, nil
}
