// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

const (
	noiseX    = 1619
	noiseY    = 31337
	noiseSeed = 1013

	mask31 = 0x7fffffff
)

// hash maps a lattice point to [-1, 1]. All arithmetic wraps at 32 bits.
func hash(x, y int32, seed int64) float64 {
	n := (noiseX*uint32(x) + noiseY*uint32(y) + noiseSeed*uint32(seed)) & mask31
	n = (n >> 13) ^ n
	n = (n*n*n*60493 + 19990303*n + 1376312589) & mask31
	return 1 - float64(n)/1073741824
}
