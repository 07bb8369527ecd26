// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

// Height levels on the [0, 255] scale every Source produces.
const (
	MinHeight  = 0
	MaxHeight  = 255
	OceanLevel = 63
	SandLevel  = OceanLevel + 10
	GrassLevel = SandLevel + 50
	RockLevel  = GrassLevel + 40
	SnowLevel  = MaxHeight
)

// Source supplies heights of a height field.
// ValueFor must be side-effect free and return the same value for the same
// coordinates. Implementations in this module are safe for concurrent use.
type Source interface {
	ValueFor(x, y int32) float64
}

// SourceFunc adapts an ordinary function to a Source.
type SourceFunc func(x, y int32) float64

// ValueFor implements Source.ValueFor.
func (f SourceFunc) ValueFor(x, y int32) float64 {
	return f(x, y)
}

// Flat is a Source with the same height everywhere.
type Flat float64

// ValueFor implements Source.ValueFor.
func (f Flat) ValueFor(_, _ int32) float64 {
	return float64(f)
}

// ClampHeight clamps f to [MinHeight, MaxHeight].
func ClampHeight(f float64) float64 {
	if f < MinHeight {
		return MinHeight
	}
	if f > MaxHeight {
		return MaxHeight
	}
	return f
}

// ClampToByte clamps f to a byte, truncating the fraction.
func ClampToByte(f float64) byte {
	if f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return byte(f)
}
