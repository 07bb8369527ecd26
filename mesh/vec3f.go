// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package mesh

import (
	"github.com/chewxy/math32"
)

// Vec3f is a point in mesh space. X and Z span the horizontal plane and Y is up.
type Vec3f struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

func (vec Vec3f) Mul(factor float32) Vec3f {
	vec.X *= factor
	vec.Y *= factor
	vec.Z *= factor
	return vec
}

func (vec Vec3f) Div(divisor float32) Vec3f {
	return vec.Mul(1.0 / divisor)
}

func (vec Vec3f) Sub(otherVec Vec3f) Vec3f {
	vec.X -= otherVec.X
	vec.Y -= otherVec.Y
	vec.Z -= otherVec.Z
	return vec
}

// Cross follows the right hand rule.
func (vec Vec3f) Cross(otherVec Vec3f) Vec3f {
	return Vec3f{
		X: vec.Y*otherVec.Z - vec.Z*otherVec.Y,
		Y: vec.Z*otherVec.X - vec.X*otherVec.Z,
		Z: vec.X*otherVec.Y - vec.Y*otherVec.X,
	}
}

func (vec Vec3f) Length() float32 {
	return math32.Sqrt(vec.LengthSquared())
}

func (vec Vec3f) LengthSquared() float32 {
	return vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z
}

// Norm returns the unit vector, or the zero vector if vec has no length.
func (vec Vec3f) Norm() Vec3f {
	length := vec.Length()
	if length == 0 {
		return Vec3f{}
	}
	return vec.Div(length)
}

// Array returns the components as [x, y, z], the layout vertex buffers use.
func (vec Vec3f) Array() [3]float32 {
	return [3]float32{vec.X, vec.Y, vec.Z}
}
