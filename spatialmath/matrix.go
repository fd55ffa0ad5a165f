package spatialmath

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// MatCol returns column k of m as an r3 vector. For an orientation matrix the
// columns are the frame's x/y/z axes expressed in world coordinates.
func MatCol(m mgl64.Mat3, k int) r3.Vector {
	c := m.Col(k)
	return r3.Vector{X: c[0], Y: c[1], Z: c[2]}
}

// MatMulVec applies m to v.
func MatMulVec(m mgl64.Mat3, v r3.Vector) r3.Vector {
	return Vec3ToR3(m.Mul3x1(R3ToVec3(v)))
}

// MatTMulVec applies the transpose of m to v, i.e. rotates v from world
// coordinates into the frame m describes.
func MatTMulVec(m mgl64.Mat3, v r3.Vector) r3.Vector {
	return Vec3ToR3(m.Transpose().Mul3x1(R3ToVec3(v)))
}

// R3ToVec3 converts an r3 vector to an mgl64 vector.
func R3ToVec3(v r3.Vector) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// Vec3ToR3 converts an mgl64 vector to an r3 vector.
func Vec3ToR3(v mgl64.Vec3) r3.Vector {
	return r3.Vector{X: v[0], Y: v[1], Z: v[2]}
}
