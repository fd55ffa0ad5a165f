// Package spatialmath defines the quaternion and rotation matrix operations shared by the
// sensor kernels. Quaternions follow the w,x,y,z convention and use gonum's quat.Number;
// orientation matrices are mgl64.Mat3 values whose columns are the frame's world axes.
package spatialmath

import (
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/num/quat"
)

// MinVal is the numeric floor used wherever a denominator could collapse to zero,
// matching the simulator's global minimum magnitude constant.
const MinVal = 1e-15

// QuatIdentity returns the identity (no rotation) quaternion.
func QuatIdentity() quat.Number {
	return quat.Number{Real: 1}
}

// Normalize scales q to unit length. A degenerate zero quaternion normalizes
// to the identity rather than producing NaNs.
func Normalize(q quat.Number) quat.Number {
	n := quat.Abs(q)
	if n < MinVal {
		return QuatIdentity()
	}
	return quat.Scale(1/n, q)
}

// QuatToRotationMatrix converts a unit quaternion to its rotation matrix.
// See: https://www.euclideanspace.com/maths/geometry/rotations/conversions/quaternionToMatrix/
func QuatToRotationMatrix(q quat.Number) mgl64.Mat3 {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	return mgl64.Mat3FromCols(
		mgl64.Vec3{1 - 2*(y*y+z*z), 2 * (x*y + z*w), 2 * (x*z - y*w)},
		mgl64.Vec3{2 * (x*y - z*w), 1 - 2*(x*x+z*z), 2 * (y*z + x*w)},
		mgl64.Vec3{2 * (x*z + y*w), 2 * (y*z - x*w), 1 - 2*(x*x+y*y)},
	)
}
