package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// zeroEpsilon is the length below which a vector counts as zero.
const zeroEpsilon = 1e-5

// IsNearZero reports whether v is shorter than zeroEpsilon.
func IsNearZero(v mgl64.Vec3) bool {
	return v.LenSqr() < zeroEpsilon*zeroEpsilon
}

// ProjectOnPlane removes from v its component along the plane normal.
// A zero normal leaves v unchanged.
func ProjectOnPlane(v, normal mgl64.Vec3) mgl64.Vec3 {
	sqr := normal.LenSqr()
	if sqr < math.SmallestNonzeroFloat64 {
		return v
	}
	return v.Sub(normal.Mul(v.Dot(normal) / sqr))
}

// LookRotation returns the rotation whose forward (+Z) axis points along
// forward and whose up axis is as close to up as possible. When forward is
// parallel to up the world right axis is kept as the right axis.
func LookRotation(forward, up mgl64.Vec3) mgl64.Quat {
	return LookRotationFallback(forward, up, WorldRight)
}

// LookRotationFallback is LookRotation with the right axis to keep when forward
// is parallel to up. Passing the current right axis preserves the heading.
func LookRotationFallback(forward, up, fallbackRight mgl64.Vec3) mgl64.Quat {
	if IsNearZero(forward) {
		return mgl64.QuatIdent()
	}
	f := forward.Normalize()

	right := up.Cross(f)
	if IsNearZero(right) {
		right = perpendicularRight(f, fallbackRight)
	} else {
		right = right.Normalize()
	}
	u := f.Cross(right)

	basis := mgl64.Mat3FromCols(right, u, f)
	return mgl64.Mat4ToQuat(basis.Mat4()).Normalize()
}

// perpendicularRight returns the first candidate that is not parallel to the
// unit vector f, made perpendicular to it.
func perpendicularRight(f mgl64.Vec3, candidates ...mgl64.Vec3) mgl64.Vec3 {
	for _, c := range append(candidates, WorldRight, WorldForward) {
		if r := ProjectOnPlane(c, f); !IsNearZero(r) {
			return r.Normalize()
		}
	}
	return WorldRight
}

// Forward returns the rotated +Z axis.
func Forward(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(WorldForward)
}

// Right returns the rotated +X axis.
func Right(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(WorldRight)
}

// Up returns the rotated +Y axis.
func Up(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(WorldUp)
}

// YawRotation returns a rotation of degrees around the world up axis.
func YawRotation(degrees float64) mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(degrees), WorldUp)
}
