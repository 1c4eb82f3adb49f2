package gamemath

import "github.com/go-gl/mathgl/mgl64"

// World axes. +Z is forward, +Y is up, +X is right.
var (
	WorldForward = mgl64.Vec3{0, 0, 1}
	WorldUp      = mgl64.Vec3{0, 1, 0}
	WorldRight   = mgl64.Vec3{1, 0, 0}
)

// LookAtAxes selects which rotations a look-at may change.
//
// AllowVertical permits rotation around the vertical axis (yaw) and
// AllowHorizontal permits rotation around the horizontal axis (pitch).
// InvertForward points the forward axis away from the reference instead of at it.
type LookAtAxes struct {
	AllowVertical   bool
	AllowHorizontal bool
	InvertForward   bool
}

// FreeLookAt allows every rotation.
var FreeLookAt = LookAtAxes{AllowVertical: true, AllowHorizontal: true}

// ConstrainDirection returns the direction from subject to reference with the
// disallowed rotations removed. Locking pitch flattens the direction onto the
// horizontal plane. Locking yaw projects it onto the plane perpendicular to the
// subject's current right axis.
func ConstrainDirection(subjectPos mgl64.Vec3, subjectRot mgl64.Quat, referencePos mgl64.Vec3, axes LookAtAxes) mgl64.Vec3 {
	direction := referencePos.Sub(subjectPos)

	if !axes.AllowHorizontal {
		direction[1] = 0
	}

	if !axes.AllowVertical {
		direction = ProjectOnPlane(direction, Right(subjectRot))
	}

	return direction
}

// ComputeLookAt returns the rotation that points the subject's forward axis at
// the reference point under the given constraints. When the constrained
// direction is (nearly) zero it returns the current rotation and false. A
// direction along the world up axis keeps the subject's current right axis.
func ComputeLookAt(subjectPos mgl64.Vec3, subjectRot mgl64.Quat, referencePos mgl64.Vec3, axes LookAtAxes) (mgl64.Quat, bool) {
	direction := ConstrainDirection(subjectPos, subjectRot, referencePos, axes)
	if IsNearZero(direction) {
		return subjectRot, false
	}

	if axes.InvertForward {
		direction = direction.Mul(-1)
	}

	return LookRotationFallback(direction, WorldUp, Right(subjectRot)), true
}
