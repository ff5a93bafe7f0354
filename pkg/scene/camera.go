package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// maxPitch keeps orbit cameras away from the poles where the up vector
// becomes parallel to the view direction
const maxPitch = 89.0

// LookAt builds a camera at origin whose Z axis points at target. X is
// worldUp × Z and Y is Z × X, which gives an orthonormal basis as long as
// worldUp is not parallel to the view direction.
func LookAt(origin, target, worldUp core.Vec3) core.CoordinateSpace {
	z := target.Subtract(origin).Normalize()
	x := worldUp.Cross(z).Normalize()
	y := z.Cross(x).Normalize()
	return core.CoordinateSpace{
		Origin: origin,
		XAxis:  x,
		YAxis:  y,
		ZAxis:  z,
	}
}

// Orbit places a camera distance away from target, rotated yaw degrees
// around the world Y axis and pitch degrees above the horizon, looking at
// target. Yaw 0, pitch 0 puts the camera on the -Z side of the target and
// positive yaw swings it towards +X.
func Orbit(target core.Vec3, distance, yawDeg, pitchDeg float64) core.CoordinateSpace {
	pitchDeg = mgl64.Clamp(pitchDeg, -maxPitch, maxPitch)

	rotation := mgl64.Rotate3DY(mgl64.DegToRad(-yawDeg)).
		Mul3(mgl64.Rotate3DX(mgl64.DegToRad(pitchDeg)))
	offset := rotation.Mul3x1(mgl64.Vec3{0, 0, -distance})

	origin := target.Add(core.NewVec3(offset.X(), offset.Y(), offset.Z()))
	return LookAt(origin, target, core.NewVec3(0, 1, 0))
}

// OrbitAround swings an existing camera around target, keeping its distance
// and adding yaw and pitch to its current angles.
func OrbitAround(camera core.CoordinateSpace, target core.Vec3, yawDeg, pitchDeg float64) core.CoordinateSpace {
	toCamera := camera.Origin.Subtract(target)
	v := mgl64.Vec3{toCamera.X, toCamera.Y, toCamera.Z}

	horizontal := mgl64.Vec2{v.X(), v.Z()}.Len()
	currentPitch := mgl64.RadToDeg(math.Atan2(v.Y(), horizontal))
	currentYaw := mgl64.RadToDeg(math.Atan2(v.X(), -v.Z()))

	return Orbit(target, v.Len(), currentYaw+yawDeg, currentPitch+pitchDeg)
}
