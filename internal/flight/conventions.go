package flight

import "math"

// KmhToMs converts a speed in km/h to m/s.
func KmhToMs(kmh float64) float64 { return kmh / 3.6 }

// RpmToRadPerSec converts revolutions per minute to rad/s.
func RpmToRadPerSec(rpm float64) float64 { return rpm * 2 * math.Pi / 60 }

// LaunchVelocity decomposes a batted ball's exit speed. Spray is negated so
// that a positive spray angle deflects toward -X (the left-field side);
// 0° spray is straightaway center (+Z).
func LaunchVelocity(exitKmh, launchDeg, sprayDeg float64) Vec3 {
	v := KmhToMs(exitKmh)
	theta := degToRad(launchDeg)
	phi := degToRad(-sprayDeg)
	return Vec3{
		X: v * math.Cos(theta) * math.Sin(phi),
		Y: v * math.Sin(theta),
		Z: v * math.Cos(theta) * math.Cos(phi),
	}
}

// WindVelocity returns the air's ground velocity. Direction 0° blows out to
// center field (+Z), 90° blows toward -X.
func WindVelocity(speed, directionDeg float64) Vec3 {
	d := degToRad(directionDeg)
	return Vec3{X: -speed * math.Sin(d), Z: speed * math.Cos(d)}
}

// MagnusDirection maps a spin-axis clock angle onto the unit direction of the
// Magnus force in the X/Y plane: 0° (12 o'clock) lifts the ball straight up,
// 90° pushes toward +X, 180° drives it down, 270° toward -X. The direction
// does not follow the instantaneous velocity.
func MagnusDirection(spinDirectionDeg float64) Vec3 {
	d := degToRad(spinDirectionDeg)
	return Vec3{X: math.Sin(d), Y: math.Cos(d)}
}

// ReleasePoint places the ball at release: extension (cm) toward the plate
// from the rubber, release side (cm) along +X, release height in metres.
func ReleasePoint(moundDistance, releaseHeight, releaseSideCm, extensionCm float64) Vec3 {
	return Vec3{
		X: releaseSideCm / 100,
		Y: releaseHeight,
		Z: moundDistance - extensionCm/100,
	}
}

// PitchVelocity decomposes release speed. The principal direction is -Z;
// a positive hAngle steers toward +X and a positive vAngle upward.
func PitchVelocity(kmh, hAngleDeg, vAngleDeg float64) Vec3 {
	v := KmhToMs(kmh)
	h := degToRad(hAngleDeg)
	va := degToRad(vAngleDeg)
	return Vec3{
		X: v * math.Cos(va) * math.Sin(h),
		Y: v * math.Sin(va),
		Z: -v * math.Cos(va) * math.Cos(h),
	}
}

// SpinEfficiencyFromGyro returns the transverse share (percent) for a gyro
// angle in degrees: cos(gyro)·100.
func SpinEfficiencyFromGyro(gyroDeg float64) float64 {
	return math.Cos(degToRad(gyroDeg)) * 100
}

// GyroFromSpinEfficiency is the inverse of SpinEfficiencyFromGyro; the input
// is clamped to 0..100.
func GyroFromSpinEfficiency(percent float64) float64 {
	f := math.Max(0, math.Min(100, percent)) / 100
	return radToDeg(math.Acos(f))
}
