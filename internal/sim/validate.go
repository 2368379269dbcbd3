package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/playmatatu/ballflight/internal/flight"
)

var (
	// ErrInvalidParameters wraps every validation failure.
	ErrInvalidParameters = errors.New("invalid parameters")
	// ErrNonFinite is returned when a run diverges, which only happens with
	// overridden physics constants far from the defaults.
	ErrNonFinite = errors.New("simulation produced non-finite values")
)

func invalid(field, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidParameters, field, reason)
}

func finite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid(field, "must be a finite number")
	}
	return nil
}

// Physical limits accepted by the API. Well above anything a person can
// throw or hit, well below where the fixed-step drag term stops being stable.
const (
	MaxExitVelocity  = 250.0  // km/h
	MinLaunchAngle   = -45.0  // degrees
	MaxLaunchAngle   = 80.0   // degrees
	MaxWindSpeed     = 50.0   // m/s
	MaxPitchVelocity = 200.0  // km/h
	MaxSpinRate      = 5000.0 // rpm
	MaxAimAngle      = 45.0   // |h_angle|, |v_angle| in degrees
	MaxReleaseHeight = 3.0    // m
	MaxReleaseSide   = 300.0  // |cm|
	MaxExtension     = 300.0  // cm
	MaxTargetOffset  = 5.0    // |m| for target x and y
)

// ValidateBatting rejects input the engine would accept but the API should
// not: non-finite numbers and values outside physical limits.
func ValidateBatting(p flight.BattingParameters) error {
	fields := []struct {
		name string
		v    float64
	}{
		{"exit_velocity", p.ExitVelocity},
		{"launch_angle", p.LaunchAngle},
		{"spray_angle", p.SprayAngle},
		{"wind_speed", p.WindSpeed},
		{"wind_direction", p.WindDirection},
	}
	for _, f := range fields {
		if err := finite(f.name, f.v); err != nil {
			return err
		}
	}
	switch {
	case p.ExitVelocity < 0 || p.ExitVelocity > MaxExitVelocity:
		return invalid("exit_velocity", fmt.Sprintf("must be within 0..%g", MaxExitVelocity))
	case p.LaunchAngle < MinLaunchAngle || p.LaunchAngle > MaxLaunchAngle:
		return invalid("launch_angle", fmt.Sprintf("must be within %g..%g", MinLaunchAngle, MaxLaunchAngle))
	case p.WindSpeed < 0 || p.WindSpeed > MaxWindSpeed:
		return invalid("wind_speed", fmt.Sprintf("must be within 0..%g", MaxWindSpeed))
	}
	return nil
}

// ValidatePitching checks ranges for a pitch.
func ValidatePitching(p flight.PitchingParameters) error {
	fields := []struct {
		name string
		v    float64
	}{
		{"velocity", p.Velocity},
		{"spin_rate", p.SpinRate},
		{"spin_direction", p.SpinDirection},
		{"spin_efficiency", p.SpinEfficiency},
		{"h_angle", p.HAngle},
		{"v_angle", p.VAngle},
		{"release_height", p.ReleaseHeight},
		{"release_side", p.ReleaseSide},
		{"extension", p.Extension},
		{"target_x", p.TargetX},
		{"target_y", p.TargetY},
		{"gyro_degree", p.GyroDegree},
	}
	for _, f := range fields {
		if err := finite(f.name, f.v); err != nil {
			return err
		}
	}
	switch {
	case p.Velocity < 0 || p.Velocity > MaxPitchVelocity:
		return invalid("velocity", fmt.Sprintf("must be within 0..%g", MaxPitchVelocity))
	case p.SpinRate < 0 || p.SpinRate > MaxSpinRate:
		return invalid("spin_rate", fmt.Sprintf("must be within 0..%g", MaxSpinRate))
	case math.Abs(p.HAngle) > MaxAimAngle || math.Abs(p.VAngle) > MaxAimAngle:
		return invalid("h_angle/v_angle", fmt.Sprintf("must be within ±%g", MaxAimAngle))
	case p.ReleaseHeight < 0 || p.ReleaseHeight > MaxReleaseHeight:
		return invalid("release_height", fmt.Sprintf("must be within 0..%g", MaxReleaseHeight))
	case math.Abs(p.ReleaseSide) > MaxReleaseSide:
		return invalid("release_side", fmt.Sprintf("must be within ±%g", MaxReleaseSide))
	case p.Extension < 0 || p.Extension > MaxExtension:
		return invalid("extension", fmt.Sprintf("must be within 0..%g", MaxExtension))
	case math.Abs(p.TargetX) > MaxTargetOffset || math.Abs(p.TargetY) > MaxTargetOffset:
		return invalid("target_x/target_y", fmt.Sprintf("must be within ±%g", MaxTargetOffset))
	case p.SpinEfficiency < 0 || p.SpinEfficiency > 100:
		return invalid("spin_efficiency", "must be within 0..100")
	case p.GyroDegree < 0 || p.GyroDegree > 90:
		return invalid("gyro_degree", "must be within 0..90")
	}
	return nil
}

func validateTarget(x, y float64) error {
	if err := finite("target_x", x); err != nil {
		return err
	}
	if err := finite("target_y", y); err != nil {
		return err
	}
	if math.Abs(x) > MaxTargetOffset || math.Abs(y) > MaxTargetOffset {
		return invalid("target_x/target_y", fmt.Sprintf("must be within ±%g", MaxTargetOffset))
	}
	return nil
}

// finiteResult reports whether every number in r can be encoded as JSON.
func finiteResult(r flight.TrajectoryResult) bool {
	ok := func(vs ...float64) bool {
		for _, v := range vs {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
		return true
	}
	vec := func(v *flight.Vec3) bool { return v == nil || ok(v.X, v.Y, v.Z) }

	if !ok(r.Distance, r.MaxHeight, r.HangTime, r.Elapsed, r.PlateTime) {
		return false
	}
	if !vec(r.FinalPosition) || !vec(r.Landing) || !vec(r.PlateCrossing) {
		return false
	}
	if r.PlateBreak != nil && !ok(r.PlateBreak.Horizontal, r.PlateBreak.Vertical) {
		return false
	}
	for _, s := range r.Points {
		if !ok(s.Position.X, s.Position.Y, s.Position.Z) {
			return false
		}
		if s.Break != nil && !ok(s.Break.Horizontal, s.Break.Vertical) {
			return false
		}
	}
	return true
}

func finiteSolution(a flight.AngleSolution) bool {
	for _, v := range []float64{a.HAngle, a.VAngle, a.ErrorX, a.ErrorY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
