// Package editor keeps a pitch's mutually dependent parameters consistent.
// Each user change arrives as one Edit; Reduce returns the new full state.
//
// Angles and target are two views of the same pitch. Editing the target
// re-solves the angles, editing the angles moves the target to wherever the
// ball now crosses, and editing any other physics re-solves the angles so the
// target stays where it was.
package editor

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/playmatatu/ballflight/internal/flight"
)

var (
	ErrUnknownField = errors.New("unknown physics field")
	ErrUnknownEdit  = errors.New("unknown edit kind")
)

// Edit is a single user change. The set of variants is closed.
type Edit interface {
	isEdit()
}

// TargetEdit pins the plate target and derives the angles from it.
type TargetEdit struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// AngleEdit sets release angles; the target follows the new crossing.
type AngleEdit struct {
	HAngle float64 `json:"h_angle"`
	VAngle float64 `json:"v_angle"`
}

// SpinEfficiencyEdit sets the transverse spin share in percent.
type SpinEfficiencyEdit struct {
	Percent float64 `json:"percent"`
}

// GyroDegreeEdit sets the gyro angle in degrees.
type GyroDegreeEdit struct {
	Degrees float64 `json:"degrees"`
}

// PhysicsEdit changes one release parameter that feeds the solver.
type PhysicsEdit struct {
	Field Field   `json:"field"`
	Value float64 `json:"value"`
}

func (TargetEdit) isEdit()         {}
func (AngleEdit) isEdit()          {}
func (SpinEfficiencyEdit) isEdit() {}
func (GyroDegreeEdit) isEdit()     {}
func (PhysicsEdit) isEdit()        {}

// Field names a release parameter editable through PhysicsEdit.
type Field string

const (
	FieldVelocity      Field = "velocity"
	FieldSpinRate      Field = "spin_rate"
	FieldSpinDirection Field = "spin_direction"
	FieldReleaseHeight Field = "release_height"
	FieldReleaseSide   Field = "release_side"
	FieldExtension     Field = "extension"
)

// Reduce applies edit to prev and returns the new consistent parameters.
// prev is never modified.
func Reduce(e *flight.Engine, prev flight.PitchingParameters, edit Edit) (flight.PitchingParameters, error) {
	next := prev

	switch ed := edit.(type) {
	case TargetEdit:
		next.TargetX, next.TargetY = ed.X, ed.Y
		return resolve(e, next), nil

	case AngleEdit:
		next.HAngle, next.VAngle = ed.HAngle, ed.VAngle
		res := e.SimulatePitch(next)
		at := res.PlateLocation()
		next.TargetX, next.TargetY = at.X, at.Y
		return next, nil

	case SpinEfficiencyEdit:
		next.SpinEfficiency = clamp(ed.Percent, 0, 100)
		next.GyroDegree = flight.GyroFromSpinEfficiency(next.SpinEfficiency)
		return resolve(e, next), nil

	case GyroDegreeEdit:
		next.GyroDegree = clamp(ed.Degrees, 0, 90)
		next.SpinEfficiency = flight.SpinEfficiencyFromGyro(next.GyroDegree)
		return resolve(e, next), nil

	case PhysicsEdit:
		if err := setField(&next, ed.Field, ed.Value); err != nil {
			return prev, err
		}
		return resolve(e, next), nil

	case nil:
		return prev, fmt.Errorf("%w: nil edit", ErrUnknownEdit)
	}
	return prev, fmt.Errorf("%w: %T", ErrUnknownEdit, edit)
}

// resolve keeps the target and re-derives the angles for it.
func resolve(e *flight.Engine, p flight.PitchingParameters) flight.PitchingParameters {
	sol := e.SolvePitchAngles(p, p.TargetX, p.TargetY)
	p.HAngle, p.VAngle = sol.HAngle, sol.VAngle
	return p
}

func setField(p *flight.PitchingParameters, f Field, v float64) error {
	switch Field(strings.ToLower(string(f))) {
	case FieldVelocity:
		p.Velocity = v
	case FieldSpinRate:
		p.SpinRate = v
	case FieldSpinDirection:
		p.SpinDirection = v
	case FieldReleaseHeight:
		p.ReleaseHeight = v
	case FieldReleaseSide:
		p.ReleaseSide = v
	case FieldExtension:
		p.Extension = v
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
