package editor

import (
	"errors"
	"math"
	"testing"

	"github.com/playmatatu/ballflight/internal/flight"
)

func startingPitch() flight.PitchingParameters {
	p := flight.PitchingParameters{
		Velocity:       145,
		SpinRate:       2300,
		SpinDirection:  30,
		SpinEfficiency: 90,
		HAngle:         1.0,
		VAngle:         -2.0,
		ReleaseHeight:  1.8,
		ReleaseSide:    -50,
		Extension:      180,
	}
	p.GyroDegree = flight.GyroFromSpinEfficiency(p.SpinEfficiency)
	at := flight.SimulatePitch(p).PlateLocation()
	p.TargetX, p.TargetY = at.X, at.Y
	return p
}

// landsOnTarget forward-simulates p and checks it reaches its own target.
func landsOnTarget(t *testing.T, p flight.PitchingParameters, tol float64) {
	t.Helper()
	at := flight.SimulatePitch(p).PlateLocation()
	if math.Abs(at.X-p.TargetX) > tol || math.Abs(at.Y-p.TargetY) > tol {
		t.Errorf("pitch crosses at (%.4f, %.4f), target (%.4f, %.4f)", at.X, at.Y, p.TargetX, p.TargetY)
	}
}

func TestReduceTargetSolvesAngles(t *testing.T) {
	e := flight.Default()
	prev := startingPitch()

	next, err := Reduce(e, prev, TargetEdit{X: 0.2, Y: 0.9})
	if err != nil {
		t.Fatal(err)
	}
	if next.TargetX != 0.2 || next.TargetY != 0.9 {
		t.Errorf("target = (%f, %f)", next.TargetX, next.TargetY)
	}
	if next.HAngle == prev.HAngle && next.VAngle == prev.VAngle {
		t.Error("angles were not re-solved")
	}
	landsOnTarget(t, next, 0.005)
}

func TestReduceAngleMovesTarget(t *testing.T) {
	e := flight.Default()
	prev := startingPitch()

	next, err := Reduce(e, prev, AngleEdit{HAngle: -1, VAngle: 0})
	if err != nil {
		t.Fatal(err)
	}
	if next.HAngle != -1 || next.VAngle != 0 {
		t.Errorf("angles = (%f, %f)", next.HAngle, next.VAngle)
	}
	at := e.SimulatePitch(next).PlateLocation()
	if next.TargetX != at.X || next.TargetY != at.Y {
		t.Errorf("target (%f, %f) != crossing (%f, %f)", next.TargetX, next.TargetY, at.X, at.Y)
	}
	if next.TargetX >= prev.TargetX {
		t.Errorf("aiming further toward -X should move the target: %f -> %f", prev.TargetX, next.TargetX)
	}
}

func TestReducePhysicsKeepsTargetPinned(t *testing.T) {
	e := flight.Default()
	prev := startingPitch()

	tests := []PhysicsEdit{
		{Field: FieldVelocity, Value: 130},
		{Field: FieldSpinRate, Value: 1800},
		{Field: FieldSpinDirection, Value: 200},
		{Field: FieldReleaseHeight, Value: 1.6},
		{Field: FieldReleaseSide, Value: 40},
		{Field: FieldExtension, Value: 150},
	}
	for _, ed := range tests {
		next, err := Reduce(e, prev, ed)
		if err != nil {
			t.Fatalf("%s: %v", ed.Field, err)
		}
		if next.TargetX != prev.TargetX || next.TargetY != prev.TargetY {
			t.Errorf("%s: target moved", ed.Field)
		}
		landsOnTarget(t, next, 0.005)
	}
}

func TestReduceSpinEfficiencySyncsGyro(t *testing.T) {
	e := flight.Default()
	prev := startingPitch()

	next, err := Reduce(e, prev, SpinEfficiencyEdit{Percent: 50})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(next.GyroDegree-60) > 1e-9 {
		t.Errorf("gyro = %f, want 60", next.GyroDegree)
	}

	next, _ = Reduce(e, prev, SpinEfficiencyEdit{Percent: 150})
	if next.SpinEfficiency != 100 || next.GyroDegree != 0 {
		t.Errorf("clamped to eff=%f gyro=%f", next.SpinEfficiency, next.GyroDegree)
	}
}

func TestReduceGyroSyncsSpinEfficiency(t *testing.T) {
	e := flight.Default()
	prev := startingPitch()

	next, err := Reduce(e, prev, GyroDegreeEdit{Degrees: 60})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(next.SpinEfficiency-50) > 1e-9 {
		t.Errorf("efficiency = %f, want 50", next.SpinEfficiency)
	}
	landsOnTarget(t, next, 0.005)

	next, _ = Reduce(e, prev, GyroDegreeEdit{Degrees: -10})
	if next.GyroDegree != 0 || next.SpinEfficiency != 100 {
		t.Errorf("clamped to gyro=%f eff=%f", next.GyroDegree, next.SpinEfficiency)
	}
}

func TestReduceRejectsUnknownField(t *testing.T) {
	prev := startingPitch()
	next, err := Reduce(flight.Default(), prev, PhysicsEdit{Field: "mass", Value: 1})
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("err = %v", err)
	}
	if next != prev {
		t.Error("state changed on error")
	}
}

func TestReduceNilEdit(t *testing.T) {
	_, err := Reduce(flight.Default(), startingPitch(), nil)
	if !errors.Is(err, ErrUnknownEdit) {
		t.Fatalf("err = %v", err)
	}
}

func TestRequestToEdit(t *testing.T) {
	tests := []struct {
		req  Request
		want Edit
		err  error
	}{
		{Request{Kind: KindTarget, X: 0.1, Y: 0.8}, TargetEdit{X: 0.1, Y: 0.8}, nil},
		{Request{Kind: KindAngle, HAngle: 1, VAngle: -1}, AngleEdit{HAngle: 1, VAngle: -1}, nil},
		{Request{Kind: KindSpinEfficiency, Percent: 70}, SpinEfficiencyEdit{Percent: 70}, nil},
		{Request{Kind: KindGyroDegree, Degrees: 20}, GyroDegreeEdit{Degrees: 20}, nil},
		{Request{Kind: KindPhysics, Field: FieldVelocity, Value: 150}, PhysicsEdit{Field: FieldVelocity, Value: 150}, nil},
		{Request{Kind: KindPhysics}, nil, ErrUnknownField},
		{Request{Kind: "teleport"}, nil, ErrUnknownEdit},
	}
	for _, tt := range tests {
		got, err := tt.req.ToEdit()
		if tt.err != nil {
			if !errors.Is(err, tt.err) {
				t.Errorf("%s: err = %v, want %v", tt.req.Kind, err, tt.err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("%s: got %#v, %v", tt.req.Kind, got, err)
		}
	}
}
