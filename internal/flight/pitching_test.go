package flight

import (
	"math"
	"testing"
)

// straightPitch is a spinless pitch released from the rubber aimed flat.
func straightPitch(velocity float64) PitchingParameters {
	return PitchingParameters{
		Velocity:       velocity,
		SpinEfficiency: 100,
		ReleaseHeight:  1.8,
	}
}

func TestPitchDegenerateVelocity(t *testing.T) {
	p := straightPitch(0)
	p.ReleaseSide = -40
	p.Extension = 150

	res := SimulatePitch(p)
	if len(res.Points) != 1 {
		t.Fatalf("expected 1 sample, got %d", len(res.Points))
	}
	want := ReleasePoint(MoundDistance, 1.8, -40, 150)
	if res.Points[0].Position != want {
		t.Errorf("sample at %+v, want release %+v", res.Points[0].Position, want)
	}
	if res.Distance != 0 || res.HangTime != 0 {
		t.Errorf("Distance=%f HangTime=%f, want zeros", res.Distance, res.HangTime)
	}
}

func TestPitchGravityDropsBelowRelease(t *testing.T) {
	res := SimulatePitch(straightPitch(140))
	if res.PlateCrossing == nil {
		t.Fatal("expected a plate crossing")
	}
	pc := *res.PlateCrossing
	if pc.Y >= 1.8 {
		t.Errorf("plate crossing y=%.3f, want < 1.8", pc.Y)
	}
	if pc.Z != 0 {
		t.Errorf("plate crossing z=%f, want 0", pc.Z)
	}
	if math.Abs(pc.X) > 1e-9 {
		t.Errorf("straight pitch drifted sideways: x=%f", pc.X)
	}
	if res.Bounced {
		t.Error("pitch should reach the plate in the air")
	}
}

func TestPitchFixedStep(t *testing.T) {
	res := SimulatePitch(straightPitch(150))
	for i := 0; i+1 < len(res.Points); i++ {
		dt := res.Points[i+1].T - res.Points[i].T
		if math.Abs(dt-PitchStep) > 1e-9 {
			t.Fatalf("step %d: dt=%.12f want %.3f", i, dt, PitchStep)
		}
	}
}

func TestPitchCrossingIsInterpolated(t *testing.T) {
	p := straightPitch(135)
	p.SpinRate = 2200
	p.SpinDirection = 45
	res := SimulatePitch(p)

	pc := *res.PlateCrossing
	for i := 0; i+1 < len(res.Points); i++ {
		a, b := res.Points[i], res.Points[i+1]
		if a.Position.Z >= 0 && b.Position.Z < 0 {
			lo, hi := math.Min(a.Position.Y, b.Position.Y), math.Max(a.Position.Y, b.Position.Y)
			if pc.Y < lo || pc.Y > hi {
				t.Errorf("crossing y=%.5f outside bracket [%.5f, %.5f]", pc.Y, lo, hi)
			}
			if pc == a.Position || pc == b.Position {
				t.Error("crossing should be interpolated, not a raw sample")
			}
			if res.PlateTime <= a.T || res.PlateTime >= b.T {
				t.Errorf("PlateTime=%.5f outside (%.3f, %.3f)", res.PlateTime, a.T, b.T)
			}
			return
		}
	}
	t.Fatal("no samples bracket z=0")
}

func TestPitchEndsPastCatcher(t *testing.T) {
	res := SimulatePitch(straightPitch(145))
	final := res.FinalPosition
	if final.Z >= -CatcherDepth {
		t.Errorf("final z=%.3f, want past %.1f", final.Z, -CatcherDepth)
	}
	if math.Abs(res.Distance-(MoundDistance-final.Z)) > 1e-12 {
		t.Errorf("Distance=%.4f want %.4f", res.Distance, MoundDistance-final.Z)
	}
	if res.HangTime <= 0.35 || res.HangTime >= 0.6 {
		t.Errorf("145 km/h flight time %.3f s looks wrong", res.HangTime)
	}
}

func TestBackspinCarriesHigher(t *testing.T) {
	plain := SimulatePitch(straightPitch(140))

	p := straightPitch(140)
	p.SpinRate = 2400
	ride := SimulatePitch(p)

	if ride.PlateCrossing.Y <= plain.PlateCrossing.Y {
		t.Errorf("backspin crossing %.3f should be above %.3f", ride.PlateCrossing.Y, plain.PlateCrossing.Y)
	}
	if ride.PlateBreak.Vertical <= 0 {
		t.Errorf("vertical break %.2f cm, want positive", ride.PlateBreak.Vertical)
	}
	if math.Abs(ride.PlateBreak.Horizontal) > 1e-9 {
		t.Errorf("12 o'clock spin should not break sideways: %.6f", ride.PlateBreak.Horizontal)
	}
}

func TestSpinDirectionBreaksSideways(t *testing.T) {
	p := straightPitch(140)
	p.SpinRate = 2400
	p.SpinDirection = 90
	res := SimulatePitch(p)

	if res.PlateBreak.Horizontal <= 0 {
		t.Errorf("3 o'clock spin horizontal break %.2f, want positive", res.PlateBreak.Horizontal)
	}
	if res.PlateCrossing.X <= 0 {
		t.Errorf("3 o'clock spin crossing x=%.3f, want positive", res.PlateCrossing.X)
	}
	if math.Abs(res.PlateBreak.Vertical) > 1e-6 {
		t.Errorf("3 o'clock spin vertical break %.6f, want ~0", res.PlateBreak.Vertical)
	}
}

func TestGyroSpinHasNoBreak(t *testing.T) {
	p := straightPitch(140)
	p.SpinRate = 2600
	p.SpinEfficiency = 0
	res := SimulatePitch(p)

	if *res.PlateBreak != (Break{}) {
		t.Errorf("pure gyro spin broke %+v", *res.PlateBreak)
	}
	for _, s := range res.Points {
		if s.Break == nil {
			t.Fatal("pitch samples must carry break")
		}
	}
}

func TestPitchBouncesInDirt(t *testing.T) {
	p := straightPitch(140)
	p.VAngle = -10
	res := SimulatePitch(p)

	if !res.Bounced {
		t.Fatal("expected the pitch to hit the ground")
	}
	final := *res.FinalPosition
	if final.Y != 0 {
		t.Errorf("final height %f, want 0", final.Y)
	}
	if final.Z <= 0 {
		t.Errorf("ball should land before the plate, z=%.2f", final.Z)
	}
	if *res.PlateCrossing != final {
		t.Errorf("plate crossing %+v should fall back to final %+v", *res.PlateCrossing, final)
	}
}

func TestPitchTimeFailsafe(t *testing.T) {
	c := DefaultConstants()
	c.Gravity = 0
	eng := NewEngine(c)

	res := eng.SimulatePitch(straightPitch(1))
	if res.Elapsed <= PitchMaxTime || res.Elapsed > PitchMaxTime+2*PitchStep {
		t.Errorf("Elapsed=%.4f, want just past %.1f", res.Elapsed, PitchMaxTime)
	}
	if res.Bounced {
		t.Error("weightless ball should not reach the ground")
	}
}
