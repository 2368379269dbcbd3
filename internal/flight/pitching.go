package flight

import "math"

// SimulatePitch flies a pitch from release until it passes the catcher,
// hits the ground, or the failsafe time runs out.
func (e *Engine) SimulatePitch(p PitchingParameters) TrajectoryResult {
	c := e.c
	dt := c.PitchStep

	pos := ReleasePoint(c.MoundDistance, p.ReleaseHeight, p.ReleaseSide, p.Extension)
	res := TrajectoryResult{Step: dt, MaxHeight: pos.Y}
	res.Points = append(make([]Sample, 0, 256), Sample{Position: pos, Break: &Break{}})

	if p.Velocity <= c.DegenerateVelocity || dt <= 0 {
		final, crossing := pos, pos
		res.FinalPosition = &final
		res.PlateCrossing = &crossing
		res.PlateBreak = &Break{}
		return res
	}

	vel := PitchVelocity(p.Velocity, p.HAngle, p.VAngle)
	omega := RpmToRadPerSec(p.SpinRate * p.SpinEfficiency / 100)
	spinAxis := MagnusDirection(p.SpinDirection)

	var breakVel, breakPos Vec3
	t := 0.0
	for step := 1; ; step++ {
		t = float64(step) * dt

		acc, magnus := e.pitchAcceleration(vel, omega, spinAxis)
		breakVel = breakVel.Plus(magnus.Times(dt))
		prevBreak := breakPos
		breakPos = breakPos.Plus(breakVel.Times(dt))

		vel = vel.Plus(acc.Times(dt))
		prev := pos
		pos = pos.Plus(vel.Times(dt))

		if res.PlateCrossing == nil && prev.Z >= 0 && pos.Z < 0 {
			f := prev.Z / (prev.Z - pos.Z)
			crossing := Vec3{
				X: prev.X + f*(pos.X-prev.X),
				Y: prev.Y + f*(pos.Y-prev.Y),
				Z: 0,
			}
			res.PlateCrossing = &crossing
			res.PlateTime = t - dt + f*dt
			b := breakCm(prevBreak.Plus(breakPos.Minus(prevBreak).Times(f)))
			res.PlateBreak = &b
		}

		grounded := pos.Y <= 0
		if grounded {
			pos.Y = 0
			res.Bounced = true
		}

		b := breakCm(breakPos)
		res.Points = append(res.Points, Sample{Position: pos, T: t, Break: &b})
		if pos.Y > res.MaxHeight {
			res.MaxHeight = pos.Y
		}

		if grounded || t > c.PitchMaxTime || pos.Z < -c.CatcherDepth {
			break
		}
	}

	final := pos
	res.FinalPosition = &final
	res.Distance = c.MoundDistance - pos.Z
	res.HangTime = t
	res.Elapsed = t
	if res.PlateCrossing == nil {
		crossing := pos
		res.PlateCrossing = &crossing
		res.PlateTime = t
		b := breakCm(breakPos)
		res.PlateBreak = &b
	}
	return res
}

// pitchAcceleration returns the total acceleration and the Magnus part of
// it. Lift uses Cl = S = r·ω/|v| along a fixed spin-axis direction.
func (e *Engine) pitchAcceleration(vel Vec3, omega float64, spinAxis Vec3) (Vec3, Vec3) {
	c := e.c
	acc := Vec3{Y: -c.Gravity}

	speed := vel.Magnitude()
	if speed <= c.MinAirspeed {
		return acc, Vec3{}
	}

	q := c.aeroFactor() * speed * speed
	acc = acc.Plus(vel.Times(-q * c.DragCoefficient / speed))

	cl := c.BallRadius * omega / speed
	magnus := spinAxis.Times(q * cl)
	return acc.Plus(magnus), magnus
}

func breakCm(p Vec3) Break {
	return Break{Horizontal: p.X * 100, Vertical: p.Y * 100}
}

// PlateLocation returns where the pitch crossed the plate, falling back to
// its final position.
func (r TrajectoryResult) PlateLocation() Vec3 {
	switch {
	case r.PlateCrossing != nil:
		return *r.PlateCrossing
	case r.FinalPosition != nil:
		return *r.FinalPosition
	case len(r.Points) > 0:
		return r.Points[len(r.Points)-1].Position
	}
	return Vec3{X: math.NaN(), Y: math.NaN()}
}
