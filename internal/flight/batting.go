package flight

import "math"

// SimulateBattedBall flies a batted ball from home plate until it rolls to a
// stop, lands beyond the fence, or the time cap is reached.
func (e *Engine) SimulateBattedBall(p BattingParameters) TrajectoryResult {
	c := e.c
	dt := c.BattingStep

	pos := Vec3{Y: c.LaunchHeight}
	vel := LaunchVelocity(p.ExitVelocity, p.LaunchAngle, p.SprayAngle)
	wind := WindVelocity(p.WindSpeed, p.WindDirection)

	res := TrajectoryResult{Step: dt, MaxHeight: pos.Y}
	res.Points = append(make([]Sample, 0, 512), Sample{Position: pos})

	t := 0.0
	done := false
	maxSteps := stepCount(c.BattingMaxTime, dt)
	for step := 1; step <= maxSteps && !done; step++ {
		t = float64(step) * dt

		acc := e.battedAcceleration(pos, vel, wind)
		vel = vel.Plus(acc.Times(dt))
		prev := pos
		pos = pos.Plus(vel.Times(dt))

		if !res.HomeRun && pos.Z > c.WallMinDepth {
			pos, vel = e.resolveFence(&res, prev, pos, vel)
		}
		if pos.Y <= 0 {
			pos, vel, done = e.resolveGround(&res, pos, vel, t)
		}

		res.Points = append(res.Points, Sample{Position: pos, T: t})
		if pos.Y > res.MaxHeight {
			res.MaxHeight = pos.Y
		}
	}

	final := pos
	res.FinalPosition = &final
	res.Elapsed = t
	res.Truncated = !done
	if res.Landing == nil {
		res.Distance = horizontalRange(pos)
		res.HangTime = t
	}
	return res
}

// battedAcceleration sums gravity, drag against the wind-relative airspeed
// and the simplified always-upward lift.
func (e *Engine) battedAcceleration(pos, vel, wind Vec3) Vec3 {
	c := e.c
	acc := Vec3{Y: -c.Gravity}

	rel := vel.Minus(wind)
	speed := rel.Magnitude()
	if speed <= c.MinAirspeed {
		return acc
	}

	q := c.aeroFactor() * speed * speed
	acc = acc.Plus(rel.Times(-q * c.DragCoefficient / speed))
	if pos.Y > c.LiftMinHeight {
		acc.Y += q * c.BattingLiftCoefficient * rel.HorizontalSpeed() / speed
	}
	return acc
}

// resolveFence checks the step path against the fence. A ball below the top
// of the wall collides; one above it is a home run. Heights below zero are
// included because a rolling ball dips under the ground before the clamp.
func (e *Engine) resolveFence(res *TrajectoryResult, prev, pos, vel Vec3) (Vec3, Vec3) {
	c := e.c
	hit, ok := firstWallHit(e.fence, prev.Ground(), pos.Ground())
	if !ok {
		return pos, vel
	}
	if pos.Y > c.WallHeight {
		res.HomeRun = true
		return pos, vel
	}

	n := hit.segment.Normal
	vel = reflectOffWall(vel, n, c)
	p := hit.point.Plus(n.Times(c.WallPushOut))
	res.WallHits++
	return Vec3{X: p.X, Y: pos.Y, Z: p.Y}, vel
}

// resolveGround clamps the ball to the ground and either bounces it or rolls
// it. The first contact freezes the carry distance.
func (e *Engine) resolveGround(res *TrajectoryResult, pos, vel Vec3, t float64) (Vec3, Vec3, bool) {
	c := e.c
	pos.Y = 0

	if res.Landing == nil {
		landing := pos
		res.Landing = &landing
		res.Distance = horizontalRange(pos)
		res.HangTime = t
	}
	if res.HomeRun {
		return pos, vel, true
	}

	if math.Abs(vel.Y) < c.RollThreshold {
		vel.Y = 0
		speed := vel.HorizontalSpeed()
		next := speed - c.RollingFriction*c.Gravity*c.BattingStep
		if next < c.StopSpeed {
			res.Stopped = true
			return pos, Vec3{}, true
		}
		scale := next / speed
		vel.X *= scale
		vel.Z *= scale
		return pos, vel, false
	}

	vel.Y = -vel.Y * c.GroundRestitution
	vel.X *= c.BounceFriction
	vel.Z *= c.BounceFriction
	res.Bounces++
	return pos, vel, false
}

func horizontalRange(p Vec3) float64 {
	return math.Hypot(p.X, p.Z)
}

// stepCount is the number of whole steps of size dt that fit in limit.
func stepCount(limit, dt float64) int {
	if dt <= 0 || limit <= 0 {
		return 0
	}
	return int(math.Round(limit / dt))
}
