package flight

import "math"

// SolvePitchAngles searches for the release angles that put the pitch on
// (targetX, targetY) at the plate. It starts from the straight-line aim and
// applies a fixed-gain proportional correction after each forward run.
func (e *Engine) SolvePitchAngles(p PitchingParameters, targetX, targetY float64) AngleSolution {
	c := e.c
	release := ReleasePoint(c.MoundDistance, p.ReleaseHeight, p.ReleaseSide, p.Extension)
	h, v := straightLineAim(release, targetX, targetY)

	best := AngleSolution{HAngle: h, VAngle: v}
	bestErr := math.Inf(1)

	for i := 1; i <= c.SolverMaxIterations; i++ {
		p.HAngle, p.VAngle = h, v
		at := e.SimulatePitch(p).PlateLocation()
		ex, ey := targetX-at.X, targetY-at.Y

		if math.Abs(ex) < c.SolverTolerance && math.Abs(ey) < c.SolverTolerance {
			return AngleSolution{HAngle: h, VAngle: v, Iterations: i, Converged: true, ErrorX: ex, ErrorY: ey}
		}
		if m := math.Max(math.Abs(ex), math.Abs(ey)); m < bestErr {
			bestErr = m
			best = AngleSolution{HAngle: h, VAngle: v, ErrorX: ex, ErrorY: ey}
		}

		h += ex * c.SolverGain
		v += ey * c.SolverGain
	}

	best.Iterations = c.SolverMaxIterations
	return best
}

// straightLineAim ignores gravity, drag and spin.
func straightLineAim(release Vec3, targetX, targetY float64) (hAngle, vAngle float64) {
	dx := targetX - release.X
	dz := release.Z
	hAngle = radToDeg(math.Atan2(dx, dz))
	vAngle = radToDeg(math.Atan2(targetY-release.Y, math.Hypot(dx, dz)))
	return hAngle, vAngle
}
