// Package flight computes baseball trajectories: batted balls with ground
// and fence collisions, pitches with Magnus break, and the inverse solver
// that aims a pitch at a plate location. Every call is synchronous and
// deterministic and returns freshly allocated results.
package flight

// Engine runs simulations against a fixed set of constants and fence.
// An Engine is never mutated after construction and is safe for concurrent use.
type Engine struct {
	c     Constants
	fence []WallSegment
}

// NewEngine creates an engine with the given constants and the default fence.
func NewEngine(c Constants) *Engine {
	return NewEngineWithFence(c, DefaultFence())
}

// NewEngineWithFence creates an engine with a custom fence.
func NewEngineWithFence(c Constants, fence []WallSegment) *Engine {
	f := make([]WallSegment, len(fence))
	copy(f, fence)
	return &Engine{c: c, fence: f}
}

// Constants returns the engine's configuration.
func (e *Engine) Constants() Constants { return e.c }

// Fence returns a copy of the fence segments.
func (e *Engine) Fence() []WallSegment {
	f := make([]WallSegment, len(e.fence))
	copy(f, e.fence)
	return f
}

var defaultEngine = NewEngine(DefaultConstants())

// Default returns the shared engine built from DefaultConstants.
func Default() *Engine { return defaultEngine }

// SimulateBattedBall runs a batted ball with the default engine.
func SimulateBattedBall(p BattingParameters) TrajectoryResult {
	return defaultEngine.SimulateBattedBall(p)
}

// SimulatePitch runs a pitch with the default engine.
func SimulatePitch(p PitchingParameters) TrajectoryResult {
	return defaultEngine.SimulatePitch(p)
}

// SolvePitchAngles aims a pitch with the default engine.
func SolvePitchAngles(p PitchingParameters, targetX, targetY float64) AngleSolution {
	return defaultEngine.SolvePitchAngles(p, targetX, targetY)
}
