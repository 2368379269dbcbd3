package flight

import "math"

// Physical and numerical defaults for baseball flight.
// World axes: X lateral, Y up, Z depth. For batted balls Z points from home
// plate toward center field; for pitches the mound sits at +Z and the front
// edge of home plate at Z=0.
const (
	Gravity                = 9.81  // m/s²
	AirDensity             = 1.225 // kg/m³
	BallMass               = 0.145 // kg
	BallRadius             = 0.0366
	DragCoefficient        = 0.35
	BattingLiftCoefficient = 0.2

	MoundDistance = 18.44 // rubber to front of home plate, m
	CatcherDepth  = 1.5   // pitches run this far past the plate

	BattingStep    = 0.01
	BattingMaxTime = 20.0
	PitchStep      = 0.002
	PitchMaxTime   = 5.0

	LaunchHeight  = 0.5
	MinAirspeed   = 0.1 // below this no aerodynamic force is computed
	LiftMinHeight = 0.05

	WallMinDepth            = 60.0
	WallHeight              = 4.0
	WallRestitution         = 0.7
	WallVerticalRestitution = 0.8
	WallPushOut             = 0.2

	GroundRestitution = 0.45
	BounceFriction    = 0.92
	RollThreshold     = 1.0
	RollingFriction   = 0.25
	StopSpeed         = 0.1

	DegenerateVelocity = 0.1 // km/h

	SolverMaxIterations = 10
	SolverTolerance     = 0.0005 // m
	SolverGain          = 2.5    // degrees per metre of plate error
)

// Constants is the immutable physics configuration an Engine runs with.
// Substituting values (zero gravity, no drag) is how tests isolate effects.
type Constants struct {
	Gravity                float64 `json:"gravity"`
	AirDensity             float64 `json:"air_density"`
	BallMass               float64 `json:"ball_mass"`
	BallRadius             float64 `json:"ball_radius"`
	DragCoefficient        float64 `json:"drag_coefficient"`
	BattingLiftCoefficient float64 `json:"batting_lift_coefficient"`

	MoundDistance float64 `json:"mound_distance"`
	CatcherDepth  float64 `json:"catcher_depth"`

	BattingStep    float64 `json:"batting_step"`
	BattingMaxTime float64 `json:"batting_max_time"`
	PitchStep      float64 `json:"pitch_step"`
	PitchMaxTime   float64 `json:"pitch_max_time"`

	LaunchHeight  float64 `json:"launch_height"`
	MinAirspeed   float64 `json:"min_airspeed"`
	LiftMinHeight float64 `json:"lift_min_height"`

	WallMinDepth            float64 `json:"wall_min_depth"`
	WallHeight              float64 `json:"wall_height"`
	WallRestitution         float64 `json:"wall_restitution"`
	WallVerticalRestitution float64 `json:"wall_vertical_restitution"`
	WallPushOut             float64 `json:"wall_push_out"`

	GroundRestitution float64 `json:"ground_restitution"`
	BounceFriction    float64 `json:"bounce_friction"`
	RollThreshold     float64 `json:"roll_threshold"`
	RollingFriction   float64 `json:"rolling_friction"`
	StopSpeed         float64 `json:"stop_speed"`

	DegenerateVelocity float64 `json:"degenerate_velocity"`

	SolverMaxIterations int     `json:"solver_max_iterations"`
	SolverTolerance     float64 `json:"solver_tolerance"`
	SolverGain          float64 `json:"solver_gain"`
}

// DefaultConstants returns the regulation-ball configuration.
func DefaultConstants() Constants {
	return Constants{
		Gravity:                Gravity,
		AirDensity:             AirDensity,
		BallMass:               BallMass,
		BallRadius:             BallRadius,
		DragCoefficient:        DragCoefficient,
		BattingLiftCoefficient: BattingLiftCoefficient,

		MoundDistance: MoundDistance,
		CatcherDepth:  CatcherDepth,

		BattingStep:    BattingStep,
		BattingMaxTime: BattingMaxTime,
		PitchStep:      PitchStep,
		PitchMaxTime:   PitchMaxTime,

		LaunchHeight:  LaunchHeight,
		MinAirspeed:   MinAirspeed,
		LiftMinHeight: LiftMinHeight,

		WallMinDepth:            WallMinDepth,
		WallHeight:              WallHeight,
		WallRestitution:         WallRestitution,
		WallVerticalRestitution: WallVerticalRestitution,
		WallPushOut:             WallPushOut,

		GroundRestitution: GroundRestitution,
		BounceFriction:    BounceFriction,
		RollThreshold:     RollThreshold,
		RollingFriction:   RollingFriction,
		StopSpeed:         StopSpeed,

		DegenerateVelocity: DegenerateVelocity,

		SolverMaxIterations: SolverMaxIterations,
		SolverTolerance:     SolverTolerance,
		SolverGain:          SolverGain,
	}
}

// CrossSection is the ball's frontal area in m².
func (c Constants) CrossSection() float64 {
	return math.Pi * c.BallRadius * c.BallRadius
}

// aeroFactor converts ½·ρ·|v|²·C into an acceleration: ½·ρ·A/m.
func (c Constants) aeroFactor() float64 {
	if c.BallMass == 0 {
		return 0
	}
	return 0.5 * c.AirDensity * c.CrossSection() / c.BallMass
}
