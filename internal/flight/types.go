package flight

// BattingParameters describe one batted ball. Speeds in km/h, angles in
// degrees, wind in m/s.
type BattingParameters struct {
	ExitVelocity  float64 `json:"exit_velocity"`
	LaunchAngle   float64 `json:"launch_angle"`
	SprayAngle    float64 `json:"spray_angle"`
	WindSpeed     float64 `json:"wind_speed"`
	WindDirection float64 `json:"wind_direction"`
}

// PitchingParameters describe one pitch. SpinEfficiency and GyroDegree are
// kept consistent by the caller (see editor.Reduce); the engine reads only
// SpinEfficiency.
type PitchingParameters struct {
	Velocity       float64 `json:"velocity"`        // km/h
	SpinRate       float64 `json:"spin_rate"`       // rpm
	SpinDirection  float64 `json:"spin_direction"`  // clock angle, 0 = 12 o'clock
	SpinEfficiency float64 `json:"spin_efficiency"` // percent
	HAngle         float64 `json:"h_angle"`         // degrees
	VAngle         float64 `json:"v_angle"`         // degrees
	ReleaseHeight  float64 `json:"release_height"`  // m
	ReleaseSide    float64 `json:"release_side"`    // cm, +X
	Extension      float64 `json:"extension"`       // cm
	TargetX        float64 `json:"target_x"`        // m
	TargetY        float64 `json:"target_y"`        // m
	GyroDegree     float64 `json:"gyro_degree"`
}

// Break is the cumulative deflection caused by spin alone, in cm.
type Break struct {
	Horizontal float64 `json:"horizontal"`
	Vertical   float64 `json:"vertical"`
}

// Sample is one point of a trajectory.
type Sample struct {
	Position Vec3    `json:"position"`
	T        float64 `json:"t"`
	Break    *Break  `json:"break,omitempty"`
}

// TrajectoryResult is the full output of one simulation call.
type TrajectoryResult struct {
	Points    []Sample `json:"points"`
	Step      float64  `json:"step"`
	Distance  float64  `json:"distance"`
	MaxHeight float64  `json:"max_height"`
	HangTime  float64  `json:"hang_time"`
	Elapsed   float64  `json:"elapsed"`

	FinalPosition *Vec3 `json:"final_position,omitempty"`

	// Batted balls.
	Landing   *Vec3 `json:"landing,omitempty"`
	Bounces   int   `json:"bounces"`
	WallHits  int   `json:"wall_hits"`
	HomeRun   bool  `json:"home_run"`
	Stopped   bool  `json:"stopped"`
	Truncated bool  `json:"truncated"`

	// Pitches.
	PlateCrossing *Vec3   `json:"plate_crossing,omitempty"`
	PlateTime     float64 `json:"plate_time,omitempty"`
	PlateBreak    *Break  `json:"plate_break,omitempty"`
	Bounced       bool    `json:"bounced,omitempty"`
}

// AngleSolution is the solver's answer. When Converged is false the angles
// are the best ones evaluated and ErrorX/ErrorY their residual at the plate.
type AngleSolution struct {
	HAngle     float64 `json:"h_angle"`
	VAngle     float64 `json:"v_angle"`
	Iterations int     `json:"iterations"`
	Converged  bool    `json:"converged"`
	ErrorX     float64 `json:"error_x"`
	ErrorY     float64 `json:"error_y"`
}
