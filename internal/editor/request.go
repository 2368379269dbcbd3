package editor

import "fmt"

// Edit kinds accepted in Request.Kind.
const (
	KindTarget         = "target"
	KindAngle          = "angle"
	KindSpinEfficiency = "spin_efficiency"
	KindGyroDegree     = "gyro_degree"
	KindPhysics        = "physics"
)

// Request is the wire form of an Edit. Only the fields relevant to Kind are
// read.
type Request struct {
	Kind string `json:"kind"`

	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	HAngle float64 `json:"h_angle,omitempty"`
	VAngle float64 `json:"v_angle,omitempty"`

	Percent float64 `json:"percent,omitempty"`
	Degrees float64 `json:"degrees,omitempty"`

	Field Field   `json:"field,omitempty"`
	Value float64 `json:"value,omitempty"`
}

// ToEdit converts the request into its Edit variant.
func (r Request) ToEdit() (Edit, error) {
	switch r.Kind {
	case KindTarget:
		return TargetEdit{X: r.X, Y: r.Y}, nil
	case KindAngle:
		return AngleEdit{HAngle: r.HAngle, VAngle: r.VAngle}, nil
	case KindSpinEfficiency:
		return SpinEfficiencyEdit{Percent: r.Percent}, nil
	case KindGyroDegree:
		return GyroDegreeEdit{Degrees: r.Degrees}, nil
	case KindPhysics:
		if r.Field == "" {
			return nil, fmt.Errorf("%w: physics edit without field", ErrUnknownField)
		}
		return PhysicsEdit{Field: r.Field, Value: r.Value}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEdit, r.Kind)
}
