package flight

import "math"

// WallSegment is one straight piece of the outfield fence on the ground plane.
type WallSegment struct {
	Name      string `json:"name"`
	Start     Vec2   `json:"start"`
	End       Vec2   `json:"end"`
	Direction Vec2   `json:"direction"` // normalized, Start to End
	Normal    Vec2   `json:"normal"`    // points back toward home plate
}

// Midpoint of the segment.
func (w WallSegment) Midpoint() Vec2 {
	return w.Start.Plus(w.End).Times(0.5)
}

// NewWallSegment precomputes the direction and inward normal.
func NewWallSegment(name string, start, end Vec2) WallSegment {
	return WallSegment{
		Name:      name,
		Start:     start,
		End:       end,
		Direction: end.Minus(start).Normalize(),
		Normal:    InwardNormal(start, end),
	}
}

// InwardNormal returns the unit perpendicular of start→end that faces the
// origin. The left normal is taken first and flipped whenever it points
// away from home plate, i.e. dot(normal, midpoint) > 0.
func InwardNormal(start, end Vec2) Vec2 {
	n := end.Minus(start).Normalize().LeftNormal()
	mid := start.Plus(end).Times(0.5)
	if n.Dot(mid) > 0 {
		n = n.Times(-1)
	}
	return n
}

// Fence corner points, left foul pole to right foul pole. Positive spray
// goes toward -X, so the left-field pole is at -X.
var fencePoints = []struct {
	name string
	p    Vec2
}{
	{"left-pole", NewVec2(-70.0, 70.0)},
	{"left-center", NewVec2(-43.6, 105.3)},
	{"center", NewVec2(0, 122.0)},
	{"right-center", NewVec2(43.6, 105.3)},
	{"right-pole", NewVec2(70.0, 70.0)},
}

// DefaultFence returns the four segments approximating a symmetric fence
// with its apex at 122 m in straightaway center.
func DefaultFence() []WallSegment {
	segs := make([]WallSegment, 0, len(fencePoints)-1)
	for i := 0; i+1 < len(fencePoints); i++ {
		a, b := fencePoints[i], fencePoints[i+1]
		segs = append(segs, NewWallSegment(a.name+"/"+b.name, a.p, b.p))
	}
	return segs
}

// segmentIntersect finds where p1→p2 crosses p3→p4. t is the fraction along
// p1→p2 at the crossing. Parallel and collinear segments never intersect.
func segmentIntersect(p1, p2, p3, p4 Vec2) (hit Vec2, t float64, ok bool) {
	r := p2.Minus(p1)
	s := p4.Minus(p3)
	denom := r.Cross(s)
	if math.Abs(denom) < 1e-12 {
		return Vec2{}, 0, false
	}
	qp := p3.Minus(p1)
	t = qp.Cross(s) / denom
	u := qp.Cross(r) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Vec2{}, 0, false
	}
	return p1.Plus(r.Times(t)), t, true
}

type wallHit struct {
	segment *WallSegment
	point   Vec2
	t       float64
}

// firstWallHit tests the step path against every segment in order and
// returns the first one crossed.
func firstWallHit(fence []WallSegment, from, to Vec2) (wallHit, bool) {
	for i := range fence {
		seg := &fence[i]
		if p, t, ok := segmentIntersect(from, to, seg.Start, seg.End); ok {
			return wallHit{segment: seg, point: p, t: t}, true
		}
	}
	return wallHit{}, false
}

// reflectOffWall mirrors vel about the segment normal and applies the
// fence restitution: horizontal by c.WallRestitution, vertical by
// c.WallVerticalRestitution.
func reflectOffWall(vel Vec3, normal Vec2, c Constants) Vec3 {
	h := vel.Ground()
	h = h.Minus(normal.Times(2 * h.Dot(normal))).Times(c.WallRestitution)
	return Vec3{X: h.X, Y: vel.Y * c.WallVerticalRestitution, Z: h.Y}
}
