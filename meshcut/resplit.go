package meshcut

import "github.com/unixpickle/model3d/model3d"

// Resplit divides a triangle that the plane cuts along a segment into three
// triangles which tile it exactly.
//
// The hits a and b must come from two different edges of t, as returned for
// an IntersectionSegment. The first result is the corner which is isolated
// on one side of the cut, and the other two tile the remaining quad.
// All results keep the winding of t.
func Resplit(t *model3d.Triangle, a, b EdgeHit) [3]*model3d.Triangle {
	// The two cut edges always share exactly one vertex.
	var common int
	for _, i := range a.Edge {
		for _, i2 := range b.Edge {
			if i == i2 {
				common = i
			}
		}
	}
	other := (common + 1) % 3
	third := (other + 1) % 3

	// nearHit lies on edge (common, other), farHit on edge (third, common).
	nearHit, farHit := a.Point, b.Point
	if !a.hasVertex(other) {
		nearHit, farHit = farHit, nearHit
	}

	return [3]*model3d.Triangle{
		{t[common], nearHit, farHit},
		{t[other], farHit, nearHit},
		{t[other], t[third], farHit},
	}
}
