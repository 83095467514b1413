package meshcut

import "github.com/unixpickle/model3d/model3d"

// A Side identifies one of the two fragments produced by a split.
type Side int

const (
	// SideA holds geometry opposite the plane normal.
	SideA Side = 0

	// SideB holds geometry along the plane normal, as well as faces with
	// no clear majority.
	SideB Side = 1
)

func (s Side) String() string {
	if s == SideA {
		return "A"
	}
	return "B"
}

func (p *planeCut) side(t *model3d.Triangle) Side {
	var pos, neg int
	for _, c := range t {
		d := p.signedDistance(c)
		if d > p.Epsilon {
			pos++
		} else if d < -p.Epsilon {
			neg++
		}
	}
	if pos > neg {
		return SideA
	}
	return SideB
}
