package meshcut

import (
	"fmt"
	"math"

	"github.com/unixpickle/model3d/model3d"
)

type IntersectionKind int

const (
	// IntersectionNone means no edge of a face touches the plane.
	IntersectionNone IntersectionKind = iota

	// IntersectionPoint means the face touches the plane at one point.
	IntersectionPoint

	// IntersectionSegment means the plane cuts through the face, hitting
	// two of its edges at distinct points.
	IntersectionSegment

	// IntersectionFace means all three edges hit the plane.
	IntersectionFace
)

func (i IntersectionKind) String() string {
	switch i {
	case IntersectionNone:
		return "none"
	case IntersectionPoint:
		return "point"
	case IntersectionSegment:
		return "segment"
	case IntersectionFace:
		return "face"
	}
	return fmt.Sprintf("IntersectionKind(%d)", int(i))
}

// An EdgeHit is a point where the plane crosses a directed edge of a face.
// Edge holds the local vertex indices [i, (i+1)%3] of that edge.
type EdgeHit struct {
	Point model3d.Coord3D
	Edge  [2]int
}

// hasVertex checks if the edge touches the vertex with local index i.
func (e EdgeHit) hasVertex(i int) bool {
	return e.Edge[0] == i || e.Edge[1] == i
}

type Intersection struct {
	Kind IntersectionKind

	// Hits contains one entry for IntersectionPoint, two entries for
	// IntersectionSegment, and three entries for IntersectionFace.
	Hits []EdgeHit
}

// planeCut caches the derived normal of a plane for one split.
type planeCut struct {
	Origin  model3d.Coord3D
	Normal  model3d.Coord3D
	Epsilon float64
}

func (p *planeCut) signedDistance(c model3d.Coord3D) float64 {
	return p.Normal.Dot(p.Origin.Sub(c))
}

func (p *planeCut) intersectSegment(p0, p1 model3d.Coord3D) (model3d.Coord3D, bool) {
	d := p.signedDistance(p0)
	w := p1.Sub(p0)
	e := p.Normal.Dot(w)
	if math.Abs(e) <= p.Epsilon {
		return model3d.Coord3D{}, false
	}
	o := p0.Add(w.Scale(d / e))
	if p0.Sub(o).Dot(p1.Sub(o)) > 0 {
		return model3d.Coord3D{}, false
	}
	return o, true
}

func (p *planeCut) classify(t *model3d.Triangle) Intersection {
	hits := make([]EdgeHit, 0, 3)
	for i := 0; i < 3; i++ {
		i2 := (i + 1) % 3
		if o, ok := p.intersectSegment(t[i], t[i2]); ok {
			hits = append(hits, EdgeHit{Point: o, Edge: [2]int{i, i2}})
		}
	}
	switch len(hits) {
	case 0:
		return Intersection{Kind: IntersectionNone}
	case 1:
		return Intersection{Kind: IntersectionPoint, Hits: hits}
	case 2:
		if hits[0].Point.Dist(hits[1].Point) < p.Epsilon {
			return Intersection{Kind: IntersectionPoint, Hits: hits[:1]}
		}
		return Intersection{Kind: IntersectionSegment, Hits: hits}
	default:
		return Intersection{Kind: IntersectionFace, Hits: hits}
	}
}
