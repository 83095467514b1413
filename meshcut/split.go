package meshcut

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

const (
	DefaultEpsilon        = 1e-2
	DefaultPlaneTolerance = 1e-9
)

var (
	ErrInvalidSelection = errors.New("selection must be exactly one mesh and one plane")
	ErrDegeneratePlane  = errors.New("plane points are collinear")
)

// A Splitter cuts face soups with planes.
//
// A Splitter holds no state besides its tolerances, so one Splitter may be
// used for many concurrent splits.
type Splitter struct {
	// Epsilon is the tolerance for every distance comparison against the
	// plane. It is also the distance below which two hits on one face are
	// merged into a single point.
	Epsilon float64

	// Normalize scales the plane normal to unit length before use, so that
	// Epsilon is measured in world units.
	//
	// If false, signed distances are scaled by the magnitude of the
	// unnormalized normal, i.e. twice the area of the plane's spanning
	// triangle.
	Normalize bool

	// PlaneTolerance is the sine of the angle between the plane's spanning
	// edges at or below which the plane is rejected as degenerate.
	PlaneTolerance float64
}

// NewSplitter creates a Splitter with the default tolerances.
func NewSplitter() *Splitter {
	return &Splitter{
		Epsilon:        DefaultEpsilon,
		Normalize:      true,
		PlaneTolerance: DefaultPlaneTolerance,
	}
}

// CheckPlane returns ErrDegeneratePlane if p does not span a plane.
func (s *Splitter) CheckPlane(p Plane) error {
	e1 := p[1].Sub(p[0])
	e2 := p[2].Sub(p[0])
	n := e1.Cross(e2).Norm()
	if !(n > s.PlaneTolerance*e1.Norm()*e2.Norm()) {
		return errors.Wrapf(ErrDegeneratePlane, "check plane %v", [3]model3d.Coord3D(p))
	}
	return nil
}

func (s *Splitter) planeCut(p Plane) *planeCut {
	normal := p.Normal()
	if s.Normalize {
		if norm := normal.Norm(); norm > 0 {
			normal = normal.Scale(1 / norm)
		}
	}
	return &planeCut{Origin: p.Origin(), Normal: normal, Epsilon: s.Epsilon}
}

// IntersectSegment finds the point where the plane crosses the closed
// segment from p0 to p1.
//
// Segments which are parallel to the plane within Epsilon never intersect
// it, even if they lie inside the plane.
func (s *Splitter) IntersectSegment(p Plane, p0, p1 model3d.Coord3D) (model3d.Coord3D, bool) {
	return s.planeCut(p).intersectSegment(p0, p1)
}

// Classify determines how a face relates to the plane.
func (s *Splitter) Classify(p Plane, t *model3d.Triangle) Intersection {
	return s.planeCut(p).classify(t)
}

// Side decides which fragment a face belongs to by comparing how many of
// its vertices are strictly on each side of the plane.
//
// It is only meaningful for faces which do not cross the plane, such as the
// results of Resplit.
func (s *Splitter) Side(p Plane, t *model3d.Triangle) Side {
	return s.planeCut(p).side(t)
}

// Contains checks if c is within Epsilon of the plane.
func (s *Splitter) Contains(p Plane, c model3d.Coord3D) bool {
	return math.Abs(s.planeCut(p).signedDistance(c)) <= s.Epsilon
}

// Split cuts a face soup with a plane.
//
// Faces which the plane cuts along a segment are divided into three
// triangles. Faces for which all three edges hit the plane are copied into
// both sides unchanged. The input faces are never modified.
func (s *Splitter) Split(faces []*model3d.Triangle, p Plane) (*Result, error) {
	if err := s.CheckPlane(p); err != nil {
		return nil, errors.Wrap(err, "split")
	}
	cut := s.planeCut(p)

	var asm assembler
	for _, t := range faces {
		if t == nil {
			continue
		}
		inter := cut.classify(t)
		switch inter.Kind {
		case IntersectionNone, IntersectionPoint:
			asm.Add(cut.side(t), t)
		case IntersectionSegment:
			for _, sub := range Resplit(t, inter.Hits[0], inter.Hits[1]) {
				asm.Add(cut.side(sub), sub)
			}
		case IntersectionFace:
			asm.Add(SideA, t)
			asm.Add(SideB, t)
		}
	}
	return newResult(asm.Finalize()), nil
}

// SplitMesh is like Split, but for a model3d mesh.
func (s *Splitter) SplitMesh(m *model3d.Mesh, p Plane) (*Result, error) {
	return s.Split(m.TriangleSlice(), p)
}

type Status int

const (
	// StatusEmpty means neither side received any faces.
	StatusEmpty Status = iota

	// StatusPartial means exactly one side received faces.
	StatusPartial

	// StatusSplit means both sides received faces.
	StatusSplit
)

func (s Status) String() string {
	switch s {
	case StatusEmpty:
		return "empty"
	case StatusPartial:
		return "partial"
	case StatusSplit:
		return "split"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// A Result is the outcome of a successful split.
type Result struct {
	// Sides is indexed by Side. Empty sides are nil.
	Sides  [2]*Fragment
	Status Status
}

func newResult(sides [2]*Fragment) *Result {
	res := &Result{Sides: sides}
	for _, f := range sides {
		if f != nil {
			res.Status++
		}
	}
	return res
}

// Fragments returns the non-empty sides in Side order.
func (r *Result) Fragments() []*Fragment {
	res := make([]*Fragment, 0, 2)
	for _, f := range r.Sides {
		if f != nil {
			res = append(res, f)
		}
	}
	return res
}
