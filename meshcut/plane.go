package meshcut

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// A Plane is an infinite cutting plane spanned by three ordered points.
//
// The normal of the plane is (p[1]-p[0]) x (p[2]-p[0]), so the winding of the
// points determines which side of the plane is SideA.
type Plane [3]model3d.Coord3D

func NewPlane(p0, p1, p2 model3d.Coord3D) Plane {
	return Plane{p0, p1, p2}
}

// NewAxisPlane creates the plane of points x where axis*x = threshold.
//
// Points with axis*x < threshold are on SideA of the resulting plane, and
// points with axis*x > threshold are on SideB.
func NewAxisPlane(axis model3d.Coord3D, threshold float64) Plane {
	sqNorm := axis.Dot(axis)
	if sqNorm == 0 {
		return Plane{}
	}
	origin := axis.Scale(threshold / sqNorm)
	u, v := axis.OrthoBasis()
	if u.Cross(v).Dot(axis) < 0 {
		u, v = v, u
	}
	return Plane{origin, origin.Add(u), origin.Add(v)}
}

// Origin returns the first spanning point.
func (p Plane) Origin() model3d.Coord3D {
	return p[0]
}

// Normal returns the unnormalized normal of the spanning triangle.
// Its magnitude is twice the area of the triangle.
func (p Plane) Normal() model3d.Coord3D {
	return p[1].Sub(p[0]).Cross(p[2].Sub(p[0]))
}

// ParseCoord parses a comma-separated "x,y,z" coordinate.
func ParseCoord(s string) (model3d.Coord3D, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return model3d.Coord3D{}, errors.Errorf("parse coord %q: expected 3 components", s)
	}
	var values [3]float64
	for i, part := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return model3d.Coord3D{}, errors.Wrapf(err, "parse coord %q", s)
		}
		values[i] = x
	}
	return model3d.XYZ(values[0], values[1], values[2]), nil
}
