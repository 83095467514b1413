package meshcut

import (
	"math"

	"github.com/unixpickle/model3d/model3d"
)

// degenerateTolerance bounds |e1 x e2| relative to the squared longest edge
// of a triangle below which the triangle is treated as having no area.
const degenerateTolerance = 1e-10

// A Fragment is one side of a split mesh.
//
// Fragments are immutable once built. Each face has its own vertices, listed
// in winding order, and a unit normal derived from that winding.
type Fragment struct {
	triangles []*model3d.Triangle
	normals   []model3d.Coord3D
}

func newFragment(triangles []*model3d.Triangle) *Fragment {
	normals := make([]model3d.Coord3D, len(triangles))
	for i, t := range triangles {
		normals[i] = t.Normal()
	}
	return &Fragment{triangles: triangles, normals: normals}
}

func (f *Fragment) NumFaces() int {
	return len(f.triangles)
}

// Triangles returns copies of the faces in the fragment.
func (f *Fragment) Triangles() []*model3d.Triangle {
	res := make([]*model3d.Triangle, len(f.triangles))
	for i, t := range f.triangles {
		tCopy := *t
		res[i] = &tCopy
	}
	return res
}

func (f *Fragment) Normals() []model3d.Coord3D {
	return append([]model3d.Coord3D{}, f.normals...)
}

// Area computes the total surface area of the fragment.
func (f *Fragment) Area() float64 {
	var res float64
	for _, t := range f.triangles {
		res += t.Area()
	}
	return res
}

// Mesh creates a new model3d mesh containing the fragment's faces.
func (f *Fragment) Mesh() *model3d.Mesh {
	return model3d.NewMeshTriangles(f.Triangles())
}

// VertexBuffer returns flat xyz coordinates, three vertices per face.
func (f *Fragment) VertexBuffer() []float64 {
	res := make([]float64, 0, len(f.triangles)*9)
	for _, t := range f.triangles {
		for _, c := range t {
			res = append(res, c.X, c.Y, c.Z)
		}
	}
	return res
}

// NormalBuffer returns flat xyz normals, one per face.
func (f *Fragment) NormalBuffer() []float64 {
	res := make([]float64, 0, len(f.normals)*3)
	for _, n := range f.normals {
		res = append(res, n.X, n.Y, n.Z)
	}
	return res
}

// An assembler accumulates faces for both sides of a split.
type assembler struct {
	sides [2][]*model3d.Triangle
}

// Add copies t into the given side, dropping it if it has no area.
func (a *assembler) Add(side Side, t *model3d.Triangle) {
	if isDegenerate(t) {
		return
	}
	tCopy := *t
	a.sides[side] = append(a.sides[side], &tCopy)
}

// Finalize builds one fragment per side, or nil for an empty side.
func (a *assembler) Finalize() [2]*Fragment {
	var res [2]*Fragment
	for i, tris := range a.sides {
		if len(tris) > 0 {
			res[i] = newFragment(tris)
		}
	}
	return res
}

func isDegenerate(t *model3d.Triangle) bool {
	e1 := t[1].Sub(t[0])
	e2 := t[2].Sub(t[0])
	e3 := t[2].Sub(t[1])
	scale := math.Max(e1.Norm(), math.Max(e2.Norm(), e3.Norm()))
	area := e1.Cross(e2).Norm()

	// Written so that NaN coordinates count as degenerate.
	return !(area > degenerateTolerance*scale*scale)
}
