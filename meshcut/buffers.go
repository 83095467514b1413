package meshcut

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
	"golang.org/x/exp/constraints"
)

var ErrInvalidBuffers = errors.New("invalid mesh buffers")

// Buffers is a host-side mesh: a flat xyz vertex buffer and an optional
// index buffer.
//
// If Indices is empty, consecutive triples of vertices form faces.
// Otherwise, consecutive triples of indices do.
type Buffers[F constraints.Float, I constraints.Integer] struct {
	Vertices []F
	Indices  []I
}

func (b Buffers[F, I]) NumVertices() int {
	return len(b.Vertices) / 3
}

func (b Buffers[F, I]) vertex(i int) model3d.Coord3D {
	return model3d.XYZ(
		float64(b.Vertices[i*3]),
		float64(b.Vertices[i*3+1]),
		float64(b.Vertices[i*3+2]),
	)
}

// Faces expands the buffers into a face soup.
func (b Buffers[F, I]) Faces() ([]*model3d.Triangle, error) {
	if len(b.Vertices)%3 != 0 {
		return nil, errors.Wrapf(ErrInvalidBuffers, "vertex buffer length %d is not a multiple of 3",
			len(b.Vertices))
	}
	numVertices := b.NumVertices()

	if len(b.Indices) == 0 {
		if numVertices%3 != 0 {
			return nil, errors.Wrapf(ErrInvalidBuffers,
				"vertex count %d is not a multiple of 3 for an unindexed mesh", numVertices)
		}
		res := make([]*model3d.Triangle, 0, numVertices/3)
		for i := 0; i < numVertices; i += 3 {
			res = append(res, &model3d.Triangle{b.vertex(i), b.vertex(i + 1), b.vertex(i + 2)})
		}
		return res, nil
	}

	if len(b.Indices)%3 != 0 {
		return nil, errors.Wrapf(ErrInvalidBuffers, "index buffer length %d is not a multiple of 3",
			len(b.Indices))
	}
	res := make([]*model3d.Triangle, 0, len(b.Indices)/3)
	for i := 0; i < len(b.Indices); i += 3 {
		var t model3d.Triangle
		for j := 0; j < 3; j++ {
			idx := int(b.Indices[i+j])
			if b.Indices[i+j] < 0 || idx < 0 || idx >= numVertices {
				return nil, errors.Wrapf(ErrInvalidBuffers, "index %d out of range at position %d",
					b.Indices[i+j], i+j)
			}
			t[j] = b.vertex(idx)
		}
		res = append(res, &t)
	}
	return res, nil
}

// FacesFromMesh returns the faces of a model3d mesh.
func FacesFromMesh(m *model3d.Mesh) []*model3d.Triangle {
	return m.TriangleSlice()
}

// FacesFromVec3 expands mathgl vertex and index buffers into a face soup.
// As with Buffers, a nil indices slice means vertices form consecutive faces.
func FacesFromVec3(vertices []mgl64.Vec3, indices []uint32) ([]*model3d.Triangle, error) {
	flat := make([]float64, 0, len(vertices)*3)
	for _, v := range vertices {
		flat = append(flat, v[0], v[1], v[2])
	}
	return Buffers[float64, uint32]{Vertices: flat, Indices: indices}.Faces()
}

// PlaneFromVec3 creates a plane from three mathgl points.
func PlaneFromVec3(points [3]mgl64.Vec3) Plane {
	var res Plane
	for i, p := range points {
		res[i] = model3d.XYZ(p[0], p[1], p[2])
	}
	return res
}
