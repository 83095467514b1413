package meshcut

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

func TestBuffersIndexed(t *testing.T) {
	b := Buffers[float32, uint16]{
		Vertices: []float32{
			0, 0, 0,
			1, 0, 0,
			0, 1, 0,
			0, 0, 1,
		},
		Indices: []uint16{0, 1, 2, 0, 3, 1},
	}
	faces, err := b.Faces()
	if err != nil {
		t.Fatal(err)
	}
	expected := []model3d.Triangle{
		{model3d.XYZ(0, 0, 0), model3d.XYZ(1, 0, 0), model3d.XYZ(0, 1, 0)},
		{model3d.XYZ(0, 0, 0), model3d.XYZ(0, 0, 1), model3d.XYZ(1, 0, 0)},
	}
	if len(faces) != len(expected) {
		t.Fatalf("expected %d faces but got %d", len(expected), len(faces))
	}
	for i, f := range faces {
		if *f != expected[i] {
			t.Errorf("face %d: expected %v but got %v", i, expected[i], *f)
		}
	}
}

func TestBuffersUnindexed(t *testing.T) {
	b := Buffers[float64, int]{
		Vertices: []float64{
			0, 0, 0, 1, 0, 0, 0, 1, 0,
			2, 2, 2, 3, 2, 2, 2, 3, 2,
		},
	}
	faces, err := b.Faces()
	if err != nil {
		t.Fatal(err)
	}
	if len(faces) != 2 {
		t.Fatalf("expected 2 faces but got %d", len(faces))
	}
	if faces[1][2] != model3d.XYZ(2, 3, 2) {
		t.Errorf("unexpected vertex %v", faces[1][2])
	}
}

func TestBuffersInvalid(t *testing.T) {
	invalid := map[string]Buffers[float64, int]{
		"RaggedVertices": {Vertices: []float64{0, 0, 0, 1}},
		"RaggedFaces":    {Vertices: []float64{0, 0, 0, 1, 1, 1}},
		"RaggedIndices":  {Vertices: []float64{0, 0, 0, 1, 1, 1, 2, 2, 2}, Indices: []int{0, 1}},
		"OutOfRange":     {Vertices: []float64{0, 0, 0, 1, 1, 1, 2, 2, 2}, Indices: []int{0, 1, 3}},
		"Negative":       {Vertices: []float64{0, 0, 0, 1, 1, 1, 2, 2, 2}, Indices: []int{0, -1, 2}},
	}
	for name, b := range invalid {
		if _, err := b.Faces(); errors.Cause(err) != ErrInvalidBuffers {
			t.Errorf("%s: unexpected error %v", name, err)
		}
	}
}

func TestFacesFromVec3(t *testing.T) {
	vertices := []mgl64.Vec3{{-1, -1, 1}, {1, -1, 1}, {0, 1, -1}}
	faces, err := FacesFromVec3(vertices, nil)
	if err != nil {
		t.Fatal(err)
	}
	plane := PlaneFromVec3([3]mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	if plane != xyPlane() {
		t.Fatalf("unexpected plane %v", plane)
	}
	res, err := NewSplitter().Split(faces, plane)
	if err != nil {
		t.Fatal(err)
	}
	if res.Sides[SideA].NumFaces() != 1 || res.Sides[SideB].NumFaces() != 2 {
		t.Errorf("unexpected face counts")
	}

	if _, err := FacesFromVec3(vertices, []uint32{0, 1, 5}); errors.Cause(err) != ErrInvalidBuffers {
		t.Errorf("unexpected error %v", err)
	}
}
