package meshcut

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// WriteFragment serializes f in a 32-bit precision binary format.
//
// The format is a little-endian uint32 face count, followed by twelve
// float32 values per face: the normal, then the three vertices.
func WriteFragment(w io.Writer, f *Fragment) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(f.NumFaces())); err != nil {
		return errors.Wrap(err, "write fragment")
	}
	values := make([]float32, 12)
	for i, t := range f.triangles {
		for j, c := range [4]model3d.Coord3D{f.normals[i], t[0], t[1], t[2]} {
			values[j*3] = float32(c.X)
			values[j*3+1] = float32(c.Y)
			values[j*3+2] = float32(c.Z)
		}
		if err := binary.Write(w, binary.LittleEndian, values); err != nil {
			return errors.Wrap(err, "write fragment")
		}
	}
	return nil
}

// ReadFragment reads the output written by WriteFragment.
func ReadFragment(r io.Reader) (*Fragment, error) {
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, errors.Wrap(err, "read fragment")
	}

	// The count is untrusted, so don't preallocate from it.
	res := &Fragment{}
	var values [12]float32
	for i := uint32(0); i < count; i++ {
		if err := binary.Read(r, binary.LittleEndian, &values); err != nil {
			return nil, errors.Wrapf(err, "read fragment face %d", i)
		}
		var coords [4]model3d.Coord3D
		for j := range coords {
			coords[j] = model3d.XYZ(
				float64(values[j*3]),
				float64(values[j*3+1]),
				float64(values[j*3+2]),
			)
		}
		res.normals = append(res.normals, coords[0])
		res.triangles = append(res.triangles, &model3d.Triangle{coords[1], coords[2], coords[3]})
	}
	return res, nil
}

// Save writes an object to a file using a serialization function.
func Save[T any](path string, obj T, fn func(w io.Writer, obj T) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "save")
	}
	if err := fn(f, obj); err != nil {
		f.Close()
		return errors.Wrap(err, "save")
	}
	return errors.Wrap(f.Close(), "save")
}

// Load reads an object from a file using a deserialization function.
func Load[T any](path string, fn func(r io.Reader) (T, error)) (T, error) {
	f, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, errors.Wrap(err, "load")
	}
	defer f.Close()
	res, err := fn(f)
	if err != nil {
		return res, errors.Wrap(err, "load")
	}
	return res, nil
}

// WriteFragmentSTL writes f as a binary STL file.
func WriteFragmentSTL(w io.Writer, f *Fragment) error {
	return errors.Wrap(model3d.WriteSTL(w, f.triangles), "write fragment STL")
}
