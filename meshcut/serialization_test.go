package meshcut

import (
	"bytes"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/unixpickle/model3d/model3d"
)

func TestReadWriteFragment(t *testing.T) {
	// Note: all values in this fragment are equivalent in float32 and float64.
	fragment := newFragment([]*model3d.Triangle{
		{model3d.XYZ(0, 0, 0), model3d.XYZ(1, 0, 0), model3d.XYZ(0, 1, 0)},
		{model3d.XYZ(-0.5, 0.25, 2), model3d.XYZ(-0.5, 0.25, 4), model3d.XYZ(-0.5, 2.25, 2)},
	})
	var b bytes.Buffer
	if err := WriteFragment(&b, fragment); err != nil {
		t.Fatal(err)
	}
	if b.Len() != 4+2*12*4 {
		t.Fatalf("unexpected encoded size %d", b.Len())
	}
	if result, err := ReadFragment(&b); err != nil {
		t.Fatal(err)
	} else {
		if !reflect.DeepEqual(result, fragment) {
			t.Fatalf("%v != %v", fragment, result)
		}
	}
}

func TestReadFragmentTruncated(t *testing.T) {
	fragment := newFragment([]*model3d.Triangle{
		{model3d.XYZ(0, 0, 0), model3d.XYZ(1, 0, 0), model3d.XYZ(0, 1, 0)},
	})
	var b bytes.Buffer
	if err := WriteFragment(&b, fragment); err != nil {
		t.Fatal(err)
	}
	data := b.Bytes()
	if _, err := ReadFragment(bytes.NewReader(data[:len(data)-5])); err == nil {
		t.Fatal("expected error for truncated data")
	}
}

func TestSaveLoadFragment(t *testing.T) {
	res, err := NewSplitter().Split([]*model3d.Triangle{
		{model3d.XYZ(-1, -1, 1), model3d.XYZ(1, -1, 1), model3d.XYZ(0, 1, -1)},
	}, xyPlane())
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	for side, f := range res.Sides {
		path := filepath.Join(dir, Side(side).String()+".bin")
		if err := Save(path, f, WriteFragment); err != nil {
			t.Fatal(err)
		}
		loaded, err := Load(path, ReadFragment)
		if err != nil {
			t.Fatal(err)
		}
		if loaded.NumFaces() != f.NumFaces() {
			t.Fatalf("side %d: expected %d faces but got %d", side, f.NumFaces(), loaded.NumFaces())
		}

		stlPath := filepath.Join(dir, Side(side).String()+".stl")
		if err := Save(stlPath, f, WriteFragmentSTL); err != nil {
			t.Fatal(err)
		}
		tris, err := Load(stlPath, model3d.ReadSTL)
		if err != nil {
			t.Fatal(err)
		}
		if len(tris) != f.NumFaces() {
			t.Fatalf("side %d: expected %d STL faces but got %d", side, f.NumFaces(), len(tris))
		}
	}

	if _, err := Load(filepath.Join(dir, "missing.bin"), ReadFragment); err == nil {
		t.Fatal("expected error for missing file")
	}
}
