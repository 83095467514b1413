package meshcut

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

type ItemKind int

const (
	ItemMesh ItemKind = iota
	ItemPlane
)

func (i ItemKind) String() string {
	switch i {
	case ItemMesh:
		return "mesh"
	case ItemPlane:
		return "plane"
	}
	return fmt.Sprintf("ItemKind(%d)", int(i))
}

// An Item is one selected host object. Only the field matching Kind is used.
type Item struct {
	Kind  ItemKind
	Faces []*model3d.Triangle
	Plane Plane
}

func MeshItem(faces []*model3d.Triangle) Item {
	return Item{Kind: ItemMesh, Faces: faces}
}

func PlaneItem(p Plane) Item {
	return Item{Kind: ItemPlane, Plane: p}
}

// SelectOperands picks the mesh and the plane out of a host selection.
//
// Returns ErrInvalidSelection unless items holds exactly one mesh and one
// plane, in either order.
func SelectOperands(items []Item) ([]*model3d.Triangle, Plane, error) {
	if len(items) != 2 {
		return nil, Plane{}, errors.Wrapf(ErrInvalidSelection, "got %d items", len(items))
	}
	var meshes, planes []Item
	for _, item := range items {
		switch item.Kind {
		case ItemMesh:
			meshes = append(meshes, item)
		case ItemPlane:
			planes = append(planes, item)
		default:
			return nil, Plane{}, errors.Wrapf(ErrInvalidSelection, "unknown item kind %v", item.Kind)
		}
	}
	if len(meshes) != 1 || len(planes) != 1 {
		return nil, Plane{}, errors.Wrapf(ErrInvalidSelection, "got %d meshes and %d planes",
			len(meshes), len(planes))
	}
	return meshes[0].Faces, planes[0].Plane, nil
}

// SplitSelection splits the single mesh in a selection by its single plane.
func (s *Splitter) SplitSelection(items []Item) (*Result, error) {
	faces, p, err := SelectOperands(items)
	if err != nil {
		return nil, errors.Wrap(err, "split selection")
	}
	return s.Split(faces, p)
}
