package meshcut

import (
	"testing"

	"github.com/unixpickle/model3d/model3d"
)

func TestSide(t *testing.T) {
	s := NewSplitter()
	p := xyPlane()
	testCases := []struct {
		Name     string
		Triangle model3d.Triangle
		Expected Side
	}{
		{
			Name:     "Below",
			Triangle: model3d.Triangle{model3d.XYZ(0, 0, -1), model3d.XYZ(1, 0, -2), model3d.XYZ(0, 1, -1)},
			Expected: SideA,
		},
		{
			Name:     "Above",
			Triangle: model3d.Triangle{model3d.XYZ(0, 0, 1), model3d.XYZ(1, 0, 2), model3d.XYZ(0, 1, 1)},
			Expected: SideB,
		},
		{
			Name:     "BelowTouching",
			Triangle: model3d.Triangle{model3d.XYZ(0, 0, 0), model3d.XYZ(1, 0, -2), model3d.XYZ(0, 1, -1)},
			Expected: SideA,
		},
		{
			Name:     "BelowCorner",
			Triangle: model3d.Triangle{model3d.XYZ(0, 0, -1), model3d.XYZ(1, 0, 0), model3d.XYZ(0, 1, 0)},
			Expected: SideA,
		},
		{
			Name:     "AboveCorner",
			Triangle: model3d.Triangle{model3d.XYZ(0, 0, 1), model3d.XYZ(1, 0, 0), model3d.XYZ(0, 1, 0)},
			Expected: SideB,
		},
		{
			Name:     "InPlane",
			Triangle: model3d.Triangle{model3d.XYZ(0, 0, 0), model3d.XYZ(1, 0, 0.001), model3d.XYZ(0, 1, 0)},
			Expected: SideB,
		},
		{
			Name:     "Tie",
			Triangle: model3d.Triangle{model3d.XYZ(0, 0, 1), model3d.XYZ(1, 0, -1), model3d.XYZ(0, 1, 0)},
			Expected: SideB,
		},
	}
	for _, tc := range testCases {
		if actual := s.Side(p, &tc.Triangle); actual != tc.Expected {
			t.Errorf("%s: expected side %v but got %v", tc.Name, tc.Expected, actual)
		}
	}
}

func TestSideAxisPlane(t *testing.T) {
	s := NewSplitter()
	axis := model3d.XYZ(1, 2, -0.5)
	p := NewAxisPlane(axis, 0.3)
	for i := 0; i < 1000; i++ {
		c := model3d.NewCoord3DRandNorm()
		dot := axis.Dot(c)
		if dot > 0.25 && dot < 0.35 {
			continue
		}
		tri := &model3d.Triangle{c, c, c}
		expected := SideB
		if dot < 0.3 {
			expected = SideA
		}
		if actual := s.Side(p, tri); actual != expected {
			t.Fatalf("point %v (dot %f) should be on side %v but got %v", c, dot, expected, actual)
		}
	}
}
