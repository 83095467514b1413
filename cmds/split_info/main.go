package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/plane-split/meshcut"
)

func main() {
	var configPath string
	var axis string
	var numPlanes int
	flag.StringVar(&configPath, "config", "", "optional split config file")
	flag.StringVar(&axis, "axis", "0,0,1", "axis of the cutting planes as x,y,z")
	flag.IntVar(&numPlanes, "planes", 5, "number of evenly spaced planes across the mesh")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 || numPlanes < 1 {
		fmt.Fprintln(os.Stderr, "Usage: split_info [flags] <input.stl>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath := args[0]

	cfg := meshcut.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = meshcut.ReadConfig(configPath)
		essentials.Must(err)
	}
	splitter := cfg.Splitter()
	axisCoord, err := meshcut.ParseCoord(axis)
	essentials.Must(err)

	log.Println("Loading mesh...")
	tris, err := meshcut.Load(inputPath, model3d.ReadSTL)
	essentials.Must(err)
	if len(tris) == 0 {
		essentials.Die("The input mesh has no faces.")
	}

	// Planes are spaced strictly inside the range of the mesh along the axis.
	minDot, maxDot := math.Inf(1), math.Inf(-1)
	for _, c := range model3d.NewMeshTriangles(tris).VertexSlice() {
		dot := axisCoord.Dot(c)
		minDot = math.Min(minDot, dot)
		maxDot = math.Max(maxDot, dot)
	}
	jobs := make([]meshcut.Job, numPlanes)
	for i := range jobs {
		frac := float64(i+1) / float64(numPlanes+1)
		jobs[i] = meshcut.Job{
			Faces: tris,
			Plane: meshcut.NewAxisPlane(axisCoord, minDot+(maxDot-minDot)*frac),
		}
	}

	log.Println("Splitting mesh...")
	results := splitter.SplitBatch(jobs, cfg.Split.Concurrency)

	fmt.Println("Number of faces:", len(tris))
	for i, res := range results {
		essentials.Must(res.Err)
		counts := map[meshcut.IntersectionKind]int{}
		for _, t := range tris {
			counts[splitter.Classify(jobs[i].Plane, t).Kind]++
		}
		sideFaces := [2]int{}
		for side, f := range res.Result.Sides {
			if f != nil {
				sideFaces[side] = f.NumFaces()
			}
		}
		fmt.Printf(
			"Plane %d: status=%v none=%d point=%d segment=%d face=%d sideA=%d sideB=%d\n",
			i,
			res.Result.Status,
			counts[meshcut.IntersectionNone],
			counts[meshcut.IntersectionPoint],
			counts[meshcut.IntersectionSegment],
			counts[meshcut.IntersectionFace],
			sideFaces[0],
			sideFaces[1],
		)
	}
}
