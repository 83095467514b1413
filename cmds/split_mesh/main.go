package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/plane-split/meshcut"
)

func main() {
	var configPath string
	var epsilon float64
	var p0, p1, p2 string
	var axis string
	var threshold float64
	var fragmentsDir string
	flag.StringVar(&configPath, "config", "", "optional split config file")
	flag.Float64Var(&epsilon, "epsilon", -1, "override the configured epsilon")
	flag.StringVar(&p0, "p0", "", "first plane point as x,y,z")
	flag.StringVar(&p1, "p1", "", "second plane point as x,y,z")
	flag.StringVar(&p2, "p2", "", "third plane point as x,y,z")
	flag.StringVar(&axis, "axis", "0,0,1", "plane axis as x,y,z, if -p0/-p1/-p2 are not set")
	flag.Float64Var(&threshold, "threshold", 0, "plane threshold along -axis")
	flag.StringVar(&fragmentsDir, "fragments", "", "directory to also write binary fragments to")
	flag.Parse()

	args := flag.Args()
	if len(args) != 3 {
		fmt.Fprintln(os.Stderr, "Usage: split_mesh [flags] <input.stl> <output_a.stl> <output_b.stl>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath := args[0]
	outputPaths := [2]string{args[1], args[2]}

	splitter := loadSplitter(configPath, epsilon)
	plane := parsePlane(p0, p1, p2, axis, threshold)

	log.Println("Loading mesh...")
	tris, err := meshcut.Load(inputPath, model3d.ReadSTL)
	essentials.Must(err)
	log.Printf(" => loaded %d triangles", len(tris))

	log.Println("Splitting mesh...")
	result, err := splitter.SplitSelection([]meshcut.Item{
		meshcut.MeshItem(tris),
		meshcut.PlaneItem(plane),
	})
	essentials.Must(err)
	if result.Status == meshcut.StatusEmpty {
		essentials.Die("The input mesh has no faces to split.")
	}

	log.Println("Writing outputs...")
	if fragmentsDir != "" {
		essentials.Must(os.MkdirAll(fragmentsDir, 0755))
	}
	for i, fragment := range result.Sides {
		side := meshcut.Side(i)
		if fragment == nil {
			log.Printf(" => side %v is empty, not writing %s", side, outputPaths[i])
			continue
		}
		log.Printf(" => side %v: %d faces, area %f", side, fragment.NumFaces(), fragment.Area())
		essentials.Must(meshcut.Save(outputPaths[i], fragment, meshcut.WriteFragmentSTL))
		if fragmentsDir != "" {
			path := filepath.Join(fragmentsDir, "side_"+side.String()+".bin")
			essentials.Must(meshcut.Save(path, fragment, meshcut.WriteFragment))
		}
	}
}

func loadSplitter(configPath string, epsilon float64) *meshcut.Splitter {
	cfg := meshcut.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = meshcut.ReadConfig(configPath)
		essentials.Must(err)
	}
	if epsilon >= 0 {
		cfg.Split.Epsilon = epsilon
	}
	return cfg.Splitter()
}

func parsePlane(p0, p1, p2, axis string, threshold float64) meshcut.Plane {
	if p0 == "" && p1 == "" && p2 == "" {
		a, err := meshcut.ParseCoord(axis)
		essentials.Must(err)
		return meshcut.NewAxisPlane(a, threshold)
	}
	var res meshcut.Plane
	for i, s := range []string{p0, p1, p2} {
		if s == "" {
			essentials.Die("Must set all of -p0, -p1, and -p2 or none of them. See -help.")
		}
		c, err := meshcut.ParseCoord(s)
		essentials.Must(err)
		res[i] = c
	}
	return res
}
