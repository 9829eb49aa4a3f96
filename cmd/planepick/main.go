// planepick is a CLI utility for testing gaze selection against detected planes.
package main

import (
	"flag"
	"fmt"
	gomath "math"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/holo-terrain/internal/picking"
	"github.com/Faultbox/holo-terrain/pkg/geom"
	"github.com/Faultbox/holo-terrain/pkg/math"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "list", "ls":
		cmdList(args)
	case "pick":
		cmdPick(args)
	case "box":
		cmdBox(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`planepick - gaze selection against detected planes

Usage:
  planepick <command> [options]

Commands:
  list <planes.yaml>                          Show planes with normals and corners
  pick [options] <planes.yaml>                Select the plane hit by a gaze ray
  box [options]                               Test a ray against a box

Examples:
  planepick list planes.yaml
  planepick pick -origin 0,1.6,0 -dir 0,-1,-1 -kind floor,platform planes.yaml
  planepick box -min -1,-1,-1 -max 1,1,1 -pos 0,0,-5 -yaw 30 -origin 0,0,0 -dir 0,0,-1`)
}

func cmdList(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: planepick list <planes.yaml>")
		os.Exit(1)
	}

	planes := loadPlanes(args[0])

	fmt.Printf("Planes: %d\n\n", len(planes))
	for i, p := range planes {
		n := p.Normal()
		fmt.Printf("[%d] %-8s center %s  extents %.2fx%.2f  normal %s\n",
			i, p.Kind, formatVec(p.Center), 2*p.Extents.X, 2*p.Extents.Y, formatVec(n))
		for j, c := range p.Quad() {
			fmt.Printf("      corner %d %s\n", j, formatVec(c))
		}
	}
}

func cmdPick(args []string) {
	fs := flag.NewFlagSet("pick", flag.ExitOnError)
	origin := vec3Flag{}
	dir := vec3Flag{Z: -1}
	fs.Var(&origin, "origin", "Ray origin as x,y,z")
	fs.Var(&dir, "dir", "Ray direction as x,y,z")
	kinds := fs.String("kind", "", "Comma-separated plane kinds to consider (default all)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: planepick pick [options] <planes.yaml>")
		os.Exit(1)
	}

	var filter []picking.Kind
	if *kinds != "" {
		for _, k := range strings.Split(*kinds, ",") {
			kind := picking.Kind(strings.TrimSpace(k))
			if !kind.Valid() {
				fmt.Fprintf(os.Stderr, "Error: unknown plane kind %q\n", kind)
				os.Exit(1)
			}
			filter = append(filter, kind)
		}
	}

	planes := loadPlanes(fs.Arg(0))
	ray := geom.Ray{Origin: math.Vec3(origin), Direction: math.Vec3(dir).Normalize()}

	sel, ok := picking.Pick(ray, planes, filter...)
	if !ok {
		fmt.Println("No plane selected")
		os.Exit(2)
	}

	fmt.Printf("Selected: [%d] %s\n", sel.Index, sel.Plane.Kind)
	fmt.Printf("Distance: %.3f\n", sel.Distance)
	fmt.Printf("Point:    %s\n", formatVec(sel.Point))
}

func cmdBox(args []string) {
	fs := flag.NewFlagSet("box", flag.ExitOnError)
	lo := vec3Flag{X: -0.5, Y: -0.5, Z: -0.5}
	hi := vec3Flag{X: 0.5, Y: 0.5, Z: 0.5}
	pos := vec3Flag{}
	origin := vec3Flag{}
	dir := vec3Flag{Z: -1}
	fs.Var(&lo, "min", "Box minimum corner as x,y,z")
	fs.Var(&hi, "max", "Box maximum corner as x,y,z")
	fs.Var(&pos, "pos", "Oriented box position as x,y,z")
	fs.Var(&origin, "origin", "Ray origin as x,y,z")
	fs.Var(&dir, "dir", "Ray direction as x,y,z")
	yaw := fs.Float64("yaw", 0, "Oriented box rotation about +Y in degrees")
	fs.Parse(args)

	box := geom.NewAABB(math.Vec3(lo), math.Vec3(hi))
	o, d := math.Vec3(origin), math.Vec3(dir)

	rot := math.QuatFromAxisAngle(math.Vec3{Y: 1}, float32(*yaw*gomath.Pi/180))
	world := math.FromTRS(math.Vec3(pos), rot, math.Vec3{X: 1, Y: 1, Z: 1})

	fmt.Printf("AABB (slab):        %v\n", geom.RayAABBIntersect(o, d, box))
	fmt.Printf("AABB (strict slab): %v\n", geom.RayAABBIntersectStrict(o, d, box))
	fmt.Printf("OBB:                %v\n", geom.RayOBBIntersect(o, d, box, world))
}

func loadPlanes(path string) []picking.BoundedPlane {
	planes, err := picking.LoadPlanes(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return planes
}

func formatVec(v math.Vec3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}

// vec3Flag parses "x,y,z".
type vec3Flag math.Vec3

func (v *vec3Flag) String() string {
	return fmt.Sprintf("%g,%g,%g", v.X, v.Y, v.Z)
}

func (v *vec3Flag) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return fmt.Errorf("want x,y,z, got %q", s)
	}
	var c [3]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return fmt.Errorf("component %d: %w", i, err)
		}
		c[i] = float32(f)
	}
	*v = vec3Flag{X: c[0], Y: c[1], Z: c[2]}
	return nil
}
