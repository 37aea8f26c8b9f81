// Command vecplot computes the basic relations between two vectors
// (magnitudes, dot product, angle, projection, parallel/orthogonal
// predicates) and can render a 2-D diagram of the operands and the
// projection to a PNG file.
//
// Usage:
//
//	vecplot -a 3,4 -b 1,0 -o vectors.png
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/dglmartins/vecspace/vector"
)

func main() {
	var (
		aFlag = flag.String("a", "3,4", "first vector, comma-separated coordinates")
		bFlag = flag.String("b", "1,0", "second vector, comma-separated coordinates")
		out   = flag.String("o", "", "write a PNG diagram to this path (two-dimensional vectors only)")
	)
	flag.Parse()

	a, err := parseVector(*aFlag)
	if err != nil {
		log.Fatal(err)
	}
	b, err := parseVector(*bFlag)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("a = %v, |a| = %g\n", a, a.Magnitude())
	fmt.Printf("b = %v, |b| = %g\n", b, b.Magnitude())
	fmt.Printf("a + b = %v\n", a.Plus(b))
	fmt.Printf("a - b = %v\n", a.Minus(b))
	fmt.Printf("dot(a, b) = %g\n", a.Dot(b))
	fmt.Printf("distance(a, b) = %g\n", a.Distance(b))
	fmt.Printf("parallel: %v, orthogonal: %v\n", a.Parallel(b), a.Orthogonal(b))

	if angle, err := vector.AngleBetween(a, b); err != nil {
		fmt.Printf("angle(a, b): undefined (%v)\n", err)
	} else {
		fmt.Printf("angle(a, b) = %g rad (%g deg)\n", angle.Radians, angle.Degrees)
	}

	proj, err := a.Project(b)
	if err != nil {
		fmt.Printf("projection of a onto b: undefined (%v)\n", err)
	} else {
		fmt.Printf("projection of a onto b = %v\n", proj)
	}

	if *out != "" {
		if err := render(a, b, proj, *out); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", *out)
	}
}

func parseVector(s string) (vector.Vector, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return vector.New(), nil
	}
	parts := strings.Split(s, ",")
	coords := make([]float64, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return vector.Vector{}, fmt.Errorf("vecplot: bad coordinate %q: %w", p, err)
		}
		coords = append(coords, f)
	}
	return vector.New(coords...), nil
}

func render(a, b, proj vector.Vector, path string) error {
	if a.Dimension() != 2 || b.Dimension() != 2 {
		return fmt.Errorf("vecplot: plotting requires two-dimensional vectors, got %d and %d",
			a.Dimension(), b.Dimension())
	}

	p := plot.New()
	p.Title.Text = "vectors"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	add := func(v vector.Vector, name string, col color.Color) error {
		line, err := plotter.NewLine(plotter.XYs{
			{X: 0, Y: 0},
			{X: v.At(0), Y: v.At(1)},
		})
		if err != nil {
			return err
		}
		line.Color = col
		line.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add(name, line)
		return nil
	}

	if err := add(a, "a", color.RGBA{R: 0xd6, G: 0x2e, B: 0x2e, A: 0xff}); err != nil {
		return err
	}
	if err := add(b, "b", color.RGBA{R: 0x2e, G: 0x5b, B: 0xd6, A: 0xff}); err != nil {
		return err
	}
	if !proj.IsZero() {
		if err := add(proj, "proj of a onto b", color.RGBA{R: 0x2e, G: 0xa0, B: 0x4f, A: 0xff}); err != nil {
			return err
		}
	}

	return p.Save(5*vg.Inch, 5*vg.Inch, path)
}
