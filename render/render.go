// Package render draws boards, solution paths and run statistics as text.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pdrpinto/gridsearch"
)

const (
	labelWidth = 10
	cellWidth  = 5
)

// Colorize wraps t in ANSI escapes: its foreground color on a background ten
// codes higher. Characters without a color are returned unchanged.
func Colorize(t gridsearch.Terrain) string {
	fg, ok := t.Color()
	if !ok {
		return t.String()
	}
	return fmt.Sprintf("\033[%d;%dm%s\033[0m", fg, fg+10, t)
}

func glyph(t gridsearch.Terrain, color bool) string {
	if color {
		return Colorize(t)
	}
	return t.String()
}

// Board writes one line per row. Path cells are drawn as the path marker,
// except the start and goal which keep their own markers.
func Board(w io.Writer, grid *gridsearch.Grid, path []gridsearch.Point, color bool) error {
	onPath := make(map[gridsearch.Point]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}

	bw := bufio.NewWriter(w)
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			t := grid.At(x, y)
			if onPath[gridsearch.Point{X: x, Y: y}] && t != gridsearch.Start && t != gridsearch.Goal {
				t = gridsearch.PathMarker
			}
			bw.WriteString(glyph(t, color))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Legend writes the terrain legend, one code per line.
func Legend(w io.Writer, color bool) error {
	var b strings.Builder
	b.WriteString("-- Color Legend --\n")
	for _, entry := range gridsearch.Legend {
		fmt.Fprintf(&b, "%s - %s\n", glyph(entry.Code, color), entry.Name)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Stats writes the per-board cost, closed and discovered counts of one
// strategy as right-aligned columns. Boards without a path show "-" as cost.
func Stats(w io.Writer, name string, results []gridsearch.Result) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%*s\n", labelWidth, name)

	fmt.Fprintf(&b, "%*s", labelWidth, "Costs")
	for _, r := range results {
		if r.Found {
			fmt.Fprintf(&b, "%*d", cellWidth, r.TotalCost)
		} else {
			fmt.Fprintf(&b, "%*s", cellWidth, "-")
		}
	}
	b.WriteByte('\n')

	row := func(label string, value func(gridsearch.Result) int) {
		fmt.Fprintf(&b, "%*s", labelWidth, label)
		for _, r := range results {
			fmt.Fprintf(&b, "%*d", cellWidth, value(r))
		}
		b.WriteByte('\n')
	}
	row("Closed", func(r gridsearch.Result) int { return r.Closed })
	row("Discovered", func(r gridsearch.Result) int { return r.Open })

	_, err := io.WriteString(w, b.String())
	return err
}
