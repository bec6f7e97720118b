package gridsearch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Point is a cell coordinate; X grows to the right, Y grows downwards.
type Point struct {
	X, Y int
}

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Neighbor is a passable cell adjacent to some other cell, with the cost of stepping onto it.
type Neighbor struct {
	Point Point
	Cost  int
}

// directions is the fixed neighbor enumeration order: +x, -x, +y, -y.
// The search engine breaks priority ties by discovery order, so changing it changes results.
var directions = [4]Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Grid is a rectangular terrain board with exactly one start and one goal.
// It is immutable once loaded and safe for concurrent readers.
type Grid struct {
	rows   []string
	width  int
	height int
	start  Point
	goal   Point
}

// LoadFile reads a board from a text file.
func LoadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open board %s: %w", path, err)
	}
	defer f.Close()

	g, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load board %s: %w", path, err)
	}
	return g, nil
}

// Load reads one board row per line from r.
func Load(r io.Reader) (*Grid, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		rows = append(rows, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read board: %w", err)
	}
	return Parse(rows)
}

// Parse builds a Grid from board rows. Surrounding whitespace on each row is
// ignored, as are blank lines at the end of the input.
func Parse(lines []string) (*Grid, error) {
	rows := make([]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, strings.TrimSpace(line))
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, &MalformedGridError{Reason: "board is empty", Row: -1}
	}

	g := &Grid{rows: rows, width: len(rows[0]), height: len(rows)}
	var starts, goals int
	for y, row := range rows {
		if len(row) != g.width {
			return nil, &MalformedGridError{
				Reason:   "board is not rectangular",
				Row:      y,
				Expected: g.width,
				Actual:   len(row),
				Line:     row,
			}
		}
		for x := 0; x < len(row); x++ {
			t := Terrain(row[x])
			switch {
			case t == Start:
				starts++
				g.start = Point{x, y}
			case t == Goal:
				goals++
				g.goal = Point{x, y}
			case !t.Valid():
				return nil, &MalformedGridError{
					Reason: fmt.Sprintf("unknown terrain %q at column %d", row[x], x),
					Row:    y,
					Line:   row,
				}
			}
		}
	}
	if starts != 1 {
		return nil, &MalformedGridError{Reason: fmt.Sprintf("want exactly one start marker %q, found %d", Start, starts), Row: -1}
	}
	if goals != 1 {
		return nil, &MalformedGridError{Reason: fmt.Sprintf("want exactly one goal marker %q, found %d", Goal, goals), Row: -1}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Start returns the start cell.
func (g *Grid) Start() Point { return g.start }

// Goal returns the goal cell.
func (g *Grid) Goal() Point { return g.goal }

// Rows returns a copy of the board text, one string per row.
func (g *Grid) Rows() []string {
	return append([]string(nil), g.rows...)
}

// InBounds reports whether (x, y) lies on the board.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the terrain code at (x, y). Out-of-bounds cells read as Wall.
func (g *Grid) At(x, y int) Terrain {
	if !g.InBounds(x, y) {
		return Wall
	}
	return Terrain(g.rows[y][x])
}

// IsWall reports whether (x, y) is a wall. The board edge behaves as a wall ring.
func (g *Grid) IsWall(x, y int) bool {
	return g.At(x, y) == Wall
}

// Cost returns the entry cost of p. Callers must not ask for walls.
func (g *Grid) Cost(p Point) int {
	c, _ := g.At(p.X, p.Y).Cost()
	return c
}

// Neighbors returns the passable cells adjacent to p in +x, -x, +y, -y order.
func (g *Grid) Neighbors(p Point) []Neighbor {
	out := make([]Neighbor, 0, len(directions))
	for _, d := range directions {
		q := Point{p.X + d.X, p.Y + d.Y}
		if g.IsWall(q.X, q.Y) {
			continue
		}
		out = append(out, Neighbor{Point: q, Cost: g.Cost(q)})
	}
	return out
}

// Heuristic returns the Manhattan distance from p to the goal.
func (g *Grid) Heuristic(p Point) int {
	return abs(p.X-g.goal.X) + abs(p.Y-g.goal.Y)
}

// IsGoal reports whether p is the goal cell.
func (g *Grid) IsGoal(p Point) bool { return p == g.goal }

// StartNode returns the root of every search over g.
func (g *Grid) StartNode() SearchNode {
	return SearchNode{
		Point:  g.start,
		Cost:   0,
		G:      0,
		H:      g.Heuristic(g.start),
		parent: noParent,
	}
}

// Reachable counts the non-wall cells connected to the start, start included.
func (g *Grid) Reachable() int {
	seen := map[Point]bool{g.start: true}
	queue := []Point{g.start}
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range g.Neighbors(queue[qi]) {
			if !seen[n.Point] {
				seen[n.Point] = true
				queue = append(queue, n.Point)
			}
		}
	}
	return len(queue)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
