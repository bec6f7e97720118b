package gridsearch

// Terrain is the single-character code of a board cell.
type Terrain byte

// Board alphabet.
const (
	Wall      Terrain = '#'
	Start     Terrain = 'A'
	Goal      Terrain = 'B'
	Water     Terrain = 'w'
	Mountain  Terrain = 'm'
	Forest    Terrain = 'f'
	Grassland Terrain = 'g'
	Road      Terrain = 'r'
	Plain     Terrain = '.'

	// PathMarker is only used when rendering a solution; it is not valid board input.
	PathMarker Terrain = 'o'
)

// terrainCost maps every passable code to the cost of entering a cell of that kind.
var terrainCost = map[Terrain]int{
	Water:     100,
	Mountain:  50,
	Forest:    10,
	Grassland: 5,
	Road:      1,
	Plain:     1,
	Start:     0,
	Goal:      0,
}

// LegendEntry names a terrain code for diagnostic output.
type LegendEntry struct {
	Code Terrain
	Name string
}

// Legend lists the named codes in display order.
var Legend = []LegendEntry{
	{Water, "Water"},
	{Mountain, "Mountain"},
	{Forest, "Forest"},
	{Grassland, "Grassland"},
	{Road, "Road"},
	{Start, "Start"},
	{Goal, "End"},
	{PathMarker, "Optimal path"},
	{Wall, "Wall"},
}

// terrainColor holds the ANSI foreground code of each renderable character.
var terrainColor = map[Terrain]int{
	Plain:      30,
	Road:       30,
	Water:      34,
	Mountain:   92,
	Forest:     32,
	Grassland:  33,
	PathMarker: 35,
	Start:      31,
	Goal:       36,
	Wall:       37,
}

// Cost returns the entry cost of t. ok is false for walls and unknown codes.
func (t Terrain) Cost() (cost int, ok bool) {
	cost, ok = terrainCost[t]
	return cost, ok
}

// Color returns the ANSI foreground color code used to draw t.
func (t Terrain) Color() (fg int, ok bool) {
	fg, ok = terrainColor[t]
	return fg, ok
}

// Valid reports whether t may appear in a board file.
func (t Terrain) Valid() bool {
	if t == Wall {
		return true
	}
	_, ok := terrainCost[t]
	return ok
}

func (t Terrain) String() string { return string(rune(t)) }
