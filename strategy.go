package gridsearch

import (
	"fmt"
	"strings"
)

// Strategy selects how the engine orders its frontier.
type Strategy int

const (
	// AStar expands the open node with the lowest g + h.
	AStar Strategy = iota
	// Dijkstra expands the open node with the lowest g and ignores the heuristic.
	Dijkstra
	// BFS expands open nodes in discovery order. Terrain costs vary, so the
	// path it returns is not necessarily the cheapest one.
	BFS
)

var strategyNames = map[Strategy]string{
	AStar:    "A*",
	Dijkstra: "Dijkstra",
	BFS:      "BFS",
}

// Strategies returns every strategy in its canonical order.
func Strategies() []Strategy { return []Strategy{AStar, Dijkstra, BFS} }

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Valid reports whether s is one of the defined strategies.
func (s Strategy) Valid() bool {
	_, ok := strategyNames[s]
	return ok
}

// ParseStrategy accepts "astar", "a*", "dijkstra", "ucs" and "bfs", case-insensitively.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "astar", "a*", "a-star":
		return AStar, nil
	case "dijkstra", "ucs":
		return Dijkstra, nil
	case "bfs":
		return BFS, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// MarshalText encodes s by name.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes any spelling accepted by ParseStrategy.
func (s *Strategy) UnmarshalText(text []byte) error {
	v, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// priority is the frontier key of n; lower is expanded first.
func (s Strategy) priority(n *SearchNode) int {
	switch s {
	case AStar:
		return n.G + n.H
	case Dijkstra:
		return n.G
	default:
		return 0
	}
}
