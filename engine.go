package gridsearch

import (
	"container/heap"

	"github.com/pdrpinto/gridsearch/internal"
)

type nodeID int32

const noParent nodeID = -1

type nodeState uint8

const (
	stateOpen nodeState = iota + 1
	stateClosed
)

// SearchNode is the search-time record of a discovered cell.
// Two nodes describe the same cell iff their Points match.
type SearchNode struct {
	Point
	// Cost is the price of stepping onto the cell.
	Cost int
	// G is the cheapest known cost from the start.
	G int
	// H is the heuristic estimate to the goal, fixed at discovery.
	H int

	parent   nodeID
	children []nodeID
	seq      uint64
	index    int
	state    nodeState
}

type stepKind int

const (
	stepExpanded stepKind = iota
	stepFound
	stepExhausted
)

// engine owns all mutable state of one search. Nodes live in an arena keyed
// by coordinate; the open and closed sets are states over that arena.
type engine struct {
	grid     *Grid
	strategy Strategy

	nodes []*SearchNode
	ids   map[Point]nodeID

	open     PriorityQueue
	closed   int
	expanded int
	nextSeq  uint64

	// pending is the relaxation worklist, reused across calls.
	pending []nodeID
}

func newEngine(grid *Grid, strategy Strategy) *engine {
	e := &engine{
		grid:     grid,
		strategy: strategy,
		ids:      make(map[Point]nodeID),
		open:     PriorityQueue{strategy: strategy},
	}
	heap.Init(&e.open)
	e.insert(grid.StartNode())
	return e
}

// insert adds n to the arena and to the open set.
func (e *engine) insert(n SearchNode) nodeID {
	id := nodeID(len(e.nodes))
	node := &n
	node.seq = e.nextSeq
	node.state = stateOpen
	e.nextSeq++
	e.nodes = append(e.nodes, node)
	e.ids[node.Point] = id
	heap.Push(&e.open, node)
	return id
}

// budgetSpent reports whether the next step would expand a node beyond limit
// expansions. Popping the goal or finding the open set empty is not an
// expansion, so those steps are always allowed.
func (e *engine) budgetSpent(limit int) bool {
	if limit <= 0 || e.expanded < limit || e.open.Len() == 0 {
		return false
	}
	return !e.grid.IsGoal(e.open.nodes[0].Point)
}

// step pops one node and either reports the goal or expands it.
func (e *engine) step() (nodeID, stepKind) {
	if e.open.Len() == 0 {
		return noParent, stepExhausted
	}
	current := heap.Pop(&e.open).(*SearchNode)
	currentID := e.ids[current.Point]
	if e.grid.IsGoal(current.Point) {
		return currentID, stepFound
	}

	for _, nb := range e.grid.Neighbors(current.Point) {
		id, seen := e.ids[nb.Point]
		if !seen {
			child := e.insert(SearchNode{
				Point:  nb.Point,
				Cost:   nb.Cost,
				G:      current.G + nb.Cost,
				H:      e.grid.Heuristic(nb.Point),
				parent: currentID,
			})
			current.children = append(current.children, child)
			continue
		}
		if e.nodes[id].state == stateClosed {
			continue
		}
		e.relax(id, currentID)
	}

	current.state = stateClosed
	e.closed++
	e.expanded++
	return currentID, stepExpanded
}

// relax reroutes the open node id through via when that is cheaper, then
// pushes the improvement down to every open descendant still routed through
// an updated node. Each update strictly lowers G, so the worklist drains.
func (e *engine) relax(id, via nodeID) {
	node, parent := e.nodes[id], e.nodes[via]
	g := parent.G + node.Cost
	if g >= node.G {
		return
	}
	node.G = g
	node.parent = via
	parent.children = append(parent.children, id)
	e.reorder(node)

	e.pending = append(e.pending[:0], id)
	for len(e.pending) > 0 {
		last := len(e.pending) - 1
		updatedID := e.pending[last]
		e.pending = e.pending[:last]
		updated := e.nodes[updatedID]

		for _, childID := range updated.children {
			child := e.nodes[childID]
			if child.state == stateClosed || child.parent != updatedID {
				continue
			}
			if g := updated.G + child.Cost; g < child.G {
				child.G = g
				e.reorder(child)
				e.pending = append(e.pending, childID)
			}
		}
	}
}

func (e *engine) reorder(n *SearchNode) {
	if n.state == stateOpen && n.index >= 0 {
		heap.Fix(&e.open, n.index)
	}
}

func (e *engine) parentOf(id nodeID) (nodeID, bool) {
	p := e.nodes[id].parent
	return p, p != noParent
}

// path returns the coordinates from the step after the start through id.
func (e *engine) path(id nodeID) []Point {
	ids := internal.ReconstructPath(id, e.parentOf)
	path := make([]Point, len(ids))
	for i, nid := range ids {
		path[i] = e.nodes[nid].Point
	}
	return path
}

func (e *engine) result(goal nodeID, found bool) Result {
	r := Result{
		Strategy: e.strategy,
		Closed:   e.closed,
		Open:     e.open.Len(),
		Expanded: e.expanded,
		Found:    found,
	}
	if found {
		r.Path = e.path(goal)
		r.TotalCost = e.nodes[goal].G
	}
	return r
}
