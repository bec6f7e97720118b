package gridsearch

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRelax_PropagatesToDescendants builds a small search tree by hand:
//
//	start ─ x ─ y ─ z
//	            ├── other (routed elsewhere)
//	            └── done  (closed)
//
// Rerouting x through a cheaper node must lower y and z, and leave the node
// whose parent is elsewhere and the closed node untouched.
func TestRelax_PropagatesToDescendants(t *testing.T) {
	g, err := Parse([]string{"A......B"})
	require.NoError(t, err)
	e := newEngine(g, Dijkstra)
	start := nodeID(0)

	x := e.insert(SearchNode{Point: Point{2, 0}, Cost: 1, G: 10, parent: start})
	y := e.insert(SearchNode{Point: Point{3, 0}, Cost: 1, G: 11, parent: x})
	z := e.insert(SearchNode{Point: Point{4, 0}, Cost: 1, G: 12, parent: y})
	other := e.insert(SearchNode{Point: Point{5, 0}, Cost: 1, G: 5, parent: start})
	done := e.insert(SearchNode{Point: Point{6, 0}, Cost: 1, G: 13, parent: y})
	via := e.insert(SearchNode{Point: Point{1, 0}, Cost: 1, G: 1, parent: start})

	heap.Remove(&e.open, e.nodes[done].index)
	e.nodes[done].state = stateClosed
	e.nodes[x].children = []nodeID{y}
	e.nodes[y].children = []nodeID{z, other, done}

	e.relax(x, via)

	assert.Equal(t, 2, e.nodes[x].G)
	assert.Equal(t, via, e.nodes[x].parent)
	assert.Contains(t, e.nodes[via].children, x)
	assert.Equal(t, 3, e.nodes[y].G)
	assert.Equal(t, 4, e.nodes[z].G)
	assert.Equal(t, 5, e.nodes[other].G)
	assert.Equal(t, 13, e.nodes[done].G)
	assert.Empty(t, e.pending)

	// the heap must reflect the new keys
	var order []Point
	for e.open.Len() > 0 {
		order = append(order, heap.Pop(&e.open).(*SearchNode).Point)
	}
	assert.Equal(t, []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}}, order)
}

func TestRelax_IgnoresEqualOrWorseRoutes(t *testing.T) {
	g, err := Parse([]string{"A...B"})
	require.NoError(t, err)
	e := newEngine(g, AStar)

	x := e.insert(SearchNode{Point: Point{2, 0}, Cost: 1, G: 3, parent: 0})
	via := e.insert(SearchNode{Point: Point{1, 0}, Cost: 1, G: 2, parent: 0})

	e.relax(x, via)
	assert.Equal(t, 3, e.nodes[x].G)
	assert.Equal(t, nodeID(0), e.nodes[x].parent)
	assert.NotContains(t, e.nodes[via].children, x)
}

func TestPriorityQueue_TiesPopInInsertionOrder(t *testing.T) {
	for _, strategy := range Strategies() {
		queue := PriorityQueue{strategy: strategy}
		heap.Init(&queue)
		for i := 0; i < 6; i++ {
			heap.Push(&queue, &SearchNode{Point: Point{i, 0}, G: 4, H: 1, seq: uint64(i)})
		}
		for i := 0; i < 6; i++ {
			assert.Equal(t, Point{i, 0}, heap.Pop(&queue).(*SearchNode).Point, strategy.String())
		}
	}
}

func TestPriorityQueue_StrategyKeys(t *testing.T) {
	nodes := func() []*SearchNode {
		return []*SearchNode{
			{Point: Point{0, 0}, G: 1, H: 9, seq: 0},
			{Point: Point{1, 0}, G: 5, H: 0, seq: 1},
			{Point: Point{2, 0}, G: 3, H: 4, seq: 2},
		}
	}
	cases := map[Strategy][]Point{
		AStar:    {{1, 0}, {2, 0}, {0, 0}},
		Dijkstra: {{0, 0}, {2, 0}, {1, 0}},
		BFS:      {{0, 0}, {1, 0}, {2, 0}},
	}
	for strategy, want := range cases {
		queue := PriorityQueue{strategy: strategy}
		for _, n := range nodes() {
			heap.Push(&queue, n)
		}
		var got []Point
		for queue.Len() > 0 {
			got = append(got, heap.Pop(&queue).(*SearchNode).Point)
		}
		assert.Equal(t, want, got, strategy.String())
	}
}

func TestEngine_StartIsNeverReopened(t *testing.T) {
	g, err := Parse([]string{".A.B"})
	require.NoError(t, err)
	e := newEngine(g, Dijkstra)

	_, kind := e.step()
	require.Equal(t, stepExpanded, kind)
	startNode := e.nodes[0]
	assert.Equal(t, stateClosed, startNode.state)
	assert.Len(t, startNode.children, 2)

	// expanding (0,0) sees the closed start again and must skip it
	for {
		_, kind = e.step()
		if kind != stepExpanded {
			break
		}
	}
	assert.Equal(t, stepFound, kind)
	assert.Equal(t, 0, startNode.G)
	assert.Equal(t, noParent, startNode.parent)
}
