package gridsearch

// PriorityQueue is the open set. It orders nodes by the strategy priority and
// falls back to insertion sequence, so equal scores pop first-in first-out.
// A BFS priority is constant, which leaves plain FIFO order.
type PriorityQueue struct {
	nodes    []*SearchNode
	strategy Strategy
}

func (queue *PriorityQueue) Len() int { return len(queue.nodes) }

func (queue *PriorityQueue) Less(i, j int) bool {
	a, b := queue.nodes[i], queue.nodes[j]
	pa, pb := queue.strategy.priority(a), queue.strategy.priority(b)
	if pa != pb {
		return pa < pb
	}
	return a.seq < b.seq
}

func (queue *PriorityQueue) Swap(i, j int) {
	queue.nodes[i], queue.nodes[j] = queue.nodes[j], queue.nodes[i]
	queue.nodes[i].index = i
	queue.nodes[j].index = j
}

func (queue *PriorityQueue) Push(x any) {
	node := x.(*SearchNode)
	node.index = len(queue.nodes)
	queue.nodes = append(queue.nodes, node)
}

func (queue *PriorityQueue) Pop() any {
	old := queue.nodes
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	queue.nodes = old[:n-1]
	return node
}
