// Package gridsearch finds minimum-cost paths across terrain boards.
//
// A board is a rectangular text grid with one start cell 'A', one goal cell
// 'B', walls '#', and terrain codes that each carry a fixed entry cost
// (water 100, mountain 50, forest 10, grassland 5, road and plain 1).
//
// It exposes three entry points over one expansion engine:
//
//   - Search: run a strategy to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//   - RunBatch: run many independent searches on a worker pool.
//
// Strategies are AStar (g + Manhattan h), Dijkstra (g only) and BFS
// (discovery order). AStar and Dijkstra always agree on the cost; BFS is kept
// for comparison and may return a more expensive route. Expanded nodes are
// never reopened, which relies on every terrain cost being non-negative.
package gridsearch
