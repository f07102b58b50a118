package shannonfano

import (
	"sort"
)

// A PartitionSolver selects a subset of weighted items whose total weight
// approximates capacity without exceeding it.  The solver is not required
// to be optimal, only to terminate, and — whenever it is given two or more
// items — to return a non-empty strict subset of them.  The tree builder
// rejects any other answer as a contract violation (see ErrBadPartition).
//
// For Shannon-Fano coding, weightOf and valueOf both extract the symbol
// frequency; they are passed separately so general knapsack heuristics can
// satisfy the interface unchanged.
type PartitionSolver interface {
	Solve(items []WeightedSymbol, capacity float64, weightOf, valueOf func(WeightedSymbol) float64) []WeightedSymbol
}

// PartitionSolverFunc adapts a plain function to the PartitionSolver
// interface.
type PartitionSolverFunc func(items []WeightedSymbol, capacity float64, weightOf, valueOf func(WeightedSymbol) float64) []WeightedSymbol

// Solve calls f.
func (f PartitionSolverFunc) Solve(items []WeightedSymbol, capacity float64, weightOf, valueOf func(WeightedSymbol) float64) []WeightedSymbol {
	return f(items, capacity, weightOf, valueOf)
}

var _ PartitionSolver = PartitionSolverFunc(nil)

// GreedySolver is a first-fit heuristic for the subset-sum problem: it
// considers items in descending value order and takes each item that still
// fits within the remaining capacity.
//
// With two or more items whose weights are positive and at most the total
// (always true of symbol frequencies), the smallest item fits within half
// the total and the whole set never does, so GreedySolver always honors the
// strict-subset contract.  It is deterministic: ties in value keep the
// input order.
type GreedySolver struct{}

// Solve implements PartitionSolver.
func (GreedySolver) Solve(items []WeightedSymbol, capacity float64, weightOf, valueOf func(WeightedSymbol) float64) []WeightedSymbol {
	sorted := make([]WeightedSymbol, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return valueOf(sorted[i]) > valueOf(sorted[j])
	})

	remaining := capacity
	var subset []WeightedSymbol
	for _, item := range sorted {
		if w := weightOf(item); w <= remaining {
			subset = append(subset, item)
			remaining -= w
		}
	}
	return subset
}

var _ PartitionSolver = GreedySolver{}

// DefaultSolver is the PartitionSolver used when none is injected.
var DefaultSolver PartitionSolver = GreedySolver{}
