package shannonfano

import (
	"errors"
	"fmt"
)

// ErrBadPartition reports a PartitionSolver that violated its contract by
// selecting the empty set or the full set from a group of two or more
// symbols.  Recursing on such a split would never terminate, so the tree
// builder surfaces it as an error instead.
var ErrBadPartition = errors.New("shannonfano: partition solver violated its contract")

// node is one group of weighted symbols being recursively split.  A node
// holding exactly one symbol is a leaf; after construction every other
// node has exactly two children whose symbol groups are disjoint and
// together equal the parent's.
type node struct {
	symbols []WeightedSymbol
	left    *node
	right   *node
}

func (n *node) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// buildTree recursively partitions syms into a binary tree.  Each split
// asks solver for a subset targeting half the group's total frequency; the
// subset becomes the left child and the complement the right child.
func buildTree(syms []WeightedSymbol, solver PartitionSolver) (*node, error) {
	n := &node{symbols: syms}
	if len(syms) == 1 {
		return n, nil
	}

	var total float64
	for _, ws := range syms {
		total += ws.Freq
	}

	freq := func(ws WeightedSymbol) float64 { return ws.Freq }
	chosen := solver.Solve(syms, total/2, freq, freq)

	inSubset := make(map[Symbol]bool, len(chosen))
	for _, ws := range chosen {
		inSubset[ws.Sym] = true
	}

	// Membership is decided per symbol so the split preserves the input
	// order no matter what order the solver returns.
	var leftGroup, rightGroup []WeightedSymbol
	for _, ws := range syms {
		if inSubset[ws.Sym] {
			leftGroup = append(leftGroup, ws)
		} else {
			rightGroup = append(rightGroup, ws)
		}
	}

	if len(leftGroup) == 0 || len(rightGroup) == 0 {
		return nil, fmt.Errorf("%w: selected %d of %d symbols", ErrBadPartition, len(leftGroup), len(syms))
	}

	var err error
	if n.left, err = buildTree(leftGroup, solver); err != nil {
		return nil, err
	}
	if n.right, err = buildTree(rightGroup, solver); err != nil {
		return nil, err
	}
	return n, nil
}
