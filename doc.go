// Package shannonfano implements Shannon-Fano coding for text.  The coder
// builds a binary prefix code by recursively splitting the distinct symbols
// of the input into two near-equal-weight groups, then translates the text
// into a bit string of '0'/'1' characters plus the key table needed to
// invert it.
//
// The splitting step is delegated to a pluggable PartitionSolver.  Any
// subset-sum heuristic satisfying the solver contract yields a valid prefix
// code, though not necessarily the same tree shape.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Shannon%E2%80%93Fano_coding>
package shannonfano
