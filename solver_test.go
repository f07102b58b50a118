package shannonfano

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGreedySolverContract(t *testing.T) {
	freq := func(ws WeightedSymbol) float64 { return ws.Freq }

	texts := []string{
		"abb",
		"mississippi",
		"abracadabra",
		"the quick brown fox jumps over the lazy dog",
		"aabbccddee",
	}
	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			items := Frequencies(text)
			var total float64
			for _, ws := range items {
				total += ws.Freq
			}
			capacity := total / 2

			subset := GreedySolver{}.Solve(items, capacity, freq, freq)
			require.NotEmpty(t, subset)
			require.Less(t, len(subset), len(items))

			var sum float64
			for _, ws := range subset {
				sum += ws.Freq
			}
			require.LessOrEqual(t, sum, capacity)
		})
	}
}

func TestGreedySolverDeterministic(t *testing.T) {
	freq := func(ws WeightedSymbol) float64 { return ws.Freq }
	items := Frequencies("abracadabra")

	first := GreedySolver{}.Solve(items, 0.5, freq, freq)
	second := GreedySolver{}.Solve(items, 0.5, freq, freq)
	require.Equal(t, first, second)
}

func TestGreedySolverPrefersHeavyItems(t *testing.T) {
	freq := func(ws WeightedSymbol) float64 { return ws.Freq }

	// The heaviest item that fits is taken first.
	items := []WeightedSymbol{
		{'a', 0.1},
		{'b', 0.4},
		{'c', 0.5},
	}
	subset := GreedySolver{}.Solve(items, 0.5, freq, freq)
	require.Equal(t, []WeightedSymbol{{'c', 0.5}}, subset)
}

func TestPartitionSolverFunc(t *testing.T) {
	called := false
	f := PartitionSolverFunc(func(items []WeightedSymbol, capacity float64, weightOf, valueOf func(WeightedSymbol) float64) []WeightedSymbol {
		called = true
		return items[:1]
	})

	got := f.Solve(Frequencies("abb"), 0.5, nil, nil)
	require.True(t, called)
	require.Len(t, got, 1)
}
