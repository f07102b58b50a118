package shannonfano

// Symbol represents a single character of the input text.
type Symbol rune

// WeightedSymbol pairs a Symbol with its relative frequency in the text,
// i.e. its occurrence count divided by the text length.  Frequencies lie in
// (0, 1] and the frequencies for a given text sum to 1 within
// floating-point tolerance.
type WeightedSymbol struct {
	Sym  Symbol
	Freq float64
}

// Frequencies scans text and returns one WeightedSymbol per distinct rune,
// in order of first appearance.  An empty text yields an empty result.
func Frequencies(text string) []WeightedSymbol {
	counts := make(map[Symbol]int)
	var order []Symbol
	var total int
	for _, r := range text {
		sym := Symbol(r)
		if counts[sym] == 0 {
			order = append(order, sym)
		}
		counts[sym]++
		total++
	}

	out := make([]WeightedSymbol, len(order))
	for i, sym := range order {
		out[i] = WeightedSymbol{Sym: sym, Freq: float64(counts[sym]) / float64(total)}
	}
	return out
}
