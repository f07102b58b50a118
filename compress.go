package shannonfano

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/chronos-tachyon/assert"
)

// Compressor translates text into a Shannon-Fano coded bit string.  The
// zero value partitions symbol groups with DefaultSolver; NewCompressor
// injects a different PartitionSolver.
//
// A Compressor holds no state between calls: every Compress call derives a
// fresh code table from its input.
type Compressor struct {
	solver PartitionSolver
}

// NewCompressor returns a Compressor that partitions symbol groups with
// solver.  A nil solver selects DefaultSolver.
func NewCompressor(solver PartitionSolver) *Compressor {
	return &Compressor{solver: solver}
}

// Compress encodes text into a bit string of '0'/'1' characters, one code
// per input rune in order, together with the code-to-symbol keys needed to
// invert it with Decompress.
//
// Two inputs are degenerate and bypass tree construction: the empty text
// yields an empty bit string and empty keys, and a text with a single
// distinct rune yields one '1' per occurrence with the single key "1".
//
// Compress fails only if the solver violates the PartitionSolver contract;
// the error wraps ErrBadPartition.
func (c *Compressor) Compress(text string) (string, map[string]string, error) {
	freqs := Frequencies(text)

	switch len(freqs) {
	case 0:
		return "", map[string]string{}, nil
	case 1:
		// The code for the only symbol is hard-wired to "1": a
		// single-symbol group never reaches the tree builder, which
		// has no root-without-children shape for it.
		bits := strings.Repeat("1", utf8.RuneCountInString(text))
		keys := map[string]string{"1": string(rune(freqs[0].Sym))}
		return bits, keys, nil
	}

	table, err := BuildCodeTable(freqs, c.solverOrDefault())
	if err != nil {
		return "", nil, err
	}

	var sb strings.Builder
	for _, r := range text {
		code, ok := table.Code(Symbol(r))
		assert.Assertf(ok, "no code for symbol %q", r)
		sb.WriteString(code)
	}
	return sb.String(), table.DecompressionKeys(), nil
}

func (c *Compressor) solverOrDefault() PartitionSolver {
	if c == nil || c.solver == nil {
		return DefaultSolver
	}
	return c.solver
}

// Compress encodes text with the default greedy solver.  See
// Compressor.Compress.
func Compress(text string) (string, map[string]string, error) {
	return NewCompressor(nil).Compress(text)
}

// Decompress inverts Compress: it repeatedly matches a prefix of the
// remaining bits against keys — codes are prefix-free, so at most one key
// can match at any position — emits the matched symbol, and consumes the
// matched bits.
//
// Decoding a bit string produced by Compress with its own keys is total.
// Any other input that fails to match a key at some position, including
// trailing bits left over at the end, yields an error.
func Decompress(bits string, keys map[string]string) (string, error) {
	if bits == "" {
		return "", nil
	}
	if len(keys) == 0 {
		return "", fmt.Errorf("shannonfano: cannot decompress %d bits with an empty key table", len(bits))
	}

	maxCode := 0
	for code := range keys {
		if len(code) > maxCode {
			maxCode = len(code)
		}
	}

	var sb strings.Builder
	start := 0
	for start < len(bits) {
		limit := start + maxCode
		if limit > len(bits) {
			limit = len(bits)
		}

		matched := false
		for end := start + 1; end <= limit; end++ {
			if sym, ok := keys[bits[start:end]]; ok {
				sb.WriteString(sym)
				start = end
				matched = true
				break
			}
		}
		if !matched {
			return "", fmt.Errorf("shannonfano: undecodable bits at offset %d", start)
		}
	}
	return sb.String(), nil
}
