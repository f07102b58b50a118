package shannonfano

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// CodeTable holds the two inverse mappings derived from a Shannon-Fano
// tree: Symbol to code for compression, and code to Symbol for
// decompression.  A code is a textual bit sequence of '0' (descend left)
// and '1' (descend right) digits.  Codes form a prefix code: no code is a
// prefix of another, because codes diverge at every internal node.
type CodeTable struct {
	codeBySymbol map[Symbol]string
	symbolByCode map[string]Symbol
}

// BuildCodeTable builds a CodeTable from the given weighted symbols, which
// must number at least two.  Texts with zero or one distinct symbol are
// degenerate and handled by the Compressor without a table.
//
// A nil solver selects DefaultSolver.  BuildCodeTable fails with an error
// wrapping ErrBadPartition if the solver violates its contract.
func BuildCodeTable(freqs []WeightedSymbol, solver PartitionSolver) (*CodeTable, error) {
	if len(freqs) < 2 {
		return nil, fmt.Errorf("shannonfano: code table needs at least 2 distinct symbols, got %d", len(freqs))
	}
	if solver == nil {
		solver = DefaultSolver
	}

	root, err := buildTree(freqs, solver)
	if err != nil {
		return nil, err
	}

	t := &CodeTable{
		codeBySymbol: make(map[Symbol]string, len(freqs)),
		symbolByCode: make(map[string]Symbol, len(freqs)),
	}
	t.walk(root, "")
	return t, nil
}

// walk records both directions of the mapping in a single pass over the
// tree, so the two can never drift apart.
func (t *CodeTable) walk(n *node, prefix string) {
	if n.isLeaf() {
		sym := n.symbols[0].Sym
		_, dup := t.symbolByCode[prefix]
		assert.Assertf(!dup, "duplicate code %q", prefix)
		t.codeBySymbol[sym] = prefix
		t.symbolByCode[prefix] = sym
		return
	}
	t.walk(n.left, prefix+"0")
	t.walk(n.right, prefix+"1")
}

// Len returns the number of symbols in the table.
func (t *CodeTable) Len() int {
	return len(t.codeBySymbol)
}

// Code returns the bit string assigned to sym.
func (t *CodeTable) Code(sym Symbol) (string, bool) {
	code, ok := t.codeBySymbol[sym]
	return code, ok
}

// Symbol returns the symbol that code decodes to.
func (t *CodeTable) Symbol(code string) (Symbol, bool) {
	sym, ok := t.symbolByCode[code]
	return sym, ok
}

// DecompressionKeys returns the code-to-symbol mapping as plain strings.
// This is the form Compress hands to callers and Decompress consumes.
func (t *CodeTable) DecompressionKeys() map[string]string {
	keys := make(map[string]string, len(t.symbolByCode))
	for code, sym := range t.symbolByCode {
		keys[code] = string(rune(sym))
	}
	return keys
}

// String returns a short description of this CodeTable.
func (t *CodeTable) String() string {
	return fmt.Sprintf("(Shannon-Fano code table with %d symbols)", t.Len())
}

var _ fmt.Stringer = (*CodeTable)(nil)

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (t *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	codes := make(byCode, 0, len(t.symbolByCode))
	for code := range t.symbolByCode {
		codes = append(codes, code)
	}
	codes.Sort()
	for _, code := range codes {
		fmt.Fprintf(&buf, "\tSymbol(%s) = %q\n", strconv.Quote(code), t.symbolByCode[code])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type byCode {{{

type byCode []string

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

var _ sort.Interface = byCode(nil)

// }}}
