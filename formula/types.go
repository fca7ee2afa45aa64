// SPDX-License-Identifier: MIT
// Package formula: domain types.
// ElementCounts is an ordered mapping (sorted by symbol) rather than a Go map,
// so every consumer (matrix rows, String, iteration) sees the same order.

package formula

import (
	"iter"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/stoich/exact"
)

// Entry is one (symbol, count) pair of an ElementCounts.
type Entry struct {
	Symbol string
	Count  int64
}

// ElementCounts maps element symbols to atom counts with deterministic,
// lexicographic iteration order. The zero value is empty and ready to use.
// Values are immutable once returned by Parse.
type ElementCounts struct {
	entries []Entry // sorted by Symbol, symbols unique
}

// search returns the insertion index of sym and whether it is present.
// Complexity: O(log n).
func (ec ElementCounts) search(sym string) (int, bool) {
	i := sort.Search(len(ec.entries), func(i int) bool { return ec.entries[i].Symbol >= sym })
	return i, i < len(ec.entries) && ec.entries[i].Symbol == sym
}

// add accumulates n atoms of sym, keeping entries sorted.
// Errors: exact.ErrOverflow if the running total leaves int64.
func (ec *ElementCounts) add(sym string, n int64) error {
	i, ok := ec.search(sym)
	if ok {
		sum, err := exact.Add(ec.entries[i].Count, n)
		if err != nil {
			return err
		}
		ec.entries[i].Count = sum
		return nil
	}
	ec.entries = append(ec.entries, Entry{})
	copy(ec.entries[i+1:], ec.entries[i:])
	ec.entries[i] = Entry{Symbol: sym, Count: n}

	return nil
}

// Count returns the atom count for sym, or 0 when sym is absent.
func (ec ElementCounts) Count(sym string) int64 {
	if i, ok := ec.search(sym); ok {
		return ec.entries[i].Count
	}
	return 0
}

// Has reports whether sym occurs in the compound.
func (ec ElementCounts) Has(sym string) bool {
	_, ok := ec.search(sym)
	return ok
}

// Len returns the number of distinct elements.
func (ec ElementCounts) Len() int { return len(ec.entries) }

// Symbols returns the element symbols in sorted order (fresh slice).
func (ec ElementCounts) Symbols() []string {
	out := make([]string, len(ec.entries))
	for i, e := range ec.entries {
		out[i] = e.Symbol
	}
	return out
}

// Entries returns a copy of the sorted (symbol, count) pairs.
func (ec ElementCounts) Entries() []Entry {
	return append([]Entry(nil), ec.entries...)
}

// All iterates over (symbol, count) in sorted order.
func (ec ElementCounts) All() iter.Seq2[string, int64] {
	return func(yield func(string, int64) bool) {
		for _, e := range ec.entries {
			if !yield(e.Symbol, e.Count) {
				return
			}
		}
	}
}

// Equal reports whether both mappings hold the same symbols and counts.
func (ec ElementCounts) Equal(other ElementCounts) bool {
	if len(ec.entries) != len(other.entries) {
		return false
	}
	for i := range ec.entries {
		if ec.entries[i] != other.entries[i] {
			return false
		}
	}
	return true
}

// String renders the counts sorted by symbol: "H2 O4 S1".
func (ec ElementCounts) String() string {
	var b strings.Builder
	for i, e := range ec.entries {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.Symbol)
		b.WriteString(strconv.FormatInt(e.Count, 10))
	}
	return b.String()
}

// Compound is a formula string together with its parsed ElementCounts.
type Compound struct {
	formula string
	counts  ElementCounts
}

// Formula returns the original formula string.
func (c Compound) Formula() string { return c.formula }

// Counts returns the element counts of the compound.
func (c Compound) Counts() ElementCounts { return c.counts }

// String returns the original formula.
func (c Compound) String() string { return c.formula }
