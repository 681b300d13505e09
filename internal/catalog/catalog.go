// Package catalog provides the read-only hexagram reference data.
//
// The engine treats the catalog as an injected lookup table: it only checks
// presence and carries the King Wen number and display fields through to
// renderers untouched.
package catalog

import (
	"sort"

	"hexapath/internal/hexagram"
)

// #region entry

// Entry is the reference record for one hexagram.
type Entry struct {
	Code      hexagram.Code
	Number    int    // King Wen number, 1..64
	Name      string // English display name
	Glyph     rune   // U+4DC0 block character
	Judgement string // free text, may be empty
}

// #endregion entry

// #region interface

// Catalog is the lookup surface the engine depends on.
type Catalog interface {
	// Lookup returns the entry for code, if present.
	Lookup(code hexagram.Code) (Entry, bool)
	// Contains reports presence without fetching the entry.
	Contains(code hexagram.Code) bool
	// Codes returns every catalog code in King Wen order.
	Codes() []hexagram.Code
}

// #endregion interface

// #region memory

// Memory is an in-memory Catalog.
type Memory struct {
	entries map[hexagram.Code]Entry
}

// NewMemory builds a Memory catalog from entries. Later duplicates win.
func NewMemory(entries []Entry) *Memory {
	m := &Memory{entries: make(map[hexagram.Code]Entry, len(entries))}
	for _, e := range entries {
		m.entries[e.Code] = e
	}
	return m
}

// Lookup returns the entry for code, if present.
func (m *Memory) Lookup(code hexagram.Code) (Entry, bool) {
	e, ok := m.entries[code]
	return e, ok
}

// Contains reports presence of code.
func (m *Memory) Contains(code hexagram.Code) bool {
	_, ok := m.entries[code]
	return ok
}

// Codes returns every code ordered by King Wen number.
func (m *Memory) Codes() []hexagram.Code {
	out := make([]hexagram.Code, 0, len(m.entries))
	for c := range m.entries {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return m.entries[out[i]].Number < m.entries[out[j]].Number
	})
	return out
}

// Len returns the number of entries.
func (m *Memory) Len() int {
	return len(m.entries)
}

// #endregion memory
