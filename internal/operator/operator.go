// Package operator implements the fixed catalog of hexagram transforms.
//
// Every operator is pure and total: each 6-bit code maps to exactly one
// 6-bit code, which may or may not exist in the active catalog. Bit 0 is the
// bottom line; the exact indexing below is load-bearing for reachability and
// scoring, so the transforms mirror the traditional definitions verbatim.
package operator

import (
	"fmt"

	"hexapath/internal/hexagram"
)

// #region transforms

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

func complement(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] == '1' {
			b[i] = '0'
		} else {
			b[i] = '1'
		}
	}
	return string(b)
}

func shift(h string) string { return h[5:] + h[:5] }

func flip(h string) string { return reverse(h) }

func swap(h string) string { return h[3:] + h[:3] }

// unhide takes the nucleus hexagram: bits 1-4 become the lower trigram,
// bits 2-5 the upper.
func unhide(h string) string { return h[1:4] + h[2:5] }

func invert(h string) string { return complement(h) }

func invertLower(h string) string { return complement(h[:3]) + h[3:] }

func flipLower(h string) string { return reverse(h[:3]) + h[3:] }

func mirrorUpper(h string) string { return h[:3] + reverse(h[:3]) }

func copyUpper(h string) string { return h[:3] + h[:3] }

func invertUpper(h string) string { return h[:3] + complement(h[3:]) }

func flipUpper(h string) string { return h[:3] + reverse(h[3:]) }

// #endregion transforms

// #region catalog

// Definitions lists every operator in display order: whole, lower, upper.
var Definitions = []Definition{
	{ID: Shift, Scope: ScopeWhole, Short: "SHIFT", Card: "SHIFT (位卦 Yí Wèi Guà)",
		Term: "位卦", Pinyin: "Yí Wèi Guà", Desc: "Shift all lines up, top falls.",
		Free: true, apply: shift},
	{ID: Flip, Scope: ScopeWhole, Short: "FLIP", Card: "FLIP (综卦 Zǒng Guà)",
		Term: "综卦", Pinyin: "Zǒng Guà", Desc: "Flip line order, all lines.",
		apply: flip},
	{ID: Swap, Scope: ScopeWhole, Short: "SWAP", Card: "SWAP (交卦 Jiāo Guà)",
		Term: "交卦", Pinyin: "Jiāo Guà", Desc: "Swap lower and upper trigrams.",
		apply: swap},
	{ID: Unhide, Scope: ScopeWhole, Short: "UNHIDE", Card: "UNHIDE (核卦 Hu Guà)",
		Term: "核卦", Pinyin: "Hu Guà", Desc: "Unhide lines 2-4 ▼, lines 3-5 ▲.",
		apply: unhide},
	{ID: Invert, Scope: ScopeWhole, Short: "INVERT", Card: "INVERT (错卦 Cuò Guà)",
		Term: "错卦", Pinyin: "Cuò Guà", Desc: "Invert yin ↔ yang, all lines.",
		apply: invert},

	{ID: InvertLower, Scope: ScopeLower, Short: "INVERT ▼", Card: "INVERT ▼ (错八卦 Cuò Bā Guà)",
		Term: "错八卦", Pinyin: "Cuò Bā Guà", Desc: "Invert yin ↔ yang, lower trigram.",
		Free: true, apply: invertLower},
	{ID: FlipLower, Scope: ScopeLower, Short: "FLIP ▼", Card: "FLIP ▼ (综八卦 Zǒng Bā Guà)",
		Term: "综八卦", Pinyin: "Zǒng Bā Guà", Desc: "Flip line order, lower trigram.",
		apply: flipLower},

	{ID: MirrorUpper, Scope: ScopeUpper, Short: "MIRROR ▲", Card: "MIRROR ▲ (对八卦 Duìchèn Bā Guà)",
		Term: "对八卦", Pinyin: "Duìchèn Bā Guà", Desc: "Mirror lower trigram onto upper.",
		Free: true, apply: mirrorUpper},
	{ID: CopyUpper, Scope: ScopeUpper, Short: "COPY ▲", Card: "COPY ▲ (重八卦 Chóng Bā Guà)",
		Term: "重八卦", Pinyin: "Chóng Bā Guà", Desc: "Copy lower trigram onto upper.",
		apply: copyUpper},
	{ID: InvertUpper, Scope: ScopeUpper, Short: "INVERT ▲", Card: "INVERT ▲ (错八卦 Cuò Bā Guà)",
		Term: "错八卦", Pinyin: "Cuò Bā Guà", Desc: "Invert yin ↔ yang, upper trigram.",
		apply: invertUpper},
	{ID: FlipUpper, Scope: ScopeUpper, Short: "FLIP ▲", Card: "FLIP ▲ (综八卦 Zǒng Bā Guà)",
		Term: "综八卦", Pinyin: "Zǒng Bā Guà", Desc: "Flip line order, upper trigram.",
		apply: flipUpper},
}

var byID = func() map[ID]*Definition {
	m := make(map[ID]*Definition, len(Definitions))
	for i := range Definitions {
		m[Definitions[i].ID] = &Definitions[i]
	}
	return m
}()

// #endregion catalog

// #region api

// Lookup returns the definition for id.
func Lookup(id ID) (Definition, bool) {
	d, ok := byID[id]
	if !ok {
		return Definition{}, false
	}
	return *d, true
}

// Apply transforms code with the named operator. An unknown id is a
// programming error and panics.
func Apply(id ID, code hexagram.Code) hexagram.Code {
	d, ok := byID[id]
	if !ok {
		panic(fmt.Sprintf("operator: unknown id %q", id))
	}
	return hexagram.Code(d.apply(string(code)))
}

// FreeSet returns the IDs unlocked at the start of every run.
func FreeSet() map[ID]bool {
	free := make(map[ID]bool)
	for _, d := range Definitions {
		if d.Free {
			free[d.ID] = true
		}
	}
	return free
}

// IDs returns every operator ID in display order.
func IDs() []ID {
	ids := make([]ID, 0, len(Definitions))
	for _, d := range Definitions {
		ids = append(ids, d.ID)
	}
	return ids
}

// #endregion api
