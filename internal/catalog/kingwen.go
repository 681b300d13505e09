package catalog

import "hexapath/internal/hexagram"

// #region trigram-chart

// Trigrams are keyed by their bottom-first 3-bit code.
const (
	triQian = "111" // heaven
	triZhen = "100" // thunder
	triKan  = "010" // water
	triGen  = "001" // mountain
	triKun  = "000" // earth
	triXun  = "011" // wind
	triLi   = "101" // fire
	triDui  = "110" // lake
)

// kingWen maps lower trigram → upper trigram → King Wen number,
// following the standard 8×8 chart.
var kingWen = map[string]map[string]int{
	triQian: {triQian: 1, triZhen: 34, triKan: 5, triGen: 26, triKun: 11, triXun: 9, triLi: 14, triDui: 43},
	triZhen: {triQian: 25, triZhen: 51, triKan: 3, triGen: 27, triKun: 24, triXun: 42, triLi: 21, triDui: 17},
	triKan:  {triQian: 6, triZhen: 40, triKan: 29, triGen: 4, triKun: 7, triXun: 59, triLi: 64, triDui: 47},
	triGen:  {triQian: 33, triZhen: 62, triKan: 39, triGen: 52, triKun: 15, triXun: 53, triLi: 56, triDui: 31},
	triKun:  {triQian: 12, triZhen: 16, triKan: 8, triGen: 23, triKun: 2, triXun: 20, triLi: 35, triDui: 45},
	triXun:  {triQian: 44, triZhen: 32, triKan: 48, triGen: 18, triKun: 46, triXun: 57, triLi: 50, triDui: 28},
	triLi:   {triQian: 13, triZhen: 55, triKan: 63, triGen: 22, triKun: 36, triXun: 37, triLi: 30, triDui: 49},
	triDui:  {triQian: 10, triZhen: 54, triKan: 60, triGen: 41, triKun: 19, triXun: 61, triLi: 38, triDui: 58},
}

// #endregion trigram-chart

// #region names

// names holds the English display names indexed by King Wen number - 1.
var names = [64]string{
	"The Creative", "The Receptive", "Difficulty at the Beginning", "Youthful Folly",
	"Waiting", "Conflict", "The Army", "Holding Together",
	"Small Taming", "Treading", "Peace", "Standstill",
	"Fellowship", "Great Possession", "Modesty", "Enthusiasm",
	"Following", "Work on the Decayed", "Approach", "Contemplation",
	"Biting Through", "Grace", "Splitting Apart", "Return",
	"Innocence", "Great Taming", "Nourishment", "Great Exceeding",
	"The Abysmal", "The Clinging", "Influence", "Duration",
	"Retreat", "Great Power", "Progress", "Darkening of the Light",
	"The Family", "Opposition", "Obstruction", "Deliverance",
	"Decrease", "Increase", "Breakthrough", "Coming to Meet",
	"Gathering Together", "Pushing Upward", "Oppression", "The Well",
	"Revolution", "The Cauldron", "The Arousing", "Keeping Still",
	"Development", "The Marrying Maiden", "Abundance", "The Wanderer",
	"The Gentle", "The Joyous", "Dispersion", "Limitation",
	"Inner Truth", "Small Exceeding", "After Completion", "Before Completion",
}

// #endregion names

// #region builtin

// glyphBase is the first character of the Unicode hexagram block (䷀),
// which follows King Wen order.
const glyphBase = 0x4DC0

// Builtin returns the full 64-entry catalog derived from the King Wen chart.
// Judgement text is left empty; the SQLite store carries it when a richer
// data set has been imported.
func Builtin() *Memory {
	entries := make([]Entry, 0, 64)
	for _, code := range hexagram.All() {
		n := kingWen[code.Lower()][code.Upper()]
		entries = append(entries, Entry{
			Code:   code,
			Number: n,
			Name:   names[n-1],
			Glyph:  rune(glyphBase + n - 1),
		})
	}
	return NewMemory(entries)
}

// #endregion builtin
