// Package hexagram defines the 6-bit line code shared by every other package.
package hexagram

import "fmt"

// #region code

// Code is a 6-character string over {0,1}. Bit 0 is the leftmost character
// and represents the bottom line (bottom-first convention). Bit 5 is the top.
type Code string

// Lines is the fixed number of lines in a hexagram.
const Lines = 6

// Valid reports whether c is six characters long and contains only '0'/'1'.
// Presence in a catalog is a separate, stricter check.
func (c Code) Valid() bool {
	if len(c) != Lines {
		return false
	}
	for i := 0; i < Lines; i++ {
		if c[i] != '0' && c[i] != '1' {
			return false
		}
	}
	return true
}

// Lower returns the lower trigram (bits 0-2).
func (c Code) Lower() string {
	return string(c[:3])
}

// Upper returns the upper trigram (bits 3-5).
func (c Code) Upper() string {
	return string(c[3:])
}

// #endregion code

// #region parse

// Parse validates s and returns it as a Code.
func Parse(s string) (Code, error) {
	c := Code(s)
	if !c.Valid() {
		return "", fmt.Errorf("hexagram code %q: want 6 chars of 0/1", s)
	}
	return c, nil
}

// #endregion parse

// #region all

// All returns the 64 possible codes in ascending binary order.
func All() []Code {
	codes := make([]Code, 0, 64)
	for n := 0; n < 64; n++ {
		var b [Lines]byte
		for i := 0; i < Lines; i++ {
			if n&(1<<i) != 0 {
				b[i] = '1'
			} else {
				b[i] = '0'
			}
		}
		codes = append(codes, Code(b[:]))
	}
	return codes
}

// #endregion all
