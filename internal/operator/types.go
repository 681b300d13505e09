package operator

// #region id

// ID identifies one of the fixed transform operators.
type ID string

const (
	Shift       ID = "shift"
	Flip        ID = "flip"
	Swap        ID = "swap"
	Unhide      ID = "unhide"
	Invert      ID = "invert"
	InvertLower ID = "invert_lower"
	FlipLower   ID = "flip_lower"
	MirrorUpper ID = "mirror_upper"
	CopyUpper   ID = "copy_upper"
	InvertUpper ID = "invert_upper"
	FlipUpper   ID = "flip_upper"
)

// #endregion id

// #region scope

// Scope classifies which lines an operator touches.
type Scope string

const (
	ScopeWhole Scope = "whole"
	ScopeLower Scope = "lower"
	ScopeUpper Scope = "upper"
)

// #endregion scope

// #region definition

// Definition bundles an operator's transform with its display metadata.
// Display fields pass through to renderers untouched.
type Definition struct {
	ID      ID
	Scope   Scope
	Short   string // button label
	Card    string // full card title
	Term    string // traditional Chinese name
	Pinyin  string
	Desc    string
	Free    bool // pre-unlocked at the start of every run
	apply   func(string) string
}

// #endregion definition
