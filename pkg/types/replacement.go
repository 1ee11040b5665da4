// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Replacement is one find/replace pair applied by the document service.
// Sequences of replacements are ordered and may repeat Find values.
type Replacement struct {
	Find    string `json:"find" yaml:"find" mapstructure:"find"`
	Replace string `json:"replace" yaml:"replace" mapstructure:"replace"`
}

// DefaultReplacements returns the placeholder set a new form starts with.
func DefaultReplacements() []Replacement {
	return []Replacement{
		{Find: "DATE"},
		{Find: "COMP_NAME"},
		{Find: "HM_NAME"},
		{Find: "JOB_TITLE"},
		{Find: "POS_NAME"},
	}
}

// CloneReplacements returns a copy of rs that shares no backing array.
// A nil input yields an empty, non-nil slice.
func CloneReplacements(rs []Replacement) []Replacement {
	out := make([]Replacement, len(rs))
	copy(out, rs)
	return out
}
