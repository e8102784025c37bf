// Package policy screens free-form command and script input against an
// immutable table of denied substring patterns.
package policy

import (
	"fmt"
	"slices"
	"strings"
)

// RuleSet is an ordered table of lowercase substring patterns. It is built
// once at startup and never mutated afterwards, so it is safe to share
// across concurrent requests without locking.
type RuleSet struct {
	patterns []string
}

// NewRuleSet lowercases the given patterns and keeps them in order. Blank
// patterns are rejected: a blank pattern would match every input.
func NewRuleSet(patterns []string) (RuleSet, error) {
	out := make([]string, 0, len(patterns))
	for i, p := range patterns {
		if strings.TrimSpace(p) == "" {
			return RuleSet{}, fmt.Errorf("pattern at index %d is blank", i)
		}
		out = append(out, strings.ToLower(p))
	}

	return RuleSet{patterns: out}, nil
}

// Patterns returns a copy of the pattern table, for descriptive listings.
func (rs RuleSet) Patterns() []string {
	return slices.Clone(rs.patterns)
}

func (rs RuleSet) Len() int {
	return len(rs.patterns)
}

// Decision is the outcome of screening one input against one RuleSet.
type Decision struct {
	Allowed        bool
	MatchedPattern string
}

// Classify reports whether input may run under rs. The test is a
// case-insensitive substring containment check against every pattern in
// order; the first match wins. There is no tokenizing, alias resolution or
// path normalization: an unlisted synonym of a denied operation passes, and
// an unrelated input that happens to contain a listed substring is
// rejected. Both are accepted properties of this screen.
func Classify(input string, rs RuleSet) Decision {
	lowered := strings.ToLower(input)
	for _, p := range rs.patterns {
		if strings.Contains(lowered, p) {
			return Decision{Allowed: false, MatchedPattern: p}
		}
	}

	return Decision{Allowed: true}
}
