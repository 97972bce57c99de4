// Package filter implements the content gate applied to every comment
// submission. It is a deterministic, pattern-based check for personally
// identifiable information and doxxing-adjacent content; the web client
// runs the same rules for immediate feedback, but this package is the
// authoritative copy.
package filter

import (
	"fmt"
	"regexp"
	"strings"
)

// Verdict is the result of checking one piece of text.
type Verdict struct {
	IsClean    bool     `json:"isClean"`
	Violations []string `json:"violations"`
}

// rule is one detection category. The first matcher that hits contributes
// the rule's label; gate, when set, must pass before any matcher is tried.
type rule struct {
	label    string
	matchers []*regexp.Regexp
	gate     func(lower string) bool
}

// locationContext gates the ZIP rule so ordinary five-digit numbers
// (order numbers, vote tallies) are not flagged.
var locationContext = regexp.MustCompile(`\b(city|state|lives|located|residing|resident)\b`)

// rules are evaluated in order; each contributes at most one violation.
// Adding a category is a data change, not a control-flow change.
var rules = []rule{
	{
		label: "Phone number detected",
		matchers: []*regexp.Regexp{
			regexp.MustCompile(`\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`),
			regexp.MustCompile(`\(\d{3}\)\s?\d{3}[-.\s]?\d{4}\b`),
			regexp.MustCompile(`\b\d{10}\b`),
			regexp.MustCompile(`\+\d{1,3}[-.\s]?\(?\d{1,4}\)?[-.\s]?\d{1,4}[-.\s]?\d{1,9}`),
		},
	},
	{
		label: "Email address detected",
		matchers: []*regexp.Regexp{
			regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		},
	},
	{
		// A bare nine-digit run always counts as an ID.
		label: "Social Security Number or similar ID detected",
		matchers: []*regexp.Regexp{
			regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`),
			regexp.MustCompile(`\b\d{9}\b`),
		},
	},
	{
		label: "Credit card number detected",
		matchers: []*regexp.Regexp{
			regexp.MustCompile(`\b\d{4}[-\s]?\d{4}[-\s]?\d{4}[-\s]?\d{4}\b`),
		},
	},
	{
		label: "Physical address detected",
		matchers: []*regexp.Regexp{
			regexp.MustCompile(`\b\d{1,5}\s+([A-Z][a-z]+\s+){1,3}(?i:Street|St|Avenue|Ave|Road|Rd|Drive|Dr|Lane|Ln|Boulevard|Blvd|Court|Ct|Way|Place|Pl|Circle|Cir)\b`),
			regexp.MustCompile(`(?i)\b(P\.?\s?O\.?\s?Box|PO Box)\s+\d+\b`),
		},
	},
	{
		label: "Location information detected",
		matchers: []*regexp.Regexp{
			regexp.MustCompile(`\b\d{5}(-\d{4})?\b`),
		},
		gate: func(lower string) bool {
			return locationContext.MatchString(lower)
		},
	},
	{
		label: "IP address detected",
		matchers: []*regexp.Regexp{
			regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`),
			regexp.MustCompile(`\b(?:[0-9a-fA-F]{1,4}:){7}[0-9a-fA-F]{1,4}\b`),
		},
	},
	{
		label: "Suspicious URL detected",
		matchers: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(dox|doxx|leak|dump|paste|bin)\w*\.(com|org|net|io)`),
		},
	},
}

// suspiciousPhrases are matched as case-insensitive substrings after the
// pattern rules; only the first hit is reported.
var suspiciousPhrases = []string{
	"lives at",
	"home address",
	"phone number is",
	"real name is",
	"social security",
	"credit card",
	"bank account",
	"license plate",
	"drivers license",
	"passport number",
}

// Check inspects text and reports every rule category it violates, in rule
// order. It is pure and never fails; empty input is clean.
func Check(text string) Verdict {
	violations := []string{}
	lower := strings.ToLower(text)

	for _, r := range rules {
		if r.gate != nil && !r.gate(lower) {
			continue
		}
		for _, m := range r.matchers {
			if m.MatchString(text) {
				violations = append(violations, r.label)
				break
			}
		}
	}

	for _, phrase := range suspiciousPhrases {
		if strings.Contains(lower, phrase) {
			violations = append(violations, fmt.Sprintf("Suspicious phrase: %q", phrase))
			break
		}
	}

	return Verdict{
		IsClean:    len(violations) == 0,
		Violations: violations,
	}
}
