// Package match resolves a spoken or typed selection against a short list of
// candidates. The tiering (numeric index, then exact, prefix, substring,
// token-subset) deliberately favors precise matches: once a stronger bucket
// has any member, weaker buckets are never consulted.
package match

import (
	"strconv"
	"strings"
)

// Candidate is one selectable item, usually an application id plus job title.
type Candidate struct {
	ID    string
	Label string
}

// Selection is a resolved candidate with its 1-based position in the list
// the caller presented.
type Selection struct {
	Index int    `json:"index"`
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Result is the outcome of a resolution attempt. Exactly one of three shapes
// holds: a unique match, an ambiguous set of at most 5 options, or no match
// with the full candidate list so the caller can re-prompt.
type Result struct {
	Matched   bool        `json:"matched"`
	Ambiguous bool        `json:"ambiguous"`
	Selection *Selection  `json:"selection"`
	Options   []Selection `json:"options"`
}

const maxAmbiguousOptions = 5

// NormalizeText lowercases, strips everything outside [a-z0-9 ], collapses
// whitespace and trims. Shared by the matcher and its tests.
func NormalizeText(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Resolve interprets the user's choice against the candidates in input order.
func Resolve(candidates []Candidate, choice string) Result {
	if len(candidates) == 0 {
		return Result{Options: []Selection{}}
	}

	choice = strings.TrimSpace(choice)

	// Numeric selection is 1-based and takes precedence over any text match.
	// Out-of-range numbers fall through to text matching.
	if idx, err := strconv.Atoi(choice); err == nil && isDigits(choice) {
		if idx >= 1 && idx <= len(candidates) {
			sel := selection(candidates, idx-1)
			return Result{Matched: true, Selection: &sel, Options: []Selection{}}
		}
	}

	normChoice := NormalizeText(choice)
	if normChoice == "" {
		return Result{Options: allOptions(candidates)}
	}

	var exact, prefix, contains, token []int
	choiceTokens := tokenSet(normChoice)

	for i, c := range candidates {
		label := NormalizeText(c.Label)
		switch {
		case label == normChoice:
			exact = append(exact, i)
		case strings.HasPrefix(label, normChoice):
			prefix = append(prefix, i)
		case strings.Contains(label, normChoice):
			contains = append(contains, i)
		case isSubset(choiceTokens, tokenSet(label)):
			token = append(token, i)
		}
	}

	for _, bucket := range [][]int{exact, prefix, contains, token} {
		if len(bucket) == 0 {
			continue
		}
		if len(bucket) == 1 {
			sel := selection(candidates, bucket[0])
			return Result{Matched: true, Selection: &sel, Options: []Selection{}}
		}
		opts := make([]Selection, 0, maxAmbiguousOptions)
		for _, i := range bucket {
			opts = append(opts, selection(candidates, i))
			if len(opts) == maxAmbiguousOptions {
				break
			}
		}
		return Result{Ambiguous: true, Options: opts}
	}

	return Result{Options: allOptions(candidates)}
}

func selection(candidates []Candidate, i int) Selection {
	return Selection{Index: i + 1, ID: candidates[i].ID, Label: candidates[i].Label}
}

func allOptions(candidates []Candidate) []Selection {
	opts := make([]Selection, len(candidates))
	for i := range candidates {
		opts[i] = selection(candidates, i)
	}
	return opts
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(s) {
		set[tok] = struct{}{}
	}
	return set
}

func isSubset(sub, super map[string]struct{}) bool {
	if len(sub) == 0 {
		return false
	}
	for tok := range sub {
		if _, ok := super[tok]; !ok {
			return false
		}
	}
	return true
}
