// internal/match/match_test.go
package match

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidates() []Candidate {
	return []Candidate{
		{ID: "a1", Label: "Backend Engineer"},
		{ID: "a2", Label: "Senior Backend Engineer"},
		{ID: "a3", Label: "Data Analyst"},
	}
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "backend engineer", NormalizeText("  Backend-Engineer!! "))
	assert.Equal(t, "data analyst 2", NormalizeText("Data/Analyst (2)"))
	assert.Equal(t, "", NormalizeText("!!??"))
}

func TestResolve_NumericSelection(t *testing.T) {
	res := Resolve(candidates(), "2")
	require.True(t, res.Matched)
	assert.Equal(t, 2, res.Selection.Index)
	assert.Equal(t, "a2", res.Selection.ID)
}

func TestResolve_NumericOutOfRangeFallsThroughToText(t *testing.T) {
	// "7" is out of range and matches no label, so all options come back.
	res := Resolve(candidates(), "7")
	assert.False(t, res.Matched)
	assert.False(t, res.Ambiguous)
	assert.Len(t, res.Options, 3)
}

func TestResolve_ExactBeatsSubstring(t *testing.T) {
	// "backend engineer" is an exact label and a substring of another label;
	// the exact bucket wins outright.
	res := Resolve(candidates(), "Backend Engineer")
	require.True(t, res.Matched)
	assert.Equal(t, "a1", res.Selection.ID)
}

func TestResolve_PrefixMatch(t *testing.T) {
	res := Resolve(candidates(), "senior back")
	require.True(t, res.Matched)
	assert.Equal(t, "a2", res.Selection.ID)
}

func TestResolve_SubstringMatch(t *testing.T) {
	res := Resolve(candidates(), "analyst")
	require.True(t, res.Matched)
	assert.Equal(t, "a3", res.Selection.ID)
}

func TestResolve_TokenSubsetMatch(t *testing.T) {
	// Out-of-order tokens never hit the substring bucket.
	res := Resolve(candidates(), "engineer senior")
	require.True(t, res.Matched)
	assert.Equal(t, "a2", res.Selection.ID)
}

func TestResolve_AmbiguousWithinOneBucket(t *testing.T) {
	res := Resolve(candidates(), "engineer")
	assert.False(t, res.Matched)
	require.True(t, res.Ambiguous)
	assert.Len(t, res.Options, 2)
	assert.Equal(t, "a1", res.Options[0].ID)
	assert.Equal(t, "a2", res.Options[1].ID)
}

func TestResolve_AmbiguousCappedAtFive(t *testing.T) {
	many := make([]Candidate, 8)
	for i := range many {
		many[i] = Candidate{ID: fmt.Sprintf("id%d", i), Label: fmt.Sprintf("Engineer %d", i)}
	}
	res := Resolve(many, "engineer")
	require.True(t, res.Ambiguous)
	assert.Len(t, res.Options, 5)
}

func TestResolve_NoMatchReturnsAllOptions(t *testing.T) {
	res := Resolve(candidates(), "gardener")
	assert.False(t, res.Matched)
	assert.False(t, res.Ambiguous)
	assert.Nil(t, res.Selection)
	assert.Len(t, res.Options, 3)
}

func TestResolve_EmptyChoiceReturnsAllOptions(t *testing.T) {
	res := Resolve(candidates(), "  !! ")
	assert.False(t, res.Matched)
	assert.Len(t, res.Options, 3)
}

func TestResolve_NoCandidates(t *testing.T) {
	res := Resolve(nil, "anything")
	assert.False(t, res.Matched)
	assert.False(t, res.Ambiguous)
	assert.Empty(t, res.Options)
}
