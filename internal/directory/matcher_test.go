package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phonemechanic-system/internal/pos"
)

func TestMatchSubstring(t *testing.T) {
	matcher := NewMatcher(DefaultDirectory())

	result, found := matcher.Match("012")
	require.True(t, found)
	// Alice and Eve both contain "012"; stored order decides.
	assert.Equal(t, "Alice Tan", result.Customer.Name)

	result, found = matcher.Match("8765")
	require.True(t, found)
	assert.Equal(t, "Bob Smith", result.Customer.Name)

	_, found = matcher.Match("000")
	assert.False(t, found)
}

func TestMatchMinimumLength(t *testing.T) {
	matcher := NewMatcher(DefaultDirectory())

	_, found := matcher.Match("01")
	assert.False(t, found)
	_, found = matcher.Match("")
	assert.False(t, found)
}

func TestAutofillFillsEmptyDraft(t *testing.T) {
	matcher := NewMatcher(DefaultDirectory())
	result, found := matcher.Match("012-345")
	require.True(t, found)

	draft := pos.Customer{Phone: "012-345"}
	result.Autofill(&draft)

	assert.Equal(t, "Alice Tan", draft.Name)
	assert.Equal(t, "alice.t@example.com", draft.Email)
	assert.True(t, draft.IsMember)
	assert.Equal(t, "iPhone 13 Pro", draft.DeviceModel)
}

func TestAutofillCompletesPrefixName(t *testing.T) {
	matcher := NewMatcher(DefaultDirectory())
	result, _ := matcher.Match("012-345")

	draft := pos.Customer{Name: "Ali", Phone: "012-345"}
	result.Autofill(&draft)

	assert.Equal(t, "Alice Tan", draft.Name)
}

func TestAutofillPreservesDivergentName(t *testing.T) {
	matcher := NewMatcher(DefaultDirectory())
	result, _ := matcher.Match("012-345")

	draft := pos.Customer{Name: "Alicia", Phone: "012-345"}
	result.Autofill(&draft)

	// "Alicia" is not a prefix of "Alice Tan"; the operator's typing wins.
	assert.Equal(t, "Alicia", draft.Name)
	// Everything else still autofills.
	assert.Equal(t, "alice.t@example.com", draft.Email)
	assert.True(t, draft.IsMember)
}

func TestVisitSummary(t *testing.T) {
	matcher := NewMatcher(DefaultDirectory())

	result, _ := matcher.Match("012-345")
	assert.Equal(t, "Visits: 3 | Total: $450", result.VisitSummary())

	// Eve has no prior visits; the summary stays empty.
	result, _ = matcher.Match("99887")
	assert.Empty(t, result.VisitSummary())
}

func TestSuggestedModelsMergesDirectory(t *testing.T) {
	models := SuggestedModels(DefaultDirectory())

	assert.Contains(t, models, "iPhone 15 Pro")
	// MacBook Air only exists on Eve's record.
	assert.Contains(t, models, "MacBook Air")

	// Deduplicated and sorted.
	seen := map[string]bool{}
	for i, m := range models {
		assert.False(t, seen[m])
		seen[m] = true
		if i > 0 {
			assert.LessOrEqual(t, models[i-1], m)
		}
	}
}
