package fieldpath_test

import (
	"encoding/json"
	"testing"

	"github.com/phishguard/phishguard/internal/domain/fieldpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(t *testing.T) map[string]any {
	t.Helper()
	var m map[string]any
	err := json.Unmarshal([]byte(`{
		"url": "https://x.com",
		"final_verdict": true,
		"confidence": 92,
		"explanations": ["one", "two"],
		"verification_methods": {
			"phishtank": {"result": true, "description": "Listed", "value": 3}
		},
		"nullish": null
	}`), &m)
	require.NoError(t, err)
	return m
}

func TestLookup_NestedHit(t *testing.T) {
	m := sample(t)
	assert.Equal(t, "Listed", fieldpath.Lookup(m, "verification_methods.phishtank.description", "none"))
	assert.Equal(t, true, fieldpath.Lookup(m, "verification_methods.phishtank.result", false))
}

func TestLookup_MissingReturnsDefault(t *testing.T) {
	m := sample(t)
	assert.Equal(t, "fallback", fieldpath.Lookup(m, "verification_methods.google.description", "fallback"))
	assert.Equal(t, 0, fieldpath.Lookup(m, "nope", 0))
	assert.Equal(t, "d", fieldpath.Lookup(nil, "a.b", "d"))
}

func TestLookup_CannotDescendReturnsDefault(t *testing.T) {
	m := sample(t)
	// "url" is a string; descending into it stops the walk.
	assert.Equal(t, "d", fieldpath.Lookup(m, "url.host", "d"))
	// nil intermediate values cannot be descended into either.
	assert.Equal(t, "d", fieldpath.Lookup(m, "nullish.inner", "d"))
}

func TestLookup_PresentNilIsReturned(t *testing.T) {
	m := sample(t)
	assert.Nil(t, fieldpath.Lookup(m, "nullish", "d"))
}

func TestTypedHelpers(t *testing.T) {
	m := sample(t)
	assert.Equal(t, "https://x.com", fieldpath.String(m, "url", ""))
	assert.Equal(t, "x", fieldpath.String(m, "confidence", "x")) // wrong type
	assert.True(t, fieldpath.Bool(m, "final_verdict", false))
	assert.False(t, fieldpath.Bool(m, "missing", false))
	assert.InDelta(t, 92, fieldpath.Float(m, "confidence", 0), 0.001)
	assert.InDelta(t, 3, fieldpath.Float(m, "verification_methods.phishtank.value", 0), 0.001)
	assert.Equal(t, []string{"one", "two"}, fieldpath.Strings(m, "explanations"))
	assert.Nil(t, fieldpath.Strings(m, "missing"))
}
