package adapters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/livingdoc/pkg/adapters"
)

var samplePayload = map[string]any{
	"metadata": map[string]any{
		"generator": map[string]any{
			"name":    "tool",
			"version": "1.0.0",
			"count":   float64(3),
		},
		"tags":  []any{"a", "b", float64(1), "c"},
		"runs":  []any{map[string]any{"id": "x"}},
		"empty": nil,
	},
	"scalar": "top",
}

func TestLookupMap(t *testing.T) {
	t.Run("nested object", func(t *testing.T) {
		m, ok := adapters.LookupMap(samplePayload, "metadata", "generator")
		require.True(t, ok)
		assert.Equal(t, "tool", m["name"])
	})

	t.Run("empty path returns root", func(t *testing.T) {
		m, ok := adapters.LookupMap(samplePayload)
		require.True(t, ok)
		assert.Equal(t, samplePayload, m)
	})

	t.Run("absent key", func(t *testing.T) {
		_, ok := adapters.LookupMap(samplePayload, "missing")
		assert.False(t, ok)
	})

	t.Run("mistyped node", func(t *testing.T) {
		_, ok := adapters.LookupMap(samplePayload, "scalar", "deeper")
		assert.False(t, ok)
	})

	t.Run("null node", func(t *testing.T) {
		_, ok := adapters.LookupMap(samplePayload, "metadata", "empty")
		assert.False(t, ok)
	})
}

func TestLookupString(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		s, ok := adapters.LookupString(samplePayload, "metadata", "generator", "name")
		require.True(t, ok)
		assert.Equal(t, "tool", s)
	})

	t.Run("non-string value", func(t *testing.T) {
		_, ok := adapters.LookupString(samplePayload, "metadata", "generator", "count")
		assert.False(t, ok)
	})

	t.Run("absent", func(t *testing.T) {
		_, ok := adapters.LookupString(samplePayload, "metadata", "generator", "nope")
		assert.False(t, ok)
	})
}

func TestLookupStringPtr(t *testing.T) {
	ptr := adapters.LookupStringPtr(samplePayload, "metadata", "generator", "version")
	require.NotNil(t, ptr)
	assert.Equal(t, "1.0.0", *ptr)

	assert.Nil(t, adapters.LookupStringPtr(samplePayload, "metadata", "empty"))
	assert.Nil(t, adapters.LookupStringPtr(samplePayload, "nowhere", "at", "all"))
}

func TestLookupStrings(t *testing.T) {
	t.Run("skips non-string elements", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b", "c"},
			adapters.LookupStrings(samplePayload, "metadata", "tags"))
	})

	t.Run("absent yields empty", func(t *testing.T) {
		got := adapters.LookupStrings(samplePayload, "metadata", "missing")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("mistyped yields empty", func(t *testing.T) {
		assert.Empty(t, adapters.LookupStrings(samplePayload, "scalar"))
	})
}

func TestLookupValue(t *testing.T) {
	raw, ok := adapters.LookupValue(samplePayload, "metadata", "runs")
	require.True(t, ok)
	require.Len(t, raw, 1)

	_, ok = adapters.LookupValue(samplePayload, "metadata", "generator", "ghost")
	assert.False(t, ok)

	_, ok = adapters.LookupValue(samplePayload)
	assert.False(t, ok)
}

func TestStringOr(t *testing.T) {
	assert.Equal(t, "tool", adapters.StringOr(samplePayload, "fallback", "metadata", "generator", "name"))
	assert.Equal(t, "fallback", adapters.StringOr(samplePayload, "fallback", "metadata", "generator", "ghost"))
}
