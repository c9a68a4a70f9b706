package pancake_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoobzio/pancake"
)

func collectPairs(t *testing.T, src pancake.AttrSource, opts ...pancake.Option) map[string]any {
	t.Helper()
	out := make(map[string]any)
	for k, v := range pancake.Pairs(src, opts...) {
		out[k] = v
	}
	return out
}

func TestPairs_SpliceNested(t *testing.T) {
	child := pancake.NewBag().Set("child_name", "child")
	parent := pancake.NewBag().Set("name", "parent").Set("child", child)

	got := collectPairs(t, parent)

	// The child's pairs are spliced inline: no prefixing, no renaming,
	// and no own key for the child.
	want := map[string]any{
		"name":       "parent",
		"child_name": "child",
	}
	assert.Equal(t, want, got)
	assert.NotContains(t, got, "child")
}

func TestPairs_NoFlatten(t *testing.T) {
	child := pancake.NewBag().Set("child_name", "child")
	parent := pancake.NewBag().Set("name", "parent").Set("child", child)

	got := collectPairs(t, parent, pancake.WithFlatten(false))

	require.Contains(t, got, "child")
	assert.Equal(t, map[string]any{"child_name": "child"}, got["child"])
	assert.Equal(t, "parent", got["name"])
}

func TestPairs_IDExcludedByDefault(t *testing.T) {
	b := pancake.NewBag().Set("name", "x").Set("id", 7)

	got := collectPairs(t, b)
	assert.NotContains(t, got, "id")

	got = collectPairs(t, b, pancake.WithIncludeID(true))
	assert.Equal(t, 7, got["id"])
}

func TestPairs_SelectionRules(t *testing.T) {
	b := pancake.NewBag().
		Set("name", "x").
		Set("_private", "y").
		Set("gone", nil)

	got := collectPairs(t, b)
	assert.Equal(t, map[string]any{"name": "x"}, got)
}

func TestPairs_EarlyBreak(t *testing.T) {
	b := pancake.NewBag().Set("a", 1).Set("b", 2).Set("c", 3)

	seen := 0
	for range pancake.Pairs(b) {
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}

func TestPairs_DeepSplice(t *testing.T) {
	leaf := pancake.NewBag().Set("leaf_name", "leaf")
	mid := pancake.NewBag().Set("mid_name", "mid").Set("leaf", leaf)
	root := pancake.NewBag().Set("root_name", "root").Set("mid", mid)

	got := collectPairs(t, root)

	want := map[string]any{
		"root_name": "root",
		"mid_name":  "mid",
		"leaf_name": "leaf",
	}
	assert.Equal(t, want, got)
}
