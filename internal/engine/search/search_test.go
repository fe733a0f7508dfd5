package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/refdex/internal/core/domain"
	"go.trai.ch/refdex/internal/engine/search"
)

func builtCache(edges map[string][]string) *domain.GraphCache {
	cache := domain.NewGraphCache()
	for from, deps := range edges {
		node := domain.NewInternedString(from)
		cache.Touch(node)
		for _, dep := range deps {
			cache.AddEdge(node, domain.NewInternedString(dep))
		}
	}
	cache.MarkInitialized()
	return cache
}

func TestQuery_ReferencesAndDependencies(t *testing.T) {
	cache := builtCache(map[string][]string{
		"door.prefab": {"wood.png", "decal.jpg", "hinge.prefab", "door.cs"},
		"room.prefab": {"door.prefab"},
	})
	engine := search.NewEngine()

	result, err := engine.Query(cache, "door.prefab")
	require.NoError(t, err)

	require.Equal(t, []string{"room.prefab"}, result.References)
	require.Equal(t, []string{"hinge.prefab"}, result.Dependencies[domain.CategoryPrefab])
	require.Equal(t, []string{"decal.jpg", "wood.png"}, result.Dependencies[domain.CategoryMedia])
	require.Equal(t, []string{"door.cs"}, result.Dependencies[domain.CategoryCode])
	require.Empty(t, result.Dependencies[domain.CategoryOther])
	require.False(t, result.Empty())
}

func TestQuery_ReferencesSortedCaseInsensitive(t *testing.T) {
	cache := domain.NewGraphCache()
	target := domain.NewInternedString("shared.png")
	for _, from := range []string{"Zoo.prefab", "alpha.prefab", "Beta.prefab", "beta.prefab"} {
		cache.AddEdge(domain.NewInternedString(from), target)
	}
	cache.MarkInitialized()

	result, err := search.NewEngine().Query(cache, "shared.png")
	require.NoError(t, err)
	// Case-insensitive ascending, byte order breaking the Beta/beta tie.
	require.Equal(t,
		[]string{"alpha.prefab", "Beta.prefab", "beta.prefab", "Zoo.prefab"},
		result.References)
}

func TestQuery_AbsentTargetIsEmptyNotError(t *testing.T) {
	cache := builtCache(map[string][]string{"a.prefab": {"b.png"}})

	result, err := search.NewEngine().Query(cache, "missing.prefab")
	require.NoError(t, err)
	require.True(t, result.Empty())
	require.Empty(t, result.References)
}

func TestQuery_UninitializedCache(t *testing.T) {
	cache := domain.NewGraphCache()

	_, err := search.NewEngine().Query(cache, "anything.prefab")
	require.ErrorIs(t, err, domain.ErrNotInitialized)
}

func TestQuery_NodeWithNoDependencies(t *testing.T) {
	cache := builtCache(map[string][]string{
		"leaf.prefab": nil,
		"tree.prefab": {"leaf.prefab"},
	})

	result, err := search.NewEngine().Query(cache, "leaf.prefab")
	require.NoError(t, err)
	require.Equal(t, []string{"tree.prefab"}, result.References)
	for _, cat := range domain.Categories() {
		require.Empty(t, result.Dependencies[cat])
	}
	require.False(t, result.Empty())
}

func TestQuery_UnknownExtensionFallsIntoOther(t *testing.T) {
	cache := builtCache(map[string][]string{
		"scene.prefab": {"notes.txt", "data.bin", "noext"},
	})

	result, err := search.NewEngine().Query(cache, "scene.prefab")
	require.NoError(t, err)
	require.Equal(t,
		[]string{"data.bin", "noext", "notes.txt"},
		result.Dependencies[domain.CategoryOther])
}
