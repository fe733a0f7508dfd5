package prefab_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/refdex/internal/adapters/prefab"
	"go.trai.ch/refdex/internal/core/domain"
)

func writePrefab(t *testing.T, content string) domain.InternedString {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.prefab")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return domain.NewInternedString(filepath.ToSlash(path))
}

func names(nodes []domain.InternedString) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.String()
	}
	return out
}

func TestResolve_CollectsSourcesDepthFirst(t *testing.T) {
	node := writePrefab(t, `
name: player
components:
  - type: sprite
    source: assets/textures/player.png
  - type: script
    source: assets/scripts/player.cs
children:
  - name: weapon
    components:
      - type: model
        source: assets/models/sword.prefab
    children:
      - name: glow
        components:
          - type: material
            source: assets/materials/glow.shader
  - name: shield
    components:
      - type: model
        source: assets/models/shield.prefab
`)

	refs, err := prefab.NewResolver().Resolve(node)
	require.NoError(t, err)
	require.Equal(t, []string{
		"assets/textures/player.png",
		"assets/scripts/player.cs",
		"assets/models/sword.prefab",
		"assets/materials/glow.shader",
		"assets/models/shield.prefab",
	}, names(refs))
}

func TestResolve_CollapsesDuplicateSources(t *testing.T) {
	node := writePrefab(t, `
name: wall
components:
  - type: sprite
    source: assets/brick.png
children:
  - name: upper
    components:
      - type: sprite
        source: assets/brick.png
`)

	refs, err := prefab.NewResolver().Resolve(node)
	require.NoError(t, err)
	require.Equal(t, []string{"assets/brick.png"}, names(refs))
}

func TestResolve_SkipsEmptySources(t *testing.T) {
	node := writePrefab(t, `
name: empty
components:
  - type: placeholder
  - type: sprite
    source: assets/one.png
`)

	refs, err := prefab.NewResolver().Resolve(node)
	require.NoError(t, err)
	require.Equal(t, []string{"assets/one.png"}, names(refs))
}

func TestResolve_NoComponents(t *testing.T) {
	node := writePrefab(t, "name: bare\n")

	refs, err := prefab.NewResolver().Resolve(node)
	require.NoError(t, err)
	require.Empty(t, refs)
}

func TestResolve_MissingFile(t *testing.T) {
	node := domain.NewInternedString(filepath.ToSlash(filepath.Join(t.TempDir(), "gone.prefab")))

	_, err := prefab.NewResolver().Resolve(node)
	require.Error(t, err)
}

func TestResolve_MalformedYAML(t *testing.T) {
	node := writePrefab(t, "name: [unclosed\n")

	_, err := prefab.NewResolver().Resolve(node)
	require.Error(t, err)
}
