package fs_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/refdex/internal/adapters/fs"
	"go.trai.ch/refdex/internal/adapters/logger"
	"go.trai.ch/refdex/internal/core/domain"
)

func writeFiles(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o750))
		require.NoError(t, os.WriteFile(full, []byte("name: test\n"), 0o644))
	}
}

func names(nodes []domain.InternedString) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.String()
	}
	return out
}

func TestListNodes_FindsPrefabsInLexicalOrder(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"zed.prefab",
		"alpha.prefab",
		"sub/nested.prefab",
		"readme.md",
		"texture.png",
	)

	enum := fs.NewEnumerator(logger.NewWithWriter(io.Discard), nil)
	nodes, err := enum.ListNodes(root)
	require.NoError(t, err)

	slashRoot := filepath.ToSlash(root)
	require.Equal(t, []string{
		slashRoot + "/alpha.prefab",
		slashRoot + "/sub/nested.prefab",
		slashRoot + "/zed.prefab",
	}, names(nodes))
}

func TestListNodes_ExtensionMatchIsCaseInsensitive(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "upper.PREFAB", "mixed.Prefab")

	enum := fs.NewEnumerator(logger.NewWithWriter(io.Discard), nil)
	nodes, err := enum.ListNodes(root)
	require.NoError(t, err)
	require.Len(t, nodes, 2)
}

func TestListNodes_MissingRootIsEmptyCorpus(t *testing.T) {
	enum := fs.NewEnumerator(logger.NewWithWriter(io.Discard), nil)
	nodes, err := enum.ListNodes(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)
	require.Empty(t, nodes)
}

func TestListNodes_SkipsVersionControlDirectories(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"keep.prefab",
		".git/objects/stray.prefab",
		".jj/store/stray.prefab",
	)

	enum := fs.NewEnumerator(logger.NewWithWriter(io.Discard), nil)
	nodes, err := enum.ListNodes(root)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	require.Contains(t, nodes[0].String(), "keep.prefab")
}

func TestListNodes_IgnorePatterns(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"keep.prefab",
		"tmp_copy.prefab",
		"generated/auto.prefab",
	)

	enum := fs.NewEnumerator(logger.NewWithWriter(io.Discard), []string{"tmp_*", "generated"})
	nodes, err := enum.ListNodes(root)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	require.Contains(t, nodes[0].String(), "keep.prefab")
}
