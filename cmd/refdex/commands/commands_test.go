package commands_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/refdex/cmd/refdex/commands"
	"go.trai.ch/refdex/internal/adapters/cachefile"
	"go.trai.ch/refdex/internal/adapters/fs"
	"go.trai.ch/refdex/internal/adapters/logger"
	"go.trai.ch/refdex/internal/adapters/prefab"
	"go.trai.ch/refdex/internal/adapters/telemetry"
	"go.trai.ch/refdex/internal/app"
	"go.trai.ch/refdex/internal/core/domain"
	"go.trai.ch/refdex/internal/engine/indexer"
	"go.trai.ch/refdex/internal/engine/search"
)

func newTestCLI(t *testing.T) *commands.CLI {
	t.Helper()
	dir := t.TempDir()
	root := filepath.Join(dir, "assets")
	require.NoError(t, os.MkdirAll(root, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(root, "door.prefab"), []byte(`
name: door
components:
  - type: sprite
    source: assets/wood.png
`), 0o644))

	settings := domain.DefaultSettings()
	settings.Root = root
	settings.CachePath = filepath.Join(dir, ".refdex", "cache.json")

	log := logger.NewWithWriter(io.Discard)
	store := cachefile.NewStore(settings.CachePath, log)
	ix := indexer.New(fs.NewEnumerator(log, settings.Ignore), prefab.NewResolver(), store, log, settings.BatchSize)
	a := app.New(settings, ix, search.NewEngine(), store, telemetry.NewNoOpTracer(), log)
	return commands.New(a)
}

func TestIndexCommand(t *testing.T) {
	cli := newTestCLI(t)
	cli.SetArgs([]string{"index"})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestSearchCommand(t *testing.T) {
	cli := newTestCLI(t)
	cli.SetArgs([]string{"search", "assets/wood.png"})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestSearchCommandRequiresExactlyOneArgument(t *testing.T) {
	cli := newTestCLI(t)
	cli.SetArgs([]string{"search"})
	require.Error(t, cli.Execute(context.Background()))

	cli.SetArgs([]string{"search", "a.png", "b.png"})
	require.Error(t, cli.Execute(context.Background()))
}

func TestSearchCommandUnknownTarget(t *testing.T) {
	cli := newTestCLI(t)
	// An unknown node is an empty result, not a command failure.
	cli.SetArgs([]string{"search", "assets/missing.png"})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestVersionCommand(t *testing.T) {
	cli := newTestCLI(t)
	cli.SetArgs([]string{"version"})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestUnknownCommand(t *testing.T) {
	cli := newTestCLI(t)
	cli.SetArgs([]string{"nonsense"})
	require.Error(t, cli.Execute(context.Background()))
}
