package cachefile_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/refdex/internal/adapters/cachefile"
	"go.trai.ch/refdex/internal/adapters/logger"
	"go.trai.ch/refdex/internal/core/domain"
)

func newTestStore(t *testing.T) (*cachefile.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".refdex", "cache.json")
	return cachefile.NewStore(path, logger.NewWithWriter(io.Discard)), path
}

func interned(names ...string) []domain.InternedString {
	out := make([]domain.InternedString, len(names))
	for i, n := range names {
		out[i] = domain.NewInternedString(n)
	}
	return out
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	saved := []domain.ReverseEntry{
		{Key: domain.NewInternedString("y.png"), Values: interned("x.prefab", "z.prefab")},
		{Key: domain.NewInternedString("m.cs"), Values: interned("x.prefab")},
	}
	require.NoError(t, store.Save(saved))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, saved, loaded)
}

func TestStore_SaveEmptySnapshot(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Save(nil))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Empty(t, loaded)
	// An empty snapshot still round-trips as a valid file, not a cold start.
	require.NotNil(t, loaded)
}

func TestStore_LoadMissingFileIsColdStart(t *testing.T) {
	store, _ := newTestStore(t)

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, loaded)
}

func TestStore_LoadMalformedJSONQuarantines(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := store.Load()
	require.ErrorIs(t, err, domain.ErrCorruptCache)

	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(path + ".corrupt")
	require.NoError(t, statErr)
}

func TestStore_LoadRejectsWrongVersion(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	content := `{"version": 99, "checksum": "0", "entries": []}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := store.Load()
	require.ErrorIs(t, err, domain.ErrCorruptCache)
}

func TestStore_LoadRejectsNullEntries(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	content := `{"version": 1, "checksum": "0", "entries": null}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := store.Load()
	require.ErrorIs(t, err, domain.ErrCorruptCache)
}

func TestStore_LoadRejectsEmptyKey(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	content := `{"version": 1, "checksum": "0", "entries": [{"key": "", "values": []}]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := store.Load()
	require.ErrorIs(t, err, domain.ErrCorruptCache)
}

func TestStore_LoadRejectsChecksumMismatch(t *testing.T) {
	store, path := newTestStore(t)

	require.NoError(t, store.Save([]domain.ReverseEntry{
		{Key: domain.NewInternedString("y.png"), Values: interned("x.prefab")},
	}))

	// Tamper with an entry without updating the checksum.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "x.prefab")
	tampered := strings.Replace(string(data), "x.prefab", "q.prefab", 1)
	require.NoError(t, os.WriteFile(path, []byte(tampered), 0o644))

	_, err = store.Load()
	require.ErrorIs(t, err, domain.ErrCorruptCache)
	_, statErr := os.Stat(path + ".corrupt")
	require.NoError(t, statErr)
}

func TestStore_SaveCreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deeply", "nested", "cache.json")
	store := cachefile.NewStore(path, logger.NewWithWriter(io.Discard))

	require.NoError(t, store.Save(nil))

	_, err := os.Stat(path)
	require.NoError(t, err)
}
