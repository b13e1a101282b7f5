package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/udl-cli/internal/core/domain"
)

func TestStoreLoad(t *testing.T) {
	store, err := NewStore(filepath.Join("testdata", "corpus"))
	require.NoError(t, err)

	set, err := store.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, set.Networks, 2)
	assert.Equal(t, "affective", set.Networks[0].ID)
	assert.Equal(t, "engagement", set.Networks[0].Principle.ID)
	assert.Equal(t, "Compromiso", set.Networks[0].Principle.Name.Label())

	guideline := set.Networks[0].Principle.Guidelines[0]
	assert.Equal(t, "guideline-1", guideline.ID)
	require.Len(t, guideline.Considerations, 2)

	// List-valued text fields survive decoding.
	assert.Equal(t, []string{
		"Optimizar la relevancia", "el valor y la autenticidad",
	}, guideline.Considerations[1].Description.TL(domain.LanguageSpanish))

	// Examples across both guideline documents, in file name order.
	require.Len(t, set.Examples, 3)
	assert.Equal(t, "1-1-1", set.Examples[0].ID)
	assert.Equal(t, "1-2-1", set.Examples[1].ID)
	assert.Equal(t, "3-2-1", set.Examples[2].ID)

	require.Len(t, set.Activities, 1)
	assert.Equal(t, "01-PRI-MAT", set.Activities[0].Code)
	assert.Equal(t, "GeoGebra", set.Activities[0].WebTools[0].Name)

	assert.NotEmpty(t, set.Version)
}

func TestStoreLoadMissingActivities(t *testing.T) {
	dir := t.TempDir()
	copyCorpus(t, dir)
	require.NoError(t, os.Remove(filepath.Join(dir, "activities.json")))

	store, err := NewStore(dir)
	require.NoError(t, err)

	set, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, set.Activities)
	assert.Len(t, set.Examples, 3)
}

func TestStoreLoadMissingCore(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "udl-core.json")
}

func TestStoreLoadMalformedDocument(t *testing.T) {
	dir := t.TempDir()
	copyCorpus(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "udl-guideline-1.json"), []byte("{broken"), 0644))

	store, err := NewStore(dir)
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "udl-guideline-1.json")
}

func TestStoreVersionTracksContent(t *testing.T) {
	dir := t.TempDir()
	copyCorpus(t, dir)

	store, err := NewStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	first, err := store.Load(ctx)
	require.NoError(t, err)
	second, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.Version, second.Version, "unchanged documents keep the version")

	path := filepath.Join(dir, "udl-guideline-3.json")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, append(data, '\n'), 0644))

	third, err := store.Load(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first.Version, third.Version, "edited documents change the version")
}

func TestNewStoreRejectsMissingDir(t *testing.T) {
	_, err := NewStore(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestWatcherReportsDocumentEdits(t *testing.T) {
	dir := t.TempDir()
	copyCorpus(t, dir)

	watcher := NewWatcher(dir)
	changes := make(chan struct{}, 8)
	require.NoError(t, watcher.Watch(func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	}))
	defer watcher.Close()

	// Give the watcher a moment to register on slow filesystems.
	time.Sleep(50 * time.Millisecond)

	path := filepath.Join(dir, "udl-guideline-1.json")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, append(data, '\n'), 0644))

	select {
	case <-changes:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a change notification")
	}
}

func TestWatcherIgnoresUnrelatedFiles(t *testing.T) {
	assert.False(t, relevantEvent(eventFor("notes.txt")))
	assert.True(t, relevantEvent(eventFor("udl-core.json")))
}

func eventFor(name string) fsnotify.Event {
	return fsnotify.Event{Name: name, Op: fsnotify.Write}
}

func copyCorpus(t *testing.T, dir string) {
	t.Helper()
	src := filepath.Join("testdata", "corpus")
	entries, err := os.ReadDir(src)
	require.NoError(t, err)
	for _, entry := range entries {
		data, err := os.ReadFile(filepath.Join(src, entry.Name()))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, entry.Name()), data, 0644))
	}
}
