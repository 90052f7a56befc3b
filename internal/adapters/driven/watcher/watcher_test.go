package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDebounce = 20 * time.Millisecond

// waitForCallback waits up to timeout for the callback channel to receive a value.
func waitForCallback(ch <-chan string, timeout time.Duration) (string, bool) {
	select {
	case v := <-ch:
		return v, true
	case <-time.After(timeout):
		return "", false
	}
}

func startWatcher(t *testing.T, setup func(w *Watcher)) <-chan string {
	t.Helper()
	w, err := New(testDebounce)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	setup(w)

	changed := make(chan string, 10)
	require.NoError(t, w.Watch(func(path string) { changed <- path }))

	// Give watcher time to start
	time.Sleep(50 * time.Millisecond)
	return changed
}

func TestWatcher_DetectsSkillChange(t *testing.T) {
	dir := t.TempDir()
	skill := filepath.Join(dir, "pdf")
	require.NoError(t, os.MkdirAll(skill, 0755))

	changed := startWatcher(t, func(w *Watcher) {
		require.NoError(t, w.AddDir(dir))
	})

	file := filepath.Join(skill, "SKILL.md")
	require.NoError(t, os.WriteFile(file, []byte("# pdf"), 0644))

	path, ok := waitForCallback(changed, 2*time.Second)
	require.True(t, ok, "expected callback for skill change")
	assert.Equal(t, file, path)
}

func TestWatcher_FollowsNewDirectories(t *testing.T) {
	dir := t.TempDir()
	changed := startWatcher(t, func(w *Watcher) {
		require.NoError(t, w.AddDir(dir))
	})

	skill := filepath.Join(dir, "xlsx")
	require.NoError(t, os.MkdirAll(skill, 0755))
	_, ok := waitForCallback(changed, 2*time.Second)
	require.True(t, ok, "expected callback for new directory")

	file := filepath.Join(skill, "SKILL.md")
	require.NoError(t, os.WriteFile(file, []byte("# xlsx"), 0644))

	path, ok := waitForCallback(changed, 2*time.Second)
	require.True(t, ok, "expected callback inside new directory")
	assert.Equal(t, file, path)
}

func TestWatcher_IgnoresHiddenFiles(t *testing.T) {
	dir := t.TempDir()
	changed := startWatcher(t, func(w *Watcher) {
		require.NoError(t, w.AddDir(dir))
	})

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".DS_Store"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md~"), []byte("x"), 0644))

	_, ok := waitForCallback(changed, 300*time.Millisecond)
	assert.False(t, ok, "hidden and backup files must not fire")
}

func TestWatcher_WatchesSingleFile(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(doc, []byte("{}"), 0644))

	changed := startWatcher(t, func(w *Watcher) {
		require.NoError(t, w.AddFile(doc))
	})

	// Siblings of a watched file are not interesting.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0644))
	_, ok := waitForCallback(changed, 300*time.Millisecond)
	assert.False(t, ok, "sibling file must not fire")

	require.NoError(t, os.WriteFile(doc, []byte(`{"entries":[]}`), 0644))
	path, ok := waitForCallback(changed, 2*time.Second)
	require.True(t, ok, "expected callback for document change")
	assert.Equal(t, doc, path)
}

func TestWatcher_CoalescesBursts(t *testing.T) {
	dir := t.TempDir()
	changed := startWatcher(t, func(w *Watcher) {
		require.NoError(t, w.AddDir(dir))
	})

	file := filepath.Join(dir, "SKILL.md")
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(file, []byte{byte('a' + i)}, 0644))
	}

	_, ok := waitForCallback(changed, 2*time.Second)
	require.True(t, ok)

	_, again := waitForCallback(changed, 200*time.Millisecond)
	assert.False(t, again, "a burst of writes must fire once")
}

func TestWatcher_MissingPaths(t *testing.T) {
	w, err := New(0)
	require.NoError(t, err)
	defer w.Stop()

	missing := filepath.Join(t.TempDir(), "absent")
	assert.NoError(t, w.AddDir(missing))
	assert.NoError(t, w.AddFile(filepath.Join(missing, "catalog.json")))
	assert.Equal(t, DefaultDebounce, w.debounce)
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	w, err := New(testDebounce)
	require.NoError(t, err)
	require.NoError(t, w.Watch(func(string) {}))

	assert.Error(t, w.Watch(func(string) {}))
	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
	assert.ErrorIs(t, w.Watch(func(string) {}), ErrStopped)
}
