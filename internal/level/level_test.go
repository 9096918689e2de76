package level

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestDefaultPack(t *testing.T) {
	pack := Default()
	require.Equal(t, 3, pack.Count())

	first := pack.Get(1)
	assert.Equal(t, "Tutorial", first.Name)
	assert.Equal(t, core.Point{X: 50, Y: 300}, first.PlayerStart)
	assert.Len(t, first.Platforms, 7)
	assert.Len(t, first.Coins, 4)
	assert.Equal(t, core.Point{X: 200, Y: 320}, first.Coins[0])
	require.Len(t, first.Enemies, 1)
	assert.Equal(t, EnemySpec{Pos: core.Point{X: 400, Y: 270}, LeftBound: 300, RightBound: 450}, first.Enemies[0])
	require.NotNil(t, first.Exit)
	assert.Equal(t, core.NewRect(750, 400, 50, 50), *first.Exit)

	second := pack.Get(2)
	assert.Len(t, second.Platforms, 11)
	assert.Len(t, second.Coins, 8)
	assert.Len(t, second.Enemies, 3)

	third := pack.Get(3)
	assert.Equal(t, "Challenging", third.Name)
	assert.Len(t, third.Platforms, 21)
	assert.Len(t, third.Coins, 17)
	assert.Len(t, third.Enemies, 6)
	assert.Equal(t, core.NewRect(500, 0, 50, 50), *third.Exit)
}

func TestPackGetFallsBackToFirstLevel(t *testing.T) {
	pack := Default()

	for _, n := range []int{0, -1, 4, 99} {
		assert.Equal(t, 1, pack.Get(n).ID, "Get(%d)", n)
	}
}

func TestNewPackRejectsEmpty(t *testing.T) {
	_, err := NewPack(nil)
	assert.ErrorIs(t, err, ErrNoLevels)
}

func TestParseAssignsMissingIDsAndNames(t *testing.T) {
	levels, err := Parse([]byte(`
levels:
  - player_start: {x: 10, y: 20}
  - player_start: {x: 30, y: 40}
    name: Second
`))
	require.NoError(t, err)
	require.Len(t, levels, 2)

	assert.Equal(t, 1, levels[0].ID)
	assert.Equal(t, "Level 1", levels[0].Name)
	assert.Nil(t, levels[0].Exit)
	assert.Equal(t, 2, levels[1].ID)
	assert.Equal(t, "Second", levels[1].Name)
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "missing player start",
			yaml: "levels:\n  - name: Broken\n",
			want: "player_start is required",
		},
		{
			name: "zero-size platform",
			yaml: "levels:\n  - player_start: {x: 0, y: 0}\n    platforms:\n      - {x: 0, y: 0, width: 0, height: 10}\n",
			want: "platform 0 has non-positive size",
		},
		{
			name: "inverted patrol bounds",
			yaml: "levels:\n  - player_start: {x: 0, y: 0}\n    enemies:\n      - {x: 5, y: 5, left_bound: 100, right_bound: 50}\n",
			want: "enemy 0 has left_bound",
		},
		{
			name: "zero-size exit",
			yaml: "levels:\n  - player_start: {x: 0, y: 0}\n    exit: {x: 0, y: 0, width: 50, height: 0}\n",
			want: "exit has non-positive size",
		},
		{
			name: "malformed yaml",
			yaml: "levels: [",
			want: "level: cannot parse yaml",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestParseEmptyPack(t *testing.T) {
	_, err := Parse([]byte("levels: []\n"))
	assert.True(t, errors.Is(err, ErrNoLevels))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	pack, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, pack.Count())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pack.yaml")
	writeFile(t, path, "levels:\n  - name: Solo\n    player_start: {x: 1, y: 2}\n")

	pack, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, pack.Count())
	assert.Equal(t, "Solo", pack.Get(1).Name)
}

func TestLoadDirectoryConcatenatesSortedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.yml"), "levels:\n  - {id: 2, name: B, player_start: {x: 0, y: 0}}\n")
	writeFile(t, filepath.Join(dir, "a.yaml"), "levels:\n  - {id: 1, name: A, player_start: {x: 0, y: 0}}\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")

	pack, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, 2, pack.Count())
	assert.Equal(t, "A", pack.Get(1).Name)
	assert.Equal(t, "B", pack.Get(2).Name)
}

func TestLoadEmptyDirectory(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.ErrorIs(t, err, ErrNoLevels)
}

func TestLoadMissingPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "level: cannot stat")
}

func TestLoadReportsFileOnParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	writeFile(t, path, "levels:\n  - name: NoStart\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.yaml")
	assert.Contains(t, err.Error(), "player_start is required")
}

func TestWatcherReportsPackChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	path := filepath.Join(dir, "pack.yaml")
	writeFile(t, path, "levels: []\n")

	select {
	case name := <-w.Events:
		assert.Equal(t, path, name)
	case <-time.After(2 * time.Second):
		t.Fatal("no event for a changed pack file")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	writeFile(t, filepath.Join(dir, "readme.txt"), "hello")

	select {
	case name := <-w.Events:
		t.Fatalf("unexpected event for %s", name)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())

	_, ok := <-w.Events
	assert.False(t, ok, "Events should be closed")
}
