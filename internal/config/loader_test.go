package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pappan12/DiceForge/internal/config"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	p, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, config.DefaultListen, p.Listen)
	require.Equal(t, config.DefaultEngine, p.Engine)
	require.False(t, p.SeedSet)
	require.Equal(t, config.DefaultMaxTrials, p.MaxTrials)
}

func TestLoadFullConfig(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", `
listen: ":9090"
engine: "splitmix64"
seed: 12345
sim:
  max_trials: 5000
`)
	p, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, ":9090", p.Listen)
	require.Equal(t, config.EngineSplitMix64, p.Engine)
	require.True(t, p.SeedSet)
	require.Equal(t, uint64(12345), p.Seed)
	require.Equal(t, 5000, p.MaxTrials)
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", "engine: xorshift32\n")
	p, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, config.EngineXorShift32, p.Engine)
	require.Equal(t, config.DefaultListen, p.Listen)
	require.False(t, p.SeedSet)
}

func TestLoadRejectsUnknownEngine(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", "engine: mersenne\n")
	_, err := config.Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "engine must be one of")
}

func TestLoadRejectsBadMaxTrials(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", "sim:\n  max_trials: 0\n")
	_, err := config.Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "sim.max_trials")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", ":\t not yaml [")
	_, err := config.Load(path)
	require.Error(t, err)
}

func TestWatcherFiresOnChange(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", "engine: lcg64\n")

	changed := make(chan string, 1)
	w := config.NewWatcher(path, 10*time.Millisecond, func(p string) {
		select {
		case changed <- p:
		default:
		}
	})
	w.Start()
	defer w.Stop()

	// let the watcher prime its mtime cache
	time.Sleep(30 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("engine: splitmix64\n"), 0o600))
	// mtime resolution can be coarse; force it forward
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	select {
	case p := <-changed:
		require.Equal(t, path, p)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not report the change")
	}
}
