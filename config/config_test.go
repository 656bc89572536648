package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("loading defaults without a file", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		require.Equal(t, "match", cfg.Mode)
		require.Equal(t, 30, cfg.Games)
		require.Equal(t, 300, cfg.MaxMoves)
		require.True(t, cfg.Alternate)
		require.Equal(t, "runs", cfg.OutputDir)
		require.Equal(t, "info", cfg.Log.Level)
		require.Equal(t, "minimax", cfg.Red.Kind)
		require.Equal(t, 3, cfg.Red.Depth, "Should default both agents to depth 3")
		require.Equal(t, 3, cfg.Blue.Depth)
	})

	t.Run("loading a yaml file", func(t *testing.T) {
		path := writeConfig(t, `
mode: ladder
games: 12
max_moves: 120
alternate: false
output_dir: /tmp/quadra-runs
log:
  level: warn
  pretty: false
red:
  kind: random
  seed: 99
blue:
  kind: minimax
  depth: 4
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "ladder", cfg.Mode)
		require.Equal(t, 12, cfg.Games)
		require.Equal(t, 120, cfg.MaxMoves)
		require.False(t, cfg.Alternate)
		require.Equal(t, "/tmp/quadra-runs", cfg.OutputDir)
		require.Equal(t, "warn", cfg.Log.Level)
		require.False(t, cfg.Log.Pretty)
		require.Equal(t, "random", cfg.Red.Kind)
		require.Equal(t, uint64(99), cfg.Red.Seed)
		require.Equal(t, 4, cfg.Blue.Depth)
	})

	t.Run("overriding with environment variables", func(t *testing.T) {
		t.Setenv("QUADRA_GAMES", "5")
		t.Setenv("QUADRA_LOG_LEVEL", "debug")
		t.Setenv("QUADRA_RED_DEPTH", "2")

		cfg, err := Load("")
		require.NoError(t, err)
		require.Equal(t, 5, cfg.Games, "Should let the environment override defaults")
		require.Equal(t, "debug", cfg.Log.Level)
		require.Equal(t, 2, cfg.Red.Depth)
	})

	t.Run("rejecting a missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.ErrorContains(t, err, "failed to read config file")
	})
}

func TestValidate(t *testing.T) {
	t.Run("rejecting an unknown mode", func(t *testing.T) {
		_, err := Load(writeConfig(t, "mode: tournament\n"))
		require.ErrorContains(t, err, `unknown mode "tournament"`)
	})

	t.Run("rejecting a non-positive game count", func(t *testing.T) {
		_, err := Load(writeConfig(t, "games: -1\n"))
		require.ErrorContains(t, err, "games must be positive")
	})

	t.Run("rejecting a zero move cap", func(t *testing.T) {
		_, err := Load(writeConfig(t, "max_moves: 0\n"))
		require.ErrorContains(t, err, "max_moves must be positive")
	})

	t.Run("rejecting a minimax agent without depth", func(t *testing.T) {
		_, err := Load(writeConfig(t, "blue:\n  kind: minimax\n  depth: 0\n"))
		require.ErrorContains(t, err, "blue: minimax depth must be positive")
	})

	t.Run("rejecting an unknown agent kind", func(t *testing.T) {
		_, err := Load(writeConfig(t, "red:\n  kind: mcts\n"))
		require.ErrorContains(t, err, `red: unknown agent kind "mcts"`)
	})
}
