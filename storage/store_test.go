package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveGame(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		s := &FileStore{Dir: t.TempDir()}

		require.NoError(t, s.SaveGame("first", "0\n0\n1\n1\n0"))
		text, err := s.LoadGame("first")
		require.NoError(t, err)
		require.Equal(t, "0\n0\n1\n1\n0", text)

		_, err = os.Stat(filepath.Join(s.Dir, "first.save"))
		require.NoError(t, err, "Save should use the .save extension")
	})

	t.Run("overwrites existing saves", func(t *testing.T) {
		s := &FileStore{Dir: t.TempDir()}

		require.NoError(t, s.SaveGame("game", "a much longer first version"))
		require.NoError(t, s.SaveGame("game", "short"))
		text, err := s.LoadGame("game")
		require.NoError(t, err)
		require.Equal(t, "short", text)
	})

	t.Run("missing save", func(t *testing.T) {
		s := &FileStore{Dir: t.TempDir()}
		_, err := s.LoadGame("nothing")
		require.ErrorIs(t, err, ErrIOFailure)
	})

	t.Run("rejects path-like names", func(t *testing.T) {
		s := &FileStore{Dir: t.TempDir()}
		for _, name := range []string{"", "  ", "..", "../escape", `dir\name`, "a/b"} {
			require.ErrorIs(t, s.SaveGame(name, "x"), ErrIOFailure, "%q should be rejected", name)
			_, err := s.LoadGame(name)
			require.ErrorIs(t, err, ErrIOFailure, "%q should be rejected", name)
		}
	})

	t.Run("unwritable directory", func(t *testing.T) {
		s := &FileStore{Dir: filepath.Join(t.TempDir(), "missing")}
		require.ErrorIs(t, s.SaveGame("game", "x"), ErrIOFailure)
	})
}

func TestRanking(t *testing.T) {
	t.Run("missing file is empty", func(t *testing.T) {
		s := &FileStore{Dir: t.TempDir()}
		text, err := s.LoadRanking()
		require.NoError(t, err)
		require.Equal(t, "", text)
	})

	t.Run("round trip", func(t *testing.T) {
		s := &FileStore{Dir: t.TempDir()}
		require.NoError(t, s.WriteRanking("1. Red: 4 - Blue: 2"))
		require.NoError(t, s.WriteRanking("1. Red: 9 - Blue: 2"))

		text, err := s.LoadRanking()
		require.NoError(t, err)
		require.Equal(t, "1. Red: 9 - Blue: 2", text)

		data, err := os.ReadFile(filepath.Join(s.Dir, "ranking.txt"))
		require.NoError(t, err)
		require.Equal(t, text, string(data))
	})
}

func TestNewFileStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s, err := NewFileStore(dir)
	require.NoError(t, err)
	require.Equal(t, dir, s.Dir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}
