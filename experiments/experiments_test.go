package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRunStrength(t *testing.T) {
	dir, err := RunStrength(Config{Dir: t.TempDir(), Games: 2, Seed: 5, MaxTurns: 1000})
	require.NoError(t, err)

	games := readRows(t, filepath.Join(dir, "game_records.csv"))
	require.Len(t, games, 5, "Two games per colour assignment plus the header")
	require.Equal(t, []string{"1", "2"}, games[1][2:4], "Greedy should play red in the first matchup")
	require.Equal(t, []string{"2", "1"}, games[3][2:4], "Greedy should play blue in the second matchup")

	moves := readRows(t, filepath.Join(dir, "move_records.csv"))
	require.Greater(t, len(moves), 1)

	configs := readRows(t, filepath.Join(dir, "agent_configs.csv"))
	require.Equal(t, []string{"2", "random", "5"}, configs[2])
}

func TestRun(t *testing.T) {
	t.Run("mirror", func(t *testing.T) {
		dir, err := Run("mirror", Config{Dir: t.TempDir(), Games: 1, MaxTurns: 1000})
		require.NoError(t, err)
		games := readRows(t, filepath.Join(dir, "game_records.csv"))
		require.Len(t, games, 2)
		require.Equal(t, "true", games[1][8], "Greedy games should finish")
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := Run("nothing", Config{Dir: t.TempDir(), Games: 1})
		require.Error(t, err)
	})
}
