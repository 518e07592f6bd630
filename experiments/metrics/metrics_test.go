package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts events since start", func(t *testing.T) {
		c := NewCollector()
		c.Start(3)
		c.AddNode()
		c.AddLeaf()
		c.AddLeaf()
		c.AddCopy()

		m := c.Complete()

		require.Equal(t, 3, m.Depth)
		require.Equal(t, 1, m.Nodes)
		require.Equal(t, 2, m.Leaves)
		require.Equal(t, 1, m.Copies)

		c.Start(1)
		require.Zero(t, c.Complete().Leaves, "Start should reset the counters")
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(2)
		c.AddNode()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "depth")
	require.NoError(t, err)

	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{
		{ID: 1, Kind: "search", Depth: 2, Evaluation: "positional"},
		{ID: 2, Kind: "random", Seed: 9},
	}))
	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, w.WriteGameRecords([]GameRecord{{
		ID: 1, Agent1: 1, Agent2: 2,
		GameMetric: GameMetric{StartingPlayer: "black", Winner: "black", BlackStones: 40, WhiteStones: 24,
			TotalMoves: 60, StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second},
	}}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{
		Game:       1,
		MoveMetric: MoveMetric{Step: 1, Player: "black", SearchMetric: SearchMetric{Depth: 2, Nodes: 4, Leaves: 20, Copies: 20}},
	}}))

	configs := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Equal(t, []string{"id", "kind", "depth", "evaluation", "seed"}, configs[0])
	require.Equal(t, []string{"2", "random", "0", "", "9"}, configs[2])

	games := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, games, 2)
	require.Equal(t, "black", games[1][4])
	require.Equal(t, "2024-01-02T03:04:05Z", games[1][9])

	moves := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Equal(t, []string{"1", "1", "black", "false", "2", "0s", "4", "20", "20"}, moves[1])
}
