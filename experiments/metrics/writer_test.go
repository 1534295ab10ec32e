package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

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
	root := t.TempDir()
	w, err := NewWriter(root, "phase")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "phase"), filepath.Dir(w.Dir()))

	t.Run("writes agent configs", func(t *testing.T) {
		err := w.WriteAgentConfigs([]AgentConfig{{ID: 1, Depth: 2, PhaseAware: true}, {ID: 2, Random: true}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Equal(t, [][]string{
			{"id", "depth", "phase_aware", "random"},
			{"1", "2", "true", "false"},
			{"2", "0", "false", "true"},
		}, rows)
	})

	t.Run("writes game records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		err := w.WriteGameRecords([]GameRecord{{
			Game: 1, Agent1: 1, Agent2: 2, Starter: 2,
			GameMetric: GameMetric{
				ID: "g1", StartingPiece: "b", Winner: "r", TotalMoves: 9,
				StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second,
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "g1", "1", "2", "2", "b", "r", "9", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s"}, rows[1])
	})

	t.Run("writes move records", func(t *testing.T) {
		err := w.WriteMoveRecords([]MoveRecord{{
			Game: 1,
			MoveMetric: MoveMetric{
				Step: 3, Piece: "b", Move: "(1,1)", Score: 0.01,
				SearchMetric: SearchMetric{Depth: 2, PhaseAware: true, Nodes: 626, Leaves: 600, Duration: time.Millisecond},
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Equal(t, []string{"1", "3", "b", "(1,1)", "0.01", "2", "true", "626", "600", "1ms"}, rows[1])
	})
}

func TestCollector(t *testing.T) {
	t.Run("counts nodes and leaves", func(t *testing.T) {
		c := NewCollector()
		c.Start(2, true)
		c.AddNode()
		c.AddNode()
		c.AddLeaf()

		m := c.Complete()
		require.Equal(t, 2, m.Nodes)
		require.Equal(t, 1, m.Leaves)
		require.Equal(t, 2, m.Depth)
		require.True(t, m.PhaseAware)
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(2, true)
		c.AddNode()
		require.Equal(t, SearchMetric{}, c.Complete())
	})
}
