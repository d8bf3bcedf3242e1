package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hgb-basel/lineage/internal/store"
)

// seedDatabase creates a database with a minimal renumbering triple.
func seedDatabase(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hgb.db")

	st, err := store.Open(path)
	require.NoError(t, err)
	defer st.Close()

	ctx := context.Background()
	rows := []store.DossierRow{
		{ID: "HGB_1_001", Title: "Eisengasse 21", DescriptiveNote: "Bis 1700."},
		{ID: "HGB_1_002", Title: "Eisengasse 21", DescriptiveNote: "Bis 1700."},
		{ID: "HGB_1_003", Title: "Eisengasse 21", DescriptiveNote: "Seit 1700."},
	}
	for _, r := range rows {
		require.NoError(t, st.InsertDossier(ctx, r))
	}
	require.NoError(t, st.InsertEntry(ctx, "e1", "HGB_1_001", 1650))
	return path
}

func TestRunCommand(t *testing.T) {
	path := seedDatabase(t)

	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"run", "--db", path, "--format", "json"})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp struct {
		RunID string `json:"run_id"`
		Stats struct {
			Dossiers  int `json:"dossiers"`
			Relations int `json:"relations"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.NotEmpty(t, resp.RunID)
	assert.Equal(t, 3, resp.Stats.Dossiers)
	assert.Equal(t, 2, resp.Stats.Relations)

	// The results landed in the database under the reported run id.
	st, err := store.Open(path)
	require.NoError(t, err)
	defer st.Close()
	var n int
	require.NoError(t, st.DB().QueryRow(
		`SELECT COUNT(*) FROM relation WHERE run_id = ?`, resp.RunID).Scan(&n))
	assert.Equal(t, 2, n)
}

func TestRunCommand_ExportCSV(t *testing.T) {
	path := seedDatabase(t)
	exportDir := t.TempDir()

	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"run", "--db", path, "--export", exportDir})

	require.NoError(t, cmd.Execute())

	matches, err := filepath.Glob(filepath.Join(exportDir, "*_dossier.csv"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestRunCommand_MissingWorkbook(t *testing.T) {
	path := seedDatabase(t)

	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"run", "--db", path,
		"--number-corrections", filepath.Join(t.TempDir(), "absent.xlsx")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRunCommand_RequiresDatabaseFlag(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"run"})

	assert.Error(t, cmd.Execute())
}
