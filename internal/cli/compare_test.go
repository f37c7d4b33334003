package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCompareCmd(t *testing.T, format string, args ...string) (*bytes.Buffer, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewCompareCommand(&RootOptions{Format: format})
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	return buf, cmd.Execute()
}

func TestCompareText(t *testing.T) {
	buf, err := runCompareCmd(t, "text", "0", "{0|}")
	require.NoError(t, err)
	assert.Equal(t, "0 vs 1: lt\n", buf.String())
}

func TestCompareJSON(t *testing.T) {
	buf, err := runCompareCmd(t, "json", "*", "0")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "fuzzy", data["ordering"])
	assert.Equal(t, false, data["cached"])
}

func TestCompareBadNotation(t *testing.T) {
	buf, err := runCompareCmd(t, "text", "{", "0")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "E101")
}

func TestCompareWithDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "analysis.db")

	// First comparison computes and records under a fresh run.
	buf, err := runCompareCmd(t, "json", "--db", dbPath, "1", "{1|-1}")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	data := resp.Data.(map[string]any)
	assert.Equal(t, "fuzzy", data["ordering"])
	assert.Equal(t, false, data["cached"])
	assert.NotEmpty(t, data["run_id"])

	// Same pair again answers from the database.
	buf, err = runCompareCmd(t, "json", "--db", dbPath, "1", "{1|-1}")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	data = resp.Data.(map[string]any)
	assert.Equal(t, "fuzzy", data["ordering"])
	assert.Equal(t, true, data["cached"])

	// The reversed pair reuses the stored row with the ordering swapped.
	buf, err = runCompareCmd(t, "json", "--db", dbPath, "{1|-1}", "1")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	data = resp.Data.(map[string]any)
	assert.Equal(t, "fuzzy", data["ordering"])
	assert.Equal(t, true, data["cached"])
}

func TestCompareWithDatabaseOrientation(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "analysis.db")

	buf, err := runCompareCmd(t, "json", "--db", dbPath, "0", "1")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	data := resp.Data.(map[string]any)
	assert.Equal(t, "lt", data["ordering"])

	buf, err = runCompareCmd(t, "json", "--db", dbPath, "1", "0")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	data = resp.Data.(map[string]any)
	assert.Equal(t, "gt", data["ordering"])
	assert.Equal(t, true, data["cached"])
}
