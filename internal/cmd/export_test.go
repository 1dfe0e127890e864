package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"configreader/internal/jsonbridge"
)

func TestExportJSON_Stdout(t *testing.T) {
	app, out := setupTestApp(t, "[main]\ncount = 15\n\n[db]\nhost = localhost\n")
	require.NoError(t, run(t, newExportJSONCmd(NewTestProvider(app))))
	assert.Equal(t, "{\"main\":{\"count\":15},\"db\":{\"host\":\"localhost\"}}\n", out.String())
}

func TestExportJSON_File(t *testing.T) {
	app, out := setupTestApp(t, "[main]\ncount = 15\n")
	dest := filepath.Join(t.TempDir(), "out", "settings.json")
	require.NoError(t, run(t, newExportJSONCmd(NewTestProvider(app)), "--output", dest))

	assert.Equal(t, "Exported to "+dest+"\n", out.String())
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.JSONEq(t, `{"main":{"count":15}}`, string(data))
}

func TestExportJSON_UnknownEncoding(t *testing.T) {
	app, _ := setupTestApp(t, "")
	err := run(t, newExportJSONCmd(NewTestProvider(app)), "--encoding", "klingon")
	assert.ErrorIs(t, err, jsonbridge.ErrUnknownEncoding)
}

func TestExportEnv(t *testing.T) {
	app, out := setupTestApp(t, "[main]\nreader = configreader\n\n[db]\nhost = localhost\n")
	require.NoError(t, run(t, newExportEnvCmd(NewTestProvider(app))))
	assert.Equal(t, "DB_HOST=localhost\nMAIN_READER=configreader\n", out.String())
}

func TestExportEnv_NoPrefix(t *testing.T) {
	app, out := setupTestApp(t, "[main]\nreader = configreader\n")
	require.NoError(t, run(t, newExportEnvCmd(NewTestProvider(app)), "--no-prefix"))
	assert.Equal(t, "READER=configreader\n", out.String())
}

func TestExportEnv_Empty(t *testing.T) {
	app, out := setupTestApp(t, "")
	require.NoError(t, run(t, newExportEnvCmd(NewTestProvider(app))))
	assert.Empty(t, out.String())
}

func TestExportEnv_JSON(t *testing.T) {
	app, out := setupTestApp(t, "[main]\nreader = configreader\n")
	app.JSON = true
	require.NoError(t, run(t, newExportEnvCmd(NewTestProvider(app))))
	assert.Equal(t, map[string]any{"MAIN_READER": "configreader"}, decodeJSON(t, out))
}
