package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"configreader/internal/envbridge"
	"configreader/internal/jsonbridge"
	"configreader/internal/sectionstore"
)

func writeJSON(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))
	return path
}

func TestImportJSON(t *testing.T) {
	app, out := setupTestApp(t, "")
	path := writeJSON(t, `{"port": 8080, "hosts": ["a", "b"]}`)
	require.NoError(t, run(t, newImportJSONCmd(NewTestProvider(app)), path, "--target", "json_data"))

	assert.Equal(t, "Imported "+path+"\n", out.String())
	assert.Contains(t, readFile(t, app), "[json_data]\nport = 8080\nhosts = ['a', 'b']\n")
}

func TestImportJSON_Identifier(t *testing.T) {
	app, _ := setupTestApp(t, "")
	path := writeJSON(t, `{"@db": {"host": "localhost"}, "name": "demo"}`)
	require.NoError(t, run(t, newImportJSONCmd(NewTestProvider(app)), path, "--identifier", "@"))

	v, err := app.Reader.Get("host", sectionstore.GetOptions{Section: "db"})
	require.NoError(t, err)
	assert.Equal(t, "localhost", v)
	assert.True(t, app.Reader.Store().HasKey("", "name"))
}

func TestImportJSON_Malformed(t *testing.T) {
	app, _ := setupTestApp(t, "")
	path := writeJSON(t, `[1, 2]`)
	err := run(t, newImportJSONCmd(NewTestProvider(app)), path)
	assert.ErrorIs(t, err, jsonbridge.ErrMalformedDocument)
}

func TestImportJSON_MissingFile(t *testing.T) {
	app, _ := setupTestApp(t, "")
	err := run(t, newImportJSONCmd(NewTestProvider(app)), filepath.Join(t.TempDir(), "absent.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestImportEnv(t *testing.T) {
	app, out := setupTestApp(t, "[main]\nhome = /srv\n")
	app.Env = envbridge.MapEnv{"HOME": "/root", "EDITOR": "vi"}
	require.NoError(t, run(t, newImportEnvCmd(NewTestProvider(app)), "--target", "env"))

	assert.Equal(t, "Imported 1 variables\n", out.String())
	assert.Contains(t, readFile(t, app), "[env]\neditor = vi\n")
}

func TestImportEnv_Prefix(t *testing.T) {
	app, _ := setupTestApp(t, "")
	app.Env = envbridge.MapEnv{"MYAPP_PORT": "8080", "OTHER": "x"}
	require.NoError(t, run(t, newImportEnvCmd(NewTestProvider(app)), "--prefix", "myapp"))

	v, err := app.Reader.Get("port", sectionstore.GetOptions{Section: "myapp"})
	require.NoError(t, err)
	assert.Equal(t, int64(8080), v)
	assert.False(t, app.Reader.Store().HasKey("myapp", "other"))
}

func TestImportEnv_JSON(t *testing.T) {
	app, out := setupTestApp(t, "")
	app.JSON = true
	app.Env = envbridge.MapEnv{"A": "1", "B": "2"}
	require.NoError(t, run(t, newImportEnvCmd(NewTestProvider(app))))
	assert.Equal(t, map[string]any{"imported": float64(2)}, decodeJSON(t, out))
}
