package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"configreader/internal/config"
	"configreader/internal/configreader"
	"configreader/internal/envbridge"
	"configreader/internal/logger"
)

// setupTestApp creates an App over settings.ini in a temp dir, seeded with
// contents when it is not empty.
func setupTestApp(t *testing.T, contents string) (*App, *bytes.Buffer) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.ini")
	if contents != "" {
		require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	}

	reader, err := configreader.Open(path, configreader.Options{})
	require.NoError(t, err)

	var out bytes.Buffer
	app := &App{
		Reader:   reader,
		Settings: config.Settings{File: path},
		Log:      logger.Nop(),
		Env:      envbridge.MapEnv{},
		Out:      &out,
		Err:      &bytes.Buffer{},
	}
	return app, &out
}

func run(t *testing.T, cmd *cobra.Command, args ...string) error {
	t.Helper()
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return cmd.Execute()
}

func readFile(t *testing.T, app *App) string {
	t.Helper()
	data, err := os.ReadFile(app.Reader.Path())
	require.NoError(t, err)
	return string(data)
}

func decodeJSON(t *testing.T, out *bytes.Buffer) map[string]any {
	t.Helper()
	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got), "output: %s", out.String())
	return got
}
