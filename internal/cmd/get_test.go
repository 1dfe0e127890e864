package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"configreader/internal/sectionstore"
)

const seeded = `[main]
count = 15
tags = ['a', 'b']
name = demo

[db]
host = localhost
`

func TestGet(t *testing.T) {
	app, out := setupTestApp(t, seeded)
	require.NoError(t, run(t, newGetCmd(NewTestProvider(app)), "count"))
	assert.Equal(t, "15", strings.TrimSpace(out.String()))
}

func TestGet_Section(t *testing.T) {
	app, out := setupTestApp(t, seeded)
	require.NoError(t, run(t, newGetCmd(NewTestProvider(app)), "host", "--in", "db"))
	assert.Equal(t, "localhost", strings.TrimSpace(out.String()))
}

func TestGet_Missing(t *testing.T) {
	app, _ := setupTestApp(t, seeded)
	err := run(t, newGetCmd(NewTestProvider(app)), "nope")
	assert.ErrorIs(t, err, sectionstore.ErrMissingOption)
}

func TestGet_Default(t *testing.T) {
	app, out := setupTestApp(t, seeded)
	require.NoError(t, run(t, newGetCmd(NewTestProvider(app)), "port", "--default", "8080"))
	assert.Equal(t, "8080", strings.TrimSpace(out.String()))
	assert.NotContains(t, readFile(t, app), "port")
}

func TestGet_CommitDefault(t *testing.T) {
	app, _ := setupTestApp(t, seeded)
	require.NoError(t, run(t, newGetCmd(NewTestProvider(app)), "port", "--default", "8080", "--commit-default"))
	assert.Contains(t, readFile(t, app), "port = 8080")
}

func TestGet_JSON(t *testing.T) {
	app, out := setupTestApp(t, seeded)
	app.JSON = true
	require.NoError(t, run(t, newGetCmd(NewTestProvider(app)), "tags"))

	got := decodeJSON(t, out)
	assert.Equal(t, "main", got["section"])
	assert.Equal(t, "tags", got["key"])
	assert.Equal(t, []any{"a", "b"}, got["value"])
	assert.Equal(t, `{"section":"main","key":"tags","value":["a","b"]}`+"\n", out.String(),
		"fields keep their order")
}

func TestGet_Raw(t *testing.T) {
	app, out := setupTestApp(t, seeded)
	app.JSON = true
	require.NoError(t, run(t, newGetCmd(NewTestProvider(app)), "count", "--raw"))
	assert.Equal(t, "15", decodeJSON(t, out)["value"])
}
