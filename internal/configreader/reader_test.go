package configreader

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"configreader/internal/envbridge"
	"configreader/internal/jsonbridge"
	"configreader/internal/literal"
	"configreader/internal/logger"
	"configreader/internal/sectionstore"
)

func openTemp(t *testing.T, opts Options) (*Reader, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.ini")
	r, err := Open(path, opts)
	require.NoError(t, err)
	return r, path
}

func TestOpen_MissingFileIsEmpty(t *testing.T) {
	r, path := openTemp(t, Options{})
	assert.Equal(t, path, r.Path())

	sections, err := r.Sections()
	require.NoError(t, err)
	assert.Equal(t, []string{"main"}, sections)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "opening must not create the file")
}

func TestOpen_RelativePathIsAbsolute(t *testing.T) {
	chdir(t, t.TempDir())
	r, err := Open("relative.ini", Options{})
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(r.Path()))
	assert.Equal(t, "relative.ini", filepath.Base(r.Path()))
}

func TestOpen_ReadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.ini")
	require.NoError(t, os.WriteFile(path, []byte("[main]\ncount = 15\n\n[db]\nhost = localhost\n"), 0644))

	r, err := Open(path, Options{})
	require.NoError(t, err)

	v, err := r.Get("count", sectionstore.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(15), v)

	v, err = r.Get("host", sectionstore.GetOptions{Section: "db"})
	require.NoError(t, err)
	assert.Equal(t, "localhost", v)
}

func TestOpen_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ini")
	require.NoError(t, os.WriteFile(path, []byte("[main]\njust words\n"), 0644))
	_, err := Open(path, Options{})
	assert.Error(t, err)
}

func TestOpen_SeedsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.ini")
	require.NoError(t, os.WriteFile(path, []byte("[main]\nreader = mine\n"), 0644))

	r, err := Open(path, Options{Defaults: map[string]map[string]string{
		"":   {"reader": "configreader", "mode": "fast"},
		"db": {"port": "5432"},
	}})
	require.NoError(t, err)

	v, err := r.Get("reader", sectionstore.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, "mine", v)

	v, err = r.Get("mode", sectionstore.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, "fast", v)

	v, err = r.Get("port", sectionstore.GetOptions{Section: "db"})
	require.NoError(t, err)
	assert.Equal(t, int64(5432), v)
}

func TestSetWithoutCommitStaysInMemory(t *testing.T) {
	r, path := openTemp(t, Options{})
	require.NoError(t, r.Set("", "name", "demo"))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, r.Save())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "name = demo")
}

func TestSetWithCommitSaves(t *testing.T) {
	r, path := openTemp(t, Options{})
	require.NoError(t, r.Set("db", "port", 5432, WithCommit()))

	other, err := Open(path, Options{})
	require.NoError(t, err)
	v, err := other.Get("port", sectionstore.GetOptions{Section: "db"})
	require.NoError(t, err)
	assert.Equal(t, int64(5432), v)
}

func TestSetMany(t *testing.T) {
	r, _ := openTemp(t, Options{})
	require.NoError(t, r.SetMany("nums", literal.MapOf("b", 2, "a", 1)))
	items, err := r.Items("nums")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, items.Keys())
}

func TestRemoveKeyAndSection(t *testing.T) {
	r, path := openTemp(t, Options{})
	require.NoError(t, r.Set("", "a", 1))
	require.NoError(t, r.Set("extra", "b", 2, WithCommit()))

	removed, err := r.RemoveKey("", "a", WithCommit())
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = r.RemoveKey("", "a")
	require.NoError(t, err)
	assert.False(t, removed)

	removed, err = r.RemoveSection("extra", WithCommit())
	require.NoError(t, err)
	assert.True(t, removed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "[extra]")
	assert.NotContains(t, string(data), "a = 1")
}

func TestReloadDiscardsUnsavedChanges(t *testing.T) {
	r, _ := openTemp(t, Options{})
	require.NoError(t, r.Set("", "kept", 1, WithCommit()))
	require.NoError(t, r.Set("", "dropped", 2))

	require.NoError(t, r.Reload())
	v, err := r.Get("kept", sectionstore.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	_, err = r.Get("dropped", sectionstore.GetOptions{})
	assert.ErrorIs(t, err, sectionstore.ErrMissingOption)
}

func TestSetPath(t *testing.T) {
	r, oldPath := openTemp(t, Options{})
	require.NoError(t, r.Set("", "k", "v", WithCommit()))

	newPath := filepath.Join(t.TempDir(), "sub", "moved.ini")
	require.NoError(t, r.SetPath(newPath))
	require.NoError(t, r.Set("", "k2", "v2", WithCommit()))

	data, err := os.ReadFile(newPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "k2 = v2")

	old, err := os.ReadFile(oldPath)
	require.NoError(t, err)
	assert.NotContains(t, string(old), "k2")
}

func TestClose(t *testing.T) {
	r, path := openTemp(t, Options{})
	require.NoError(t, r.Set("", "k", "v"))
	require.NoError(t, r.Close(WithCommit()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "k = v")

	assert.ErrorIs(t, r.Close(), ErrClosed)
	assert.ErrorIs(t, r.Save(), ErrClosed)
	assert.ErrorIs(t, r.Set("", "k", "x"), ErrClosed)
	_, err = r.Get("k", sectionstore.GetOptions{})
	assert.ErrorIs(t, err, ErrClosed)
	_, err = r.Print(&bytes.Buffer{})
	assert.ErrorIs(t, err, ErrClosed)
}

func TestCloseWithoutCommitDoesNotSave(t *testing.T) {
	r, path := openTemp(t, Options{})
	require.NoError(t, r.Set("", "k", "v"))
	require.NoError(t, r.Close())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestSearch(t *testing.T) {
	r, _ := openTemp(t, Options{})
	require.NoError(t, r.Set("cities", "capital", "Nairobi"))

	m, ok, err := r.Search("Nairobi")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, sectionstore.Match{Section: "cities", Key: "capital", Value: "Nairobi"}, m)

	_, ok, err = r.SearchWith("nairobi", sectionstore.SearchOptions{IgnoreCase: true})
	require.NoError(t, err)
	assert.True(t, ok)

	_, _, err = r.SearchWith("x", sectionstore.SearchOptions{Fuzzy: true, Threshold: 2})
	assert.ErrorIs(t, err, sectionstore.ErrInvalidThreshold)
}

func TestJSONFileRoundTrip(t *testing.T) {
	r, _ := openTemp(t, Options{})
	require.NoError(t, r.Set("", "count", 15))
	require.NoError(t, r.Set("", "city", "Nairobi"))

	out := filepath.Join(t.TempDir(), "export", "data.json")
	require.NoError(t, r.ToJSONFile(out, "utf-16"))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0xfe}, raw[:2])

	dst, _ := openTemp(t, Options{})
	require.NoError(t, dst.LoadJSONFile(out, jsonbridge.LoadOptions{Section: "imported", Encoding: "utf-16"}))
	v, err := dst.Get("main", sectionstore.GetOptions{Section: "imported"})
	require.NoError(t, err)
	assert.True(t, literal.Equal(literal.MapOf("count", int64(15), "city", "Nairobi"), v))
}

func TestLoadJSONWithCommit(t *testing.T) {
	r, path := openTemp(t, Options{})
	doc := `{"@counters": {"start": 1}}`
	require.NoError(t, r.LoadJSON(strings.NewReader(doc), jsonbridge.LoadOptions{Identifier: "@"}, WithCommit()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[counters]\nstart = 1")
}

func TestLoadJSONFile_Missing(t *testing.T) {
	r, _ := openTemp(t, Options{})
	err := r.LoadJSONFile(filepath.Join(t.TempDir(), "nope.json"), jsonbridge.LoadOptions{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestToJSON(t *testing.T) {
	r, _ := openTemp(t, Options{})
	require.NoError(t, r.Set("", "on", true))
	var buf bytes.Buffer
	require.NoError(t, r.ToJSON(&buf))
	assert.Equal(t, "{\"main\":{\"on\":true}}\n", buf.String())
}

func TestEnvBridges(t *testing.T) {
	r, _ := openTemp(t, Options{})
	require.NoError(t, r.Set("", "reader", "configreader"))

	env := envbridge.MapEnv{}
	require.NoError(t, r.ToEnv(env, true))
	assert.Equal(t, "configreader", env["MAIN_READER"])

	n, err := r.LoadEnv(envbridge.MapEnv{"MAIN_READER": "x", "READER": "y", "NEW": "z"}, envbridge.LoadOptions{Section: "env"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	keys, err := r.Store().Keys("env")
	require.NoError(t, err)
	assert.Equal(t, []string{"main_reader", "new"}, keys)
}

func TestPrint(t *testing.T) {
	r, _ := openTemp(t, Options{})
	require.NoError(t, r.Set("", "reader", "configreader"))

	var buf bytes.Buffer
	snapshot, err := r.Print(&buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"main"}, snapshot.Keys())
	assert.True(t, strings.HasPrefix(buf.String(), strings.Repeat("-", 19)+"settings.ini"))
	assert.Contains(t, buf.String(), "reader: configreader")
}

func TestLogsSave(t *testing.T) {
	var logs bytes.Buffer
	log, err := logger.NewJSON(&logs, "debug")
	require.NoError(t, err)

	r, _ := openTemp(t, Options{Logger: log})
	require.NoError(t, r.Save())
	assert.Contains(t, logs.String(), `"message":"saved"`)
	assert.Contains(t, logs.String(), `"component":"configreader"`)
}
