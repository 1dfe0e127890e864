package jsonbridge

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"configreader/internal/sectionstore"
)

func encodeString(t *testing.T, text, name string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := EncodeTo(&buf, name)
	require.NoError(t, err)
	_, err = io.WriteString(w, text)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestEncodeTo_UTF16WritesBOM(t *testing.T) {
	data := encodeString(t, `{}`, "utf-16")
	assert.Equal(t, []byte{0xff, 0xfe, '{', 0, '}', 0}, data)
}

func TestEncodeTo_UTF8HasNoBOM(t *testing.T) {
	assert.Equal(t, []byte(`{}`), encodeString(t, `{}`, ""))
	assert.Equal(t, []byte(`{}`), encodeString(t, `{}`, "UTF-8"))
}

func TestLoadJSON_UTF16(t *testing.T) {
	doc := `{"city": "Nairobi", "café": 1}`
	for _, name := range []string{"utf-16", "UTF_16", "utf-16le"} {
		t.Run(name, func(t *testing.T) {
			data := encodeString(t, doc, name)
			s := sectionstore.New(sectionstore.Options{})
			require.NoError(t, LoadJSON(bytes.NewReader(data), s, LoadOptions{Section: "json_data", Encoding: name}))
			v, err := s.Get("city", sectionstore.GetOptions{Section: "json_data"})
			require.NoError(t, err)
			assert.Equal(t, "Nairobi", v)
			assert.True(t, s.HasKey("json_data", "café"))
		})
	}
}

func TestLoadJSON_UTF16BigEndianBOM(t *testing.T) {
	data := encodeString(t, `{"a": 1}`, "utf-16be")
	data = append([]byte{0xfe, 0xff}, data...)
	s := sectionstore.New(sectionstore.Options{})
	require.NoError(t, LoadJSON(bytes.NewReader(data), s, LoadOptions{Encoding: "utf-16"}))
	assert.True(t, s.HasKey("", "a"))
}

func TestLoadJSON_UTF8BOMTolerated(t *testing.T) {
	data := append([]byte{0xef, 0xbb, 0xbf}, []byte(`{"a": 1}`)...)
	s := sectionstore.New(sectionstore.Options{})
	require.NoError(t, LoadJSON(bytes.NewReader(data), s, LoadOptions{}))
	assert.True(t, s.HasKey("", "a"))
}

func TestLoadJSON_Latin1(t *testing.T) {
	data := []byte("{\"name\": \"caf\xe9\"}")
	s := sectionstore.New(sectionstore.Options{})
	require.NoError(t, LoadJSON(bytes.NewReader(data), s, LoadOptions{Encoding: "latin1"}))
	v, err := s.Get("name", sectionstore.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, "café", v)
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("klingon")
	assert.ErrorIs(t, err, ErrUnknownEncoding)

	s := sectionstore.New(sectionstore.Options{})
	err = LoadJSON(strings.NewReader(`{}`), s, LoadOptions{Encoding: "klingon"})
	assert.ErrorIs(t, err, ErrUnknownEncoding)
}
