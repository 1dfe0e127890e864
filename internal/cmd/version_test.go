package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	provider := &AppProvider{Environ: map[string]string{}, Out: &out}
	require.NoError(t, run(t, newVersionCmd(provider)))
	assert.Equal(t, "configreader version "+Version+"\n", out.String())
}

func TestVersion_JSON(t *testing.T) {
	var out bytes.Buffer
	provider := &AppProvider{Environ: map[string]string{}, Out: &out}
	provider.Flags.JSON = true
	require.NoError(t, run(t, newVersionCmd(provider)))
	assert.JSONEq(t, `{"version":"`+Version+`"}`, out.String())
}

func TestVersion_DoesNotOpenFile(t *testing.T) {
	var out bytes.Buffer
	provider := &AppProvider{
		Environ: map[string]string{"CONFIGREADER_LOG_LEVEL": "loud"},
		Out:     &out,
	}
	require.NoError(t, run(t, newVersionCmd(provider)))
	assert.Nil(t, provider.app)
}
