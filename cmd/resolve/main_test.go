package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Endpoint(t *testing.T) {
	out, err := run("", "/filters", nil, "fieldA=a&valueA=a&fieldB=b&valueB=b")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"field":"a","value":"a"},{"field":"b","value":"b"}]`, string(out))
}

func TestRun_Providers(t *testing.T) {
	out, err := run("", "", []string{"id_filter"}, "ids=1&ids=2")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"ids":[1,2]}]`, string(out))
}

func TestRun_UnknownEndpoint(t *testing.T) {
	_, err := run("", "/missing", nil, "")
	require.Error(t, err)
}

func TestRun_DeclarationsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
providers:
  - id: page
    params:
      - name: limit
        kind: int
        required: true
endpoints:
  - path: /page
    providers: [page]
    single: true
`), 0o600))

	out, err := run(path, "/page", nil, "limit=25")
	require.NoError(t, err)
	assert.JSONEq(t, `{"limit":25}`, string(out))

	_, err = run(path, "/page", nil, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"limit"`)
}

func TestRootCmd_PrintsJSON(t *testing.T) {
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"ids=a,b"})

	require.NoError(t, cmd.Execute())
	assert.JSONEq(t, `{"ids":["a","b"]}`, buf.String())
}
