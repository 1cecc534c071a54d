package infra

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"query-binding/binding/domain"
)

func TestDefaultDeclarations_Loads(t *testing.T) {
	decl, err := DefaultDeclarations()
	require.NoError(t, err)

	var ids *domain.ProviderSpec
	for i := range decl.Providers {
		if decl.Providers[i].ID == "id_filter" {
			ids = &decl.Providers[i]
		}
	}
	require.NotNil(t, ids)
	require.Len(t, ids.Params, 1)
	assert.Equal(t, domain.KindIDs, ids.Params[0].Kind)
	// default: [] precisa resultar em lista vazia, nunca nil
	require.NotNil(t, ids.Params[0].Default)
	assert.Empty(t, ids.Params[0].Default)

	paths := make([]string, 0, len(decl.Endpoints))
	for _, ep := range decl.Endpoints {
		paths = append(paths, ep.Path)
	}
	assert.Contains(t, paths, "/")
	assert.Contains(t, paths, "/filters")
}

func TestDecodeDeclarations_DefaultsAreTyped(t *testing.T) {
	decl, err := DecodeDeclarations(strings.NewReader(`
providers:
  - id: page
    params:
      - name: limit
        kind: int
        default: "20"
      - name: tags
        kind: "[]string"
        default: [x, y]
      - name: cursor
        default: null
      - name: order
        query: o
        field: sort
        required: true
`))
	require.NoError(t, err)
	require.Len(t, decl.Providers, 1)

	params := decl.Providers[0].Params
	assert.Equal(t, 20, params[0].Default)
	assert.Equal(t, []string{"x", "y"}, params[1].Default)
	assert.Nil(t, params[2].Default)
	assert.Equal(t, domain.KindString, params[2].Kind)
	assert.Equal(t, "o", params[3].EffectiveKey())
	assert.Equal(t, "sort", params[3].Output())
	assert.True(t, params[3].Required)
}

func TestDecodeDeclarations_Errors(t *testing.T) {
	cases := map[string]string{
		"empty":         ``,
		"unknown field": "providers:\n  - id: p\n    aliases: [x]\n",
		"unknown kind":  "providers:\n  - id: p\n    params:\n      - name: a\n        kind: float\n",
		"bad default":   "providers:\n  - id: p\n    params:\n      - name: a\n        kind: int\n        default: abc\n",
		"scalar list":   "providers:\n  - id: p\n    params:\n      - name: a\n        default: [x, y]\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeDeclarations(strings.NewReader(doc))
			require.Error(t, err)
		})
	}
}

func TestLoadDeclarations_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("providers:\n  - id: p\n    params:\n      - name: a\nendpoints:\n  - path: /p\n    providers: [p]\n    single: true\n"), 0o600))

	decl, err := LoadDeclarations(path)
	require.NoError(t, err)
	require.Len(t, decl.Endpoints, 1)
	assert.True(t, decl.Endpoints[0].Single)

	_, err = LoadDeclarations(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
