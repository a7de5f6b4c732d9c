package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, HeuristicAssignment, cfg.Heuristic)
	assert.Zero(t, cfg.NodeLimit)
	assert.Empty(t, cfg.CachePath)
	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.NoError(t, cfg.Validate())
}

func TestParseFull(t *testing.T) {
	src := `
solver {
  heuristic  = "nearest"
  node_limit = 500000
}

cache {
  path = "/var/lib/sokoban/cache"
}

server {
  addr = ":9090"
}
`
	cfg, err := Parse([]byte(src), "test.hcl")
	require.NoError(t, err)
	assert.Equal(t, HeuristicNearest, cfg.Heuristic)
	assert.Equal(t, 500000, cfg.NodeLimit)
	assert.Equal(t, "/var/lib/sokoban/cache", cfg.CachePath)
	assert.Equal(t, ":9090", cfg.ServerAddr)
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`cache { path = "/tmp/c" }`), "test.hcl")
	require.NoError(t, err)
	assert.Equal(t, HeuristicAssignment, cfg.Heuristic)
	assert.Equal(t, "/tmp/c", cfg.CachePath)
	assert.Equal(t, ":8080", cfg.ServerAddr)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil, "empty.hcl")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"malformed":         `solver {`,
		"unknown heuristic": `solver { heuristic = "euclid" }`,
		"negative limit":    `solver { node_limit = -1 }`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(src), "test.hcl")
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sokoban.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`server { addr = ":7070" }`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.ServerAddr)

	_, err = Load(filepath.Join(t.TempDir(), "missing.hcl"))
	assert.Error(t, err)
}
