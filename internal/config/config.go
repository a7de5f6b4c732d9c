// Package config loads the optional HCL configuration file:
//
//	solver {
//	  heuristic  = "assignment"
//	  node_limit = 1000000
//	}
//
//	cache {
//	  path = "/var/lib/sokoban/cache"
//	}
//
//	server {
//	  addr = ":8080"
//	}
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Heuristic names accepted by the solver configuration.
const (
	HeuristicAssignment = "assignment"
	HeuristicNearest    = "nearest"
)

// Config is the resolved application configuration.
type Config struct {
	Heuristic  string
	NodeLimit  int
	CachePath  string
	ServerAddr string
}

// Default returns the zero-config behavior: admissible heuristic, no node
// cap, no cache, local server address.
func Default() *Config {
	return &Config{
		Heuristic:  HeuristicAssignment,
		NodeLimit:  0,
		CachePath:  "",
		ServerAddr: ":8080",
	}
}

// file mirrors the HCL document structure.
type file struct {
	Solver *solverBlock `hcl:"solver,block"`
	Cache  *cacheBlock  `hcl:"cache,block"`
	Server *serverBlock `hcl:"server,block"`
}

type solverBlock struct {
	Heuristic string `hcl:"heuristic,optional"`
	NodeLimit int    `hcl:"node_limit,optional"`
}

type cacheBlock struct {
	Path string `hcl:"path,optional"`
}

type serverBlock struct {
	Addr string `hcl:"addr,optional"`
}

// Load reads and parses an HCL config file, applying it over Default.
func Load(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(src, path)
}

// Parse decodes HCL source over the defaults.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse config %s: %w", filename, diags)
	}

	var f file
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &f); diags.HasErrors() {
		return nil, fmt.Errorf("decode config %s: %w", filename, diags)
	}

	cfg := Default()
	if f.Solver != nil {
		if f.Solver.Heuristic != "" {
			cfg.Heuristic = f.Solver.Heuristic
		}
		if f.Solver.NodeLimit != 0 {
			cfg.NodeLimit = f.Solver.NodeLimit
		}
	}
	if f.Cache != nil {
		cfg.CachePath = f.Cache.Path
	}
	if f.Server != nil && f.Server.Addr != "" {
		cfg.ServerAddr = f.Server.Addr
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", filename, err)
	}
	return cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	switch c.Heuristic {
	case HeuristicAssignment, HeuristicNearest:
	default:
		return fmt.Errorf("unknown heuristic %q (want %q or %q)", c.Heuristic, HeuristicAssignment, HeuristicNearest)
	}
	if c.NodeLimit < 0 {
		return fmt.Errorf("node_limit must be non-negative, got %d", c.NodeLimit)
	}
	return nil
}
