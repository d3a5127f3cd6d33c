// Package config loads layout and rendering options from an optional TOML
// file, then layers CLI flag overrides on top. It mirrors the teacher's
// Options-defaulting pattern (SetLayoutDefaults/SetRenderDefaults) but reads
// its file form from disk with BurntSushi/toml rather than only accepting
// struct literals.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	serr "github.com/emgraph/emgraph/pkg/errors"
	"github.com/emgraph/emgraph/pkg/layout"
)

// Defaults mirrored from the teacher's DefaultWidth/DefaultSeed constants.
const (
	DefaultBackend         = "layered"
	DefaultSeed      int64 = 1
	DefaultFormat          = "svg"
)

// Config is the on-disk and in-memory shape of an emgraph run: where to
// scan, which categories to include, and how to lay the graph out. A zero
// Config scans every category with the layered backend.
type Config struct {
	Dir             string   `toml:"dir"`
	Categories      []string `toml:"categories"`
	Seed            int64    `toml:"seed"`
	Backend         string   `toml:"backend"`
	Format          string   `toml:"format"`
	ReduceTimes     int      `toml:"reduce_times"`
	CoordIters      int      `toml:"coord_iters"`
	MaxFanout       int      `toml:"max_fanout"`
	MaxPermutations int      `toml:"max_permutations"`
	Optimal         bool     `toml:"optimal"`
	NoCache         bool     `toml:"no_cache"`
}

// Load decodes a TOML config file. A missing path is not an error - it
// returns a zero Config so callers can layer flag defaults on top.
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, serr.Wrap(serr.ErrCodeInvalidPath, err, "reading config %s", path)
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, serr.Wrap(serr.ErrCodeInvalidInput, err, "parsing config %s", path)
	}
	return cfg, nil
}

// SetDefaults fills in zero-valued fields with package defaults, the same
// spirit as [layout.Options]'s own zero-value-selects-layered-backend rule.
func (c *Config) SetDefaults() {
	if c.Backend == "" {
		c.Backend = DefaultBackend
	}
	if c.Seed == 0 {
		c.Seed = DefaultSeed
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
}

// LayoutOptions translates a Config into [layout.Options] for [layout.Runner.Run].
func (c Config) LayoutOptions() layout.Options {
	return layout.Options{
		Seed:            c.Seed,
		Categories:      c.Categories,
		Backend:         c.Backend,
		ReduceTimes:     c.ReduceTimes,
		CoordIters:      c.CoordIters,
		MaxFanout:       c.MaxFanout,
		MaxPermutations: c.MaxPermutations,
		Optimal:         c.Optimal,
	}
}
