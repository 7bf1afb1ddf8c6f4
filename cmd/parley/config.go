package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/parley-lang/parley/grammar"
)

// checkConfig is the optional TOML configuration for the ambiguity
// detector. Flags given on the command line override it.
type checkConfig struct {
	Check checkTable `toml:"check"`
}

type checkTable struct {
	SymsLimit    int  `toml:"syms_limit"`
	FindAll      bool `toml:"find_all"`
	UseTestRules bool `toml:"use_test_rules"`
	NoOutput     bool `toml:"no_output"`
}

func loadCheckConfig(path string) (grammar.DetectorOptions, error) {
	var cfg checkConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return grammar.DetectorOptions{}, err
	}
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return grammar.DetectorOptions{}, fmt.Errorf("cannot parse %v: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return grammar.DetectorOptions{}, fmt.Errorf("unrecognized options in %v: %v", path, strings.Join(keys, ", "))
	}
	return grammar.DetectorOptions{
		SymsLimit:    cfg.Check.SymsLimit,
		FindAll:      cfg.Check.FindAll,
		UseTestRules: cfg.Check.UseTestRules,
		NoOutput:     cfg.Check.NoOutput,
	}, nil
}
