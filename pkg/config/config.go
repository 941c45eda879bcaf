// Package config loads bench harness settings from defaults, an optional
// osmff.toml file, OSMFF_-prefixed environment variables, and command-line
// flags, in that order of increasing priority.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config holds all settings of one bench invocation.
type Config struct {
	GraphsDir    string   `koanf:"graphs"`
	Graph        string   `koanf:"graph"`
	Strategy     string   `koanf:"strategy"`
	Roots        int      `koanf:"roots"`
	Firefighters int      `koanf:"ffs"`
	Every        int      `koanf:"every"`
	Loops        int      `koanf:"loop"`
	Ignite       []string `koanf:"ignite"` // "lat,lon" pairs overriding random roots
	Metrics      bool     `koanf:"metrics"`
	Verbose      bool     `koanf:"verbose"`
	JSONLogs     bool     `koanf:"json"`
}

// Load layers configuration sources: flags > env > osmff.toml > defaults.
func Load(f *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"graphs":   "data",
		"graph":    "",
		"strategy": "Greedy",
		"roots":    1,
		"ffs":      1,
		"every":    1,
		"loop":     1,
		"ignite":   []string{},
		"metrics":  false,
		"verbose":  false,
		"json":     false,
	}
	if err := k.Load(mapProvider(defaults), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	// The config file is optional.
	_ = k.Load(file.Provider("osmff.toml"), toml.Parser())

	if err := k.Load(env.Provider("OSMFF_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(
			strings.TrimPrefix(s, "OSMFF_")), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	if f != nil {
		if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

type mapProviderT struct {
	m map[string]interface{}
}

func mapProvider(m map[string]interface{}) *mapProviderT {
	return &mapProviderT{m: m}
}

func (p *mapProviderT) Read() (map[string]interface{}, error) {
	return p.m, nil
}

func (p *mapProviderT) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("not implemented")
}
