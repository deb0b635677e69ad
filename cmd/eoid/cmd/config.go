package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/earthobs/eoid/identify"
)

// config is the TOML configuration file accepted via --config.
type config struct {
	// Format is the default output format, overridden by --format.
	Format string `toml:"format"`

	// Grammars selects and orders the enabled grammars by name.
	// Empty means all built-in grammars in their default order.
	Grammars []string `toml:"grammars"`
}

var cfg config

func loadConfig() error {
	cfg = config{}
	if cfgFile == "" {
		return nil
	}
	if _, err := toml.DecodeFile(cfgFile, &cfg); err != nil {
		return fmt.Errorf("reading config %s: %w", cfgFile, err)
	}
	return nil
}

// registry builds the grammar registry from the config, preserving the
// order given there.
func registry() (*identify.Registry, error) {
	all := identify.DefaultGrammars()
	if len(cfg.Grammars) == 0 {
		return identify.NewRegistry(all...), nil
	}
	byName := make(map[string]identify.Grammar, len(all))
	for _, g := range all {
		byName[g.Name] = g
	}
	selected := make([]identify.Grammar, 0, len(cfg.Grammars))
	for _, name := range cfg.Grammars {
		g, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown grammar %q in config", name)
		}
		selected = append(selected, g)
	}
	return identify.NewRegistry(selected...), nil
}

// outputFormat resolves the effective output format: flag, then config,
// then text.
func outputFormat() (string, error) {
	f := format
	if f == "" {
		f = cfg.Format
	}
	if f == "" {
		f = "text"
	}
	switch f {
	case "text", "json", "yaml":
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q", f)
}
