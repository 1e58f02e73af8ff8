package config

import (
	"fmt"
	"sort"
)

var Presets = map[string]*Config{
	"compact": {Width: 60, Height: 20},
	"wide":    {Width: 160, Height: 50},
	"ascii":   {Style: "ascii"},
	"print":   {Style: "ascii", Width: 80, Height: 40, Strict: true},
}

// GetPreset returns the defaults with the named preset applied, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Apply(p)
	return cfg
}

// LookupPreset is GetPreset with an error for unknown names.
func LookupPreset(name string) (*Config, error) {
	cfg := GetPreset(name)
	if cfg == nil {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	return cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
