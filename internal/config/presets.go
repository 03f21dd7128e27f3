package config

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// DefaultPreset is used when no configuration file is supplied.
const DefaultPreset = "cef-gui-app"

//go:embed presets/*.yaml
var presetFS embed.FS

// PresetNames lists the embedded presets in lexical order.
func PresetNames() []string {
	entries, err := fs.ReadDir(presetFS, "presets")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".yaml" {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// PresetSource returns the raw YAML of an embedded preset.
func PresetSource(name string) ([]byte, error) {
	name = strings.TrimSpace(name)
	data, err := presetFS.ReadFile(path.Join("presets", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("unknown preset %q (available: %s)", name, strings.Join(PresetNames(), ", "))
	}
	return data, nil
}

// Preset parses and validates an embedded preset.
func Preset(name string) (*Config, error) {
	data, err := PresetSource(name)
	if err != nil {
		return nil, err
	}
	return Parse(data, "preset:"+strings.TrimSpace(name))
}
