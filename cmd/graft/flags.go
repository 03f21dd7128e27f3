package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/graft/internal/config"
)

// sourceFlags selects where a configuration comes from.
type sourceFlags struct {
	ConfigPath string
	Preset     string
}

func (s *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.ConfigPath, "config", "c", "", "Path to a patch-set configuration file")
	cmd.Flags().StringVar(&s.Preset, "preset", "", fmt.Sprintf("Name of a built-in patch set (default %q)", config.DefaultPreset))
}

func validateSource(src sourceFlags) error {
	if strings.TrimSpace(src.ConfigPath) != "" && strings.TrimSpace(src.Preset) != "" {
		return fmt.Errorf("--config and --preset are mutually exclusive")
	}
	if strings.TrimSpace(src.ConfigPath) == "" {
		return nil
	}

	abs, err := filepath.Abs(src.ConfigPath)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("config file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", abs)
	}

	return nil
}

// loadConfig parses the configuration file when one is given and falls back
// to a preset otherwise.
func loadConfig(src sourceFlags) (*config.Config, error) {
	if err := validateSource(src); err != nil {
		return nil, err
	}
	if path := strings.TrimSpace(src.ConfigPath); path != "" {
		return config.ParseConfig(path)
	}

	name := strings.TrimSpace(src.Preset)
	if name == "" {
		name = config.DefaultPreset
	}
	return config.Preset(name)
}
