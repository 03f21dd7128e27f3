package config

import (
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/graft/internal/patch"
)

// Config represents a full patch-set document.
type Config struct {
	Version     string     `yaml:"version" validate:"required,semver"`
	Name        string     `yaml:"name" validate:"required,min=1,max=100"`
	Description string     `yaml:"description,omitempty"`
	Settings    Settings   `yaml:"settings,omitempty"`
	Files       []FileSpec `yaml:"files" validate:"required,min=1,dive"`
}

// Settings holds run-wide defaults. CLI flags override them.
type Settings struct {
	Strict    bool   `yaml:"strict,omitempty"`
	Backup    bool   `yaml:"backup,omitempty"`
	BackupDir string `yaml:"backup_dir,omitempty"`
	Encoding  string `yaml:"encoding,omitempty" validate:"omitempty,encoding"`
}

// FileSpec names one target file and the ordered patches applied to it.
type FileSpec struct {
	Path     string      `yaml:"path" validate:"required,target_path"`
	Label    string      `yaml:"label,omitempty" validate:"omitempty,max=100"`
	Encoding string      `yaml:"encoding,omitempty" validate:"omitempty,encoding"`
	Patches  []PatchSpec `yaml:"patches" validate:"required,min=1,dive"`
}

// PatchSpec is the on-disk form of a patch descriptor. AfterLine holds the
// anchor; an embedded line break makes it a multi-line anchor.
type PatchSpec struct {
	Name      string `yaml:"name" validate:"required,min=1,max=200"`
	AfterLine string `yaml:"after_line" validate:"required,anchor"`
	Insert    string `yaml:"insert" validate:"required"`
}

// DisplayName is the label used in console output.
func (f FileSpec) DisplayName() string {
	if label := strings.TrimSpace(f.Label); label != "" {
		return label
	}
	return filepath.Base(f.Path)
}

// EffectiveEncoding returns the file encoding, falling back to the settings default.
func (f FileSpec) EffectiveEncoding(settings Settings) string {
	if enc := strings.TrimSpace(f.Encoding); enc != "" {
		return strings.ToLower(enc)
	}
	return strings.ToLower(strings.TrimSpace(settings.Encoding))
}

// Descriptors converts the file's patches into engine descriptors, preserving order.
func (f FileSpec) Descriptors() []patch.Descriptor {
	out := make([]patch.Descriptor, len(f.Patches))
	for i, p := range f.Patches {
		out[i] = p.Descriptor()
	}
	return out
}

// Descriptor converts a single patch spec.
func (p PatchSpec) Descriptor() patch.Descriptor {
	return patch.NewDescriptor(p.Name, p.AfterLine, p.Insert)
}

// TotalPatches counts patches across all files.
func (c *Config) TotalPatches() int {
	if c == nil {
		return 0
	}
	total := 0
	for _, f := range c.Files {
		total += len(f.Patches)
	}
	return total
}

// Labels returns the display names of all target files in order.
func (c *Config) Labels() []string {
	if c == nil {
		return nil
	}
	labels := make([]string, len(c.Files))
	for i, f := range c.Files {
		labels[i] = f.DisplayName()
	}
	return labels
}
