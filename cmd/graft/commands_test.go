package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateCommandDescribesConfig(t *testing.T) {
	t.Parallel()

	_, cfgPath := writeDemo(t, demoConfig)

	output, err := executeCommand(newRootCmd(), "validate", "-c", cfgPath)
	require.NoError(t, err)
	require.Contains(t, output, `Configuration "demo" is valid: 1 file(s), 3 patch(es)`)
	require.Contains(t, output, "app.cpp (app.cpp)")
	require.Contains(t, output, "- include [single-line anchor]")
	require.Contains(t, output, "- entry [multi-line anchor]")
}

func TestValidateCommandReportsErrors(t *testing.T) {
	t.Parallel()

	_, cfgPath := writeDemo(t, "version: \"1.0\"\nname: broken\nfiles: []\n")

	_, err := executeCommand(newRootCmd(), "validate", "-c", cfgPath)
	require.Error(t, err)
}

func TestValidateCommandDefaultsToPreset(t *testing.T) {
	t.Parallel()

	output, err := executeCommand(newRootCmd(), "validate")
	require.NoError(t, err)
	require.Contains(t, output, `Configuration "cef-gui-app" is valid: 2 file(s), 4 patch(es)`)
}

func TestPresetsCommandListsPresets(t *testing.T) {
	t.Parallel()

	output, err := executeCommand(newRootCmd(), "presets")
	require.NoError(t, err)
	require.Contains(t, output, "* cef-gui-app:")
}

func TestPresetsShowPrintsYAML(t *testing.T) {
	t.Parallel()

	output, err := executeCommand(newRootCmd(), "presets", "show", "cef-gui-app")
	require.NoError(t, err)
	require.Contains(t, output, "name: cef-gui-app")
	require.Contains(t, output, "after_line:")

	_, err = executeCommand(newRootCmd(), "presets", "show", "missing")
	require.Error(t, err)
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-10-15"

	output, err := executeCommand(newRootCmd(), "version")
	require.NoError(t, err)
	require.Contains(t, output, "graft 1.2.3")
	require.Contains(t, output, "abcdef1")
	require.Contains(t, output, "2026-10-15")
}
