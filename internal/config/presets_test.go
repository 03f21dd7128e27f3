package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/graft/internal/anchor"
)

func TestPresetNamesIncludesDefault(t *testing.T) {
	t.Parallel()

	require.Contains(t, PresetNames(), DefaultPreset)
}

func TestDefaultPresetContents(t *testing.T) {
	t.Parallel()

	cfg, err := Preset(DefaultPreset)
	require.NoError(t, err)
	require.Equal(t, []string{"GUI_App.cpp", "GUI_App.hpp"}, cfg.Labels())
	require.Equal(t, 4, cfg.TotalPatches())

	cpp := cfg.Files[0]
	require.Equal(t, "src/slic3r/GUI/GUI_App.cpp", cpp.Path)
	require.Len(t, cpp.Patches, 3)

	include := cpp.Patches[0]
	require.Equal(t, "Add CEF include to GUI_App.cpp", include.Name)
	require.Equal(t, `#include "DeviceCore/DevManager.h"`, include.AfterLine)
	require.Equal(t, "\n#ifdef SLIC3R_CEF_ENABLED\n#include \"CEF/CEFUtils.hpp\"\n#endif\n", include.Insert)

	initPatch := cpp.Patches[1]
	require.Equal(t, "    wxInitAllImageHandlers();", initPatch.AfterLine)
	require.True(t, strings.HasPrefix(initPatch.Insert, "\n#ifdef SLIC3R_CEF_ENABLED\n    int argc = wxApp::argc;\n"))
	require.True(t, strings.HasSuffix(initPatch.Insert, "    delete[] argv;\n#endif"))
	require.Contains(t, initPatch.Insert, "        m_cef_timer->Start(16);\n")

	shutdown := cpp.Patches[2]
	require.Equal(t, anchor.ModeMultiLine, shutdown.Descriptor().Anchor.Mode())
	require.Equal(t, []string{"int GUI_App::OnExit()", "{"}, shutdown.Descriptor().Anchor.Lines())
	require.True(t, strings.HasSuffix(shutdown.Insert, "    CEFUtils::Shutdown();\n#endif\n\n"))

	hpp := cfg.Files[1]
	require.Len(t, hpp.Patches, 1)
	require.Equal(t, "    bool             m_show_gcode_window{true};", hpp.Patches[0].AfterLine)
	require.Equal(t, "\n#ifdef SLIC3R_CEF_ENABLED\n    wxTimer* m_cef_timer{nullptr};\n#endif\n", hpp.Patches[0].Insert)
}

func TestUnknownPreset(t *testing.T) {
	t.Parallel()

	_, err := Preset("does-not-exist")
	require.Error(t, err)
	require.Contains(t, err.Error(), DefaultPreset)
}

func TestPresetSourceIsRawYAML(t *testing.T) {
	t.Parallel()

	data, err := PresetSource(DefaultPreset)
	require.NoError(t, err)
	require.Contains(t, string(data), "name: cef-gui-app")
}
