package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const demoConfig = `version: "1.0"
name: demo
description: demo patch set
files:
  - path: app.cpp
    patches:
      - name: include
        after_line: '#include "a.h"'
        insert: "\n#include \"b.h\""
      - name: entry
        after_line: "int main()\n{"
        insert: "    setup();"
      - name: missing
        after_line: "void never();"
        insert: "x"
`

const demoSource = "#include \"a.h\"\nint main()\n{\n    return 0;\n}\n"

const demoPatched = "#include \"a.h\"\n#include \"b.h\"\nint main()\n{\n    setup();\n    return 0;\n}\n"

func executeCommand(root *cobra.Command, args ...string) (string, error) {
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

// writeDemo lays out a config and its target in a temp dir.
func writeDemo(t *testing.T, cfg string) (dir, cfgPath string) {
	t.Helper()

	dir = t.TempDir()
	cfgPath = filepath.Join(dir, "graft.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.cpp"), []byte(demoSource), 0o644))
	return dir, cfgPath
}

func readTarget(t *testing.T, dir string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(dir, "app.cpp"))
	require.NoError(t, err)
	return string(data)
}
