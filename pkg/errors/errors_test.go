package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("patches.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "patches.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "patches.yaml:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("patches.yaml", 0, stdErrors.New("no such file"))
	require.Equal(t, "parse error: patches.yaml: no such file", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("files[1].patches[0].name", "duplicate patch name", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "files[1].patches[0].name", validationErr.Field)
	require.Contains(t, err.Error(), "duplicate patch name")
}

func TestExecutionErrorIncludesFileContext(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("permission denied")
	err := NewExecutionError("src/GUI_App.cpp", underlying)

	var executionErr *ExecutionError
	require.ErrorAs(t, err, &executionErr)
	require.Equal(t, "src/GUI_App.cpp", executionErr.File)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "src/GUI_App.cpp")
}

func TestAnchorErrorListsPatches(t *testing.T) {
	t.Parallel()

	names := []string{"Add include", "Shutdown hook"}
	err := NewAnchorError("GUI_App.cpp", names)
	names[0] = "mutated"

	var anchorErr *AnchorError
	require.ErrorAs(t, err, &anchorErr)
	require.Equal(t, []string{"Add include", "Shutdown hook"}, anchorErr.Patches)
	require.Equal(t, `anchor not found in GUI_App.cpp for 2 patch(es): "Add include", "Shutdown hook"`, err.Error())
}

func TestNilReceivers(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var executionErr *ExecutionError
	var anchorErr *AnchorError

	require.Empty(t, parseErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Empty(t, validationErr.Error())
	require.Nil(t, validationErr.Unwrap())
	require.Empty(t, executionErr.Error())
	require.Nil(t, executionErr.Unwrap())
	require.Empty(t, anchorErr.Error())
}
