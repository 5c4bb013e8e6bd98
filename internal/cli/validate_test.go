package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// validate — success
// ---------------------------------------------------------------------------

func TestValidate_Passes(t *testing.T) {
	p := writeTempCSV(t, "a,b,c\n1,2,3\n")

	stdout, _, err := executeCommand("-q", "validate", p, "-c", "a,c", "-F", "b>1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Validation passed.")
}

func TestValidate_NoFlagsPasses(t *testing.T) {
	p := writeTempCSV(t, "a,b\n1,2\n")

	stdout, _, err := executeCommand("-q", "validate", p)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Validation passed.")
}

// ---------------------------------------------------------------------------
// validate — failures → exit code 7
// ---------------------------------------------------------------------------

func TestValidate_UnknownColumn(t *testing.T) {
	p := writeTempCSV(t, "a,b\n1,2\n")

	_, _, err := executeCommand("-q", "validate", p, "-c", "a,z")
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 7, exitErr.Code)
	assert.Contains(t, err.Error(), `"z"`)
}

func TestValidate_UnknownFilterColumn(t *testing.T) {
	p := writeTempCSV(t, "a,b\n1,2\n")

	_, _, err := executeCommand("-q", "validate", p, "-F", "z=1")
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 7, exitErr.Code)
}

func TestValidate_MalformedFilter(t *testing.T) {
	p := writeTempCSV(t, "a,b\n1,2\n")

	_, _, err := executeCommand("-q", "validate", p, "-F", "a~1")
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 7, exitErr.Code)
}

func TestValidate_EmptyInput(t *testing.T) {
	p := writeTempCSV(t, "")

	_, _, err := executeCommand("-q", "validate", p)
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 7, exitErr.Code)
}

func TestValidate_MissingFile(t *testing.T) {
	_, _, err := executeCommand("-q", "validate", "/nonexistent/data.csv")
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
}
