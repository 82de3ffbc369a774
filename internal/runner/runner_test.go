package runner

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestExec_Success(t *testing.T) {
	requireShell(t)

	out, err := New().Exec(context.Background(), "sh", "-c", "echo hello")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)
}

func TestExec_NonZeroExitIsFailureEvenWithStdout(t *testing.T) {
	requireShell(t)

	out, err := New().Exec(context.Background(), "sh", "-c", "echo partial; echo boom >&2; exit 3")
	require.Error(t, err)
	assert.Equal(t, "partial\n", out)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, "sh", exitErr.Program)
	assert.Equal(t, 3, exitErr.ExitCode)
	assert.Contains(t, exitErr.Stderr, "boom")
	assert.Contains(t, err.Error(), "boom")
	assert.True(t, IsExitError(err))
}

func TestExec_MissingProgram(t *testing.T) {
	_, err := New().Exec(context.Background(), "szmer-definitely-not-installed")
	require.Error(t, err)
	assert.False(t, IsExitError(err))
}

func TestCall_PrefixesLabel(t *testing.T) {
	requireShell(t)

	err := Call(context.Background(), New(), "Failed to load agent", "sh", "-c", "echo nope >&2; exit 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to load agent: ")
	assert.Contains(t, err.Error(), "nope")
	assert.True(t, IsExitError(err))
}

func TestLookPath(t *testing.T) {
	requireShell(t)

	path, err := New().LookPath("sh")
	require.NoError(t, err)
	assert.NotEmpty(t, path)

	_, err = New().LookPath("szmer-definitely-not-installed")
	assert.Error(t, err)
}
