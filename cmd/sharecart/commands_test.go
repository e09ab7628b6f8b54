package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provide-io/sharecart/pkg"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func cartPath(t *testing.T) string {
	t.Helper()
	t.Setenv("SHARECART_LOG_LEVEL", "error")
	return filepath.Join(t.TempDir(), "dat", "o_o.ini")
}

func TestPathCommand(t *testing.T) {
	path := cartPath(t)
	out, err := execute(t, "", "path", "--path", path)
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)
	assert.FileExists(t, path)
}

func TestSetGetShow(t *testing.T) {
	path := cartPath(t)

	_, err := execute(t, "", "set", "PlayerName", "Sir Robin", "--path", path)
	require.NoError(t, err)
	_, err = execute(t, "", "set", "switch7", "true", "--path", path)
	require.NoError(t, err)

	out, err := execute(t, "", "get", "Switch7", "--path", path)
	require.NoError(t, err)
	assert.Equal(t, "TRUE\n", out)

	out, err = execute(t, "", "show", "--path", path)
	require.NoError(t, err)
	assert.Contains(t, out, "PlayerName = 'Sir Robin'\n")
	assert.Contains(t, out, "Switch7 = TRUE\n")
	assert.Contains(t, out, "MapX = 0\n")
}

func TestSetRejectsOutOfRange(t *testing.T) {
	path := cartPath(t)
	_, err := execute(t, "", "set", "Misc0", "65536", "--path", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, pkg.ErrRange)
}

func TestVerifyAndReset(t *testing.T) {
	path := cartPath(t)
	out, err := execute(t, "", "verify", "--path", path)
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, bytes.Replace(content, []byte("FALSE"), []byte("NOPE"), 1), 0o644))

	_, err = execute(t, "", "verify", "--path", path)
	assert.ErrorIs(t, err, pkg.ErrIntegrity)
	_, err = execute(t, "", "show", "--path", path)
	assert.ErrorIs(t, err, pkg.ErrIntegrity)

	_, err = execute(t, "", "reset", "--path", path)
	require.NoError(t, err)
	_, err = execute(t, "", "verify", "--path", path)
	require.NoError(t, err)
}

func TestRunCommandFromStdin(t *testing.T) {
	path := cartPath(t)
	out, err := execute(t, "set MapY 1000\nget MapY\n", "run", "-", "--path", path)
	require.NoError(t, err)
	assert.Equal(t, "MapY=1000\n", out)
}

func TestRunCommandFromFile(t *testing.T) {
	path := cartPath(t)
	scriptPath := filepath.Join(t.TempDir(), "setup.cart")
	require.NoError(t, os.WriteFile(scriptPath, []byte("set Misc3 9\nget Misc3\n"), 0o644))

	out, err := execute(t, "", "run", scriptPath, "--path", path)
	require.NoError(t, err)
	assert.Equal(t, "Misc3=9\n", out)
}
