package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func tempDataPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "resumify.db")
}

func TestSuggestCommand(t *testing.T) {
	out, err := runCommand(t, "suggest", "Software Engineer")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "•"))
}

func TestThemeCommand(t *testing.T) {
	data := tempDataPath(t)

	out, err := runCommand(t, "theme", "--data", data, "--color", "#2563eb", "--font", "Georgia")
	require.NoError(t, err)
	assert.Contains(t, out, "#2563eb")
	assert.Contains(t, out, "Georgia")

	// The change must survive a fresh store.
	out, err = runCommand(t, "theme", "--data", data, "--color", "", "--font", "")
	require.NoError(t, err)
	assert.Contains(t, out, "#2563eb")
}

func TestResetCommand(t *testing.T) {
	data := tempDataPath(t)

	_, err := runCommand(t, "theme", "--data", data, "--color", "#2563eb")
	require.NoError(t, err)

	_, err = runCommand(t, "reset", "--data", data, "--yes")
	require.NoError(t, err)

	out, err := runCommand(t, "theme", "--data", data, "--color", "", "--font", "")
	require.NoError(t, err)
	assert.NotContains(t, out, "#2563eb")
}

func TestExportCommand_InvalidFormat(t *testing.T) {
	_, err := runCommand(t, "export", "--data", tempDataPath(t), "--format", "html")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}
