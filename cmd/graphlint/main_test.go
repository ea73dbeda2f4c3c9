package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	filePath := filepath.Join(t.TempDir(), "main.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0600))
	return filePath
}

func TestRun(t *testing.T) {
	t.Parallel()

	filePath := writeManifest(t, `
node "osc" {
  output "out" { capabilities = ["caps.Audio"] }
}
node "mixer" {
  input "in" { capabilities = ["caps.Audio"] }
}
wire {
  from = "osc.out"
  to   = "mixer.in"
}
`)
	out := &bytes.Buffer{}

	err := run(out, []string{"-log-level", "error", filePath})

	require.NoError(t, err)
	require.Contains(t, out.String(), "Nodes: 2")
	require.Contains(t, out.String(), "osc.out -> mixer.in")
}

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// An HCL syntax error is guaranteed to panic during the loading phase
	// inside app.NewApp().
	filePath := writeManifest(t, `
node "osc" {
  output "out" {
// Missing closing braces here
`)
	args := []string{filePath}
	out := &bytes.Buffer{}

	// --- Act ---
	// Call the run function, which should recover the panic and return it as an error.
	runErr := run(out, args)

	// --- Assert ---
	require.Error(t, runErr, "run() should have returned an error after recovering from a panic")

	errStr := runErr.Error()
	require.True(t, strings.Contains(errStr, "application startup panicked"), "The error message should indicate that a panic was recovered.")
	require.True(t, strings.Contains(errStr, "failed to parse"), "The error message should contain the underlying reason for the panic.")
}

func TestRun_ValidationFailure(t *testing.T) {
	t.Parallel()

	filePath := writeManifest(t, `
node "osc" {
  output "out" { capabilities = ["caps.DoesNotExist"] }
}
`)
	out := &bytes.Buffer{}

	err := run(out, []string{filePath})

	require.Error(t, err)
	require.Contains(t, err.Error(), "manifest validation failed")
	require.Contains(t, err.Error(), "unknown capability")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	// The run function should see `shouldExit=true` and return a nil error.
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	// The run function should propagate the error from cli.Parse.
	err := run(out, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
