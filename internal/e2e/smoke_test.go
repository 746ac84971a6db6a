package e2e

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, stderr, err := runMPA(t, binaryPath, home, "prefs", "init")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "initialized preference store")

	_, err = os.Stat(filepath.Join(home, ".local", "state", "mpa", "preferences.toml"))
	require.NoError(t, err)

	stdout, stderr, err = runMPA(t, binaryPath, home, "prefs", "show", "--json")
	require.NoError(t, err, "stderr: %s", stderr)

	var prefs struct {
		Guidance     string `json:"guidance"`
		PendingCount int    `json:"pending_count"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &prefs))
	assert.Empty(t, prefs.Guidance)
	assert.Zero(t, prefs.PendingCount)

	stdout, stderr, err = runMPA(t, binaryPath, home, "version")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.NotEmpty(t, stdout)
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "mpa-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/mpa")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build mpa binary: %s", string(output))
	return binaryPath
}

func runMPA(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = t.TempDir()
	cmd.Env = append(os.Environ(), "HOME="+home, "MPA_STORE_PATH=", "MPA_LOOP_SUMMARY_THRESHOLD=")

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
