package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	_, stderr, err := runDeathchest(t, binaryPath, home, "", "chest", "set", "--world", "world", "--x", "0", "--y", "64", "--z", "0")
	require.NoError(t, err, "stderr: %s", stderr)

	script := strings.Join([]string{
		`{"event":"join","player":"Notch"}`,
		`{"event":"give","player":"Notch","slot":3,"item":{"type":"golden_apple","amount":2}}`,
		`{"event":"death","player":"Notch"}`,
	}, "\n")
	stdout, stderr, err := runDeathchest(t, binaryPath, home, script, "replay", "--script", "-")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "drops suppressed")

	stdout, stderr, err = runDeathchest(t, binaryPath, home, "", "claims", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "claims: 1")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "deathchest-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/deathchest")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build deathchest binary: %s", string(output))
	return binaryPath
}

func runDeathchest(t *testing.T, binaryPath, home, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)
	cmd.Stdin = strings.NewReader(stdin)

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
