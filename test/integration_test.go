//go:build integration
// +build integration

package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildCLI compiles the deckdrop binary into dir and returns its path
func buildCLI(t *testing.T, dir string) string {
	t.Helper()

	cliPath := filepath.Join(dir, "deckdrop")
	buildCmd := exec.Command("go", "build", "-o", cliPath, ".")
	buildCmd.Dir = ".."
	output, err := buildCmd.CombinedOutput()
	require.NoError(t, err, "Failed to build CLI: %s", string(output))

	return cliPath
}

func TestIntegrationCLIWorkflow(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tempDir := t.TempDir()

	// Set HOME to temp directory for isolated testing
	t.Setenv("HOME", tempDir)

	cliPath := buildCLI(t, tempDir)

	t.Run("ShowHelp", func(t *testing.T) {
		cmd := exec.Command(cliPath, "--help")
		output, err := cmd.CombinedOutput()
		assert.NoError(t, err)
		assert.Contains(t, string(output), "deckdrop")
		assert.Contains(t, string(output), "generate")
		assert.Contains(t, string(output), "preview")
		assert.Contains(t, string(output), "accounts")
		assert.Contains(t, string(output), "setup")
	})

	t.Run("Version", func(t *testing.T) {
		cmd := exec.Command(cliPath, "version")
		output, err := cmd.CombinedOutput()
		assert.NoError(t, err)
		assert.Contains(t, string(output), "DeckDrop version")
	})

	t.Run("AccountsWithoutConfig", func(t *testing.T) {
		// No config file means connection settings are missing
		cmd := exec.Command(cliPath, "accounts")
		output, err := cmd.CombinedOutput()
		assert.Error(t, err)
		assert.Contains(t, string(output), "required")
	})

	t.Run("PreviewRequiresAccountID", func(t *testing.T) {
		cmd := exec.Command(cliPath, "preview")
		output, err := cmd.CombinedOutput()
		assert.Error(t, err)
		assert.Contains(t, string(output), "arg")
	})
}

func TestIntegrationConfigOperations(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tempDir := t.TempDir()

	// Create a test config file
	configDir := filepath.Join(tempDir, ".deckdrop")
	err := os.MkdirAll(configDir, 0700)
	require.NoError(t, err)

	configContent := `snowflake:
  account: "test123.us-east-1"
  username: "testuser"
  password: "testpass"
  role: "TESTROLE"
  warehouse: "TEST_WH"
  database: "SALES"
  schema: "CRM"
  timeout: "not-a-duration"

reports:
  output_dir: "./reports"
`

	configFile := filepath.Join(configDir, "config.yaml")
	err = os.WriteFile(configFile, []byte(configContent), 0600)
	require.NoError(t, err)

	t.Setenv("HOME", tempDir)

	cliPath := buildCLI(t, tempDir)

	t.Run("GenerateRejectsBadTimeout", func(t *testing.T) {
		cmd := exec.Command(cliPath, "generate", "ACC001")
		output, err := cmd.CombinedOutput()
		assert.Error(t, err)
		assert.Contains(t, string(output), "Invalid timeout")
	})

	t.Run("PreviewRejectsBadTimeout", func(t *testing.T) {
		cmd := exec.Command(cliPath, "preview", "ACC001")
		output, err := cmd.CombinedOutput()
		assert.Error(t, err)
		assert.Contains(t, string(output), "Invalid timeout")
	})
}
