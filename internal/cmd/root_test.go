package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labelconductor/pkg/config"
)

// executeCommand runs the root command with args and returns what was logged
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// flag-bound globals survive between Execute calls
	configPath = config.DefaultLabelsPath
	logLevel = ""
	verbose = false
	applyDryRun = false
	initForce = false

	t.Setenv("LOG_FORMAT", "json")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// unsetToken hides any token present in the developer's environment
func unsetToken(t *testing.T) {
	t.Helper()
	for _, key := range []string{"GITHUB_TOKEN", "GH_TOKEN", "GITHUB_API_URL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "labelconductor", rootCmd.Use)

	commands := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		commands[cmd.Name()] = true
	}

	assert.True(t, commands["apply"], "apply command not found in root command")
	assert.True(t, commands["validate"], "validate command not found in root command")
	assert.True(t, commands["init"], "init command not found in root command")

	flag := rootCmd.PersistentFlags().Lookup("config-path")
	require.NotNil(t, flag)
	assert.Equal(t, "config.yaml", flag.DefValue)
}

func TestRootCommandHelp(t *testing.T) {
	output, err := executeCommand(t, "--help")
	require.NoError(t, err)

	assert.Contains(t, output, "labelconductor")
	assert.Contains(t, output, "apply")
	assert.Contains(t, output, "--config-path")
}

func TestRootCommand_LogLevelFlag(t *testing.T) {
	path := writeLabelConfig(t, validConfig)

	output, err := executeCommand(t, "--config-path", path, "--log-level", "debug", "validate")
	require.NoError(t, err)
	assert.Contains(t, output, `"level":"debug"`)
	assert.Contains(t, output, `"label":"area-backend"`)

	output, err = executeCommand(t, "--config-path", path, "--log-level", "warn", "validate")
	require.NoError(t, err)
	assert.NotContains(t, output, "configuration is valid")
}
