package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetProcessCmd_Exists verifies getProcessCmd returns
// a valid command.
func TestGetProcessCmd_Exists(t *testing.T) {
	cmd := getProcessCmd()
	require.NotNil(t, cmd, "Process command should exist")
	assert.Equal(t, "process [path]...", cmd.Use,
		"Command should take path arguments")
}

// TestGetProcessCmd_Descriptions verifies short and long
// descriptions.
func TestGetProcessCmd_Descriptions(t *testing.T) {
	cmd := getProcessCmd()

	assert.Contains(t, cmd.Short, "NetCDF",
		"Short description should mention NetCDF")
	assert.Contains(t, cmd.Long, "PostgreSQL",
		"Long description should mention PostgreSQL")
	assert.Contains(t, cmd.Long, "hash",
		"Long description should mention dedup by hash")
	assert.Contains(t, cmd.Long, "flexible",
		"Long description should list processing modes")
}

// TestGetProcessCmd_Flags verifies the process flags.
func TestGetProcessCmd_Flags(t *testing.T) {
	cmd := getProcessCmd()

	jobsFlag := cmd.Flags().Lookup("jobs")
	require.NotNil(t, jobsFlag, "--jobs flag should exist")
	assert.Equal(t, "j", jobsFlag.Shorthand,
		"Short form should be -j")

	modeFlag := cmd.Flags().Lookup("mode")
	require.NotNil(t, modeFlag, "--mode flag should exist")
	assert.Equal(t, "m", modeFlag.Shorthand,
		"Short form should be -m")
	assert.Contains(t, modeFlag.Usage, "argo",
		"Usage should list modes")

	dryRunFlag := cmd.Flags().Lookup("dry-run")
	require.NotNil(t, dryRunFlag, "--dry-run flag should exist")
	assert.Equal(t, "false", dryRunFlag.DefValue,
		"Default should be false")
}

// TestGetProcessCmd_RequiresPath verifies the path argument
// is mandatory.
func TestGetProcessCmd_RequiresPath(t *testing.T) {
	cmd := getProcessCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	assert.Error(t, err, "Should error without a path argument")
}

// TestGetProcessCmd_AcceptsMultiplePaths verifies several files can be
// passed in one invocation.
func TestGetProcessCmd_AcceptsMultiplePaths(t *testing.T) {
	cmd := getProcessCmd()

	assert.Error(t, cmd.Args(cmd, nil),
		"Should require at least one path")
	assert.NoError(t, cmd.Args(cmd, []string{"a.nc"}),
		"Should accept a single path")
	assert.NoError(t, cmd.Args(cmd, []string{"a.nc", "b.nc", "c.nc"}),
		"Should accept several paths")
}

// TestGetProcessCmd_HelpText verifies help text content.
func TestGetProcessCmd_HelpText(t *testing.T) {
	cmd := getProcessCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	require.NoError(t, err)

	helpText := buf.String()
	assert.Contains(t, helpText, "--jobs",
		"Help should mention --jobs flag")
	assert.Contains(t, helpText, "--dry-run",
		"Help should mention --dry-run flag")
	assert.Contains(t, helpText, "argodb process /data/argo/",
		"Help should show directory example")
}
