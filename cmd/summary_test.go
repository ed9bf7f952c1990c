package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetSummaryCmd_Exists verifies getSummaryCmd returns
// a valid command.
func TestGetSummaryCmd_Exists(t *testing.T) {
	cmd := getSummaryCmd()
	require.NotNil(t, cmd, "Summary command should exist")
	assert.Equal(t, "summary [file]", cmd.Use,
		"Command should take a file argument")
}

// TestGetSummaryCmd_Descriptions verifies the command never
// promises to write anything.
func TestGetSummaryCmd_Descriptions(t *testing.T) {
	cmd := getSummaryCmd()

	assert.Contains(t, cmd.Short, "NetCDF",
		"Short description should mention NetCDF")
	assert.Contains(t, cmd.Long, "nothing touches the database",
		"Long description should state the read-only contract")
}

// TestGetSummaryCmd_JSONFlag verifies --json flag exists.
func TestGetSummaryCmd_JSONFlag(t *testing.T) {
	cmd := getSummaryCmd()

	jsonFlag := cmd.Flags().Lookup("json")
	require.NotNil(t, jsonFlag, "--json flag should exist")
	assert.Equal(t, "false", jsonFlag.DefValue,
		"Default should be false")
}

// TestGetSummaryCmd_RequiresFile verifies the file argument
// is mandatory.
func TestGetSummaryCmd_RequiresFile(t *testing.T) {
	cmd := getSummaryCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	assert.Error(t, err, "Should error without a file argument")
}

// TestGetSummaryCmd_HelpText verifies help text content.
func TestGetSummaryCmd_HelpText(t *testing.T) {
	cmd := getSummaryCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	require.NoError(t, err)

	helpText := buf.String()
	assert.Contains(t, helpText, "argodb summary profile.nc",
		"Help should show basic example")
	assert.Contains(t, helpText, "--json",
		"Help should mention --json flag")
}
