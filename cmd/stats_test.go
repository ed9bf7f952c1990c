package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetStatsCmd_Exists verifies getStatsCmd returns
// a valid command.
func TestGetStatsCmd_Exists(t *testing.T) {
	cmd := getStatsCmd()
	require.NotNil(t, cmd, "Stats command should exist")
	assert.Equal(t, "stats", cmd.Use,
		"Command name should be stats")
}

// TestGetStatsCmd_Descriptions verifies short and long
// descriptions.
func TestGetStatsCmd_Descriptions(t *testing.T) {
	cmd := getStatsCmd()

	assert.Contains(t, cmd.Short, "statistics",
		"Short description should mention statistics")
	assert.Contains(t, cmd.Long, "profiles",
		"Long description should mention profiles")
	assert.Contains(t, cmd.Long, "date range",
		"Long description should mention the date range")
}

// TestGetStatsCmd_HasRunE verifies run function is set.
func TestGetStatsCmd_HasRunE(t *testing.T) {
	cmd := getStatsCmd()

	assert.NotNil(t, cmd.RunE,
		"RunE should be set")
}

// TestGetStatsCmd_Flags verifies the stats flags.
func TestGetStatsCmd_Flags(t *testing.T) {
	cmd := getStatsCmd()

	regionsFlag := cmd.Flags().Lookup("regions")
	require.NotNil(t, regionsFlag, "--regions flag should exist")
	assert.Equal(t, "false", regionsFlag.DefValue,
		"Default should be false")

	profileFlag := cmd.Flags().Lookup("profile")
	require.NotNil(t, profileFlag, "--profile flag should exist")
	assert.Equal(t, "0", profileFlag.DefValue,
		"Default should be 0")
}

// TestGetStatsCmd_HelpText verifies help text content.
func TestGetStatsCmd_HelpText(t *testing.T) {
	cmd := getStatsCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "argodb stats",
		"Help should show example")
}
