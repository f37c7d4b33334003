package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "pregame", cmd.Use)
	assert.Contains(t, cmd.Long, "brace notation")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"inspect", "compare", "outcome", "book", "analyze", "verify"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestCompareCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	compareCmd, _, err := cmd.Find([]string{"compare"})
	require.NoError(t, err)

	dbFlag := compareCmd.Flags().Lookup("db")
	require.NotNil(t, dbFlag)
	assert.Equal(t, "", dbFlag.DefValue)
}

func TestBookCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	bookCmd, _, err := cmd.Find([]string{"book"})
	require.NoError(t, err)

	tagFlag := bookCmd.Flags().Lookup("tag")
	require.NotNil(t, tagFlag)
}

func TestAnalyzeCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	analyzeCmd, _, err := cmd.Find([]string{"analyze"})
	require.NoError(t, err)

	dbFlag := analyzeCmd.Flags().Lookup("db")
	require.NotNil(t, dbFlag)

	tagFlag := analyzeCmd.Flags().Lookup("tag")
	require.NotNil(t, tagFlag)
}

func TestVerifyCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	verifyCmd, _, err := cmd.Find([]string{"verify"})
	require.NoError(t, err)

	filterFlag := verifyCmd.Flags().Lookup("filter")
	require.NotNil(t, filterFlag)
}

func TestFormatValidation(t *testing.T) {
	assert.True(t, isValidFormat("text"))
	assert.True(t, isValidFormat("json"))

	assert.False(t, isValidFormat("xml"))
	assert.False(t, isValidFormat(""))
	assert.False(t, isValidFormat("TEXT"))
}

func TestFormatValidationIntegration(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--format", "invalid", "outcome", "0"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}
