package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// resetFlags restores the package-level flag variables between runs.
func resetFlags() {
	cfgFile = defaultConfigFile
	logLevel = ""
	logFormat = ""
	maxLength = 0
	noMeta = false
	printAll = false
	relations = nil
	parallelism = 0
	useColor = false
}

// execute runs the root command with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	t.Cleanup(resetFlags)

	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestExecute(t *testing.T) {
	assert.NotNil(t, Execute)
}

func TestVersionVariables(t *testing.T) {
	assert.NotEmpty(t, Version, "Version should not be empty")
	assert.NotEmpty(t, Commit, "Commit should not be empty")
}

func TestCLIFlagsVariables(t *testing.T) {
	resetFlags()
	assert.Equal(t, "seacanal.yaml", cfgFile)

	o := GetCLIOverrides()
	assert.Empty(t, o.LogLevel)
	assert.Empty(t, o.LogFormat)
	assert.Zero(t, o.MaxLength)
	assert.False(t, o.NoMeta)
	assert.False(t, o.All)
	assert.Empty(t, o.Relations)
	assert.Zero(t, o.Parallelism)
	assert.False(t, o.Color)
}

func TestRootCommandStructure(t *testing.T) {
	assert.Equal(t, "seacanal [numbers...]", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotNil(t, rootCmd.RunE)

	for _, name := range []string{"config", "log-level", "log-format", "max", "no-meta", "all", "relation", "parallelism", "color"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "flag %s", name)
	}

	names := make([]string, 0)
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "version")
	assert.Contains(t, names, "sample")
}

func TestIsNotExist(t *testing.T) {
	assert.True(t, isNotExist(t.TempDir()+"/missing.yaml"))
	assert.False(t, isNotExist(t.TempDir()))
}

