package options

import (
	"os"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
)

func TestWorkingDirFromOs(t *testing.T) {
	options := NewOptions()
	flags := &pflag.FlagSet{}
	options.BindPersistentFlags(flags)

	// Load
	_, err := options.Load(flags)
	assert.NoError(t, err)

	// Assert
	wd, err := os.Getwd()
	assert.NoError(t, err)
	assert.Equal(t, wd, options.WorkingDirectory)
}

func TestWorkingDirFromFlag(t *testing.T) {
	tempDir := t.TempDir()
	flags := &pflag.FlagSet{}
	options := NewOptions()
	options.BindPersistentFlags(flags)
	assert.NoError(t, flags.Set("working-dir", tempDir))

	// Load
	_, err := options.Load(flags)
	assert.NoError(t, err)

	// Assert
	assert.Equal(t, tempDir, options.WorkingDirectory)
}

func TestVerboseFromFlag(t *testing.T) {
	flags := &pflag.FlagSet{}
	options := NewOptions()
	options.BindPersistentFlags(flags)
	assert.NoError(t, flags.Set("verbose", "true"))

	_, err := options.Load(flags)
	assert.NoError(t, err)
	assert.True(t, options.Verbose)
}

func TestVerboseFromEnv(t *testing.T) {
	t.Setenv("BATCHMV_VERBOSE", "true")
	flags := &pflag.FlagSet{}
	options := NewOptions()
	options.BindPersistentFlags(flags)

	_, err := options.Load(flags)
	assert.NoError(t, err)
	assert.True(t, options.Verbose)
}

func TestLogFileFromEnv(t *testing.T) {
	t.Setenv("BATCHMV_LOG_FILE", "/tmp/log.txt")
	flags := &pflag.FlagSet{}
	options := NewOptions()
	options.BindPersistentFlags(flags)

	_, err := options.Load(flags)
	assert.NoError(t, err)
	assert.Equal(t, "/tmp/log.txt", options.LogFilePath)
}

func TestValidateMissingRequired(t *testing.T) {
	t.Parallel()
	options := NewOptions()
	errs := options.Validate([]string{"LogFilePath"})
	assert.Contains(t, errs, `- Missing log file path. Please use "--log-file" flag or ENV variable "BATCHMV_LOG_FILE".`)
}

func TestValidateOk(t *testing.T) {
	t.Parallel()
	options := NewOptions()
	options.LogFilePath = "/tmp/log.txt"
	assert.Empty(t, options.Validate([]string{"LogFilePath"}))
}

func TestDotEnvLoaded(t *testing.T) {
	tempDir := t.TempDir()
	assert.NoError(t, os.WriteFile(tempDir+"/.env", []byte("BATCHMV_VERBOSE=true\n"), 0o644))
	defer os.Unsetenv("BATCHMV_VERBOSE")

	flags := &pflag.FlagSet{}
	options := NewOptions()
	options.BindPersistentFlags(flags)
	assert.NoError(t, flags.Set("working-dir", tempDir))

	warnings, err := options.Load(flags)
	assert.NoError(t, err)
	assert.Empty(t, warnings)
	assert.True(t, options.Verbose)
}
