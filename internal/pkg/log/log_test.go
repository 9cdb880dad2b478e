package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLevelsNonVerbose(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer
	logger := NewLogger(&stdout, &stderr, nil, false)

	logger.Debug("debug msg")
	logger.Info("info msg")
	logger.Warn("warn msg")
	logger.Error("error msg")
	assert.NoError(t, logger.Sync())

	assert.Equal(t, "info msg\n", stdout.String())
	assert.Equal(t, "warn msg\nerror msg\n", stderr.String())
}

func TestLoggerLevelsVerbose(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer
	logger := NewLogger(&stdout, &stderr, nil, true)

	logger.Debug("debug msg")
	logger.Info("info msg")
	logger.Warn("warn msg")
	assert.NoError(t, logger.Sync())

	assert.Equal(t, "DEBUG\tdebug msg\nINFO\tinfo msg\n", stdout.String())
	assert.Equal(t, "WARN\twarn msg\n", stderr.String())
}

func TestWriteCloserSplitsLines(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer
	logger := NewLogger(&stdout, &stderr, nil, false)

	writer := ToInfoWriter(logger)
	writer.WriteStringNoErr("line1\nline2\n")
	assert.NoError(t, logger.Sync())

	assert.Equal(t, "line1\nline2\n", stdout.String())
}
