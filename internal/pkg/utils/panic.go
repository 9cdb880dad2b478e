package utils

import (
	"fmt"
	"runtime/debug"

	"go.uber.org/zap"
)

// UserError is an expected failure, only the message is shown, without a stack trace.
type UserError struct {
	Message  string
	ExitCode int
}

func (e *UserError) Error() string {
	return e.Message
}

func NewUserError(message string) *UserError {
	return NewUserErrorWithCode(1, message)
}

func NewUserErrorWithCode(exitCode int, message string) *UserError {
	return &UserError{message, exitCode}
}

// ProcessPanic logs the panic and returns an exit code for the process.
func ProcessPanic(err interface{}, logger *zap.SugaredLogger, logFilePath string) int {
	switch v := err.(type) {
	case *UserError:
		logger.Debugf("User error panic: %s", v.Message)
		logger.Debugf("Trace:\n" + string(debug.Stack()))
		logger.Error(v.Message)
		if len(logFilePath) > 0 {
			logger.Infof("Details can be found in the log file \"%s\".", logFilePath)
		}
		return v.ExitCode
	default:
		logger.Debugf("Unexpected panic: %s", err)
		logger.Debugf("Trace:\n" + string(debug.Stack()))
		logger.Error(fmt.Sprintf("Unexpected error: %s", err))
		if len(logFilePath) > 0 {
			logger.Infof("Details can be found in the log file \"%s\".", logFilePath)
		}
		return 1
	}
}
