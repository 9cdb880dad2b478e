package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// Error aggregates multiple error messages into one error.
type Error struct {
	prefix string
	errors []string
}

func NewMultiError() *Error {
	return &Error{}
}

func WrapError(prefix string, err error) *Error {
	e := &Error{}
	e.SetPrefix(prefix + ":")
	e.Append(err)
	return e
}

func (e *Error) Len() int {
	return len(e.errors)
}

func (e *Error) SetPrefix(prefix string) {
	e.prefix = prefix
}

func (e *Error) Append(err error) {
	if v, ok := err.(*Error); ok { // nolint: errorlint
		for _, item := range v.Errors() {
			e.doAppend(item)
		}
	} else {
		e.doAppend(err.Error())
	}
}

func (e *Error) AppendRaw(err string) {
	e.errors = append(e.errors, err)
}

// AppendWithPrefix adds an error with a custom prefix, sub-error lines are indented.
func (e *Error) AppendWithPrefix(prefix string, err error) {
	str := regexp.MustCompile(`((^|\n)\s*-*)`).ReplaceAllString(err.Error(), "${2}\t-")
	e.doAppend(fmt.Sprintf("%s:\n%s", prefix, str))
}

func (e *Error) Errors() []string {
	return e.errors
}

// ErrorOrNil returns the aggregate as error, or nil if it is empty.
func (e *Error) ErrorOrNil() error {
	if e.Len() == 0 {
		return nil
	}
	return e
}

func (e *Error) Error() string {
	if len(e.errors) == 0 {
		return ""
	}

	if len(e.errors) == 1 && e.prefix == "" {
		return strings.TrimPrefix(e.errors[0], "- ")
	}

	msg := strings.Join(e.errors, "\n")
	if e.prefix != "" {
		return e.prefix + "\n" + msg
	}

	return msg
}

func (e *Error) doAppend(err string) {
	err = strings.TrimLeft(err, "- ")
	err = fmt.Sprintf("- %s", err)
	e.errors = append(e.errors, err)
}
