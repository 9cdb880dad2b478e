package interaction

import (
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/batchmv/batchmv/internal/pkg/utils"
)

// Confirm is a yes/no question.
type Confirm struct {
	Label       string
	Description string
	Default     bool
}

// Question is a free-form question.
type Question struct {
	Label       string
	Description string
	Default     string
	Validator   survey.Validator
}

// Prompt wraps user interaction on an interactive terminal.
// On a non-interactive terminal all questions resolve to their defaults.
type Prompt struct {
	interactive bool
	stdin       terminal.FileReader
	stdout      terminal.FileWriter
	stderr      io.Writer
}

func NewPrompt(stdin terminal.FileReader, stdout terminal.FileWriter, stderr io.Writer) *Prompt {
	return &Prompt{
		interactive: isInteractiveTerminal(stdin, stdout),
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
	}
}

func isInteractiveTerminal(stdin terminal.FileReader, stdout terminal.FileWriter) bool {
	return isatty.IsTerminal(stdin.Fd()) && isatty.IsTerminal(stdout.Fd())
}

func (p *Prompt) IsInteractive() bool {
	return p.interactive
}

func (p *Prompt) Printf(format string, a ...interface{}) {
	fmt.Fprintf(p.stdout, color.CyanString(format)+"\n", a...)
}

func (p *Prompt) Confirm(c *Confirm) bool {
	if !p.interactive {
		return c.Default
	}

	result := c.Default
	question := &survey.Confirm{Message: c.Label, Help: c.Description, Default: c.Default}
	if err := survey.AskOne(question, &result, p.askOpts()...); err != nil {
		p.handleError(err)
		return false
	}
	return result
}

func (p *Prompt) Ask(q *Question) (string, bool) {
	if !p.interactive {
		return q.Default, len(q.Default) > 0
	}

	result := q.Default
	question := &survey.Input{Message: q.Label, Help: q.Description, Default: q.Default}
	opts := p.askOpts()
	if q.Validator != nil {
		opts = append(opts, survey.WithValidator(q.Validator))
	}
	if err := survey.AskOne(question, &result, opts...); err != nil {
		p.handleError(err)
		return "", false
	}
	return result, true
}

func (p *Prompt) askOpts() []survey.AskOpt {
	return []survey.AskOpt{
		survey.WithStdio(p.stdin, p.stdout, p.stderr),
		survey.WithShowCursor(true),
	}
}

func (p *Prompt) handleError(err error) {
	if err == terminal.InterruptErr { // nolint: errorlint
		// Ctrl+c pressed, stop through the panic funnel
		panic(utils.NewUserError("Aborted."))
	}
	fmt.Fprintf(p.stderr, "Prompt failed: %s\n", err)
}

// ValueRequired validator for Ask.
func ValueRequired(val interface{}) error {
	str, ok := val.(string)
	if !ok || len(str) == 0 {
		return fmt.Errorf("value is required")
	}
	return nil
}
