package cli

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/batchmv/batchmv/internal/pkg/filesystem"
	"github.com/batchmv/batchmv/internal/pkg/filesystem/aferofs"
	"github.com/batchmv/batchmv/internal/pkg/interaction"
	"github.com/batchmv/batchmv/internal/pkg/log"
	"github.com/batchmv/batchmv/internal/pkg/options"
	"github.com/batchmv/batchmv/internal/pkg/utils"
	"github.com/batchmv/batchmv/internal/pkg/version"
)

const description = `
Batchmv

Rename a batch of files in a directory
from your terminal or a CI pipeline.

Start by running the "list" sub-command to see the files,
then apply the new names with the "rename" sub-command.
`

const usageTemplate = `Usage:{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{else if .Runnable}}
  {{.UseLine}}{{end}}{{if gt (len .Aliases) 0}}

Aliases:`

type rootCommand struct {
	cmd          *cobra.Command
	options      *options.Options    // parsed flags and env variables
	prompt       *interaction.Prompt // user interaction
	fs           filesystem.Fs       // filesystem abstraction, rooted at the working directory
	start        time.Time           // cmd start time
	initialized  bool                // init method was called
	logFile      *os.File            // log file instance
	logFileClear bool                // is log file temporary? if yes, it will be removed at the end, if no error occurs
	logger       *zap.SugaredLogger  // log to console and logFile
}

// NewRootCommand creates parent of all sub-commands.
func NewRootCommand(stdin io.Reader, stdout io.Writer, stderr io.Writer, prompt *interaction.Prompt) *rootCommand {
	root := &rootCommand{
		options: options.NewOptions(),
		prompt:  prompt,
		start:   time.Now(),
	}

	// Command definition
	root.cmd = &cobra.Command{
		Use:           path.Base(os.Args[0]), // name of the binary
		Version:       version.Version(),
		Short:         description,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Print help if no command specified
			return root.cmd.Help()
		},
	}

	// Setup in/out
	root.cmd.SetIn(stdin)
	root.cmd.SetOut(stdout)
	root.cmd.SetErr(stderr)

	// Setup templates
	root.cmd.SetVersionTemplate("{{.Version}}")
	root.cmd.SetUsageTemplate(
		regexp.MustCompile(`Usage:(.|\n)*Aliases:`).ReplaceAllString(root.cmd.UsageTemplate(), usageTemplate),
	)

	// Persistent flags for all sub-commands
	root.options.BindPersistentFlags(root.cmd.PersistentFlags())

	// Root command flags
	root.cmd.Flags().SortFlags = true
	root.cmd.Flags().BoolP("version", "V", false, "print version")

	// Init when flags are parsed
	root.cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return root.init(cmd)
	}

	// Sub-commands
	root.cmd.AddCommand(
		listCommand(root),
		renameCommand(root),
	)

	return root
}

// Execute command or sub-command.
func (root *rootCommand) Execute() (exitCode int) {
	defer root.tearDown()
	if err := root.cmd.Execute(); err != nil {
		// Init, it can be uninitialized, if error occurred before PersistentPreRun call
		_ = root.init(root.cmd)
		root.logger.Errorf("%s", err)
		if len(root.options.LogFilePath) > 0 {
			// Preserve the log file
			root.logFileClear = false
			root.logger.Infof(`Details can be found in the log file "%s".`, root.options.LogFilePath)
		}
		return 1
	}
	return 0
}

// init sets logger, options and filesystem after flags are parsed.
func (root *rootCommand) init(cmd *cobra.Command) (err error) {
	if root.initialized {
		return
	}

	// Run only once
	root.initialized = true

	// Logger must always be set up, even if there is a panic somewhere
	defer func() {
		if root.logger == nil {
			root.setupLogger()
		}
	}()

	// Load values from flags and envs
	warnings, err := root.options.Load(cmd.Flags())
	if err != nil {
		return err
	}

	// Setup logger and log options load warnings
	root.setupLogger()
	root.logDebugInfo()
	for _, warning := range warnings {
		root.logger.Warn(warning)
	}

	// Create filesystem abstraction rooted at the working directory
	root.fs, err = aferofs.NewLocalFs(root.logger, root.options.WorkingDirectory)
	if err != nil {
		return err
	}

	return nil
}

// setupLogger according to the options.
func (root *rootCommand) setupLogger() {
	logFile, logFileErr := root.getLogFile()
	root.logger = log.NewLogger(root.cmd.OutOrStdout(), root.cmd.ErrOrStderr(), logFile, root.options.Verbose)
	root.logFile = logFile
	root.cmd.SetOut(log.ToInfoWriter(root.logger))
	root.cmd.SetErr(log.ToWarnWriter(root.logger))

	// Warn if user specified log file and it cannot be opened
	if logFileErr != nil && !root.logFileClear {
		root.logger.Warnf("Cannot open log file: %s", logFileErr)
	}
}

func (root *rootCommand) logDebugInfo() {
	// Version
	log.ToDebugWriter(root.logger).WriteStringNoErr(root.cmd.Version)

	// Command
	root.logger.Debugf("Running command %v", os.Args)

	// Options
	root.logger.Debug(root.options.Dump())
}

// getLogFile opens the log file defined in the flags or creates a temp file.
// The log file can be outside the working directory, so it is NOT using the virtual filesystem.
func (root *rootCommand) getLogFile() (logFile *os.File, logFileErr error) {
	if len(root.options.LogFilePath) > 0 {
		root.logFileClear = false // log file defined by user will be preserved
	} else {
		// Generate a unique hash if multiple instances start simultaneously
		randomHash := ``
		randomBytes := make([]byte, 6)
		if _, err := rand.Read(randomBytes); err == nil {
			randomHash = fmt.Sprintf(`-%x`, randomBytes)
		}

		// nolint: forbidigo
		root.options.LogFilePath = filepath.Join(os.TempDir(), fmt.Sprintf("batchmv-%d%s.txt", root.start.Unix(), randomHash))
		root.logFileClear = true // temp log file will be removed, it is preserved only in case of error
	}

	// nolint: forbidigo
	logFile, logFileErr = os.OpenFile(root.options.LogFilePath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if logFileErr != nil {
		root.options.LogFilePath = ""
	}
	return
}

// tearDown makes clean-up after command execution.
func (root *rootCommand) tearDown() {
	if err := recover(); err == nil {
		if root.logFile != nil {
			if closeErr := root.logFile.Close(); closeErr != nil {
				panic(fmt.Errorf(`cannot close log file "%s": %w`, root.options.LogFilePath, closeErr))
			}
		}

		// No error -> remove log file if temporary
		if root.logFileClear {
			// nolint: forbidigo
			if removeErr := os.Remove(root.options.LogFilePath); removeErr != nil {
				panic(fmt.Errorf(`cannot remove temp log file "%s": %w`, root.options.LogFilePath, removeErr))
			}
		}
	} else {
		// Error -> process and close log file
		exitCode := utils.ProcessPanic(err, root.logger, root.options.LogFilePath)
		if root.logFile != nil {
			_ = root.logFile.Close()
		}
		os.Exit(exitCode)
	}
}
