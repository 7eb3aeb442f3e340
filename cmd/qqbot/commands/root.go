// Package commands implements the CLI commands for qqbot.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/leetao/qqbot/cmd"
	"github.com/leetao/qqbot/internal/config"
	qqerrors "github.com/leetao/qqbot/internal/errors"
	"github.com/leetao/qqbot/internal/logging"
	"github.com/leetao/qqbot/internal/paths"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFile holds the path to the log file.
var logFile string

// logSink is the open --log-file, closed by Execute.
var logSink *os.File

// settings resolves persistent flags against QQBOT_* environment variables.
var settings = config.New()

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP(config.KeyConfig, "c", "",
		"path to qqbot.cfg (default: ./qqbot.cfg, then the user config directory)")
	flags.CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	flags.BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	flags.String(config.KeyLogFormat, string(logging.FormatText),
		"log format: text, json")
	flags.StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	if err := config.BindFlags(settings, flags); err != nil {
		panic(err)
	}

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("qqbot version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

var rootCmd = &cobra.Command{
	Use:   "qqbot",
	Short: "Manage the qqbot configuration file",
	Long: `qqbot manages qqbot.cfg, the INI configuration file of the QQ chat bot.

The file holds three sections: DEFAULT (feature switches), PERSONAL
(account credentials) and CHATBOT (bot name and training data).`,
	Example: `  # Write a default qqbot.cfg into the current directory
  qqbot config init

  # Show the configuration with secrets masked
  qqbot config show

  # Validate a configuration file
  qqbot config check --config /etc/qqbot/qqbot.cfg

  See Also: qqbot config`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setupLogging(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return qqerrors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "")
	}

	s, err := config.Load(settings)
	if err != nil {
		return qqerrors.NewUserError(err, "Use --log-format text or --log-format json")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv(config.EnvPrefix + "_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	handlers := []slog.Handler{logging.New(logging.Config{
		Level:  level,
		Format: logging.Format(s.LogFormat),
		Output: cmd.ErrOrStderr(),
	}).Handler()}

	if err := closeLogFile(); err != nil {
		return qqerrors.NewSystemError(err, "")
	}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return qqerrors.NewUserError(err, "failed to open log file")
		}
		logSink = f
		// File output uses JSON format
		handlers = append(handlers, logging.New(logging.Config{
			Level:  level,
			Format: logging.FormatJSON,
			Output: f,
		}).Handler())
	}

	logger := slog.New(logging.NewMultiHandler(handlers...))
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// closeLogFile closes the file opened for --log-file, if any.
func closeLogFile() error {
	if logSink == nil {
		return nil
	}
	err := logSink.Close()
	logSink = nil
	return errors.Wrap(err, "closing log file")
}

// configPath returns the config file the current invocation operates on.
func configPath() string {
	return paths.ResolveConfigFile(settings.GetString(config.KeyConfig))
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if closeErr := closeLogFile(); err == nil {
		err = closeErr
	}
	if err != nil {
		return errors.Wrap(err, "executing root command")
	}
	return nil
}

// Main runs the CLI, reports any error to stderr and returns the exit code.
func Main(stderr io.Writer) int {
	err := Execute()
	if err == nil {
		return qqerrors.ExitSuccess
	}

	reportError(stderr, err)
	return qqerrors.Code(err)
}

// reportError prints err and, when present, the suggestion attached to it.
func reportError(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold)
	if logging.SupportsColor(w) {
		red.EnableColor()
	} else {
		red.DisableColor()
	}

	msg := err.Error()
	var exitErr *qqerrors.ExitError
	if errors.As(err, &exitErr) {
		msg = exitErr.Error()
	}
	fmt.Fprintf(w, "%s %s\n", red.Sprint("Error:"), msg)

	if exitErr != nil && exitErr.Suggestion != "" {
		fmt.Fprintf(w, "Suggestion: %s\n", exitErr.Suggestion)
	}
}
