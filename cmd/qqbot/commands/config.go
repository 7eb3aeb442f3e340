package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/leetao/qqbot/internal/botconfig"
	qqerrors "github.com/leetao/qqbot/internal/errors"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage qqbot.cfg",
	Long: `Manage qqbot.cfg, the bot configuration file.

Without a subcommand, shows the configuration with secrets masked.`,
	Example: `  # Show the configuration
  qqbot config

  # Generate a default configuration file
  qqbot config init

See Also: qqbot config init, qqbot config show, qqbot config check`,
	RunE: runConfigShow,
}

// configExitError attaches an exit code and a suggestion to an error
// returned while loading the bot configuration.
func configExitError(err error) error {
	var exitErr *qqerrors.ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	if errors.Is(err, botconfig.ErrInvalidBool) {
		return qqerrors.NewUserError(err, "Use True or False")
	}

	var cfgErr botconfig.Error
	if !errors.As(err, &cfgErr) {
		return qqerrors.NewUserError(err, "Check that the file is valid INI")
	}

	switch e := cfgErr.(type) {
	case *botconfig.FileNotFoundError:
		suggestion := "Run: qqbot config init"
		if dir := filepath.Dir(e.Path); dir != "." {
			suggestion += " " + dir
		}
		return qqerrors.NewConfigError(err, suggestion)
	case *botconfig.MissingSectionError:
		return qqerrors.NewConfigError(err, fmt.Sprintf("Add a [%s] section", e.Section))
	case *botconfig.MissingOptionError:
		return qqerrors.NewConfigError(err, fmt.Sprintf("Add \"%s = ...\" under [%s]", e.Option, e.Section))
	case *botconfig.InvalidSchemaTypeError:
		return qqerrors.NewUserError(err, "Map each section to a key or a list of keys")
	}

	return qqerrors.NewUserError(err, "")
}

// loadValues reads the config file at path with the schema in schemaFile,
// or with the bot schema when schemaFile is empty.
func loadValues(path, schemaFile string) (botconfig.Values, error) {
	if schemaFile == "" {
		return botconfig.LoadBotConfig(path)
	}

	data, err := os.ReadFile(schemaFile)
	if err != nil {
		return nil, qqerrors.NewUserError(errors.Wrap(err, "reading schema"), "")
	}

	schema, err := botconfig.ParseSchema(data)
	if err != nil {
		return nil, err
	}

	return botconfig.Read(path, schema)
}
