package commands

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/leetao/qqbot/internal/botconfig"
	qqerrors "github.com/leetao/qqbot/internal/errors"
	"github.com/leetao/qqbot/internal/logging"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "Overwrite an existing qqbot.cfg")
	configCmd.AddCommand(configInitCmd)
}

var configInitCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Generate a default qqbot.cfg",
	Long: `Write qqbot.cfg with default values into dir, or into the current
directory when dir is omitted.

The directory must already exist. An existing file is only replaced
with --force.`,
	Example: `  # Generate in the current directory
  qqbot config init

  # Generate in another directory
  qqbot config init /etc/qqbot

  # Replace an existing file
  qqbot config init --force

See Also: qqbot config show, qqbot config check`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	logger := logging.FromContext(cmd.Context())

	var dir string
	if len(args) == 1 {
		dir = args[0]
	}

	path := botconfig.DefaultPath(dir)
	if _, err := os.Stat(path); err == nil {
		if !configInitForce {
			return qqerrors.NewUserError(errors.Wrapf(qqerrors.ErrConfigExists, "%s", path),
				"Use --force to overwrite")
		}
		logger.Warn("overwriting existing config", "path", path)
	}

	written, err := botconfig.GenerateDefault(dir)
	if err != nil {
		return qqerrors.NewSystemError(err, "Check that the directory exists and is writable")
	}
	logger.Info("generated default config", "path", written)

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", written)
		fmt.Fprintln(cmd.OutOrStdout(), "Edit the [PERSONAL] section before starting the bot.")
	}
	return nil
}
