package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leetao/qqbot/internal/botconfig"
	"github.com/leetao/qqbot/internal/logging"
)

func init() {
	configCmd.AddCommand(configCheckCmd)
}

var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration file",
	Long: `Check that the configuration file has every section and option the bot
needs and that the switches in DEFAULT and CHATBOT are booleans.`,
	Example: `  # Check ./qqbot.cfg
  qqbot config check

  # Check a specific file
  qqbot config check --config /etc/qqbot/qqbot.cfg

See Also: qqbot config show`,
	Args: cobra.NoArgs,
	RunE: runConfigCheck,
}

func runConfigCheck(cmd *cobra.Command, _ []string) error {
	path := configPath()

	values, err := botconfig.LoadBotConfig(path)
	if err != nil {
		return configExitError(err)
	}

	s, err := botconfig.Decode(values)
	if err != nil {
		return configExitError(err)
	}

	logging.FromContext(cmd.Context()).Info("config is valid", "path", path,
		"bot_name", s.BotName, "chat_enabled", s.ChatEnabled, "need_train", s.NeedTrain)

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
	}
	return nil
}
