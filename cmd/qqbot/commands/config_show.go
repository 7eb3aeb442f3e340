package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	qqerrors "github.com/leetao/qqbot/internal/errors"
	"github.com/leetao/qqbot/internal/logging"
	"github.com/leetao/qqbot/internal/redact"
)

// Output formats accepted by --output.
const (
	outputText = "text"
	outputYAML = "yaml"
	outputJSON = "json"
	outputTOML = "toml"
)

var outputFormats = []string{outputText, outputYAML, outputJSON, outputTOML}

var (
	configShowOutput string
	configShowSchema string
	configShowReveal bool
)

func init() {
	for _, c := range []*cobra.Command{configCmd, configShowCmd} {
		c.Flags().StringVarP(&configShowOutput, "output", "o", outputText, "Output format: text, yaml, json, toml")
		c.Flags().StringVar(&configShowSchema, "schema", "", "YAML file mapping sections to the keys to read")
		c.Flags().BoolVar(&configShowReveal, "reveal", false, "Print secret values unmasked")
	}
	configCmd.AddCommand(configShowCmd)
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show configuration values",
	Long: `Read the configuration file and print every value, sorted by key.

Values whose key looks secret, such as password, are masked unless
--reveal is given. With --schema, the keys to read come from a YAML
file instead of the bot schema:

  DEFAULT: [chat_enabled, share_enabled]
  CHATBOT: bot_name`,
	Example: `  # Show the configuration
  qqbot config show

  # Show as JSON
  qqbot config show -o json

  # Read only selected keys
  qqbot config show --schema keys.yaml

See Also: qqbot config check`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if !slices.Contains(outputFormats, configShowOutput) {
		return qqerrors.NewUserError(
			errors.Wrapf(qqerrors.ErrInvalidFlag, "--output %q", configShowOutput),
			"Use one of: text, yaml, json, toml")
	}

	path := configPath()
	logging.FromContext(cmd.Context()).Debug("reading config", "path", path, "schema", configShowSchema)

	values, err := loadValues(path, configShowSchema)
	if err != nil {
		return configExitError(err)
	}

	out := map[string]string(values)
	if !configShowReveal {
		out = redact.MaskValues(out)
	}

	return writeValues(cmd.OutOrStdout(), out, configShowOutput)
}

// writeValues prints values in format, keys sorted.
func writeValues(w io.Writer, values map[string]string, format string) error {
	var (
		data []byte
		err  error
	)

	switch format {
	case outputYAML:
		data, err = yaml.Marshal(values)
	case outputJSON:
		data, err = json.MarshalIndent(values, "", "  ")
		data = append(data, '\n')
	case outputTOML:
		data, err = toml.Marshal(values)
	default:
		keys := make([]string, 0, len(values))
		for k := range values {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			if _, err := fmt.Fprintf(w, "%s = %s\n", k, values[k]); err != nil {
				return errors.Wrap(err, "writing output")
			}
		}
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "marshaling %s", format)
	}

	_, err = w.Write(data)
	return errors.Wrap(err, "writing output")
}
