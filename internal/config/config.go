package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/leetao/qqbot/internal/logging"
)

// EnvPrefix is the prefix of environment variables read by [New].
const EnvPrefix = "QQBOT"

// Setting keys. They double as flag names.
const (
	KeyConfig    = "config"
	KeyLogFormat = "log-format"
)

// Settings holds the resolved CLI settings.
type Settings struct {
	// ConfigFile is the explicit bot config path; empty means search.
	ConfigFile string `mapstructure:"config"`
	// LogFormat is "text" or "json".
	LogFormat string `mapstructure:"log-format"`
}

// New returns a Viper instance reading QQBOT_* variables with defaults set.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyConfig, "")
	v.SetDefault(KeyLogFormat, string(logging.FormatText))
	return v
}

// BindFlags binds the flags named after the setting keys. Flags missing from
// the set are skipped.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range []string{KeyConfig, KeyLogFormat} {
		f := flags.Lookup(key)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "binding flag %s", key)
		}
	}
	return nil
}

// Load resolves and validates the settings held by v.
func Load(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, errors.Wrap(err, "unmarshaling settings")
	}

	if errs := Validate(&s); len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &s, nil
}
