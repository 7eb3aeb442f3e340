package botconfig

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/leetao/qqbot/internal/redact"
)

// Settings is the typed view of the bot configuration.
type Settings struct {
	ChatEnabled     bool   `json:"chat_enabled" yaml:"chat_enabled" toml:"chat_enabled"`
	ShareEnabled    bool   `json:"share_enabled" yaml:"share_enabled" toml:"share_enabled"`
	RememberEnabled bool   `json:"remember_enabled" yaml:"remember_enabled" toml:"remember_enabled"`
	Account         string `json:"account" yaml:"account" toml:"account"`
	Password        string `json:"password" yaml:"password" toml:"password"`
	BotName         string `json:"bot_name" yaml:"bot_name" toml:"bot_name"`
	NeedTrain       bool   `json:"need_train" yaml:"need_train" toml:"need_train"`
	TrainData       string `json:"train_data" yaml:"train_data" toml:"train_data"`
}

// ErrInvalidBool indicates a boolean option holds an unrecognized value.
var ErrInvalidBool = errors.New("not a boolean")

var boolStates = map[string]bool{
	"1": true, "yes": true, "true": true, "on": true,
	"0": false, "no": false, "false": false, "off": false,
}

// ParseBool interprets s the way the configuration file spells booleans:
// 1/yes/true/on and 0/no/false/off, in any case.
func ParseBool(s string) (bool, error) {
	b, ok := boolStates[strings.ToLower(s)]
	if !ok {
		return false, errors.Wrapf(ErrInvalidBool, "%q", s)
	}
	return b, nil
}

// Decode converts values read with [BotSchema] into Settings. A key absent
// from values is reported as a [*MissingOptionError].
func Decode(values Values) (*Settings, error) {
	d := decoder{values: values}
	s := &Settings{
		ChatEnabled:     d.boolean(KeyChatEnabled),
		ShareEnabled:    d.boolean(KeyShareEnabled),
		RememberEnabled: d.boolean(KeyRememberEnabled),
		Account:         d.str(KeyAccount),
		Password:        d.str(KeyPassword),
		BotName:         d.str(KeyBotName),
		NeedTrain:       d.boolean(KeyNeedTrain),
		TrainData:       d.str(KeyTrainData),
	}
	if d.err != nil {
		return nil, d.err
	}
	return s, nil
}

// Redacted returns a copy of s with the password masked.
func (s Settings) Redacted() Settings {
	s.Password = redact.MaskValue(s.Password)
	return s
}

// decoder records the first error and ignores later lookups.
type decoder struct {
	values Values
	err    error
}

func (d *decoder) str(key string) string {
	if d.err != nil {
		return ""
	}
	v, ok := d.values[key]
	if !ok {
		section, _ := BotSchema.SectionOf(key)
		d.err = &MissingOptionError{Section: section, Option: key}
	}
	return v
}

func (d *decoder) boolean(key string) bool {
	v := d.str(key)
	if d.err != nil {
		return false
	}
	b, err := ParseBool(v)
	if err != nil {
		d.err = errors.Wrapf(err, "option %s", key)
	}
	return b
}
