package botconfig

import (
	"path/filepath"

	"github.com/leetao/qqbot/internal/paths"
	"github.com/leetao/qqbot/pkg/fileutil"
)

// DefaultFileName is the name of the generated configuration file.
const DefaultFileName = paths.ConfigFileName

// Option is a single key and its value.
type Option struct {
	Key   string
	Value string
}

// DefaultSection holds the default options of one section.
type DefaultSection struct {
	Name    string
	Options []Option
}

// Defaults is the content of a freshly generated qqbot.cfg, in file order.
// Booleans are stored as the text "True" or "False".
var Defaults = []DefaultSection{
	{Name: SectionDefault, Options: []Option{
		{KeyChatEnabled, "True"},
		{KeyShareEnabled, "False"},
		{KeyRememberEnabled, "True"},
	}},
	{Name: SectionPersonal, Options: []Option{
		{KeyAccount, "*"},
		{KeyPassword, "*"},
	}},
	{Name: SectionChatbot, Options: []Option{
		{KeyBotName, "mtdhb"},
		{KeyNeedTrain, "False"},
		{KeyTrainData, "*"},
	}},
}

// DefaultPath returns the path GenerateDefault writes to for dir. An empty dir
// means the working directory.
func DefaultPath(dir string) string {
	if dir == "" {
		return DefaultFileName
	}
	return filepath.Join(dir, DefaultFileName)
}

// DefaultStore returns a store populated with [Defaults].
func DefaultStore() (Store, error) {
	store := NewStore()
	for _, sec := range Defaults {
		for _, opt := range sec.Options {
			if err := store.Set(sec.Name, opt.Key, opt.Value); err != nil {
				return nil, err
			}
		}
	}
	return store, nil
}

// GenerateDefault writes a default qqbot.cfg into dir, or into the working
// directory when dir is empty, and returns the path written. An existing file
// is truncated. The directory is never created; if it is missing the
// underlying *fs.PathError is returned.
func GenerateDefault(dir string) (string, error) {
	store, err := DefaultStore()
	if err != nil {
		return "", err
	}

	path := DefaultPath(dir)
	if err := fileutil.WriteFile(path, store, 0o644); err != nil {
		return "", err
	}

	return path, nil
}
