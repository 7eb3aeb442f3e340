package botconfig

import (
	"log/slog"
	"os"
)

// Values maps option names to their raw string values. Section grouping is
// discarded.
type Values map[string]string

// Read loads the file at path and returns the value of every key in schema.
//
// Entries are read in schema order, key by key, and the first missing
// section or option aborts the read; no partial result is returned. When two
// sections declare the same key the later one wins.
func Read(path string, schema Schema) (Values, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, &FileNotFoundError{Path: path}
	}

	store, err := LoadStore(path)
	if err != nil {
		return nil, err
	}

	return ReadStore(store, schema)
}

// ReadStore is [Read] over an already loaded store.
func ReadStore(store Store, schema Schema) (Values, error) {
	values := make(Values)
	owner := make(map[string]string)

	for _, entry := range schema {
		for _, key := range entry.Keys {
			value, err := store.Get(entry.Section, key)
			if err != nil {
				return nil, err
			}

			if prev, ok := owner[key]; ok && prev != entry.Section {
				slog.Warn("config key declared in more than one section, later value wins",
					"key", key, "previous", prev, "section", entry.Section)
			}
			owner[key] = entry.Section
			values[key] = value
		}
	}

	return values, nil
}

// LoadBotConfig reads the bot configuration at path using [BotSchema].
func LoadBotConfig(path string) (Values, error) {
	return Read(path, BotSchema)
}
