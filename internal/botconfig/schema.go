package botconfig

import (
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Section names used by the bot configuration file.
const (
	SectionDefault  = "DEFAULT"
	SectionPersonal = "PERSONAL"
	SectionChatbot  = "CHATBOT"
)

// Option names used by the bot configuration file.
const (
	KeyChatEnabled     = "chat_enabled"
	KeyShareEnabled    = "share_enabled"
	KeyRememberEnabled = "remember_enabled"
	KeyAccount         = "account"
	KeyPassword        = "password"
	KeyBotName         = "bot_name"
	KeyNeedTrain       = "need_train"
	KeyTrainData       = "train_data"
)

// Entry lists the keys required from one section.
type Entry struct {
	Section string
	Keys    []string
}

// Schema is an ordered list of section entries. Reads walk it in order.
type Schema []Entry

// BotSchema is the schema of qqbot.cfg.
var BotSchema = Schema{
	{Section: SectionDefault, Keys: []string{KeyChatEnabled, KeyShareEnabled, KeyRememberEnabled}},
	{Section: SectionPersonal, Keys: []string{KeyAccount, KeyPassword}},
	{Section: SectionChatbot, Keys: []string{KeyBotName, KeyNeedTrain, KeyTrainData}},
}

// Keys returns every key in schema order, including duplicates.
func (s Schema) Keys() []string {
	var keys []string
	for _, e := range s {
		keys = append(keys, e.Keys...)
	}
	return keys
}

// SectionOf returns the last section declaring key, matching the section
// whose value wins when the schema is flattened.
func (s Schema) SectionOf(key string) (string, bool) {
	section, found := "", false
	for _, e := range s {
		for _, k := range e.Keys {
			if k == key {
				section, found = e.Section, true
			}
		}
	}
	return section, found
}

// ParseSchema decodes a schema from a YAML (or JSON) document of the form
//
//	DEFAULT: [chat_enabled, share_enabled]
//	CHATBOT: bot_name
//
// Document order is preserved. A document that is not a mapping yields an
// [*InvalidSchemaTypeError] expecting [ExpectedMapping]; an entry that is
// neither a string nor a list of strings yields one expecting
// [ExpectedStringOrList].
func ParseSchema(data []byte) (Schema, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "parsing schema")
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, &InvalidSchemaTypeError{Value: nil, Expected: ExpectedMapping}
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, &InvalidSchemaTypeError{Value: nodeValue(root), Expected: ExpectedMapping}
	}

	schema := make(Schema, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		name, value := root.Content[i], root.Content[i+1]

		entry := Entry{Section: name.Value}
		switch {
		case isString(value):
			entry.Keys = []string{value.Value}
		case value.Kind == yaml.SequenceNode:
			for _, item := range value.Content {
				if !isString(item) {
					return nil, &InvalidSchemaTypeError{Value: nodeValue(value), Expected: ExpectedStringOrList}
				}
				entry.Keys = append(entry.Keys, item.Value)
			}
		default:
			return nil, &InvalidSchemaTypeError{Value: nodeValue(value), Expected: ExpectedStringOrList}
		}
		schema = append(schema, entry)
	}

	return schema, nil
}

func isString(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!str"
}

// nodeValue decodes n for error reporting. Nodes that fail to decode are
// reported by their source text.
func nodeValue(n *yaml.Node) any {
	var v any
	if err := n.Decode(&v); err != nil {
		return n.Value
	}
	return v
}
