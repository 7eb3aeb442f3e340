package botconfig

import (
	"bytes"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/ini.v1"

	"github.com/leetao/qqbot/pkg/fileutil"
)

// Store is a section/key store backed by an INI document.
type Store interface {
	// Get returns the value of key in section. Keys missing from a section
	// are looked up in DEFAULT before failing. A missing section yields a
	// [*MissingSectionError] and a missing key a [*MissingOptionError].
	Get(section, key string) (string, error)

	// Set stores value under key in section, creating the section if needed.
	Set(section, key, value string) error

	// WriteTo serializes the store in INI format, sections in creation order.
	WriteTo(w io.Writer) (int64, error)
}

// Sections are case-sensitive and option names are not. Quotes are kept and
// '#' or ';' inside a value is not a comment. Indented lines continue the
// previous value. A newline can never appear in a section name, so using it
// as the child delimiter stops "[a.b]" from inheriting keys of "[a]".
var loadOptions = ini.LoadOptions{
	InsensitiveKeys:            true,
	IgnoreInlineComment:        true,
	PreserveSurroundedQuote:    true,
	AllowPythonMultilineValues: true,
	ChildSectionDelimiter:      "\n",
}

// ErrSyntax is returned for files ini.v1 would accept but a strict INI
// reader rejects.
var ErrSyntax = errors.New("malformed config file")

func init() {
	// Write "[DEFAULT]" explicitly and "key = value" without column alignment.
	ini.DefaultHeader = true
	ini.PrettyFormat = false
	ini.PrettyEqual = true
}

type iniStore struct {
	file *ini.File
}

// NewStore returns an empty store.
func NewStore() Store {
	return &iniStore{file: ini.Empty(loadOptions)}
}

// LoadStore parses the INI file at path.
func LoadStore(path string) (Store, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	if err := checkHeaders(data); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}

	f, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}

	return &iniStore{file: f}, nil
}

func (s *iniStore) Get(section, key string) (string, error) {
	sec, err := s.file.GetSection(section)
	if err != nil {
		return "", &MissingSectionError{Section: section}
	}

	if k, err := sec.GetKey(key); err == nil {
		return joinContinuation(k.String()), nil
	}

	if section != ini.DefaultSection {
		if def, err := s.file.GetSection(ini.DefaultSection); err == nil {
			if k, err := def.GetKey(key); err == nil {
				return joinContinuation(k.String()), nil
			}
		}
	}

	return "", &MissingOptionError{Section: section, Option: key}
}

func (s *iniStore) Set(section, key, value string) error {
	if _, err := s.file.Section(section).NewKey(key, value); err != nil {
		return errors.Wrapf(err, "setting %s.%s", section, key)
	}
	return nil
}

func (s *iniStore) WriteTo(w io.Writer) (int64, error) {
	return s.file.WriteTo(w)
}

// checkHeaders rejects options before the first section header and named
// sections that appear more than once. ini.v1 would file the former under
// DEFAULT and merge the latter. A repeated [DEFAULT] is allowed.
func checkHeaders(data []byte) error {
	data = bytes.TrimPrefix(data, []byte("\ufeff"))

	seen := make(map[string]int)
	inSection := false
	for i, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimRight(raw, " \t\r")
		if line == "" {
			continue
		}
		// Indented lines continue a value.
		if line[0] == ' ' || line[0] == '\t' {
			continue
		}
		if line[0] == '#' || line[0] == ';' {
			continue
		}

		lineno := i + 1
		if line[0] == '[' {
			end := strings.LastIndexByte(line, ']')
			if end < 0 {
				// Left for ini.v1 to report.
				return nil
			}
			name := line[1:end]
			if first, dup := seen[name]; dup && name != ini.DefaultSection {
				return errors.Wrapf(ErrSyntax, "line %d: section %q already defined on line %d", lineno, name, first)
			}
			seen[name] = lineno
			inSection = true
			continue
		}
		if !inSection {
			return errors.Wrapf(ErrSyntax, "line %d: option outside any section", lineno)
		}
	}
	return nil
}

// joinContinuation strips the indentation of continuation lines and drops
// trailing empty ones.
func joinContinuation(value string) string {
	if !strings.Contains(value, "\n") {
		return value
	}
	lines := strings.Split(value, "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = strings.TrimSpace(lines[i])
	}
	for len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
