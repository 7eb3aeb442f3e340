package botconfig

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for each failure kind. Every [Error] unwraps to exactly one
// of these, so callers that only care about the kind can use [errors.Is].
var (
	// ErrFileNotFound indicates the configuration file does not exist.
	ErrFileNotFound = errors.New("config file not found")

	// ErrInvalidSchemaType indicates a schema value of an unsupported type.
	ErrInvalidSchemaType = errors.New("invalid schema type")

	// ErrMissingSection indicates the file lacks a required section.
	ErrMissingSection = errors.New("missing section")

	// ErrMissingOption indicates a section lacks a required option.
	ErrMissingOption = errors.New("missing option")
)

// Expected type names reported by [InvalidSchemaTypeError].
const (
	ExpectedMapping      = "mapping"
	ExpectedStringOrList = "string or list"
)

// Error is implemented by the four configuration error types and nothing else:
// [*FileNotFoundError], [*InvalidSchemaTypeError], [*MissingSectionError] and
// [*MissingOptionError]. Use a type switch to handle each case.
type Error interface {
	error
	configError()
}

// FileNotFoundError is returned when the configuration path does not name an
// existing regular file.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("config file %q does not exist", e.Path)
}

func (e *FileNotFoundError) Unwrap() error { return ErrFileNotFound }

func (*FileNotFoundError) configError() {}

// InvalidSchemaTypeError is returned when a schema document is not a mapping,
// or when one of its entries is neither a string nor a list of strings.
type InvalidSchemaTypeError struct {
	Value    any
	Expected string
}

func (e *InvalidSchemaTypeError) Error() string {
	return fmt.Sprintf("invalid schema type: %#v is not a %s", e.Value, e.Expected)
}

func (e *InvalidSchemaTypeError) Unwrap() error { return ErrInvalidSchemaType }

func (*InvalidSchemaTypeError) configError() {}

// MissingSectionError is returned when the file has no [Section] block for a
// section the schema requires.
type MissingSectionError struct {
	Section string
}

func (e *MissingSectionError) Error() string {
	return fmt.Sprintf("config has no section %q", e.Section)
}

func (e *MissingSectionError) Unwrap() error { return ErrMissingSection }

func (*MissingSectionError) configError() {}

// MissingOptionError is returned when a section exists but lacks a key the
// schema requires.
type MissingOptionError struct {
	Section string
	Option  string
}

func (e *MissingOptionError) Error() string {
	return fmt.Sprintf("section %q has no option %q", e.Section, e.Option)
}

func (e *MissingOptionError) Unwrap() error { return ErrMissingOption }

func (*MissingOptionError) configError() {}
