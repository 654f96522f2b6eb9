// Package parsererror defines the error taxonomy shared by all parsers.
package parsererror

import "fmt"

// ParseError represents an error during parsing
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ConfigurationError represents an invalid or missing configuration value,
// such as an unsupported source extension or a missing required column name.
// It is raised before any parsing begins and no partial output is attempted.
type ConfigurationError struct {
	Option string
	Msg    string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error for %s: %s", e.Option, e.Msg)
}

// MissingDependencyError reports that an optional external collaborator the
// requested source needs is unavailable. Hint carries the remediation step.
type MissingDependencyError struct {
	Dependency string
	Hint       string
}

func (e *MissingDependencyError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("missing dependency %s: %s", e.Dependency, e.Hint)
	}
	return fmt.Sprintf("missing dependency %s", e.Dependency)
}

// InvalidFormatError represents an error where the input file does not conform
// to the expected format for a specific parser.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}
