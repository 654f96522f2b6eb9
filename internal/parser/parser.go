// Package parser defines the common parser contract and the extension-based
// factory that picks an implementation for a source file.
package parser

import (
	"io"

	"rmachado/extrato-xlsx/internal/logging"
	"rmachado/extrato-xlsx/internal/models"
)

// Parser reads one statement source and produces its records in encounter
// order. Implementations understand a specific input format and must degrade
// gracefully on malformed lines: a single bad line never aborts the pass.
type Parser interface {
	// Parse reads data from r and returns the extracted records.
	Parse(r io.Reader) ([]models.Record, error)

	// ParseFile parses the source at path.
	ParseFile(path string) ([]models.Record, error)

	// SetLogger injects a configured logger.
	SetLogger(log logging.Logger)
}
