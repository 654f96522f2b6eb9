package parser

import (
	"path/filepath"
	"strings"

	"rmachado/extrato-xlsx/internal/classifier"
	"rmachado/extrato-xlsx/internal/colparser"
	"rmachado/extrato-xlsx/internal/parsererror"
	"rmachado/extrato-xlsx/internal/pdfext"
	"rmachado/extrato-xlsx/internal/pdfparser"
	"rmachado/extrato-xlsx/internal/txtparser"
)

// Compile-time checks that every implementation satisfies the contract.
var (
	_ Parser = (*txtparser.Parser)(nil)
	_ Parser = (*colparser.Parser)(nil)
	_ Parser = (*pdfparser.Parser)(nil)
)

// Options carries the per-run configuration the factory hands to parsers.
type Options struct {
	// Column is the free-text column name for delimited sources.
	Column string
	// Delimiter is the field separator for delimited sources.
	Delimiter rune
	// Rules configures the PDF line classifier.
	Rules classifier.Ruleset
	// KeepAllLines bypasses the PDF classifier.
	KeepAllLines bool
	// TableMode enables ruled-table extraction for PDFs.
	TableMode bool
	// Tolerances is the table reconstruction profile.
	Tolerances pdfext.ToleranceProfile
}

// ForFile returns the parser for the file's extension. Unsupported
// extensions and a delimited source without a column name are configuration
// errors, raised before any parsing begins.
func ForFile(path string, opts Options) (Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		return txtparser.New(), nil
	case ".csv":
		if opts.Column == "" {
			return nil, &parsererror.ConfigurationError{
				Option: "col",
				Msg:    "a column name is required for delimited sources",
			}
		}
		return colparser.New(opts.Column, opts.Delimiter), nil
	case ".pdf":
		return pdfparser.New(pdfparser.Options{
			Rules:        opts.Rules,
			KeepAllLines: opts.KeepAllLines,
			TableMode:    opts.TableMode,
			Tolerances:   opts.Tolerances,
		}), nil
	default:
		return nil, &parsererror.ConfigurationError{
			Option: "input",
			Msg:    "unsupported source extension; use .txt, .csv or .pdf",
		}
	}
}
