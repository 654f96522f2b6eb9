// Package pdfparser extracts records from PDF statements. Text-layout
// documents go line by line through the classifier and field extractor;
// ruled-table documents can instead go through table mode, which falls back
// to the text path when it finds nothing.
package pdfparser

import (
	"fmt"
	"io"
	"os"

	"rmachado/extrato-xlsx/internal/classifier"
	"rmachado/extrato-xlsx/internal/extractor"
	"rmachado/extrato-xlsx/internal/logging"
	"rmachado/extrato-xlsx/internal/models"
	"rmachado/extrato-xlsx/internal/pdfext"
	"rmachado/extrato-xlsx/internal/tablemode"
)

// Options control the PDF extraction heuristics.
type Options struct {
	// Rules configures the line classifier for the text path.
	Rules classifier.Ruleset
	// KeepAllLines bypasses the classifier entirely (raw mode).
	KeepAllLines bool
	// TableMode parses ruled-table cell grids instead of text lines,
	// with the documented fallback to the text path.
	TableMode bool
	// Tolerances is the geometric profile for table reconstruction.
	Tolerances pdfext.ToleranceProfile
}

// DefaultOptions returns the standard heuristics: classifier on with its
// default ruleset, text path.
func DefaultOptions() Options {
	return Options{
		Rules:      classifier.Default(),
		Tolerances: pdfext.DefaultTolerances(),
	}
}

// Parser reads .pdf statement sources.
type Parser struct {
	opts   Options
	text   pdfext.TextExtractor
	tables pdfext.TableExtractor
	log    logging.Logger
}

// New creates a PDF parser backed by the production extractor.
func New(opts Options) *Parser {
	real := pdfext.NewExtractor()
	real.Tolerances = opts.Tolerances
	return NewWithExtractors(opts, real, real)
}

// NewWithExtractors creates a PDF parser with injected extractors. Tests use
// this with pdfext.Mock.
func NewWithExtractors(opts Options, text pdfext.TextExtractor, tables pdfext.TableExtractor) *Parser {
	return &Parser{
		opts:   opts,
		text:   text,
		tables: tables,
		log:    logging.GetLogger(),
	}
}

// SetLogger injects a configured logger.
func (p *Parser) SetLogger(log logging.Logger) {
	if log != nil {
		p.log = log
	}
}

// Parse reads PDF bytes from r into a temporary file and parses that. The
// extraction collaborator needs a file path, so streaming input is staged
// on disk first.
func (p *Parser) Parse(r io.Reader) ([]models.Record, error) {
	tempFile, err := os.CreateTemp("", "*.pdf")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary PDF file: %w", err)
	}
	defer func() {
		if err := os.Remove(tempFile.Name()); err != nil {
			p.log.WithError(err).Warn("Failed to remove temporary file",
				logging.Field{Key: logging.FieldFile, Value: tempFile.Name()})
		}
	}()

	if _, err := io.Copy(tempFile, r); err != nil {
		_ = tempFile.Close()
		return nil, fmt.Errorf("failed to write temporary PDF file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temporary PDF file: %w", err)
	}

	return p.ParseFile(tempFile.Name())
}

// ParseFile parses the PDF at path. In table mode a document that yields
// zero table records is retried through the text path before an empty result
// is reported; the fallback is deterministic caller policy, not an error.
func (p *Parser) ParseFile(path string) ([]models.Record, error) {
	p.log.Info("Parsing PDF file",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: "table_mode", Value: p.opts.TableMode})

	if p.opts.TableMode {
		records, err := p.parseTables(path)
		if err != nil {
			return nil, err
		}
		if len(records) > 0 {
			return records, nil
		}
		p.log.Info("Table mode found no records, falling back to text lines",
			logging.Field{Key: logging.FieldFile, Value: path})
	}

	return p.parseText(path)
}

func (p *Parser) parseText(path string) ([]models.Record, error) {
	pages, err := p.text.PageLines(path)
	if err != nil {
		return nil, err
	}

	var records []models.Record
	for _, lines := range pages {
		for _, raw := range lines {
			line := extractor.CollapseSpaces(raw)
			if line == "" {
				continue
			}
			if !p.opts.KeepAllLines && !classifier.IsTransactionLine(line, p.opts.Rules) {
				continue
			}
			f := extractor.Extract(line)
			records = append(records, models.Record{
				Date:         f.Date,
				Description:  f.Description,
				Amount:       f.Amount,
				Balance:      f.Balance,
				OriginalLine: line,
			})
		}
	}

	p.log.Info("Parsed PDF text lines",
		logging.Field{Key: logging.FieldParser, Value: "pdf"},
		logging.Field{Key: logging.FieldCount, Value: len(records)})
	return records, nil
}

func (p *Parser) parseTables(path string) ([]models.Record, error) {
	grids, err := p.tables.PageTables(path)
	if err != nil {
		return nil, err
	}

	// One accumulator per document pass; pages share it in order.
	tm := tablemode.New()
	tm.SetLogger(p.log)

	var records []models.Record
	for _, grid := range grids {
		records = append(records, tm.Rows(grid)...)
	}

	p.log.Info("Parsed PDF tables",
		logging.Field{Key: logging.FieldParser, Value: "pdf"},
		logging.Field{Key: logging.FieldCount, Value: len(records)})
	return records, nil
}
