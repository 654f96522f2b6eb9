// Package colparser extracts records from delimited text sources where one
// designated column carries the free statement text. The column name is
// required configuration; its absence from the header is a configuration
// error, not a parsing error, and is reported before any row is parsed.
package colparser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"rmachado/extrato-xlsx/internal/extractor"
	"rmachado/extrato-xlsx/internal/logging"
	"rmachado/extrato-xlsx/internal/models"
	"rmachado/extrato-xlsx/internal/parsererror"
)

// Parser reads .csv statement sources.
type Parser struct {
	column string
	comma  rune
	log    logging.Logger
}

// New creates a delimited-text parser that reads the named free-text column.
func New(column string, comma rune) *Parser {
	if comma == 0 {
		comma = ','
	}
	return &Parser{column: column, comma: comma, log: logging.GetLogger()}
}

// SetLogger injects a configured logger.
func (p *Parser) SetLogger(log logging.Logger) {
	if log != nil {
		p.log = log
	}
}

// Parse reads the delimited source from r, locates the configured column in
// the header and extracts one record per non-blank column value.
func (p *Parser) Parse(r io.Reader) ([]models.Record, error) {
	if p.column == "" {
		return nil, &parsererror.ConfigurationError{
			Option: "col",
			Msg:    "a column name is required for delimited sources",
		}
	}

	reader := csv.NewReader(r)
	reader.Comma = p.comma
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, &parsererror.ParseError{
			Parser: "csv",
			Field:  "header",
			Value:  p.column,
			Err:    err,
		}
	}

	colIdx := -1
	for i, name := range header {
		if name == p.column {
			colIdx = i
			break
		}
	}
	if colIdx < 0 {
		return nil, &parsererror.ConfigurationError{
			Option: "col",
			Msg: fmt.Sprintf("column '%s' not found; available: %s",
				p.column, strings.Join(header, ", ")),
		}
	}

	var records []models.Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A malformed row degrades to nothing; it never aborts the pass.
			p.log.WithError(err).Warn("Skipping malformed row")
			continue
		}
		if colIdx >= len(row) {
			continue
		}
		line := strings.TrimSpace(row[colIdx])
		if line == "" {
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

	p.log.Info("Parsed delimited statement",
		logging.Field{Key: logging.FieldParser, Value: "csv"},
		logging.Field{Key: logging.FieldCount, Value: len(records)})
	return records, nil
}

// ParseFile opens path and parses it.
func (p *Parser) ParseFile(path string) ([]models.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			p.log.WithError(err).Warn("Failed to close file",
				logging.Field{Key: logging.FieldFile, Value: path})
		}
	}()
	return p.Parse(file)
}
